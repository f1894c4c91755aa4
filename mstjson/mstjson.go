// File: mstjson.go
// Role: output shapes and the single Write helper used by every
// cmd/mstbench sub-command.
package mstjson

import (
	"encoding/json"
	"io"
)

// TestReport is `mstbench test`'s output: one pass/fail boolean per
// algorithm name.
type TestReport map[string]bool

// BenchReport is `mstbench bench`'s output: one mean-microseconds float
// per algorithm name.
type BenchReport map[string]float64

// InfoReport is `mstbench info`'s output.
type InfoReport struct {
	Connected     bool `json:"connected"`
	UniqueWeights bool `json:"unique_weights"`
	Vertices      int  `json:"vertices"`
	Edges         int  `json:"edges"`
}

// Write marshals v as JSON and writes it to w, followed by a trailing
// newline (so CLI output behaves like a normal line-oriented program).
func Write(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	return enc.Encode(v)
}
