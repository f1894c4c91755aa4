// File: graph.go
// Role: loadGraph — shared graph-file loading for test/bench/info.
package main

import (
	"fmt"
	"os"

	"github.com/mstlab/tpmverify/core"
	"github.com/mstlab/tpmverify/graphio"
)

func loadGraph(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mstbench: %w", err)
	}
	defer f.Close()

	return graphio.Parse(f)
}
