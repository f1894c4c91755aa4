// File: test.go
// Role: `mstbench test` — compares every algorithm's result weight to the
// Kruskal reference within tolerance.
package main

import (
	"fmt"
	"io"

	"github.com/mstlab/tpmverify/mst"
	"github.com/mstlab/tpmverify/mstjson"
)

func runTest(out, errOut io.Writer, args []string) error {
	path, filter, _, err := parseGraphArgs(args)
	if err != nil {
		return err
	}

	g, err := loadGraph(path)
	if err != nil {
		return err
	}

	results, err := mst.NewRunner().Run(g, filter...)
	if err != nil {
		return err
	}

	report := make(mstjson.TestReport, len(results))
	for _, res := range results {
		report[res.Name] = res.Pass
		switch {
		case res.Err != nil:
			fmt.Fprintf(errOut, "%s: %v\n", res.Name, res.Err)
		case !res.Pass:
			fmt.Fprintf(errOut, "%s: weight %v outside tolerance\n", res.Name, res.Weight)
		}
	}

	return mstjson.Write(out, report)
}
