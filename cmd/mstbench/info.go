// File: info.go
// Role: `mstbench info` — prints connectivity, weight-uniqueness, and size
// facts about a graph.
package main

import (
	"io"

	"github.com/mstlab/tpmverify/core"
	"github.com/mstlab/tpmverify/mstjson"
)

func runInfo(out io.Writer, args []string) error {
	path, _, _, err := parseGraphArgs(args)
	if err != nil {
		return err
	}

	g, err := loadGraph(path)
	if err != nil {
		return err
	}

	report := mstjson.InfoReport{
		Connected:     g.IsConnected(),
		UniqueWeights: hasUniqueWeights(g),
		Vertices:      g.NumVertices(),
		Edges:         g.NumEdges(),
	}

	return mstjson.Write(out, report)
}

func hasUniqueWeights(g *core.Graph) bool {
	seen := make(map[float64]struct{}, g.NumEdges())
	for _, e := range g.Edges() {
		if _, ok := seen[e.Weight]; ok {
			return false
		}
		seen[e.Weight] = struct{}{}
	}
	return true
}
