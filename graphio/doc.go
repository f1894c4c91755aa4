// Package graphio reads the graph text format into a *core.Graph, and
// loads an optional YAML benchmark configuration for cmd/mstbench.
package graphio
