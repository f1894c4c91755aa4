// Package tpmverify is an MST-construction and MST-verification toolkit:
// it builds minimum spanning trees with five algorithms sharing one result
// protocol, and verifies a candidate forest against a graph in near-linear
// time via a Fully-Branching Tree, a constant-time LCA oracle, and the
// Komlós/King/Hagerup Tree-Path-Maxima algorithm.
//
// Under the hood, everything is organized under its subpackages:
//
//	core/      — thread-safe Graph/Edge primitives and union-find
//	boruvka/   — one Borůvka contraction round, and the classical MST driver
//	fbt/       — Fully-Branching Tree construction (repeated contraction)
//	lca/       — Euler-tour + two-level RMQ constant-time LCA oracle
//	tpm/       — Tree-Path-Maxima: batched path-maximum queries in O(n+q)
//	mstverify/ — heavy-edge detection: is a forest the MST of a graph?
//	mst/       — Kruskal, Prim (binary/Fibonacci heap), Borůvka, random_KKT,
//	             and the algorithm registry/runner
//	kkt/       — the randomized Karger–Klein–Tarjan linear-expected-time MST
//	graphio/   — graph text format parsing and benchmark configuration
//	mstjson/   — CLI output formatting
//	cmd/mstbench/ — the test/bench/info/ls command-line harness
//
// Every exported entry point is a synchronous, side-effect-free function of
// its explicit arguments; no algorithm here mutates the *core.Graph passed
// to it.
package tpmverify
