// Package mst collects the classical MST algorithms behind a common
// Result protocol and a Registry/Runner pair, so a caller — or the
// benchmark CLI — can run any of them over the same *core.Graph and
// compare total weights.
package mst
