// Package kkt implements the randomized Karger–Klein–Tarjan MST algorithm:
// two Borůvka contractions, Bernoulli(1/2) edge sampling, a recursive MST
// of the sample, heavy-edge removal via mstverify against the sample's
// forest, and a final recursion over the light residual.
//
// original_source/src/randomKKT.cpp's own RandomKKT::compute_mst_impl
// repeatedly contracts the same graph reference without ever advancing to
// the contracted output — it is indistinguishable from plain Borůvka, with
// no sampling, recursion, or heavy-edge removal. RandomMST here corrects
// that: each Borůvka step correctly contracts the *previous* step's
// output, and the sample/verify/recurse structure is implemented in full.
package kkt
