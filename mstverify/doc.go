// Package mstverify computes, for a spanning tree and a batch of
// candidate non-tree edges, the set of "heavy" edges that cannot belong
// to the MST of the tree plus those candidates. It builds
// a fully-branching tree and LCA oracle over the input once, decomposes
// each candidate into two tree-path-maxima queries, and answers them all
// in a single tpm.Answer batch.
package mstverify
