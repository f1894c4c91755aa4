// File: median.go
// Role: size-lexicographic subset enumeration building median_table
// and the down(a,b) bit-trick.
package tpm

// down returns the subset of b made of, for every depth i in a, the
// smallest depth in b strictly greater than i. Canonical identity from the
// Komlós bit trick.
func down(a, b uint64) uint64 {
	return b & (^(a | b) ^ (a + (a | ^b)))
}

// buildMedianTable precomputes, for every non-empty subset S of depths
// {0,...,depth} (encoded as a bitmask), the depth that is the median of
// S. It enumerates subsets of size k over {0,...,depth} in increasing
// order of k so every table entry is written exactly once, in total time
// O(2^depth * depth).
func buildMedianTable(depth int) []int {
	h := depth
	subsetBuf := make([]uint64, (1<<uint(h))+1)
	medianTable := make([]int, 1<<uint(h+1))

	var subsets func(n, k, p int) int
	subsets = func(n, k, p int) int {
		if n < k {
			return p
		}
		if k == 0 {
			subsetBuf[p] = 0
			return p + 1
		}
		q := subsets(n-1, k-1, p)
		for i := p; i < q; i++ {
			subsetBuf[i] |= uint64(1) << uint(n-1)
		}
		return subsets(n-1, k, q)
	}

	for s := 0; s <= h; s++ {
		for k := 0; k <= s; k++ {
			p := subsets(h-s, k, 0)
			q := subsets(s, k, p)
			q = subsets(s, k+1, q)
			for i := 0; i < p; i++ {
				b := (uint64(1) << uint(s+1)) * subsetBuf[i] + (uint64(1) << uint(s))
				for j := p; j < q; j++ {
					medianTable[b+subsetBuf[j]] = s
				}
			}
		}
	}

	return medianTable
}
