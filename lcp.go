package suffix

// BuildLCPArray computes the LCP array for codes and its suffix array using
// Kasai's algorithm in O(n) time. lcp[i] is the length of the longest common
// prefix of the suffixes at ranks i-1 and i; lcp[0] is 0 by convention. sa may
// be one longer than codes when it covers an appended terminator position.
//
// sa must be a valid suffix array for codes; the result is undefined
// otherwise.
func BuildLCPArray(sa []int, codes []int) []int {
	n := len(sa)
	rank := make([]int, n)
	for i, pos := range sa {
		rank[pos] = i
	}

	lcp := make([]int, n)
	h := 0
	for pos := 0; pos < n; pos++ {
		r := rank[pos]
		if r == 0 {
			h = 0
			continue
		}
		prev := sa[r-1]
		for pos+h < len(codes) && prev+h < len(codes) && codes[pos+h] == codes[prev+h] {
			h++
		}
		lcp[r] = h
		if h > 0 {
			h--
		}
	}
	return lcp
}
