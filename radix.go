package suffix

// RadixSort returns the tuples in ascending lexicographic order, first element
// most significant. All tuples must have the same length. The sort is stable:
// tuples with equal contents keep their relative input order.
func RadixSort(tuples [][]int) ([][]int, error) {
	return RadixSortFunc(tuples, func(t []int) []int { return t })
}

// RadixSortFunc returns a new slice with entries reordered so that their
// projected tuples are in ascending lexicographic order. Every entry must
// project to a tuple of the same length, otherwise ErrRaggedTuples is
// returned. The sort is stable and runs in O(n*d) time for n entries of
// width d, plus O(n + range) space per column pass. Entries are not mutated.
func RadixSortFunc[E any](entries []E, key func(E) []int) ([]E, error) {
	n := len(entries)
	if n == 0 {
		return []E{}, nil
	}

	keys := make([][]int, n)
	for i, e := range entries {
		keys[i] = key(e)
	}
	width := len(keys[0])
	for _, k := range keys {
		if len(k) != width {
			return nil, ErrRaggedTuples
		}
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	// One stable counting pass per column, least significant first. Bucket
	// indices are biased by the column minimum so negative values order
	// naturally below positive ones.
	next := make([]int, n)
	for col := width - 1; col >= 0; col-- {
		perm, next = countingPass(perm, next, keys, col)
	}

	out := make([]E, n)
	for i, p := range perm {
		out[i] = entries[p]
	}
	return out, nil
}

// countingPass stably reorders perm by keys[...][col], writing into buf and
// returning the two slices swapped for the next pass.
func countingPass(perm, buf []int, keys [][]int, col int) ([]int, []int) {
	lo, hi := keys[perm[0]][col], keys[perm[0]][col]
	for _, p := range perm {
		v := keys[p][col]
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	count := make([]int, hi-lo+1)
	for _, p := range perm {
		count[keys[p][col]-lo]++
	}
	sum := 0
	for i, c := range count {
		count[i] = sum
		sum += c
	}
	for _, p := range perm {
		d := keys[p][col] - lo
		buf[count[d]] = p
		count[d]++
	}
	return buf, perm
}
