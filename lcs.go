package suffix

import (
	"fmt"
	"slices"
	"unicode/utf16"
)

// LongestCommonSubstrings returns every substring of maximal length that
// occurs in all of the given strings. Ties at the maximal length are all
// returned, deduplicated and sorted. The space-efficient logarithmic
// StringIndexMap variant is used for position ownership.
//
// At least two strings are required (ErrInvalidArity otherwise). If any
// participant is empty the only common substring is the empty one and the
// result is empty.
func LongestCommonSubstrings(strs []string) ([]string, error) {
	return LongestCommonSubstringsWithMap(strs, NewLogIndexMap())
}

// LongestCommonSubstringsWithMap is LongestCommonSubstrings with a
// caller-supplied StringIndexMap. The map must be freshly built; the choice
// of variant does not affect the result.
func LongestCommonSubstringsWithMap(strs []string, owners StringIndexMap) ([]string, error) {
	if len(strs) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidArity, len(strs))
	}
	for _, s := range strs {
		if s == "" {
			return []string{}, nil
		}
	}

	k := len(strs)
	concat, term := concatCodes(strs, owners)
	sa, err := BuildSuffixArrayWithTerminator(concat, term)
	if err != nil {
		return nil, err
	}
	lcp := BuildLCPArray(sa, concat)

	best, starts, err := sweepWindows(sa, lcp, owners, k)
	if err != nil {
		return nil, err
	}
	if best == 0 {
		return []string{}, nil
	}

	// Distinct suffix-array windows can yield character-identical
	// substrings; deduplicate by content and sort for determinism.
	seen := make(map[string]struct{}, len(starts))
	for _, pos := range starts {
		seen[decodeUTF16(concat[pos:pos+best])] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	slices.Sort(out)
	return out, nil
}

// concatCodes joins the UTF-16 code units of all strings into one sequence,
// separating consecutive strings with strictly decreasing sentinel codes
// (-1, -2, ...) so that no suffix comparison can match across a string
// boundary. Each string is registered with owners as its code-unit length
// plus one, covering its trailing sentinel. The final string's sentinel is
// not appended; it is returned as the terminator for the suffix array build.
func concatCodes(strs []string, owners StringIndexMap) (concat []int, terminator int) {
	for i, s := range strs {
		codes := encodeUTF16(s)
		owners.Add(len(codes) + 1)
		concat = append(concat, codes...)
		if i < len(strs)-1 {
			concat = append(concat, -(i + 1))
		}
	}
	return concat, -len(strs)
}

// sweepWindows slides a two-pointer window over suffix-array ranks, tracking
// the minimum LCP inside the window with a monotonic deque and the number of
// distinct owning strings covered. Whenever all k owners are covered, the
// window minimum bounds a substring common to every string; the maximal such
// bound and the concatenation positions achieving it are returned.
func sweepWindows(sa, lcp []int, owners StringIndexMap, k int) (best int, starts []int, err error) {
	n := len(sa)
	counts := make([]int, k)
	covered := 0
	var deque []int // rank indices with increasing lcp values

	lo := 0
	for hi := 0; hi < n; hi++ {
		if hi > 0 {
			for len(deque) > 0 && lcp[deque[len(deque)-1]] >= lcp[hi] {
				deque = deque[:len(deque)-1]
			}
			deque = append(deque, hi)
		}

		owner, lerr := owners.Lookup(sa[hi])
		if lerr != nil {
			return 0, nil, lerr
		}
		if counts[owner] == 0 {
			covered++
		}
		counts[owner]++

		for covered == k {
			// Window minimum over lcp[lo+1..hi] is the length of the
			// prefix shared by every suffix ranked lo..hi.
			cand := lcp[deque[0]]
			if cand > best {
				best = cand
				starts = starts[:0]
			}
			if cand == best && best > 0 {
				starts = append(starts, sa[lo])
			}

			owner, lerr := owners.Lookup(sa[lo])
			if lerr != nil {
				return 0, nil, lerr
			}
			counts[owner]--
			if counts[owner] == 0 {
				covered--
			}
			lo++
			for len(deque) > 0 && deque[0] <= lo {
				deque = deque[1:]
			}
		}
	}
	return best, starts, nil
}

// decodeUTF16 rebuilds a string from a slice of non-negative UTF-16 code
// units. Sentinel codes never appear inside a common prefix, so the slice is
// guaranteed to hold real code units only.
func decodeUTF16(codes []int) string {
	units := make([]uint16, len(codes))
	for i, c := range codes {
		units[i] = uint16(c)
	}
	return string(utf16.Decode(units))
}
