package suffix

import (
	"fmt"
	"unicode/utf16"
)

// BuildSuffixArray returns the suffix array of codes plus an appended
// terminator chosen as min(0, smallest code) - 1, so it is always strictly
// below every code present. The result has length len(codes)+1 and is a
// permutation of 0..len(codes); rank 0 is always the terminator position.
// Construction is O(n) time and space (SA-IS).
func BuildSuffixArray(codes []int) ([]int, error) {
	term := -1
	for _, c := range codes {
		if c <= term {
			term = c - 1
		}
	}
	return BuildSuffixArrayWithTerminator(codes, term)
}

// BuildSuffixArrayWithTerminator returns the suffix array of codes plus the
// supplied terminator. The terminator must be strictly less than every code
// in the sequence (which also guarantees it cannot occur inside it);
// otherwise ErrInvalidTerminator is returned.
func BuildSuffixArrayWithTerminator(codes []int, terminator int) ([]int, error) {
	maxCode := terminator
	for i, c := range codes {
		if c <= terminator {
			return nil, fmt.Errorf("%w: code %d at position %d, terminator %d", ErrInvalidTerminator, c, i, terminator)
		}
		if c > maxCode {
			maxCode = c
		}
	}

	// Shift so the terminator maps to 0, the unique minimum the induced
	// sorting relies on at the end of the sequence.
	enc := make([]int, len(codes)+1)
	for i, c := range codes {
		enc[i] = c - terminator
	}
	enc[len(codes)] = 0
	return sais(enc, maxCode-terminator+1), nil
}

// BuildStringSuffixArray returns the suffix array of the UTF-16 code units of
// s, with the default terminator appended.
func BuildStringSuffixArray(s string) ([]int, error) {
	return BuildSuffixArray(encodeUTF16(s))
}

// encodeUTF16 expands a string into its UTF-16 code units, one int per unit.
func encodeUTF16(s string) []int {
	units := utf16.Encode([]rune(s))
	codes := make([]int, len(units))
	for i, u := range units {
		codes[i] = int(u)
	}
	return codes
}

// sais computes the suffix array of s by induced sorting. s must end with a
// unique smallest value and contain only values in [0, numBuckets).
func sais(s []int, numBuckets int) []int {
	sa := make([]int, len(s))
	saisInto(s, numBuckets, sa, make([]int, len(s)))
	return sa
}

// saisInto runs one SA-IS level, filling sa. names is scratch of len(s).
func saisInto(s []int, numBuckets int, sa, names []int) {
	n := len(s)
	for i := range sa {
		sa[i] = -1
	}
	if n == 0 {
		return
	}
	if n == 1 {
		sa[0] = 0
		return
	}

	// S/L type classification; the trailing sentinel is S-type.
	sType := make([]bool, n)
	sType[n-1] = true
	for i := n - 2; i >= 0; i-- {
		switch {
		case s[i] < s[i+1]:
			sType[i] = true
		case s[i] > s[i+1]:
			sType[i] = false
		default:
			sType[i] = sType[i+1]
		}
	}

	var lms []int
	for i := 1; i < n; i++ {
		if sType[i] && !sType[i-1] {
			lms = append(lms, i)
		}
	}

	// First induction: approximately sort the LMS suffixes.
	induce(s, sa, sType, numBuckets, lms)

	sortedLMS := make([]int, 0, len(lms))
	for _, pos := range sa {
		if pos > 0 && sType[pos] && !sType[pos-1] {
			sortedLMS = append(sortedLMS, pos)
		}
	}

	// Name LMS substrings in sorted order; equal substrings share a name.
	for i := range names {
		names[i] = -1
	}
	name, prev := 0, -1
	for _, pos := range sortedLMS {
		if prev >= 0 && !lmsEqual(s, sType, prev, pos) {
			name++
		}
		names[pos] = name
		prev = pos
	}
	numNames := name + 1

	reduced := make([]int, len(lms))
	for i, pos := range lms {
		reduced[i] = names[pos]
	}

	var reducedSA []int
	if numNames < len(reduced) {
		// Names collide: recurse on the reduced sequence.
		saisInto(reduced, numNames, sa[:len(reduced)], names[:len(reduced)])
		reducedSA = sa[:len(reduced)]
	} else {
		reducedSA = make([]int, len(reduced))
		for i, nm := range reduced {
			reducedSA[nm] = i
		}
	}

	ordered := make([]int, len(reducedSA))
	for i, idx := range reducedSA {
		ordered[i] = lms[idx]
	}

	// Final induction from the now exactly sorted LMS suffixes.
	for i := range sa {
		sa[i] = -1
	}
	induce(s, sa, sType, numBuckets, ordered)
}

// induce seeds the given LMS positions at their bucket tails, then induces
// L-type suffixes left to right and S-type suffixes right to left.
func induce(s, sa []int, sType []bool, numBuckets int, lms []int) {
	sizes := bucketSizes(s, numBuckets)

	tails := bucketTails(sizes)
	for i := len(lms) - 1; i >= 0; i-- {
		pos := lms[i]
		c := s[pos]
		sa[tails[c]] = pos
		tails[c]--
	}

	heads := bucketHeads(sizes)
	for _, pos := range sa {
		if pos > 0 && !sType[pos-1] {
			c := s[pos-1]
			sa[heads[c]] = pos - 1
			heads[c]++
		}
	}

	tails = bucketTails(sizes)
	for i := len(sa) - 1; i >= 0; i-- {
		pos := sa[i]
		if pos > 0 && sType[pos-1] {
			c := s[pos-1]
			sa[tails[c]] = pos - 1
			tails[c]--
		}
	}
}

func bucketSizes(s []int, numBuckets int) []int {
	sizes := make([]int, numBuckets)
	for _, c := range s {
		sizes[c]++
	}
	return sizes
}

func bucketHeads(sizes []int) []int {
	heads := make([]int, len(sizes))
	sum := 0
	for i, v := range sizes {
		heads[i] = sum
		sum += v
	}
	return heads
}

func bucketTails(sizes []int) []int {
	tails := make([]int, len(sizes))
	sum := 0
	for i, v := range sizes {
		sum += v
		tails[i] = sum - 1
	}
	return tails
}

// lmsEqual reports whether the LMS substrings starting at i and j are equal.
func lmsEqual(s []int, sType []bool, i, j int) bool {
	n := len(s)
	for {
		if s[i] != s[j] {
			return false
		}
		iLMS := i > 0 && sType[i] && !sType[i-1]
		jLMS := j > 0 && sType[j] && !sType[j-1]
		if iLMS && jLMS {
			return true
		}
		if iLMS != jLMS {
			return false
		}
		i++
		j++
		if i >= n || j >= n {
			return false
		}
	}
}
