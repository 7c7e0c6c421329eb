package suffix

import (
	"sort"
	"strings"

	"github.com/viniciusth/rmq"
	"golang.org/x/text/unicode/norm"
)

// IndexBuilder configures construction of an Index over a set of strings.
// Defaults: LCP acceleration and doc listing on, case-insensitive matching,
// NFC normalization, linear StringIndexMap.
type IndexBuilder struct {
	strs          []string
	useLCP        bool
	useDocListing bool
	caseSensitive bool
	normalize     bool
	mapKind       string
}

func NewIndexBuilder(strs []string) *IndexBuilder {
	return &IndexBuilder{
		strs:          strs,
		useLCP:        true,
		useDocListing: true,
		caseSensitive: false,
		normalize:     true,
		mapKind:       MapKindLinear,
	}
}

// Skips the LCP array construction, this makes pattern search
// O(|P| * log(|S|)) instead of O(|P| + log(|S|)).
// Trade-off: search is slower, but you spend less memory.
func (b *IndexBuilder) SkipLCP() *IndexBuilder {
	b.useLCP = false
	return b
}

// Skips the document listing structures construction.
// This makes finding which strings contain a pattern a naive scan over the
// matching suffix range, up to O(|S|) in the worst case.
// Most useful if the number of matched strings is small.
func (b *IndexBuilder) SkipDocListing() *IndexBuilder {
	b.useDocListing = false
	return b
}

// Makes the search case sensitive.
func (b *IndexBuilder) CaseSensitive() *IndexBuilder {
	b.caseSensitive = true
	return b
}

// Skips the normalization of the strings with NFC.
func (b *IndexBuilder) SkipNormalization() *IndexBuilder {
	b.normalize = false
	return b
}

// IndexMapKind selects the StringIndexMap variant used for position
// ownership ("linear" or "log").
func (b *IndexBuilder) IndexMapKind(kind string) *IndexBuilder {
	b.mapKind = kind
	return b
}

func (b *IndexBuilder) Build() (*Index, error) {
	if len(b.strs) == 0 {
		return nil, ErrNoInput
	}
	owners, err := NewIndexMap(b.mapKind)
	if err != nil {
		return nil, err
	}

	transformed := make([]string, len(b.strs))
	for i, s := range b.strs {
		transformed[i] = applyTransforms(s, b.caseSensitive, b.normalize)
	}
	codes, term := concatCodes(transformed, owners)
	sa, err := BuildSuffixArrayWithTerminator(codes, term)
	if err != nil {
		return nil, err
	}

	var lcp []int
	var lcpRMQ *rmq.RMQHybridNaive[int]
	if b.useLCP {
		lcp = BuildLCPArray(sa, codes)
		lcpRMQ = rmq.NewRMQHybridNaive(lcp)
	}

	ix := &Index{
		strs:          b.strs,
		codes:         codes,
		sa:            sa,
		lcp:           lcp,
		lcpRMQ:        lcpRMQ,
		owners:        owners,
		caseSensitive: b.caseSensitive,
		normalize:     b.normalize,
	}
	if b.useDocListing {
		ix.prev = ix.buildPrevArray(len(b.strs))
		ix.prevRMQ = rmq.NewRMQHybridNaive(ix.prev)
	}
	return ix, nil
}

// Index answers which of a fixed set of strings contain a pattern, built on
// the generalized suffix array of their sentinel-separated concatenation.
type Index struct {
	strs          []string
	codes         []int
	sa            []int
	lcp           []int
	lcpRMQ        *rmq.RMQHybridNaive[int]
	prev          []int
	prevRMQ       *rmq.RMQHybridNaive[int]
	owners        StringIndexMap
	caseSensitive bool
	normalize     bool
}

func applyTransforms(s string, caseSensitive bool, normalize bool) string {
	if !caseSensitive {
		s = strings.ToLower(s)
	}
	if normalize {
		s = norm.NFC.String(s)
	}
	return s
}

// ownerOf maps a concatenation position to its source string index.
func (ix *Index) ownerOf(pos int) int {
	owner, err := ix.owners.Lookup(pos)
	if err != nil {
		// positions come from the suffix array and are always in range
		panic(err)
	}
	return owner
}

// buildPrevArray builds the doc listing prev array: for each rank i, prev[i]
// is the previous rank owned by the same string, or -1 if there is none.
func (ix *Index) buildPrevArray(k int) []int {
	prev := make([]int, len(ix.sa))
	last := make([]int, k)
	for i := range last {
		last[i] = -1
	}
	for i, pos := range ix.sa {
		owner := ix.ownerOf(pos)
		prev[i] = last[owner]
		last[owner] = i
	}
	return prev
}

// FindKMatches returns up to k distinct indices of strings containing
// pattern. The pattern undergoes the same case and normalization transforms
// as the indexed strings.
func (ix *Index) FindKMatches(pattern string, k int) []int {
	if k <= 0 {
		return nil
	}
	codes := encodeUTF16(applyTransforms(pattern, ix.caseSensitive, ix.normalize))

	// Every rank in [l, r] is a match for the pattern.
	l, r := ix.findBoundaries(codes)
	if l == -1 {
		return nil
	}

	matches := make([]int, 0, k)
	if ix.prev != nil {
		return ix.collectDistinct(l, l, r, k, matches)
	}

	seen := make(map[int]bool)
	for i := l; i <= r && len(matches) < k; i++ {
		owner := ix.ownerOf(ix.sa[i])
		if seen[owner] {
			continue
		}
		seen[owner] = true
		matches = append(matches, owner)
	}
	return matches
}

// FindKMatchesString is FindKMatches resolving indices to the original
// strings.
func (ix *Index) FindKMatchesString(pattern string, k int) []string {
	idx := ix.FindKMatches(pattern, k)
	matches := make([]string, len(idx))
	for i := range matches {
		matches[i] = ix.strs[idx[i]]
	}
	return matches
}

// findBoundaries returns the rank range [l, r] of suffixes having pattern as
// a prefix, or (-1, -1) when there is no match. With the LCP array present
// the binary search reuses already matched pattern characters via range
// minimum queries; without it each probe compares from scratch.
func (ix *Index) findBoundaries(pattern []int) (int, int) {
	n := len(ix.sa)
	bestIdx, best := -1, 0

	// expand extends the matched prefix length at rank r and reports
	// whether pattern <= suffix at r.
	expand := func(r int) bool {
		pos := ix.sa[r]
		for best < len(pattern) && pos+best < len(ix.codes) && pattern[best] == ix.codes[pos+best] {
			best++
		}
		bestIdx = r
		if best == len(pattern) {
			return true
		}
		if pos+best == len(ix.codes) {
			return false
		}
		return pattern[best] < ix.codes[pos+best]
	}

	// first rank where pattern <= suffix
	l := sort.Search(n, func(r int) bool {
		if ix.lcp == nil {
			return comparePrefix(pattern, ix.codes, ix.sa[r]) <= 0
		}
		if bestIdx == -1 {
			return expand(r)
		}
		lo, hi := bestIdx, r
		if lo > hi {
			lo, hi = hi, lo
		}
		if common := ix.lcp[ix.lcpRMQ.Query(lo+1, hi)]; common < best {
			// r diverges from the best match before best characters;
			// the comparison outcome follows from the rank order alone.
			return r > bestIdx
		}
		return expand(r)
	})

	// The search may converge on a rank it never probed, so verify the
	// prefix directly.
	if l == n || !hasPrefix(ix.codes, ix.sa[l], pattern) {
		return -1, -1
	}

	// First rank past l where pattern stops being a prefix; the matching
	// ranks are T T T F F F, so search for the first F.
	r := sort.Search(n-l-1, func(i int) bool {
		if ix.lcp != nil {
			return ix.lcp[ix.lcpRMQ.Query(l+1, l+i+1)] < len(pattern)
		}
		return !hasPrefix(ix.codes, ix.sa[l+i+1], pattern)
	})

	return l, l + r
}

// collectDistinct extracts up to k distinct owning strings from the rank
// range [l, r] using the prev array: the range minimum of prev locates a rank
// whose owner has not appeared earlier in [baseL, r].
func (ix *Index) collectDistinct(baseL, l, r, k int, matches []int) []int {
	if len(matches) >= k || l > r {
		return matches
	}
	p := ix.prevRMQ.Query(l, r)
	if ix.prev[p] >= baseL {
		// every owner in [l, r] already occurs earlier in the range
		return matches
	}
	matches = append(matches, ix.ownerOf(ix.sa[p]))
	matches = ix.collectDistinct(baseL, l, p-1, k, matches)
	return ix.collectDistinct(baseL, p+1, r, k, matches)
}

// comparePrefix lexicographically compares pattern against the suffix of
// codes starting at pos, treating the suffix as if truncated to the pattern
// length; 0 means the suffix has pattern as a prefix.
func comparePrefix(pattern, codes []int, pos int) int {
	for i := 0; i < len(pattern); i++ {
		if pos+i >= len(codes) {
			return 1
		}
		if pattern[i] != codes[pos+i] {
			if pattern[i] < codes[pos+i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func hasPrefix(codes []int, pos int, pattern []int) bool {
	return comparePrefix(pattern, codes, pos) == 0
}
