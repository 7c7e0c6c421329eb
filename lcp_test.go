package suffix

import (
	"math/rand"
	"slices"
	"testing"
)

// naiveLCP compares adjacent suffixes character by character.
func naiveLCP(sa, codes []int) []int {
	lcp := make([]int, len(sa))
	for i := 1; i < len(sa); i++ {
		a, b := sa[i-1], sa[i]
		for a+lcp[i] < len(codes) && b+lcp[i] < len(codes) && codes[a+lcp[i]] == codes[b+lcp[i]] {
			lcp[i]++
		}
	}
	return lcp
}

func TestBuildLCPArrayBanana(t *testing.T) {
	codes := encodeUTF16("banana")
	sa, err := BuildSuffixArray(codes)
	if err != nil {
		t.Fatal(err)
	}
	// ranks: $ a$ ana$ anana$ banana$ na$ nana$
	want := []int{0, 0, 1, 3, 0, 0, 2}
	if got := BuildLCPArray(sa, codes); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBuildLCPArrayRandom(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		codes := genRandCodes(r, r.Intn(300), r.Intn(5)+2)
		sa, err := BuildSuffixArray(codes)
		if err != nil {
			t.Fatal(err)
		}
		got := BuildLCPArray(sa, codes)
		if want := naiveLCP(sa, codes); !slices.Equal(got, want) {
			t.Fatalf("trial %d: got %v, want %v", trial, got, want)
		}
		for i := 1; i < len(sa); i++ {
			if limit := len(codes) - max(sa[i-1], sa[i]); got[i] > limit {
				t.Fatalf("trial %d: lcp[%d]=%d exceeds shorter suffix length %d", trial, i, got[i], limit)
			}
		}
	}
}

func TestBuildLCPArrayFirstEntryZero(t *testing.T) {
	codes := encodeUTF16("aaaa")
	sa, err := BuildSuffixArray(codes)
	if err != nil {
		t.Fatal(err)
	}
	lcp := BuildLCPArray(sa, codes)
	if lcp[0] != 0 {
		t.Errorf("lcp[0] = %d, want 0", lcp[0])
	}
}
