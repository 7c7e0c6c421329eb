package suffix

import (
	"errors"
	"math/rand"
	"slices"
	"sort"
	"testing"
)

func TestRadixSortTuples(t *testing.T) {
	in := [][]int{{-9, 4, 0}, {4, -2, 3}, {4, 2, -1}, {1, 0, 6}, {-4, -2, -5}, {4, 6, 8}}
	want := [][]int{{-9, 4, 0}, {-4, -2, -5}, {1, 0, 6}, {4, -2, 3}, {4, 2, -1}, {4, 6, 8}}

	got, err := RadixSort(in)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.EqualFunc(got, want, slices.Equal) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRadixSortFuncStrings(t *testing.T) {
	projectByCharCode := func(s string) []int {
		codes := make([]int, 0, len(s))
		for _, r := range s {
			codes = append(codes, int(r))
		}
		return codes
	}

	got, err := RadixSortFunc([]string{"image", "mania", "genom", "mango"}, projectByCharCode)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"genom", "image", "mango", "mania"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRadixSortStable(t *testing.T) {
	type entry struct {
		key int
		seq int
	}
	entries := []entry{{3, 0}, {1, 1}, {3, 2}, {1, 3}, {3, 4}, {2, 5}}

	got, err := RadixSortFunc(entries, func(e entry) []int { return []int{e.key} })
	if err != nil {
		t.Fatal(err)
	}

	want := slices.Clone(entries)
	sort.SliceStable(want, func(i, j int) bool { return want[i].key < want[j].key })
	if !slices.Equal(got, want) {
		t.Errorf("equal keys reordered: got %v, want %v", got, want)
	}
}

func TestRadixSortIdempotent(t *testing.T) {
	in := [][]int{{2, 1}, {1, 2}, {2, 0}, {0, 9}}
	once, err := RadixSort(in)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := RadixSort(once)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.EqualFunc(once, twice, slices.Equal) {
		t.Errorf("sorting a sorted collection changed it: %v vs %v", once, twice)
	}
}

func TestRadixSortRagged(t *testing.T) {
	_, err := RadixSort([][]int{{1, 2}, {3}})
	if !errors.Is(err, ErrRaggedTuples) {
		t.Errorf("got %v, want ErrRaggedTuples", err)
	}
}

func TestRadixSortEmpty(t *testing.T) {
	got, err := RadixSort(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}

func TestRadixSortRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		n := r.Intn(200)
		width := r.Intn(4) + 1
		in := make([][]int, n)
		for i := range in {
			tuple := make([]int, width)
			for j := range tuple {
				tuple[j] = r.Intn(21) - 10
			}
			in[i] = tuple
		}

		got, err := RadixSort(in)
		if err != nil {
			t.Fatal(err)
		}
		want := slices.Clone(in)
		sort.SliceStable(want, func(i, j int) bool { return slices.Compare(want[i], want[j]) < 0 })
		if !slices.EqualFunc(got, want, slices.Equal) {
			t.Fatalf("trial %d: got %v, want %v", trial, got, want)
		}
	}
}
