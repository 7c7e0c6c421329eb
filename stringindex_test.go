package suffix

import (
	"errors"
	"math/rand"
	"testing"
)

func TestIndexMapKinds(t *testing.T) {
	for _, kind := range []string{MapKindLinear, MapKindLog} {
		m, err := NewIndexMap(kind)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if m == nil {
			t.Fatalf("%s: nil map", kind)
		}
	}
	if _, err := NewIndexMap("bogus"); !errors.Is(err, ErrUnknownMapKind) {
		t.Errorf("got %v, want ErrUnknownMapKind", err)
	}
}

func TestIndexMapAddReturnsCumulativeTotal(t *testing.T) {
	for _, kind := range []string{MapKindLinear, MapKindLog} {
		m, err := NewIndexMap(kind)
		if err != nil {
			t.Fatal(err)
		}
		totals := []int{0, 0, 0}
		totals[0] = m.Add(4)
		totals[1] = m.Add(1)
		totals[2] = m.Add(6)
		want := []int{4, 5, 11}
		for i := range want {
			if totals[i] != want[i] {
				t.Errorf("%s: Add #%d returned %d, want %d", kind, i, totals[i], want[i])
			}
		}
	}
}

func TestIndexMapLookup(t *testing.T) {
	for _, kind := range []string{MapKindLinear, MapKindLog} {
		m, err := NewIndexMap(kind)
		if err != nil {
			t.Fatal(err)
		}
		m.Add(3)
		m.Add(2)
		m.Add(4)
		want := []int{0, 0, 0, 1, 1, 2, 2, 2, 2}
		for pos, owner := range want {
			got, err := m.Lookup(pos)
			if err != nil {
				t.Fatalf("%s: Lookup(%d): %v", kind, pos, err)
			}
			if got != owner {
				t.Errorf("%s: Lookup(%d) = %d, want %d", kind, pos, got, owner)
			}
		}
		for _, pos := range []int{-1, 9, 100} {
			if _, err := m.Lookup(pos); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("%s: Lookup(%d) = %v, want ErrOutOfRange", kind, pos, err)
			}
		}
	}
}

func TestIndexMapVariantsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 100; trial++ {
		linear := NewLinearIndexMap()
		logm := NewLogIndexMap()
		ranges := r.Intn(20) + 1
		total := 0
		for i := 0; i < ranges; i++ {
			length := r.Intn(30)
			total = linear.Add(length)
			if got := logm.Add(length); got != total {
				t.Fatalf("trial %d: cumulative totals diverge: %d vs %d", trial, got, total)
			}
		}
		for pos := 0; pos < total; pos++ {
			a, errA := linear.Lookup(pos)
			b, errB := logm.Lookup(pos)
			if errA != nil || errB != nil {
				t.Fatalf("trial %d: Lookup(%d): %v, %v", trial, pos, errA, errB)
			}
			if a != b {
				t.Fatalf("trial %d: Lookup(%d): linear %d, log %d\nlinear: %s\nlog: %s",
					trial, pos, a, b, linear, logm)
			}
		}
	}
}

func TestIndexMapString(t *testing.T) {
	for _, kind := range []string{MapKindLinear, MapKindLog} {
		m, err := NewIndexMap(kind)
		if err != nil {
			t.Fatal(err)
		}
		m.Add(5)
		if m.String() == "" {
			t.Errorf("%s: empty diagnostic representation", kind)
		}
	}
}
