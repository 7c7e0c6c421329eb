package suffix

import (
	"fmt"
	"sort"
)

// StringIndexMap partitions positions [0, total) of a concatenated sequence
// into contiguous ranges, one per source string in registration order, and
// maps any position back to the index of its owning range.
type StringIndexMap interface {
	// Add appends a range of the given length and returns the new
	// cumulative total.
	Add(length int) int
	// Lookup returns the 0-based index of the range owning position, or
	// ErrOutOfRange if the position is not covered.
	Lookup(position int) (int, error)
	fmt.Stringer
}

// Map kind names accepted by NewIndexMap.
const (
	MapKindLinear = "linear"
	MapKindLog    = "log"
)

// NewIndexMap returns a StringIndexMap of the named kind: "linear" for O(1)
// lookups at O(n) space, "log" for O(log k) lookups at O(k) space. Both kinds
// produce identical lookup results.
func NewIndexMap(kind string) (StringIndexMap, error) {
	switch kind {
	case MapKindLinear:
		return NewLinearIndexMap(), nil
	case MapKindLog:
		return NewLogIndexMap(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMapKind, kind)
	}
}

// linearIndexMap stores the owner of every single position.
type linearIndexMap struct {
	owners []int
	ranges int
}

// NewLinearIndexMap returns the direct-array variant: one entry per position,
// constant-time lookups.
func NewLinearIndexMap() StringIndexMap {
	return &linearIndexMap{}
}

func (m *linearIndexMap) Add(length int) int {
	for i := 0; i < length; i++ {
		m.owners = append(m.owners, m.ranges)
	}
	m.ranges++
	return len(m.owners)
}

func (m *linearIndexMap) Lookup(position int) (int, error) {
	if position < 0 || position >= len(m.owners) {
		return 0, fmt.Errorf("%w: position %d, total %d", ErrOutOfRange, position, len(m.owners))
	}
	return m.owners[position], nil
}

func (m *linearIndexMap) String() string {
	return fmt.Sprintf("linearIndexMap{ranges: %d, total: %d}", m.ranges, len(m.owners))
}

// logIndexMap stores only the cumulative end offset of each range and binary
// searches them.
type logIndexMap struct {
	ends []int
}

// NewLogIndexMap returns the cumulative-offset variant: one entry per range,
// logarithmic lookups.
func NewLogIndexMap() StringIndexMap {
	return &logIndexMap{}
}

func (m *logIndexMap) Add(length int) int {
	total := length
	if len(m.ends) > 0 {
		total += m.ends[len(m.ends)-1]
	}
	m.ends = append(m.ends, total)
	return total
}

func (m *logIndexMap) Lookup(position int) (int, error) {
	total := 0
	if len(m.ends) > 0 {
		total = m.ends[len(m.ends)-1]
	}
	if position < 0 || position >= total {
		return 0, fmt.Errorf("%w: position %d, total %d", ErrOutOfRange, position, total)
	}
	return sort.Search(len(m.ends), func(i int) bool { return m.ends[i] > position }), nil
}

func (m *logIndexMap) String() string {
	total := 0
	if len(m.ends) > 0 {
		total = m.ends[len(m.ends)-1]
	}
	return fmt.Sprintf("logIndexMap{ranges: %d, total: %d, ends: %v}", len(m.ends), total, m.ends)
}
