package suffix

import "errors"

var (
	// ErrInvalidTerminator reports a terminator code that is not strictly
	// smaller than every code in the sequence it terminates.
	ErrInvalidTerminator = errors.New("suffix: terminator must be strictly less than every sequence code")

	// ErrInvalidArity reports a longest-common-substring call with fewer than
	// two input strings.
	ErrInvalidArity = errors.New("suffix: need at least two strings")

	// ErrOutOfRange reports a StringIndexMap lookup outside the built range.
	ErrOutOfRange = errors.New("suffix: position outside mapped range")

	// ErrRaggedTuples reports radix sort entries that project to tuples of
	// differing lengths.
	ErrRaggedTuples = errors.New("suffix: entries project to tuples of differing lengths")

	// ErrUnknownMapKind reports an unrecognized StringIndexMap kind name.
	ErrUnknownMapKind = errors.New("suffix: unknown string index map kind")

	// ErrNoInput reports an index build over zero strings.
	ErrNoInput = errors.New("suffix: no input strings")
)
