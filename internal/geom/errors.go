package geom

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned by the checked accessors when an index
	// falls outside the value's dimensions.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrDegenerateSample is returned when a LinearSample is configured with
	// fewer than two samples.
	ErrDegenerateSample = errors.New("linear sample needs at least 2 samples")
	// ErrMalformedMatrix is returned when a serialized matrix cannot be parsed.
	ErrMalformedMatrix = errors.New("malformed matrix")
)

func inRange(i, n int) bool {
	return i >= 0 && i < n
}

// mustIndex panics when i is not in [0, n).
func mustIndex(what string, i, n int) {
	if !inRange(i, n) {
		panic(fmt.Sprintf("geom: %s index %d out of range [0,%d)", what, i, n))
	}
}
