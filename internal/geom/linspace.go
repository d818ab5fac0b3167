package geom

import (
	"fmt"
	"iter"
)

// LinearSample walks count evenly spaced values over [start, end], both
// ends included. It is a restartable cursor:
//
//	for s.Begin(); !s.Done(); s.Next() {
//		use(s.Value())
//	}
//
// A LinearSample is not safe for concurrent use.
type LinearSample struct {
	start   float64
	scale   float64
	current float64
	count   int
	pos     int
}

// NewLinearSample returns a sampler positioned at start. count must be at
// least 2.
func NewLinearSample(start, end float64, count int) (LinearSample, error) {
	if count < 2 {
		return LinearSample{}, fmt.Errorf("count %d: %w", count, ErrDegenerateSample)
	}
	return LinearSample{
		start:   start,
		scale:   (end - start) / float64(count-1),
		current: start,
		count:   count,
	}, nil
}

// Begin rewinds the cursor to the first sample.
func (s *LinearSample) Begin() {
	s.current = s.start
	s.pos = 0
}

// Done reports whether every sample has been visited.
func (s *LinearSample) Done() bool {
	return s.pos >= s.count
}

// Next advances to the following sample. The value is computed from the
// position rather than accumulated, so rounding error does not build up.
func (s *LinearSample) Next() {
	s.pos++
	s.current = s.start + float64(s.pos)*s.scale
}

// Value returns the current sample.
func (s *LinearSample) Value() float64 { return s.current }

// Position returns the index of the current sample.
func (s *LinearSample) Position() int { return s.pos }

// Count returns the total number of samples.
func (s *LinearSample) Count() int { return s.count }

// Step returns the spacing between consecutive samples.
func (s *LinearSample) Step() float64 { return s.scale }

// All rewinds s and yields each (position, value) pair. The cursor is left
// where iteration stopped.
func (s *LinearSample) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for s.Begin(); !s.Done(); s.Next() {
			if !yield(s.pos, s.current) {
				return
			}
		}
	}
}

// Values rewinds s and returns every sample.
func (s *LinearSample) Values() []float64 {
	out := make([]float64, 0, s.count)
	for _, v := range s.All() {
		out = append(out, v)
	}
	return out
}
