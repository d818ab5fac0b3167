// Package sweep runs calibration sweeps: one rotation angle of a sensor
// transform is stepped across an evenly spaced range and a target point is
// pushed through each resulting matrix.
package sweep

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jesivasq/mcp/internal/geom"
)

// SampleSpec defines an evenly divided range: Count values from Start to
// End inclusive.
type SampleSpec struct {
	Start float64
	End   float64
	Count int
}

// ParseSampleSpec parses a "start:end:count" string into a SampleSpec.
// Returns an error if the format is invalid, start or end is not finite,
// or count is below 2.
func ParseSampleSpec(s string) (SampleSpec, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return SampleSpec{}, fmt.Errorf("invalid range format %q: expected start:end:count", s)
	}

	start, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return SampleSpec{}, fmt.Errorf("invalid start value %q: %w", parts[0], err)
	}

	end, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return SampleSpec{}, fmt.Errorf("invalid end value %q: %w", parts[1], err)
	}

	if !isFinite(start) || !isFinite(end) {
		return SampleSpec{}, fmt.Errorf("range bounds must be finite, got %v:%v", start, end)
	}

	count, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return SampleSpec{}, fmt.Errorf("invalid count value %q: %w", parts[2], err)
	}

	if count < 2 {
		return SampleSpec{}, fmt.Errorf("count must be at least 2, got %d", count)
	}

	return SampleSpec{Start: start, End: end, Count: count}, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Sampler returns a LinearSample over the spec.
func (s SampleSpec) Sampler() (geom.LinearSample, error) {
	return geom.NewLinearSample(s.Start, s.End, s.Count)
}

// String renders the spec in the form ParseSampleSpec accepts.
func (s SampleSpec) String() string {
	return fmt.Sprintf("%v:%v:%d", s.Start, s.End, s.Count)
}
