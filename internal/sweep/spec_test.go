package sweep

import (
	"testing"
)

func TestParseSampleSpec(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  SampleSpec
		expectErr bool
	}{
		{"valid_range", "0:10:5", SampleSpec{Start: 0, End: 10, Count: 5}, false},
		{"with_spaces", " -45 : 45 : 19 ", SampleSpec{Start: -45, End: 45, Count: 19}, false},
		{"descending", "90:-90:3", SampleSpec{Start: 90, End: -90, Count: 3}, false},
		{"fractional", "0.5:1.5:2", SampleSpec{Start: 0.5, End: 1.5, Count: 2}, false},
		{"missing_parts", "0:10", SampleSpec{}, true},
		{"too_many_parts", "0:10:5:1", SampleSpec{}, true},
		{"invalid_start", "abc:10:5", SampleSpec{}, true},
		{"invalid_end", "0:abc:5", SampleSpec{}, true},
		{"float_count", "0:10:2.5", SampleSpec{}, true},
		{"nan_start", "NaN:10:3", SampleSpec{}, true},
		{"inf_end", "0:Inf:3", SampleSpec{}, true},
		{"neg_inf_start", "-Inf:0:3", SampleSpec{}, true},
		{"nan_end", "0:nan:3", SampleSpec{}, true},
		{"count_one", "0:10:1", SampleSpec{}, true},
		{"count_zero", "0:10:0", SampleSpec{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseSampleSpec(tc.input)
			if tc.expectErr {
				if err == nil {
					t.Errorf("Expected error for input %q, got nil", tc.input)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if result != tc.expected {
				t.Errorf("Expected %+v, got %+v", tc.expected, result)
			}
		})
	}
}

func TestSampleSpecStringRoundTrip(t *testing.T) {
	spec := SampleSpec{Start: -12.5, End: 30, Count: 7}
	got, err := ParseSampleSpec(spec.String())
	if err != nil {
		t.Fatalf("ParseSampleSpec(%q) failed: %v", spec.String(), err)
	}
	if got != spec {
		t.Errorf("round trip = %+v, want %+v", got, spec)
	}
}

func TestSampleSpecSampler(t *testing.T) {
	s, err := SampleSpec{Start: 0, End: 10, Count: 5}.Sampler()
	if err != nil {
		t.Fatalf("Sampler() failed: %v", err)
	}
	if got := s.Values(); len(got) != 5 || got[1] != 2.5 || got[4] != 10 {
		t.Errorf("Values() = %v", got)
	}

	if _, err := (SampleSpec{Start: 0, End: 1, Count: 1}).Sampler(); err == nil {
		t.Error("expected error for single sample")
	}
}
