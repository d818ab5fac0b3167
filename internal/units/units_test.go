package units

import (
	"math"
	"testing"
)

func TestMetersPer(t *testing.T) {
	tests := []struct {
		name     string
		unit     string
		expected float64
	}{
		{"meters", Meters, 1},
		{"centimeters", Centimeters, 0.01},
		{"millimeters", Millimeters, 0.001},
		{"feet", Feet, 0.3048},
		{"inches", Inches, 0.0254},
		{"unknown units default to meters", "furlong", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MetersPer(tt.unit)
			if math.Abs(result-tt.expected) > 1e-12 {
				t.Errorf("MetersPer(%s) = %f, want %f", tt.unit, result, tt.expected)
			}
		})
	}

	// 12 inches to the foot.
	if got := 12 * MetersPer(Inches); math.Abs(got-MetersPer(Feet)) > 1e-12 {
		t.Errorf("12in = %fm, want %fm", got, MetersPer(Feet))
	}
}

func TestIsValid(t *testing.T) {
	for _, u := range ValidUnits {
		if !IsValid(u) {
			t.Errorf("IsValid(%q) = false, want true", u)
		}
	}
	for _, u := range []string{"", "M", "km", "mps"} {
		if IsValid(u) {
			t.Errorf("IsValid(%q) = true, want false", u)
		}
	}
}
