// Package units provides shared constants and validation for length units
// used by sensor device spaces.
package units

// Unit constants
const (
	Meters      = "m"
	Centimeters = "cm"
	Millimeters = "mm"
	Feet        = "ft"
	Inches      = "in"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{Meters, Centimeters, Millimeters, Feet, Inches}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "m, cm, mm, ft, in"
}

// MetersPer returns how many meters one unit of the given length is.
// World space is always meters; unknown units are treated as meters.
func MetersPer(unit string) float64 {
	switch unit {
	case Centimeters:
		return 0.01
	case Millimeters:
		return 0.001
	case Feet:
		return 0.3048
	case Inches:
		return 0.0254
	default:
		return 1
	}
}
