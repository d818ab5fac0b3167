// Package config loads the sensor calibration file: per-sensor rigid
// transforms from device space to world space and the default angle sweep.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jesivasq/mcp/internal/geom"
	"github.com/jesivasq/mcp/internal/units"
)

// DefaultConfigPath is the path to the example calibration file shipped with
// the repository.
const DefaultConfigPath = "config/calibration.example.json"

const maxFileSize = 1 * 1024 * 1024 // 1MB

// Default values used when a field is omitted.
const (
	DefaultAxis  = "z"
	DefaultStart = -45.0
	DefaultEnd   = 45.0
	DefaultCount = 19
	DefaultScale = 1.0
)

// CalibrationConfig is the root of the calibration file.
type CalibrationConfig struct {
	Sensors []SensorConfig `json:"sensors"`
	Sweep   *SweepConfig   `json:"sweep,omitempty"`
	Target  []float64      `json:"target,omitempty"` // point swept through the transform, 3 values
}

// SensorConfig places one sensor in the world.
type SensorConfig struct {
	ID       string    `json:"id"`
	Angles   []float64 `json:"angles,omitempty"`   // degrees about X, Y, Z
	Position []float64 `json:"position,omitempty"` // world units
	FlipYZ   *bool     `json:"flip_yz,omitempty"`
	Scale    *float64  `json:"scale,omitempty"` // device units to world units
	Units    *string   `json:"units,omitempty"` // device length unit, see units.ValidUnits
}

// SweepConfig describes an angle sweep over one rotation axis of a sensor.
type SweepConfig struct {
	SensorID string   `json:"sensor_id"`
	Axis     *string  `json:"axis,omitempty"` // "x", "y" or "z"
	Start    *float64 `json:"start,omitempty"`
	End      *float64 `json:"end,omitempty"`
	Count    *int     `json:"count,omitempty"`
}

// LoadCalibrationConfig loads and validates a CalibrationConfig from a JSON
// file. The file must have a .json extension and be at most 1MB.
func LoadCalibrationConfig(path string) (*CalibrationConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &CalibrationConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *CalibrationConfig) Validate() error {
	seen := make(map[string]bool, len(c.Sensors))
	for i, s := range c.Sensors {
		if s.ID == "" {
			return fmt.Errorf("sensors[%d]: id must not be empty", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("sensors[%d]: duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true

		if s.Angles != nil && len(s.Angles) != 3 {
			return fmt.Errorf("sensors[%d]: angles must have 3 values, got %d", i, len(s.Angles))
		}
		if s.Position != nil && len(s.Position) != 3 {
			return fmt.Errorf("sensors[%d]: position must have 3 values, got %d", i, len(s.Position))
		}
		if s.Scale != nil && *s.Scale <= 0 {
			return fmt.Errorf("sensor %q: scale must be positive, got %f", s.ID, *s.Scale)
		}
		if s.Units != nil {
			if s.Scale != nil {
				return fmt.Errorf("sensor %q: set either scale or units, not both", s.ID)
			}
			if !units.IsValid(*s.Units) {
				return fmt.Errorf("sensor %q: invalid units %q, expected one of %s", s.ID, *s.Units, units.GetValidUnitsString())
			}
		}
	}

	if c.Target != nil && len(c.Target) != 3 {
		return fmt.Errorf("target must have 3 values, got %d", len(c.Target))
	}

	if c.Sweep != nil {
		if err := c.Sweep.Validate(); err != nil {
			return err
		}
		if c.Sweep.SensorID != "" && !seen[c.Sweep.SensorID] {
			return fmt.Errorf("sweep sensor %q is not configured", c.Sweep.SensorID)
		}
	}

	return nil
}

// Validate checks the sweep on its own, without reference to sensors.
func (s *SweepConfig) Validate() error {
	if s.Axis != nil {
		if _, err := AxisIndex(*s.Axis); err != nil {
			return err
		}
	}
	if s.Count != nil && *s.Count < 2 {
		return fmt.Errorf("sweep count must be at least 2, got %d", *s.Count)
	}
	return nil
}

// AxisIndex maps "x", "y" or "z" to 0, 1 or 2.
func AxisIndex(axis string) (int, error) {
	switch axis {
	case "x", "X":
		return 0, nil
	case "y", "Y":
		return 1, nil
	case "z", "Z":
		return 2, nil
	}
	return 0, fmt.Errorf("invalid axis %q: expected x, y or z", axis)
}

// Sensor returns the sensor with the given id.
func (c *CalibrationConfig) Sensor(id string) (*SensorConfig, bool) {
	for i := range c.Sensors {
		if c.Sensors[i].ID == id {
			return &c.Sensors[i], true
		}
	}
	return nil, false
}

// GetTarget returns the target point or (1, 0, 0).
func (c *CalibrationConfig) GetTarget() geom.Vector3 {
	if len(c.Target) != 3 {
		return geom.NewVector3(1, 0, 0)
	}
	return vec3(c.Target)
}

// GetSweep returns the sweep section, never nil.
func (c *CalibrationConfig) GetSweep() *SweepConfig {
	if c.Sweep == nil {
		return &SweepConfig{}
	}
	return c.Sweep
}

// GetAngles returns the Euler angles in degrees, zero if unset.
func (s *SensorConfig) GetAngles() geom.Vector3 {
	if len(s.Angles) != 3 {
		return geom.Vector3{}
	}
	return vec3(s.Angles)
}

// GetPosition returns the translation, the origin if unset.
func (s *SensorConfig) GetPosition() geom.Vector3 {
	if len(s.Position) != 3 {
		return geom.Vector3{}
	}
	return vec3(s.Position)
}

func vec3(v []float64) geom.Vector3 {
	return geom.NewVector3(v[0], v[1], v[2])
}

// GetFlipYZ returns the flip_yz value or false.
func (s *SensorConfig) GetFlipYZ() bool {
	if s.FlipYZ == nil {
		return false
	}
	return *s.FlipYZ
}

// GetScale returns the scale value, the meter factor of units, or
// DefaultScale.
func (s *SensorConfig) GetScale() float64 {
	if s.Scale != nil {
		return *s.Scale
	}
	if s.Units != nil {
		return units.MetersPer(*s.Units)
	}
	return DefaultScale
}

// Transform returns the sensor's rigid transform.
func (s *SensorConfig) Transform() geom.RigidTransform {
	var t geom.RigidTransform
	t.SetAngles(s.GetAngles())
	t.SetPosition(s.GetPosition())
	return t
}

// DeviceMatrix returns the part of the device-to-world mapping applied
// before the rigid transform: scaling, then the optional Y/Z flip.
func (s *SensorConfig) DeviceMatrix() geom.Matrix4x4 {
	m := geom.Identity()
	if s.GetFlipYZ() {
		m = geom.FlipYZ()
	}
	if scale := s.GetScale(); scale != 1 {
		m = m.Mul(geom.Scale(scale))
	}
	return m
}

// Matrix returns the device-to-world matrix: raw points are scaled, then
// optionally Y/Z flipped, then moved by the rigid transform.
func (s *SensorConfig) Matrix() geom.Matrix4x4 {
	return s.Transform().Matrix().Mul(s.DeviceMatrix())
}

// GetAxis returns the swept axis or DefaultAxis.
func (s *SweepConfig) GetAxis() string {
	if s.Axis == nil || *s.Axis == "" {
		return DefaultAxis
	}
	return *s.Axis
}

// GetStart returns the first angle in degrees or DefaultStart.
func (s *SweepConfig) GetStart() float64 {
	if s.Start == nil {
		return DefaultStart
	}
	return *s.Start
}

// GetEnd returns the last angle in degrees or DefaultEnd.
func (s *SweepConfig) GetEnd() float64 {
	if s.End == nil {
		return DefaultEnd
	}
	return *s.End
}

// GetCount returns the number of samples or DefaultCount.
func (s *SweepConfig) GetCount() int {
	if s.Count == nil {
		return DefaultCount
	}
	return *s.Count
}
