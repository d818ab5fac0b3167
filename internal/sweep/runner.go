package sweep

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jesivasq/mcp/internal/geom"
)

// maxSamples bounds a single sweep so a typo in the count cannot exhaust
// memory.
const maxSamples = 100000

// Request describes one sweep.
type Request struct {
	// Transform is the starting pose. Its angle on Axis is replaced by each
	// sample; the other angles and the position are kept.
	Transform geom.RigidTransform
	// Device is applied to the target before Transform. The zero matrix is
	// treated as the identity.
	Device geom.Matrix4x4
	Axis   int // 0, 1 or 2 for X, Y, Z
	Range  SampleSpec
	Target geom.Vector3
}

// Result is the outcome of one sample.
type Result struct {
	Index  int
	Angle  float64 // degrees
	Point  geom.Vector3
	Matrix geom.Matrix4x4
}

// Report collects the results of a sweep run.
type Report struct {
	RunID   uuid.UUID
	Axis    int
	Results []Result
}

// Run executes the sweep described by req. It checks ctx between samples
// and returns the context error if cancelled.
func Run(ctx context.Context, req Request) (*Report, error) {
	if req.Axis < 0 || req.Axis > 2 {
		return nil, fmt.Errorf("axis %d out of range [0,3)", req.Axis)
	}
	if req.Range.Count > maxSamples {
		return nil, fmt.Errorf("count %d exceeds maximum %d", req.Range.Count, maxSamples)
	}

	samples, err := req.Range.Sampler()
	if err != nil {
		return nil, fmt.Errorf("sweep range %s: %w", req.Range, err)
	}

	device := req.Device
	if device == (geom.Matrix4x4{}) {
		device = geom.Identity()
	}

	report := &Report{
		RunID:   uuid.New(),
		Axis:    req.Axis,
		Results: make([]Result, 0, samples.Count()),
	}
	log.Printf("[sweep] run %s: %d samples of axis %d over [%v, %v] from %s",
		report.RunID, samples.Count(), req.Axis, req.Range.Start, req.Range.End, req.Transform)

	tr := req.Transform
	for i, angle := range samples.All() {
		if err := ctx.Err(); err != nil {
			log.Printf("[sweep] run %s: stopped after %d samples: %v", report.RunID, i, err)
			return nil, err
		}

		angles := tr.Angles()
		angles.Set(req.Axis, angle)
		tr.SetAngles(angles)

		m := tr.Matrix().Mul(device)
		report.Results = append(report.Results, Result{
			Index:  i,
			Angle:  angle,
			Point:  m.MulVec(req.Target),
			Matrix: m,
		})
	}

	log.Printf("[sweep] run %s: completed %d samples", report.RunID, len(report.Results))
	return report, nil
}
