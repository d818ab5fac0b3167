// Package geom holds the small linear-algebra toolkit used to move sensor
// points between coordinate frames.
//
// Responsibilities: 3-component vectors, 4x4 row-major homogeneous matrices,
// rigid transforms built from Euler angles (degrees) and a translation, and
// an evenly spaced scalar sampler for calibration sweeps.
// Key types: Vector3, Matrix4x4, RigidTransform, LinearSample.
//
// All types are plain values with no shared state. Index access outside the
// valid range panics; the At accessors return ErrIndexOutOfRange instead.
package geom
