package geom

import "fmt"

// RigidTransform is an orientation, given as Euler angles in degrees about
// X, Y and Z, plus a translation. The zero value is the identity transform.
type RigidTransform struct {
	angles   Vector3
	position Vector3
}

// NewRigidTransform returns the transform rotating by (rotX, rotY, rotZ)
// degrees with translation (x, y, z).
func NewRigidTransform(rotX, rotY, rotZ, x, y, z float64) RigidTransform {
	return RigidTransform{
		angles:   NewVector3(rotX, rotY, rotZ),
		position: NewVector3(x, y, z),
	}
}

// Angles returns the Euler angles in degrees.
func (t RigidTransform) Angles() Vector3 { return t.angles }

// Position returns the translation.
func (t RigidTransform) Position() Vector3 { return t.position }

// SetAngles replaces the Euler angles (degrees).
func (t *RigidTransform) SetAngles(v Vector3) { t.angles = v }

// SetPosition replaces the translation.
func (t *RigidTransform) SetPosition(v Vector3) { t.position = v }

// Matrix returns RotateX(ax)·RotateY(ay)·RotateZ(az)·Translate(position).
// It is recomputed on every call.
func (t RigidTransform) Matrix() Matrix4x4 {
	return RotateX(t.angles.X()).
		Mul(RotateY(t.angles.Y())).
		Mul(RotateZ(t.angles.Z())).
		Mul(TranslateVec(t.position))
}

// Apply transforms the point p by t.
func (t RigidTransform) Apply(p Vector3) Vector3 {
	return t.Matrix().MulVec(p)
}

// String renders the transform as "aX:.., aY:.., aZ:.. @ (x, y, z)".
func (t RigidTransform) String() string {
	return fmt.Sprintf("aX:%v, aY:%v, aZ:%v @ %s",
		t.angles.X(), t.angles.Y(), t.angles.Z(), t.position)
}
