package geom

import (
	"fmt"
	"math"
)

// Vector3 is a 3-component value addressed by index 0..2.
// Arithmetic returns new values; only Set and SetXYZ mutate.
type Vector3 struct {
	v [3]float64
}

// NewVector3 returns the vector (x, y, z).
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{v: [3]float64{x, y, z}}
}

// Get returns component i. It panics if i is not 0, 1 or 2.
func (a Vector3) Get(i int) float64 {
	mustIndex("vector", i, 3)
	return a.v[i]
}

// At is the checked form of Get.
func (a Vector3) At(i int) (float64, error) {
	if !inRange(i, 3) {
		return 0, fmt.Errorf("vector component %d: %w", i, ErrIndexOutOfRange)
	}
	return a.v[i], nil
}

// Set assigns component i. It panics if i is not 0, 1 or 2.
func (a *Vector3) Set(i int, value float64) {
	mustIndex("vector", i, 3)
	a.v[i] = value
}

// SetXYZ assigns all three components.
func (a *Vector3) SetXYZ(x, y, z float64) {
	a.v = [3]float64{x, y, z}
}

// X returns the first component.
func (a Vector3) X() float64 { return a.v[0] }

// Y returns the second component.
func (a Vector3) Y() float64 { return a.v[1] }

// Z returns the third component.
func (a Vector3) Z() float64 { return a.v[2] }

// Neg returns the component-wise negation.
func (a Vector3) Neg() Vector3 {
	return NewVector3(-a.v[0], -a.v[1], -a.v[2])
}

// Add returns a + b.
func (a Vector3) Add(b Vector3) Vector3 {
	return NewVector3(a.v[0]+b.v[0], a.v[1]+b.v[1], a.v[2]+b.v[2])
}

// Sub returns a - b.
func (a Vector3) Sub(b Vector3) Vector3 {
	return NewVector3(a.v[0]-b.v[0], a.v[1]-b.v[1], a.v[2]-b.v[2])
}

// Mul scales every component by s.
func (a Vector3) Mul(s float64) Vector3 {
	return NewVector3(a.v[0]*s, a.v[1]*s, a.v[2]*s)
}

// Div divides every component by s. Division by zero follows IEEE 754
// (±Inf or NaN), it is not reported as an error.
func (a Vector3) Div(s float64) Vector3 {
	return NewVector3(a.v[0]/s, a.v[1]/s, a.v[2]/s)
}

// Dot returns the scalar product of a and b.
func (a Vector3) Dot(b Vector3) float64 {
	return a.v[0]*b.v[0] + a.v[1]*b.v[1] + a.v[2]*b.v[2]
}

// Cross returns the right-handed cross product a × b.
func (a Vector3) Cross(b Vector3) Vector3 {
	return NewVector3(
		a.v[1]*b.v[2]-a.v[2]*b.v[1],
		a.v[2]*b.v[0]-a.v[0]*b.v[2],
		a.v[0]*b.v[1]-a.v[1]*b.v[0],
	)
}

// Length returns the Euclidean norm.
func (a Vector3) Length() float64 {
	return math.Sqrt(a.v[0]*a.v[0] + a.v[1]*a.v[1] + a.v[2]*a.v[2])
}

// Normalize returns a unit vector in the direction of a. The zero vector is
// returned unchanged.
func (a Vector3) Normalize() Vector3 {
	l := a.Length()
	if l == 0 {
		return a
	}
	return a.Div(l)
}

// ApproxEqual reports whether every component of a and b differs by at
// most tol.
func (a Vector3) ApproxEqual(b Vector3, tol float64) bool {
	for i := range a.v {
		if math.Abs(a.v[i]-b.v[i]) > tol {
			return false
		}
	}
	return true
}

// String renders the vector as "(x, y, z)" for diagnostics.
func (a Vector3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", a.v[0], a.v[1], a.v[2])
}
