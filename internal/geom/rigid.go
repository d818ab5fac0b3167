package geom

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// RigidTolerance is the default tolerance used when checking that a matrix
// is a proper rigid transform.
const RigidTolerance = 0.01

// IsRigid reports whether m is a proper rigid transform within tol:
//  1. the bottom row is (0, 0, 0, 1)
//  2. the upper 3x3 block is orthonormal (RᵀR ≈ I)
//  3. its determinant is ≈ 1 (a rotation, not a reflection)
//
// FlipYZ and Scale(s != 1) are not rigid.
func (m Matrix4x4) IsRigid(tol float64) bool {
	for i, want := range [4]float64{0, 0, 0, 1} {
		if math.Abs(m.m[12+i]-want) > tol {
			return false
		}
	}

	r := mat.NewDense(3, 3, []float64{
		m.m[0], m.m[1], m.m[2],
		m.m[4], m.m[5], m.m[6],
		m.m[8], m.m[9], m.m[10],
	})
	if math.Abs(mat.Det(r)-1) > tol {
		return false
	}

	var rtr mat.Dense
	rtr.Mul(r.T(), r)
	return mat.EqualApprox(&rtr, mat.NewDiagDense(3, []float64{1, 1, 1}), tol)
}
