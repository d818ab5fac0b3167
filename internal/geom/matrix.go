package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrix4x4 is a 4x4 matrix stored row-major: entry (i, j) lives at
// index i*4+j. The zero value is the zero matrix.
//
// Matrices built by the named constructors are affine: the bottom row is
// (0, 0, 0, 1). The type itself does not enforce this.
type Matrix4x4 struct {
	m [16]float64
}

// serializePrecision is the number of significant digits written by
// Serialize.
const serializePrecision = 16

// Identity returns the 4x4 identity matrix.
func Identity() Matrix4x4 {
	var id Matrix4x4
	for i := 0; i < 4; i++ {
		id.m[i*4+i] = 1
	}
	return id
}

// FlipYZ returns the permutation matrix that swaps the Y and Z axes. It is
// used to move between left- and right-handed sensor conventions.
func FlipYZ() Matrix4x4 {
	f := Identity()
	f.Set(1, 1, 0)
	f.Set(2, 2, 0)
	f.Set(1, 2, 1)
	f.Set(2, 1, 1)
	return f
}

// Scale returns a uniform scale of the X, Y and Z axes. The homogeneous
// row is left untouched.
func Scale(s float64) Matrix4x4 {
	out := Identity()
	for i := 0; i < 3; i++ {
		out.Set(i, i, s)
	}
	return out
}

// Translate returns a translation by (x, y, z).
func Translate(x, y, z float64) Matrix4x4 {
	t := Identity()
	t.Set(0, 3, x)
	t.Set(1, 3, y)
	t.Set(2, 3, z)
	return t
}

// TranslateVec returns a translation by v.
func TranslateVec(v Vector3) Matrix4x4 {
	return Translate(v.X(), v.Y(), v.Z())
}

// RotateX returns a rotation of angleDeg degrees about the X axis.
func RotateX(angleDeg float64) Matrix4x4 {
	s, c := math.Sincos(DegreesToRadians(angleDeg))
	r := Identity()
	r.Set(1, 1, c)
	r.Set(1, 2, -s)
	r.Set(2, 1, s)
	r.Set(2, 2, c)
	return r
}

// RotateY returns a rotation of angleDeg degrees about the Y axis.
//
// The sign layout (+sin at (0,2), -sin at (2,0)) must stay as is: stored
// calibrations were produced with it.
func RotateY(angleDeg float64) Matrix4x4 {
	s, c := math.Sincos(DegreesToRadians(angleDeg))
	r := Identity()
	r.Set(0, 0, c)
	r.Set(0, 2, s)
	r.Set(2, 0, -s)
	r.Set(2, 2, c)
	return r
}

// RotateZ returns a rotation of angleDeg degrees about the Z axis.
func RotateZ(angleDeg float64) Matrix4x4 {
	s, c := math.Sincos(DegreesToRadians(angleDeg))
	r := Identity()
	r.Set(0, 0, c)
	r.Set(0, 1, -s)
	r.Set(1, 0, s)
	r.Set(1, 1, c)
	return r
}

// FromArray builds a matrix from 16 row-major values.
func FromArray(a [16]float64) Matrix4x4 {
	return Matrix4x4{m: a}
}

// Array returns the 16 entries in row-major order.
func (m Matrix4x4) Array() [16]float64 {
	return m.m
}

// Get returns entry (i, j). It panics if either index is outside [0,4).
func (m Matrix4x4) Get(i, j int) float64 {
	mustIndex("matrix row", i, 4)
	mustIndex("matrix column", j, 4)
	return m.m[i*4+j]
}

// At is the checked form of Get.
func (m Matrix4x4) At(i, j int) (float64, error) {
	if !inRange(i, 4) || !inRange(j, 4) {
		return 0, fmt.Errorf("matrix entry (%d,%d): %w", i, j, ErrIndexOutOfRange)
	}
	return m.m[i*4+j], nil
}

// Set assigns entry (i, j). It panics if either index is outside [0,4).
func (m *Matrix4x4) Set(i, j int, value float64) {
	mustIndex("matrix row", i, 4)
	mustIndex("matrix column", j, 4)
	m.m[i*4+j] = value
}

// Copy returns an independent copy of m.
func (m Matrix4x4) Copy() Matrix4x4 {
	return m
}

// Mul returns the matrix product m·b. Order matters.
func (m Matrix4x4) Mul(b Matrix4x4) Matrix4x4 {
	var out Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.m[i*4+k] * b.m[k*4+j]
			}
			out.m[i*4+j] = sum
		}
	}
	return out
}

// MulVec applies m to v as a homogeneous point with w = 1. Only the first
// three rows are evaluated; the result is not divided by w, so m is assumed
// to be affine.
func (m Matrix4x4) MulVec(v Vector3) Vector3 {
	var out Vector3
	for i := 0; i < 3; i++ {
		sum := m.m[i*4+3]
		for j := 0; j < 3; j++ {
			sum += m.m[i*4+j] * v.v[j]
		}
		out.v[i] = sum
	}
	return out
}

// Transpose returns mᵀ.
func (m Matrix4x4) Transpose() Matrix4x4 {
	var out Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.m[j*4+i] = m.m[i*4+j]
		}
	}
	return out
}

// ApproxEqual reports whether every entry of m and b differs by at most tol.
func (m Matrix4x4) ApproxEqual(b Matrix4x4, tol float64) bool {
	for i := range m.m {
		if math.Abs(m.m[i]-b.m[i]) > tol {
			return false
		}
	}
	return true
}

// Serialize renders the 16 entries row-major, each followed by a single
// space, with 16 significant digits. There is no trailing newline.
func (m Matrix4x4) Serialize() string {
	var b strings.Builder
	for _, v := range m.m {
		b.WriteString(strconv.FormatFloat(v, 'g', serializePrecision, 64))
		b.WriteByte(' ')
	}
	return b.String()
}

// ParseMatrix reads the output of Serialize: exactly 16 whitespace
// separated floating-point tokens in row-major order.
func ParseMatrix(s string) (Matrix4x4, error) {
	fields := strings.Fields(s)
	if len(fields) != 16 {
		return Matrix4x4{}, fmt.Errorf("expected 16 values, got %d: %w", len(fields), ErrMalformedMatrix)
	}
	var out Matrix4x4
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Matrix4x4{}, fmt.Errorf("value %d %q: %w", i, f, ErrMalformedMatrix)
		}
		out.m[i] = v
	}
	return out, nil
}

// Dense returns m as a gonum dense matrix.
func (m Matrix4x4) Dense() *mat.Dense {
	data := make([]float64, 16)
	copy(data, m.m[:])
	return mat.NewDense(4, 4, data)
}

// FromDense copies a 4x4 gonum matrix into a Matrix4x4.
func FromDense(d mat.Matrix) (Matrix4x4, error) {
	r, c := d.Dims()
	if r != 4 || c != 4 {
		return Matrix4x4{}, fmt.Errorf("expected 4x4, got %dx%d: %w", r, c, ErrMalformedMatrix)
	}
	var out Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.m[i*4+j] = d.At(i, j)
		}
	}
	return out, nil
}
