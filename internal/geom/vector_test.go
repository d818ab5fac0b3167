package geom

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector3_ComponentWise(t *testing.T) {
	v := NewVector3(1.5, -2, 3.25)
	w := NewVector3(-4, 0.5, 8)
	s := 2.5

	sum := v.Add(w)
	diff := v.Sub(w)
	scaled := v.Mul(s)
	neg := v.Neg()
	for i := 0; i < 3; i++ {
		assert.Equal(t, v.Get(i)+w.Get(i), sum.Get(i), "add component %d", i)
		assert.Equal(t, v.Get(i)-w.Get(i), diff.Get(i), "sub component %d", i)
		assert.Equal(t, v.Get(i)*s, scaled.Get(i), "mul component %d", i)
		assert.Equal(t, -v.Get(i), neg.Get(i), "neg component %d", i)
	}

	// Operands are untouched.
	assert.Equal(t, NewVector3(1.5, -2, 3.25), v)
}

func TestVector3_DivByZero(t *testing.T) {
	v := NewVector3(1, -1, 0).Div(0)
	assert.True(t, math.IsInf(v.X(), 1))
	assert.True(t, math.IsInf(v.Y(), -1))
	assert.True(t, math.IsNaN(v.Z()))
}

func TestVector3_Length(t *testing.T) {
	tests := []struct {
		name string
		v    Vector3
		want float64
	}{
		{"zero", Vector3{}, 0},
		{"3-4-5", NewVector3(3, 4, 0), 5},
		{"negative", NewVector3(-2, -3, -6), 7},
		{"unit z", NewVector3(0, 0, 1), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Length()
			assert.GreaterOrEqual(t, got, 0.0)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVector3_SetAndGet(t *testing.T) {
	var v Vector3
	v.Set(0, 7)
	v.Set(2, -1)
	assert.Equal(t, NewVector3(7, 0, -1), v)

	v.SetXYZ(1, 2, 3)
	assert.Equal(t, 2.0, v.Get(1))
	assert.Equal(t, 1.0, v.X())
	assert.Equal(t, 3.0, v.Z())
}

func TestVector3_OutOfRange(t *testing.T) {
	v := NewVector3(1, 2, 3)

	assert.Panics(t, func() { v.Get(3) })
	assert.Panics(t, func() { v.Get(-1) })
	assert.Panics(t, func() { v.Set(5, 1) })

	_, err := v.At(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))

	got, err := v.At(2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestVector3_DotCross(t *testing.T) {
	x := NewVector3(1, 0, 0)
	y := NewVector3(0, 1, 0)

	assert.Equal(t, 0.0, x.Dot(y))
	assert.Equal(t, NewVector3(0, 0, 1), x.Cross(y))
	assert.Equal(t, NewVector3(0, 0, -1), y.Cross(x))
	assert.Equal(t, 32.0, NewVector3(1, 2, 3).Dot(NewVector3(4, 5, 6)))
}

func TestVector3_Normalize(t *testing.T) {
	n := NewVector3(0, 3, 4).Normalize()
	assert.InDelta(t, 1.0, n.Length(), 1e-12)
	assert.True(t, n.ApproxEqual(NewVector3(0, 0.6, 0.8), 1e-12))

	assert.Equal(t, Vector3{}, Vector3{}.Normalize())
}

func TestVector3_String(t *testing.T) {
	assert.Equal(t, "(1, 2.5, -3)", NewVector3(1, 2.5, -3).String())
	assert.Equal(t, "(0, 0, 0)", Vector3{}.String())
}
