package geom

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRigidTransform_Default(t *testing.T) {
	var tr RigidTransform
	assert.Equal(t, Vector3{}, tr.Angles())
	assert.Equal(t, Vector3{}, tr.Position())
	assert.True(t, tr.Matrix().ApproxEqual(Identity(), 0))
}

func TestRigidTransform_PureTranslation(t *testing.T) {
	tr := NewRigidTransform(0, 0, 0, 1, 2, 3)
	offset := NewVector3(1, 2, 3)

	assert.Equal(t, offset, tr.Matrix().MulVec(Vector3{}))

	r := rand.New(rand.NewSource(5))
	for n := 0; n < 10; n++ {
		p := NewVector3(r.NormFloat64(), r.NormFloat64(), r.NormFloat64())
		got := tr.Apply(p)
		assert.True(t, got.ApproxEqual(p.Add(offset), 1e-12), "got %s want %s", got, p.Add(offset))
	}
}

func TestRigidTransform_MatrixOrder(t *testing.T) {
	tr := NewRigidTransform(10, -20, 30, 0.5, -1, 2)
	want := RotateX(10).Mul(RotateY(-20)).Mul(RotateZ(30)).Mul(Translate(0.5, -1, 2))
	assert.Equal(t, want, tr.Matrix())
}

func TestRigidTransform_TranslationFirst(t *testing.T) {
	// The translation is the rightmost factor, so it is applied before the
	// rotation: origin -> (1,0,0) -> Z90 -> (0,1,0).
	tr := NewRigidTransform(0, 0, 90, 1, 0, 0)
	got := tr.Apply(Vector3{})
	assert.True(t, got.ApproxEqual(NewVector3(0, 1, 0), tol), "got %s", got)
}

func TestRigidTransform_Setters(t *testing.T) {
	var tr RigidTransform
	tr.SetAngles(NewVector3(0, 0, 90))
	tr.SetPosition(NewVector3(1, 0, 0))
	assert.Equal(t, NewVector3(0, 0, 90), tr.Angles())
	assert.Equal(t, NewVector3(1, 0, 0), tr.Position())

	// Recomputed after mutation.
	before := tr.Matrix()
	tr.SetAngles(Vector3{})
	assert.False(t, before.ApproxEqual(tr.Matrix(), tol))
	assert.Equal(t, NewVector3(1, 0, 0), tr.Apply(Vector3{}))
}

func TestRigidTransform_IsRigid(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for n := 0; n < 10; n++ {
		tr := NewRigidTransform(r.Float64()*360, r.Float64()*360, r.Float64()*360, r.NormFloat64(), r.NormFloat64(), r.NormFloat64())
		assert.True(t, tr.Matrix().IsRigid(RigidTolerance), "%s", tr)
	}
}

func TestRigidTransform_String(t *testing.T) {
	tr := NewRigidTransform(1, 2.5, -3, 4, 5, 6)
	assert.Equal(t, "aX:1, aY:2.5, aZ:-3 @ (4, 5, 6)", tr.String())
}
