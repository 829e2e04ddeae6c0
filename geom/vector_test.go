package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec(t *testing.T) {
	var (
		tol = 1.e-12
	)
	{ // Basic vector algebra
		a := Vec{1, 2, 3}
		b := Vec{4, 5, 6}
		assert.Equal(t, Vec{5, 7, 9}, a.Plus(b))
		assert.Equal(t, Vec{-3, -3, -3}, a.Minus(b))
		assert.Equal(t, Vec{2, 4, 6}, a.Scale(2))
		assert.Equal(t, 32., a.Dot(b))
		assert.Equal(t, Vec{-3, 6, -3}, a.Cross(b))
		assert.InDelta(t, 5., Vec{3, 4, 0}.Norm(), tol)
		assert.InDelta(t, 5., Vec{0, 0, 0}.Distance(Vec{3, 0, 4}), tol)
		assert.Equal(t, Vec{1, 0, 0}, Vec{2, 0, 0}.Normalize())
		assert.Equal(t, Vec{0, 0, 0}, Vec{0, 0, 0}.Normalize())
	}
	{ // Line primitives
		assert.Equal(t, Vec{0.5, 0, 0}, LineCenter(Vec{0, 0, 0}, Vec{1, 0, 0}))
		assert.InDelta(t, 1., LineLength(Vec{0, 0, 0}, Vec{1, 0, 0}), tol)
	}
	{ // Unit right triangle in the XY plane
		na, nb, nc := Vec{0, 0, 0}, Vec{1, 0, 0}, Vec{0, 1, 0}
		assert.InDelta(t, 0.5, TriangleArea(na, nb, nc), tol)
		c := TriangleCenter(na, nb, nc)
		assert.InDelta(t, 1./3., c[0], tol)
		assert.InDelta(t, 1./3., c[1], tol)
	}
	{ // Unit square in the XY plane, right-hand order
		n1, n2, n3, n4 := Vec{0, 0, 0}, Vec{1, 0, 0}, Vec{1, 1, 0}, Vec{0, 1, 0}
		assert.InDelta(t, 1., QuadArea(n1, n2, n3, n4), tol)
		c := QuadCenter(n1, n2, n3, n4)
		assert.InDelta(t, 0.5, c[0], tol)
		assert.InDelta(t, 0.5, c[1], tol)
		assert.InDelta(t, 0., c[2], tol)
		nrm := QuadNormal(n1, n2, n3, n4)
		assert.InDelta(t, 0., nrm[0], tol)
		assert.InDelta(t, 0., nrm[1], tol)
		assert.InDelta(t, 1., nrm[2], tol)
		// Reversing the node order flips the normal
		nrm = QuadNormal(n4, n3, n2, n1)
		assert.InDelta(t, -1., nrm[2], tol)
	}
	{ // Degenerate quad falls back to the arithmetic mean
		p := Vec{1, 1, 1}
		assert.Equal(t, p, QuadCenter(p, p, p, p))
	}
}
