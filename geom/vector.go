package geom

import (
	"gonum.org/v1/gonum/floats"
)

// Vec is a 3D coordinate or direction. The Z component of 2D grids is zero.
type Vec [3]float64

func (a Vec) Plus(b Vec) Vec {
	return Vec{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec) Minus(b Vec) Vec {
	return Vec{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (a Vec) Scale(s float64) Vec {
	return Vec{s * a[0], s * a[1], s * a[2]}
}

func (a Vec) Dot(b Vec) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec) Cross(b Vec) Vec {
	return Vec{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a Vec) Norm() float64 {
	return floats.Norm(a[:], 2)
}

func (a Vec) Distance(b Vec) float64 {
	return floats.Distance(a[:], b[:], 2)
}

func (a Vec) Normalize() Vec {
	n := a.Norm()
	if n == 0 {
		return a
	}
	return a.Scale(1 / n)
}

// LineCenter is the midpoint of segment na-nb.
func LineCenter(na, nb Vec) Vec {
	return na.Plus(nb).Scale(0.5)
}

func LineLength(na, nb Vec) float64 {
	return na.Distance(nb)
}

// TriangleArea follows the right-hand convention for na, nb, nc.
func TriangleArea(na, nb, nc Vec) float64 {
	return 0.5 * nb.Minus(na).Cross(nc.Minus(na)).Norm()
}

func TriangleCenter(na, nb, nc Vec) Vec {
	return na.Plus(nb).Plus(nc).Scale(1.0 / 3.0)
}

// QuadArea sums the two triangles (n1,n2,n3) and (n1,n3,n4).
// Node order n1..n4 follows the right-hand convention.
func QuadArea(n1, n2, n3, n4 Vec) float64 {
	return TriangleArea(n1, n2, n3) + TriangleArea(n1, n3, n4)
}

// QuadCenter is the area-weighted centroid of the two component triangles.
func QuadCenter(n1, n2, n3, n4 Vec) Vec {
	a1 := TriangleArea(n1, n2, n3)
	a2 := TriangleArea(n1, n3, n4)
	if a1+a2 == 0 {
		return n1.Plus(n2).Plus(n3).Plus(n4).Scale(0.25)
	}
	c1 := TriangleCenter(n1, n2, n3).Scale(a1)
	c2 := TriangleCenter(n1, n3, n4).Scale(a2)
	return c1.Plus(c2).Scale(1 / (a1 + a2))
}

// QuadNormal returns the unit normal pointing from the left cell toward the
// right cell when n1..n4 are ordered by the right-hand convention.
func QuadNormal(n1, n2, n3, n4 Vec) Vec {
	return n3.Minus(n1).Cross(n4.Minus(n2)).Normalize()
}
