package nmf

import "fmt"

// Range is a rectangular sub-window of a block surface, expressed in the
// surface's own primary/secondary node coordinates. A descending span
// (S1 > E1 or S2 > E2) declares that the axis runs opposite to the surface's
// own direction; counts and containment are direction-agnostic.
type Range struct {
	Blk  int // block index, 1-based
	Face int // surface index, 1..6
	S1   int // primary direction starting node index
	E1   int // primary direction ending node index
	S2   int // secondary direction starting node index
	E2   int // secondary direction ending node index
}

func span(s, e int) (lo, hi int) {
	if s <= e {
		return s, e
	}
	return e, s
}

// PriNodeNum is the node count along the primary direction.
func (r Range) PriNodeNum() int {
	lo, hi := span(r.S1, r.E1)
	return hi - lo + 1
}

// SecNodeNum is the node count along the secondary direction.
func (r Range) SecNodeNum() int {
	lo, hi := span(r.S2, r.E2)
	return hi - lo + 1
}

// NodeNum is the total node count of the window.
func (r Range) NodeNum() int {
	return r.PriNodeNum() * r.SecNodeNum()
}

// EdgeNum is the total lattice-edge count of the window.
func (r Range) EdgeNum() int {
	nPri := (r.PriNodeNum() - 1) * r.SecNodeNum()
	nSec := (r.SecNodeNum() - 1) * r.PriNodeNum()
	return nPri + nSec
}

// FaceNum is the total quad-face count of the window.
func (r Range) FaceNum() int {
	return (r.PriNodeNum() - 1) * (r.SecNodeNum() - 1)
}

// Contains reports whether the node position (pri, sec) lies in the window.
func (r Range) Contains(pri, sec int) bool {
	lo1, hi1 := span(r.S1, r.E1)
	lo2, hi2 := span(r.S2, r.E2)
	return lo1 <= pri && pri <= hi1 && lo2 <= sec && sec <= hi2
}

// ContainsFace reports whether the face whose node window starts at
// (pri, sec) lies entirely in the range.
func (r Range) ContainsFace(pri, sec int) bool {
	return r.Contains(pri, sec) && r.Contains(pri+1, sec+1)
}

// validate checks the window against the dimensions of its surface.
func (r Range) validate(b *Block3D) error {
	if r.Face < 1 || r.Face > NumOfSurf {
		return fmt.Errorf("%w: surface %d of block %d does not exist", ErrRange, r.Face, r.Blk)
	}
	npri, nsec := b.SurfNodeNum(r.Face)
	lo1, hi1 := span(r.S1, r.E1)
	lo2, hi2 := span(r.S2, r.E2)
	if lo1 < 1 || hi1 > npri {
		return fmt.Errorf("%w: primary span %d..%d exceeds surface %d of block %d (1..%d)",
			ErrRange, r.S1, r.E1, r.Face, r.Blk, npri)
	}
	if lo2 < 1 || hi2 > nsec {
		return fmt.Errorf("%w: secondary span %d..%d exceeds surface %d of block %d (1..%d)",
			ErrRange, r.S2, r.E2, r.Face, r.Blk, nsec)
	}
	if lo1 == hi1 || lo2 == hi2 {
		return fmt.Errorf("%w: degenerate window on surface %d of block %d",
			ErrRange, r.Face, r.Blk)
	}
	return nil
}

// wholeSurface reports whether the window spans the full surface.
func (r Range) wholeSurface(b *Block3D) bool {
	npri, nsec := b.SurfNodeNum(r.Face)
	return r.PriNodeNum() == npri && r.SecNodeNum() == nsec
}

func (r Range) String() string {
	return fmt.Sprintf("B%d F%d [%d..%d,%d..%d]", r.Blk, r.Face, r.S1, r.E1, r.S2, r.E2)
}
