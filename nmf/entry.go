package nmf

import (
	"fmt"

	"github.com/notargets/gridglue/types"
)

// Entry is one declared interface: an external boundary-condition patch
// (single-sided) or a one-to-one match between two block surfaces
// (double-sided). Entries are immutable once parsed; the entry list is the
// sole source of cross-block connectivity.
type Entry struct {
	Kind types.BCFLAG
	Rg1  Range
	Rg2  Range // valid only for double-sided entries
	Swap bool  // primary directions of the two ranges are transposed
}

// DoubleSided reports whether the entry links two surfaces.
func (e *Entry) DoubleSided() bool {
	return e.Kind == types.BC_One2One
}

// Contains reports which side of the entry covers the node position
// (pri, sec) on surface face of block blk: 1, 2, or 0 for neither.
func (e *Entry) Contains(blk, face, pri, sec int) int {
	if e.Rg1.Blk == blk && e.Rg1.Face == face && e.Rg1.Contains(pri, sec) {
		return 1
	}
	if e.DoubleSided() && e.Rg2.Blk == blk && e.Rg2.Face == face && e.Rg2.Contains(pri, sec) {
		return 2
	}
	return 0
}

// ContainsFace is Contains for the face whose node window starts at
// (pri, sec).
func (e *Entry) ContainsFace(blk, face, pri, sec int) int {
	if e.Rg1.Blk == blk && e.Rg1.Face == face && e.Rg1.ContainsFace(pri, sec) {
		return 1
	}
	if e.DoubleSided() && e.Rg2.Blk == blk && e.Rg2.Face == face && e.Rg2.ContainsFace(pri, sec) {
		return 2
	}
	return 0
}

func step(s, e int) int {
	if e >= s {
		return 1
	}
	return -1
}

// MapNode carries a node position from the given side of a one-to-one entry
// to the other side. Each range is traversed parametrically from S to E in
// its own declared direction; a swapped entry exchanges the primary and
// secondary offsets. The position must lie inside the source window.
func (e *Entry) MapNode(side, pri, sec int) (int, int) {
	src, dst := e.Rg1, e.Rg2
	if side == 2 {
		src, dst = dst, src
	}
	iOff := (pri - src.S1) * step(src.S1, src.E1)
	jOff := (sec - src.S2) * step(src.S2, src.E2)
	if e.Swap {
		iOff, jOff = jOff, iOff
	}
	return dst.S1 + iOff*step(dst.S1, dst.E1), dst.S2 + jOff*step(dst.S2, dst.E2)
}

// MapFaceCell carries a face position (the node window starting at
// (pri, sec)) from the given side to the other side, returning the start of
// the image window.
func (e *Entry) MapFaceCell(side, pri, sec int) (int, int) {
	pa, sa := e.MapNode(side, pri, sec)
	pb, sb := e.MapNode(side, pri+1, sec+1)
	if pb < pa {
		pa = pb
	}
	if sb < sa {
		sa = sb
	}
	return pa, sa
}

// validate checks both windows against their blocks and, for double-sided
// entries, that the matched axes agree in node count.
func (e *Entry) validate(m *Mapping) error {
	b1, err := m.checkedBlock(e.Rg1.Blk)
	if err != nil {
		return err
	}
	if err = e.Rg1.validate(b1); err != nil {
		return err
	}
	if !e.DoubleSided() {
		return nil
	}
	b2, err := m.checkedBlock(e.Rg2.Blk)
	if err != nil {
		return err
	}
	if err = e.Rg2.validate(b2); err != nil {
		return err
	}
	n1p, n1s := e.Rg1.PriNodeNum(), e.Rg1.SecNodeNum()
	n2p, n2s := e.Rg2.PriNodeNum(), e.Rg2.SecNodeNum()
	if e.Swap {
		n2p, n2s = n2s, n2p
	}
	if n1p != n2p || n1s != n2s {
		return fmt.Errorf("%w: one-to-one windows %s and %s do not match (swap=%v)",
			ErrTopology, e.Rg1, e.Rg2, e.Swap)
	}
	return nil
}

func (e *Entry) String() string {
	if e.DoubleSided() {
		return fmt.Sprintf("%s %s <-> %s swap=%v", e.Kind, e.Rg1, e.Rg2, e.Swap)
	}
	return fmt.Sprintf("%s %s", e.Kind, e.Rg1)
}
