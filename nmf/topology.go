package nmf

import (
	"fmt"

	"github.com/notargets/gridglue/types"
)

// ComputeTopology validates every entry against the block arena, links the
// two surfaces of each one-to-one entry, and resolves the frame-edge
// correspondence across full-surface interfaces. It must run before
// Numbering.
func (m *Mapping) ComputeTopology() error {
	if err := verifyIncidence(); err != nil {
		return err
	}

	// Clear links so the pass is repeatable on the same mapping.
	for _, b := range m.blk {
		for f := 1; f <= NumOfSurf; f++ {
			s := b.Surf(f)
			s.Neighbour = 0
			s.EntryIndex = -1
			s.Side = 0
			s.Counterpart = [4]types.EntityKey{}
		}
	}
	m.topoDone = false

	for n, e := range m.entry {
		if err := e.validate(m); err != nil {
			return fmt.Errorf("entry %d (%s): %w", n+1, e.Kind, err)
		}
	}

	// Establish surface neighbour links.
	for n, e := range m.entry {
		if !e.DoubleSided() {
			continue
		}
		s1 := m.Block(e.Rg1.Blk).Surf(e.Rg1.Face)
		s2 := m.Block(e.Rg2.Blk).Surf(e.Rg2.Face)
		k1 := surfKey(e.Rg1.Blk, e.Rg1.Face)
		k2 := surfKey(e.Rg2.Blk, e.Rg2.Face)
		if k1 == k2 {
			return fmt.Errorf("%w: entry %d links surface %s to itself",
				ErrDuplicateLink, n+1, k1)
		}
		if s1.Neighbour != 0 || s2.Neighbour != 0 {
			return fmt.Errorf("%w: entry %d re-links surface %s or %s",
				ErrDuplicateLink, n+1, k1, k2)
		}
		s1.Neighbour, s1.EntryIndex, s1.Side = k2, n, 1
		s2.Neighbour, s2.EntryIndex, s2.Side = k1, n, 2
	}

	// Counterpart information: identify frame edges across full-surface
	// one-to-one interfaces. Sub-window interfaces map a frame edge into the
	// interior of the neighbour surface, where no frame edge exists.
	for _, e := range m.entry {
		if !e.DoubleSided() {
			continue
		}
		b1 := m.Block(e.Rg1.Blk)
		b2 := m.Block(e.Rg2.Blk)
		if !e.Rg1.wholeSurface(b1) || !e.Rg2.wholeSurface(b2) {
			continue
		}
		if err := m.matchCounterpartEdges(e, 1); err != nil {
			return err
		}
		if err := m.matchCounterpartEdges(e, 2); err != nil {
			return err
		}
	}

	m.topoDone = true
	return nil
}

// matchCounterpartEdges fills the Counterpart slots of the given side's
// surface by mapping each boundary edge's endpoints through the entry
// transform and locating the boundary line they land on.
func (m *Mapping) matchCounterpartEdges(e *Entry, side int) error {
	src, dst := e.Rg1, e.Rg2
	if side == 2 {
		src, dst = dst, src
	}
	bs := m.Block(src.Blk)
	bd := m.Block(dst.Blk)
	ss := bs.Surf(src.Face)
	npri, nsec := bs.SurfNodeNum(src.Face)
	dpri, dsec := bd.SurfNodeNum(dst.Face)

	for slot := slotPriMin; slot <= slotSecMax; slot++ {
		localEdge := surfaceEdgeSlots[src.Face-1][slot]
		p1, s1, p2, s2 := edgeEndpoints(slot, npri, nsec)
		q1, t1 := e.MapNode(side, p1, s1)
		q2, t2 := e.MapNode(side, p2, s2)

		var dstSlot int
		switch {
		case q1 == 1 && q2 == 1:
			dstSlot = slotPriMin
		case q1 == dpri && q2 == dpri:
			dstSlot = slotPriMax
		case t1 == 1 && t2 == 1:
			dstSlot = slotSecMin
		case t1 == dsec && t2 == dsec:
			dstSlot = slotSecMax
		default:
			return fmt.Errorf("%w: edge image (%d,%d)-(%d,%d) of %s is not a boundary line of %s",
				ErrTopology, q1, t1, q2, t2, src, dst)
		}
		dstEdge := surfaceEdgeSlots[dst.Face-1][dstSlot]

		// Store against the cyclic Edges slot holding this local edge.
		for pos, le := range ss.Edges {
			if le == localEdge {
				ss.Counterpart[pos] = edgeKey(dst.Blk, dstEdge)
			}
		}
	}
	return nil
}
