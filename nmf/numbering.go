package nmf

import (
	"fmt"

	"github.com/notargets/gridglue/types"
)

// Numbering assigns global ids to cells, faces, nodes and frame edges across
// the whole mapping. Cells are purely additive per block; faces and nodes on
// one-to-one interfaces receive one id no matter how many blocks see them.
// The traversal order is fixed (block-ascending, K/J/I-minor), so repeated
// runs on the same validated topology produce identical ids.
func (m *Mapping) Numbering() error {
	if !m.topoDone {
		return fmt.Errorf("%w: topology must be computed before numbering", ErrTopology)
	}
	for _, b := range m.blk {
		b.resetNumbering()
	}
	m.totalNode = 0

	if err := m.numberCells(); err != nil {
		return err
	}
	if err := m.colorEdges(); err != nil {
		return err
	}
	if err := m.numberFaces(); err != nil {
		return err
	}
	return m.numberNodes()
}

func (m *Mapping) numberCells() error {
	cnt := 0
	for _, b := range m.blk {
		for k := 1; k < b.NK; k++ {
			for j := 1; j < b.NJ; j++ {
				for i := 1; i < b.NI; i++ {
					cnt++
					b.cellID[b.cellIdx(i, j, k)] = cnt
				}
			}
		}
	}
	if cnt != m.NumOfCell() {
		return fmt.Errorf("%w: assigned %d cell ids, want %d", ErrTopology, cnt, m.NumOfCell())
	}
	return nil
}

// colorEdges runs a BFS over the edge/surface/neighbour-surface graph and
// assigns one color per connected component of topologically identical
// frame edges. Each edge is visited exactly once; reaching an edge that
// already carries a different color is a topology fault.
func (m *Mapping) colorEdges() error {
	cnt := 0
	for bi := 1; bi <= m.NumOfBlk(); bi++ {
		for le := 1; le <= NumOfEdge; le++ {
			if m.Block(bi).Edge(le).GlobalIndex != 0 {
				continue
			}
			cnt++
			queue := []types.EntityKey{edgeKey(bi, le)}
			for len(queue) > 0 {
				ck := queue[0]
				queue = queue[1:]
				b := m.Block(ck.Block())
				ce := b.Edge(ck.Local())
				if ce.GlobalIndex == cnt {
					continue
				}
				if ce.GlobalIndex != 0 {
					return fmt.Errorf("%w: edge %s reached with colors %d and %d",
						ErrTopology, ck, ce.GlobalIndex, cnt)
				}
				ce.GlobalIndex = cnt

				for _, sf := range ce.Surf {
					s := b.Surf(sf)
					if s.Neighbour == 0 {
						continue
					}
					for pos, lEdge := range s.Edges {
						if lEdge != ce.LocalIndex || s.Counterpart[pos] == 0 {
							continue
						}
						queue = append(queue, s.Counterpart[pos])
					}
				}
			}
		}
	}
	return nil
}

func (m *Mapping) numberFaces() error {
	cnt := 0
	for bi := 1; bi <= m.NumOfBlk(); bi++ {
		b := m.Block(bi)

		// Interior faces, no sharing possible.
		for k := 1; k < b.NK; k++ {
			for j := 1; j < b.NJ; j++ {
				for i := 2; i < b.NI; i++ {
					cnt++
					b.faceI[b.faceIIdx(i, j, k)] = cnt
				}
			}
		}
		for k := 1; k < b.NK; k++ {
			for i := 1; i < b.NI; i++ {
				for j := 2; j < b.NJ; j++ {
					cnt++
					b.faceJ[b.faceJIdx(i, j, k)] = cnt
				}
			}
		}
		for i := 1; i < b.NI; i++ {
			for j := 1; j < b.NJ; j++ {
				for k := 2; k < b.NK; k++ {
					cnt++
					b.faceK[b.faceKIdx(i, j, k)] = cnt
				}
			}
		}

		// Boundary surfaces. The first side of a shared position allocates a
		// fresh id; the second side finds the partner slot already filled and
		// reuses it.
		for f := 1; f <= NumOfSurf; f++ {
			s := b.Surf(f)
			npri, nsec := b.SurfNodeNum(f)
			var e *Entry
			var own, other Range
			if s.EntryIndex >= 0 {
				e = m.entry[s.EntryIndex]
				own, other = e.Rg1, e.Rg2
				if s.Side == 2 {
					own, other = other, own
				}
			}
			for sc := 1; sc < nsec; sc++ {
				for p := 1; p < npri; p++ {
					slot := b.boundaryFaceID(f, p, sc)
					if *slot != 0 {
						return fmt.Errorf("%w: boundary face (%d,%d) of surface %s numbered twice",
							ErrTopology, p, sc, surfKey(bi, f))
					}
					if e != nil && own.ContainsFace(p, sc) {
						q, t := e.MapFaceCell(s.Side, p, sc)
						partner := m.Block(other.Blk).boundaryFaceID(other.Face, q, t)
						if *partner != 0 {
							*slot = *partner
							continue
						}
					}
					cnt++
					*slot = cnt
				}
			}
		}
	}
	if cnt != m.NumOfFace() {
		return fmt.Errorf("%w: assigned %d face ids, want %d", ErrTopology, cnt, m.NumOfFace())
	}
	return nil
}

// numberNodes deduplicates nodes with a union-find over the node images of
// every one-to-one window, then assigns ids in block-ascending, K/J/I-minor
// order. Union-find makes chained sharing (a corner seen by three or more
// blocks through different interfaces) transitive, which a pairwise
// first-wins scheme would miss.
func (m *Mapping) numberNodes() error {
	nBlk := m.NumOfBlk()
	off := make([]int, nBlk+1)
	naive := 0
	for bi := 1; bi <= nBlk; bi++ {
		off[bi] = naive
		naive += m.Block(bi).NodeNum()
	}

	parent := make([]int, naive)
	for i := range parent {
		parent[i] = i
	}
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]] // path halving
			x = parent[x]
		}
		return x
	}
	merged := 0
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
			merged++
		}
	}

	for _, e := range m.entry {
		if !e.DoubleSided() {
			continue
		}
		b1 := m.Block(e.Rg1.Blk)
		b2 := m.Block(e.Rg2.Blk)
		lo1, hi1 := span(e.Rg1.S1, e.Rg1.E1)
		lo2, hi2 := span(e.Rg1.S2, e.Rg1.E2)
		for sc := lo2; sc <= hi2; sc++ {
			for p := lo1; p <= hi1; p++ {
				q, t := e.MapNode(1, p, sc)
				i1, j1, k1 := b1.SurfToIJK(e.Rg1.Face, p, sc)
				i2, j2, k2 := b2.SurfToIJK(e.Rg2.Face, q, t)
				union(off[e.Rg1.Blk]+b1.nodeIdx(i1, j1, k1), off[e.Rg2.Blk]+b2.nodeIdx(i2, j2, k2))
			}
		}
	}

	rootID := make([]int, naive)
	cnt := 0
	for bi := 1; bi <= nBlk; bi++ {
		b := m.Block(bi)
		for k := 1; k <= b.NK; k++ {
			for j := 1; j <= b.NJ; j++ {
				for i := 1; i <= b.NI; i++ {
					slot := off[bi] + b.nodeIdx(i, j, k)
					r := find(slot)
					if rootID[r] == 0 {
						cnt++
						rootID[r] = cnt
					}
					b.nodeID[b.nodeIdx(i, j, k)] = rootID[r]
				}
			}
		}
	}
	if cnt != naive-merged {
		return fmt.Errorf("%w: assigned %d node ids, want %d", ErrTopology, cnt, naive-merged)
	}
	m.totalNode = cnt
	return nil
}
