package nmf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberingSingleBlock(t *testing.T) {
	m, err := NewMapping([][3]int{{2, 2, 2}}, nil)
	assert.NoError(t, err)
	assert.ErrorIs(t, m.Numbering(), ErrTopology) // topology not computed yet

	assert.NoError(t, m.ComputeTopology())
	assert.NoError(t, m.Numbering())

	b := m.Block(1)
	assert.Equal(t, 1, m.NumOfCell())
	assert.Equal(t, 6, m.NumOfFace())
	assert.Equal(t, 8, m.NumOfNode())

	// Node ids run I fastest, then J, then K.
	assert.Equal(t, 1, b.NodeIndex(1, 1, 1))
	assert.Equal(t, 2, b.NodeIndex(2, 1, 1))
	assert.Equal(t, 3, b.NodeIndex(1, 2, 1))
	assert.Equal(t, 8, b.NodeIndex(2, 2, 2))

	// With no interior faces the boundary surfaces number in surface order.
	c := b.Cell(1, 1, 1)
	assert.Equal(t, 1, c.CellSeq)
	assert.Equal(t, [8]int{1, 2, 4, 3, 5, 6, 8, 7}, c.NodeSeq)
	assert.Equal(t, [6]int{1, 2, 3, 4, 5, 6}, c.FaceSeq)

	// Twelve isolated frame edges, one color each.
	colors := map[int]bool{}
	for le := 1; le <= NumOfEdge; le++ {
		colors[b.Edge(le).GlobalIndex] = true
	}
	assert.Equal(t, 12, len(colors))
	assert.False(t, colors[0])
}

func TestNumberingTwoBlocks(t *testing.T) {
	m := twoCubeMapping(t, one2one(
		Range{Blk: 1, Face: 2, S1: 1, E1: 2, S2: 1, E2: 2},
		Range{Blk: 2, Face: 1, S1: 1, E1: 2, S2: 1, E2: 2}, false))
	assert.NoError(t, m.ComputeTopology())
	assert.NoError(t, m.Numbering())

	b1, b2 := m.Block(1), m.Block(2)
	assert.Equal(t, 2, m.NumOfCell())
	assert.Equal(t, 11, m.NumOfFace())
	assert.Equal(t, 12, m.NumOfNode())

	// The interface nodes carry one id seen from both blocks.
	assert.Equal(t, b1.NodeIndex(2, 1, 1), b2.NodeIndex(1, 1, 1))
	assert.Equal(t, b1.NodeIndex(2, 2, 1), b2.NodeIndex(1, 2, 1))
	assert.Equal(t, b1.NodeIndex(2, 1, 2), b2.NodeIndex(1, 1, 2))
	assert.Equal(t, b1.NodeIndex(2, 2, 2), b2.NodeIndex(1, 2, 2))
	assert.NotEqual(t, b1.NodeIndex(1, 1, 1), b2.NodeIndex(2, 1, 1))

	// The shared face is the I-max face of cell 1 and the I-min face of cell 2.
	c1 := b1.Cell(1, 1, 1)
	c2 := b2.Cell(1, 1, 1)
	assert.Equal(t, c1.FaceSeq[1], c2.FaceSeq[0])
	assert.NotEqual(t, c1.FaceSeq[0], c2.FaceSeq[1])

	// 24 frame edges minus the 4 identified pairs.
	colors := map[int]bool{}
	for _, b := range []*Block3D{b1, b2} {
		for le := 1; le <= NumOfEdge; le++ {
			assert.NotEqual(t, 0, b.Edge(le).GlobalIndex)
			colors[b.Edge(le).GlobalIndex] = true
		}
	}
	assert.Equal(t, 20, len(colors))
	assert.Equal(t, b1.Edge(6).GlobalIndex, b2.Edge(5).GlobalIndex)
	assert.Equal(t, b1.Edge(11).GlobalIndex, b2.Edge(12).GlobalIndex)
	assert.Equal(t, b1.Edge(7).GlobalIndex, b2.Edge(8).GlobalIndex)
	assert.Equal(t, b1.Edge(10).GlobalIndex, b2.Edge(9).GlobalIndex)

	// Repeated runs produce identical ids.
	saved := b2.Cell(1, 1, 1)
	assert.NoError(t, m.Numbering())
	assert.Equal(t, saved, b2.Cell(1, 1, 1))
}

func TestNumberingReversedAxis(t *testing.T) {
	m := twoCubeMapping(t, one2one(
		Range{Blk: 1, Face: 2, S1: 1, E1: 2, S2: 1, E2: 2},
		Range{Blk: 2, Face: 1, S1: 2, E1: 1, S2: 1, E2: 2}, false))
	assert.NoError(t, m.ComputeTopology())
	assert.NoError(t, m.Numbering())

	b1, b2 := m.Block(1), m.Block(2)
	assert.Equal(t, 12, m.NumOfNode())
	assert.Equal(t, 11, m.NumOfFace())

	// Surface primary is J; node (2,j,k) of block 1 meets (1,3-j,k) of block 2.
	assert.Equal(t, b1.NodeIndex(2, 1, 1), b2.NodeIndex(1, 2, 1))
	assert.Equal(t, b1.NodeIndex(2, 2, 1), b2.NodeIndex(1, 1, 1))
	assert.Equal(t, b1.NodeIndex(2, 1, 2), b2.NodeIndex(1, 2, 2))
	assert.Equal(t, b1.NodeIndex(2, 2, 2), b2.NodeIndex(1, 1, 2))
}

func TestNumberingSwappedAxes(t *testing.T) {
	m, err := NewMapping([][3]int{{2, 2, 3}, {2, 3, 2}}, []*Entry{one2one(
		Range{Blk: 1, Face: 2, S1: 1, E1: 2, S2: 1, E2: 3},
		Range{Blk: 2, Face: 1, S1: 1, E1: 3, S2: 1, E2: 2}, true)})
	assert.NoError(t, err)
	assert.NoError(t, m.ComputeTopology())
	assert.NoError(t, m.Numbering())

	b1, b2 := m.Block(1), m.Block(2)
	assert.Equal(t, 4, m.NumOfCell())
	assert.Equal(t, 20, m.NumOfFace())
	assert.Equal(t, 18, m.NumOfNode())

	// Node (2,j,k) of block 1 meets (1,k,j) of block 2.
	for j := 1; j <= 2; j++ {
		for k := 1; k <= 3; k++ {
			assert.Equal(t, b1.NodeIndex(2, j, k), b2.NodeIndex(1, k, j))
		}
	}

	colors := map[int]bool{}
	for _, b := range []*Block3D{b1, b2} {
		for le := 1; le <= NumOfEdge; le++ {
			colors[b.Edge(le).GlobalIndex] = true
		}
	}
	assert.Equal(t, 20, len(colors))
}
