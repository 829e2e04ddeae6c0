package nmf

import (
	"testing"

	"github.com/notargets/gridglue/types"
	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	{ // Counts are direction-agnostic
		r := Range{Blk: 1, Face: 2, S1: 1, E1: 4, S2: 1, E2: 3}
		assert.Equal(t, 4, r.PriNodeNum())
		assert.Equal(t, 3, r.SecNodeNum())
		assert.Equal(t, 12, r.NodeNum())
		assert.Equal(t, 6, r.FaceNum())
		assert.Equal(t, 17, r.EdgeNum())

		rev := Range{Blk: 1, Face: 2, S1: 4, E1: 1, S2: 3, E2: 1}
		assert.Equal(t, r.NodeNum(), rev.NodeNum())
		assert.Equal(t, r.FaceNum(), rev.FaceNum())
	}
	{ // Containment covers nodes; faces need the whole node window
		r := Range{Blk: 1, Face: 1, S1: 1, E1: 3, S2: 1, E2: 3}
		assert.True(t, r.Contains(3, 3))
		assert.False(t, r.Contains(4, 1))
		assert.True(t, r.ContainsFace(2, 2))
		assert.False(t, r.ContainsFace(3, 1))
	}
	{ // Window validation against the surface dimensions
		b, _ := NewBlock3D(3, 4, 5)
		// Surface 1 primary is J (4 nodes), secondary is K (5 nodes).
		assert.NoError(t, Range{Blk: 1, Face: 1, S1: 1, E1: 4, S2: 1, E2: 5}.validate(b))
		assert.ErrorIs(t, Range{Blk: 1, Face: 0, S1: 1, E1: 2, S2: 1, E2: 2}.validate(b), ErrRange)
		assert.ErrorIs(t, Range{Blk: 1, Face: 1, S1: 1, E1: 5, S2: 1, E2: 2}.validate(b), ErrRange)
		assert.ErrorIs(t, Range{Blk: 1, Face: 1, S1: 2, E1: 2, S2: 1, E2: 2}.validate(b), ErrRange)
		assert.True(t, Range{Blk: 1, Face: 1, S1: 4, E1: 1, S2: 1, E2: 5}.wholeSurface(b))
		assert.False(t, Range{Blk: 1, Face: 1, S1: 1, E1: 2, S2: 1, E2: 5}.wholeSurface(b))
	}
}

func TestEntryMapNode(t *testing.T) {
	{ // Identity transform
		e := &Entry{
			Kind: types.BC_One2One,
			Rg1:  Range{Blk: 1, Face: 2, S1: 1, E1: 3, S2: 1, E2: 4},
			Rg2:  Range{Blk: 2, Face: 1, S1: 1, E1: 3, S2: 1, E2: 4},
		}
		q, s := e.MapNode(1, 2, 3)
		assert.Equal(t, [2]int{2, 3}, [2]int{q, s})
	}
	{ // A descending span reverses the axis
		e := &Entry{
			Kind: types.BC_One2One,
			Rg1:  Range{Blk: 1, Face: 2, S1: 1, E1: 3, S2: 1, E2: 4},
			Rg2:  Range{Blk: 2, Face: 1, S1: 3, E1: 1, S2: 1, E2: 4},
		}
		q, s := e.MapNode(1, 1, 1)
		assert.Equal(t, [2]int{3, 1}, [2]int{q, s})
		q, s = e.MapNode(1, 3, 4)
		assert.Equal(t, [2]int{1, 4}, [2]int{q, s})
		// The transform is its own inverse
		q, s = e.MapNode(2, q, s)
		assert.Equal(t, [2]int{3, 4}, [2]int{q, s})
	}
	{ // Swap exchanges the two axes
		e := &Entry{
			Kind: types.BC_One2One,
			Rg1:  Range{Blk: 1, Face: 2, S1: 1, E1: 2, S2: 1, E2: 3},
			Rg2:  Range{Blk: 2, Face: 1, S1: 1, E1: 3, S2: 1, E2: 2},
			Swap: true,
		}
		q, s := e.MapNode(1, 2, 3)
		assert.Equal(t, [2]int{3, 2}, [2]int{q, s})
		q, s = e.MapNode(2, 3, 2)
		assert.Equal(t, [2]int{2, 3}, [2]int{q, s})
	}
	{ // Face windows map through their minimum corner
		e := &Entry{
			Kind: types.BC_One2One,
			Rg1:  Range{Blk: 1, Face: 2, S1: 1, E1: 3, S2: 1, E2: 3},
			Rg2:  Range{Blk: 2, Face: 1, S1: 3, E1: 1, S2: 3, E2: 1},
		}
		q, s := e.MapFaceCell(1, 1, 1)
		assert.Equal(t, [2]int{2, 2}, [2]int{q, s})
		q, s = e.MapFaceCell(1, 2, 2)
		assert.Equal(t, [2]int{1, 1}, [2]int{q, s})
	}
	{ // Mismatched window sizes are rejected
		m, err := NewMapping([][3]int{{2, 3, 2}, {2, 2, 2}}, nil)
		assert.NoError(t, err)
		e := &Entry{
			Kind: types.BC_One2One,
			Rg1:  Range{Blk: 1, Face: 2, S1: 1, E1: 3, S2: 1, E2: 2},
			Rg2:  Range{Blk: 2, Face: 1, S1: 1, E1: 2, S2: 1, E2: 2},
		}
		assert.ErrorIs(t, e.validate(m), ErrTopology)
	}
}
