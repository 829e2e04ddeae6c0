package nmf

import (
	"fmt"

	"github.com/notargets/gridglue/types"
)

// Mapping holds the parsed multi-block topology declaration: the block arena
// and the interface entry list. Blocks and entries are read-only after
// parsing except for the neighbour links and global ids populated by
// ComputeTopology and Numbering.
type Mapping struct {
	blk   []*Block3D
	entry []*Entry

	topoDone  bool
	totalNode int // assigned by Numbering
}

// NewMapping builds a mapping programmatically; most callers use ReadFile.
// Block dimensions are given as (nI,nJ,nK) triples in block order.
func NewMapping(dims [][3]int, entries []*Entry) (*Mapping, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: mapping declares no blocks", ErrParse)
	}
	m := &Mapping{blk: make([]*Block3D, len(dims)), entry: entries}
	for n, d := range dims {
		b, err := NewBlock3D(d[0], d[1], d[2])
		if err != nil {
			return nil, err
		}
		b.Index = n + 1
		m.blk[n] = b
	}
	return m, nil
}

// NumOfBlk is the block count.
func (m *Mapping) NumOfBlk() int { return len(m.blk) }

// Block gives access to a block through its 1-based global index.
func (m *Mapping) Block(n int) *Block3D {
	if n < 1 || n > len(m.blk) {
		panic(fmt.Errorf("%w: block %d does not exist, have %d blocks", ErrRange, n, len(m.blk)))
	}
	return m.blk[n-1]
}

func (m *Mapping) checkedBlock(n int) (*Block3D, error) {
	if n < 1 || n > len(m.blk) {
		return nil, fmt.Errorf("%w: block %d does not exist, have %d blocks",
			ErrRange, n, len(m.blk))
	}
	return m.blk[n-1], nil
}

// Entries is the declared interface list, in file order.
func (m *Mapping) Entries() []*Entry { return m.entry }

// NumOfCell is the total cell count, purely additive across blocks.
func (m *Mapping) NumOfCell() int {
	ret := 0
	for _, b := range m.blk {
		ret += b.CellNum()
	}
	return ret
}

// NumOfFace is the total deduplicated face count: each one-to-one window's
// face grid is counted once, not twice.
func (m *Mapping) NumOfFace() int {
	ret := 0
	for _, b := range m.blk {
		ret += b.FaceNum()
	}
	for _, e := range m.entry {
		if e.DoubleSided() {
			ret -= e.Rg1.FaceNum()
		}
	}
	return ret
}

// NumOfNode is the total deduplicated node count. Valid only after
// Numbering has run; 0 before.
func (m *Mapping) NumOfNode() int { return m.totalNode }

// surfKey is the arena reference of surface f of block b.
func surfKey(b, f int) types.EntityKey { return types.NewEntityKey(b, f) }

// edgeKey is the arena reference of frame edge e of block b.
func edgeKey(b, e int) types.EntityKey { return types.NewEntityKey(b, e) }
