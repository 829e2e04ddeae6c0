package nmf

import "fmt"

const NumOfEdge2D = 4

// Block2D is the planar block skeleton: node/cell/face counts and the 4
// frame edges. There is no 2D gluing engine; the type exists so planar
// mapping files can at least be validated.
type Block2D struct {
	Index  int
	NI, NJ int

	edge [NumOfEdge2D]Edge
}

func NewBlock2D(nI, nJ int) (*Block2D, error) {
	if nI < 2 || nJ < 2 {
		return nil, fmt.Errorf("%w: block dimensions (%d,%d) must both be at least 2",
			ErrRange, nI, nJ)
	}
	b := &Block2D{NI: nI, NJ: nJ}
	for n := 1; n <= NumOfEdge2D; n++ {
		b.edge[n-1] = Edge{LocalIndex: n}
	}
	return b, nil
}

func (b *Block2D) NodeNum() int { return b.NI * b.NJ }

func (b *Block2D) CellNum() int { return (b.NI - 1) * (b.NJ - 1) }

func (b *Block2D) FaceNum() int {
	return (b.NI-1)*b.NJ + b.NI*(b.NJ-1)
}

func (b *Block2D) Edge(n int) *Edge {
	if n < 1 || n > NumOfEdge2D {
		panic(fmt.Errorf("%w: %d is not a valid edge index for a 2D block", ErrRange, n))
	}
	return &b.edge[n-1]
}
