package nmf

import (
	"fmt"

	"github.com/notargets/gridglue/types"
)

const (
	NumOfSurf   = 6
	NumOfEdge   = 12
	NumOfVertex = 8
)

// Surface local indices follow the NMF convention.
const (
	SurfIMin = 1 + iota
	SurfIMax
	SurfJMin
	SurfJMax
	SurfKMin
	SurfKMax
)

// Edge is one of a block's 12 frame edges. GlobalIndex is 0 until the
// coloring pass runs; afterwards all topologically identical edges share one
// value.
type Edge struct {
	LocalIndex  int    // 1..12
	GlobalIndex int    // 1-based color, 0 when unassigned
	Surf        [2]int // local indices of the two surfaces meeting at this edge
}

// Surface is one of a block's 6 bounding surfaces. It owns no geometry; it is
// purely a topology node. A zero Neighbour means the surface is an external
// boundary.
type Surface struct {
	LocalIndex  int    // 1..6
	Edges       [4]int // local frame-edge indices, cyclic order
	Neighbour   types.EntityKey
	EntryIndex  int // index of the ONE_TO_ONE entry linking this surface, -1 if none
	Side        int // 1 or 2, which range of that entry this surface is
	Counterpart [4]types.EntityKey // matched edge per Edges slot, zero when unresolved
}

// surfaceEdges lists the 4 frame edges bounding each surface, cyclic order.
// The table is fixed for every block; surfaceEdges[f-1] belongs to surface f.
var surfaceEdges = [NumOfSurf][4]int{
	{5, 9, 8, 12},
	{6, 11, 7, 10},
	{1, 10, 4, 9},
	{2, 12, 3, 11},
	{1, 5, 2, 6},
	{3, 8, 4, 7},
}

// edgeSurfaces lists the 2 surfaces meeting at each frame edge.
var edgeSurfaces = [NumOfEdge][2]int{
	{3, 5}, {5, 4}, {4, 6}, {6, 3},
	{1, 5}, {5, 2}, {2, 6}, {6, 1},
	{1, 3}, {3, 2}, {2, 4}, {4, 1},
}

// Edge slots of a surface in its own primary/secondary frame.
const (
	slotPriMin = iota
	slotPriMax
	slotSecMin
	slotSecMax
)

// surfaceEdgeSlots maps each surface's {priMin, priMax, secMin, secMax}
// boundary line to the frame edge lying on it.
var surfaceEdgeSlots = [NumOfSurf][4]int{
	{9, 12, 5, 8},
	{10, 11, 6, 7},
	{1, 4, 9, 10},
	{2, 3, 12, 11},
	{5, 6, 1, 2},
	{8, 7, 4, 3},
}

// Block3D is one structured rectangular grid subdomain with 1-based local
// I/J/K addressing. Cross-block references use (block, local) EntityKeys,
// never pointers into another block.
type Block3D struct {
	Index      int // 1-based global block index
	NI, NJ, NK int // node counts per direction

	edge [NumOfEdge]Edge
	surf [NumOfSurf]Surface

	// Global ids written by the numbering engine, all 1-based, 0 unassigned.
	cellID []int
	nodeID []int
	faceI  []int // I-normal faces: i in 1..NI, j in 1..NJ-1, k in 1..NK-1
	faceJ  []int // J-normal faces
	faceK  []int // K-normal faces
}

// NewBlock3D validates the dimensions and builds the block skeleton with its
// static edge/surface incidence.
func NewBlock3D(nI, nJ, nK int) (*Block3D, error) {
	if nI < 2 || nJ < 2 || nK < 2 {
		return nil, fmt.Errorf("%w: block dimensions (%d,%d,%d) must all be at least 2",
			ErrRange, nI, nJ, nK)
	}
	b := &Block3D{
		NI: nI, NJ: nJ, NK: nK,
		cellID: make([]int, (nI-1)*(nJ-1)*(nK-1)),
		nodeID: make([]int, nI*nJ*nK),
		faceI:  make([]int, nI*(nJ-1)*(nK-1)),
		faceJ:  make([]int, (nI-1)*nJ*(nK-1)),
		faceK:  make([]int, (nI-1)*(nJ-1)*nK),
	}
	for n := 1; n <= NumOfEdge; n++ {
		b.edge[n-1] = Edge{LocalIndex: n, Surf: edgeSurfaces[n-1]}
	}
	for n := 1; n <= NumOfSurf; n++ {
		b.surf[n-1] = Surface{LocalIndex: n, Edges: surfaceEdges[n-1], EntryIndex: -1}
	}
	return b, nil
}

func (b *Block3D) NodeNum() int { return b.NI * b.NJ * b.NK }

func (b *Block3D) CellNum() int { return (b.NI - 1) * (b.NJ - 1) * (b.NK - 1) }

func (b *Block3D) FaceNum() int {
	ret := b.NI * (b.NJ - 1) * (b.NK - 1)
	ret += (b.NI - 1) * b.NJ * (b.NK - 1)
	ret += (b.NI - 1) * (b.NJ - 1) * b.NK
	return ret
}

// Edge gives access to a frame edge through its 1-based local index.
func (b *Block3D) Edge(n int) *Edge {
	if n < 1 || n > NumOfEdge {
		panic(fmt.Errorf("%w: %d is not a valid edge index for a 3D block", ErrRange, n))
	}
	return &b.edge[n-1]
}

// Surf gives access to a bounding surface through its 1-based local index.
func (b *Block3D) Surf(n int) *Surface {
	if n < 1 || n > NumOfSurf {
		panic(fmt.Errorf("%w: %d is not a valid surface index for a block", ErrRange, n))
	}
	return &b.surf[n-1]
}

func (b *Block3D) cellIdx(i, j, k int) int {
	if i < 1 || i >= b.NI || j < 1 || j >= b.NJ || k < 1 || k >= b.NK {
		panic(fmt.Errorf("%w: cell (%d,%d,%d) outside block %d", ErrRange, i, j, k, b.Index))
	}
	return (i - 1) + (b.NI-1)*((j-1)+(b.NJ-1)*(k-1))
}

func (b *Block3D) nodeIdx(i, j, k int) int {
	if i < 1 || i > b.NI || j < 1 || j > b.NJ || k < 1 || k > b.NK {
		panic(fmt.Errorf("%w: node (%d,%d,%d) outside block %d", ErrRange, i, j, k, b.Index))
	}
	return (i - 1) + b.NI*((j-1)+b.NJ*(k-1))
}

// CellIndex is the global cell id of cell (i,j,k), with i in 1..NI-1 etc.
func (b *Block3D) CellIndex(i, j, k int) int {
	return b.cellID[b.cellIdx(i, j, k)]
}

// NodeIndex is the global node id of node (i,j,k), with i in 1..NI etc.
func (b *Block3D) NodeIndex(i, j, k int) int {
	return b.nodeID[b.nodeIdx(i, j, k)]
}

// faceIIdx addresses the I-normal face on node plane i bounding cell row
// (j,k); likewise for faceJIdx and faceKIdx.
func (b *Block3D) faceIIdx(i, j, k int) int {
	return (i - 1) + b.NI*((j-1)+(b.NJ-1)*(k-1))
}

func (b *Block3D) faceJIdx(i, j, k int) int {
	return (i - 1) + (b.NI-1)*((j-1)+b.NJ*(k-1))
}

func (b *Block3D) faceKIdx(i, j, k int) int {
	return (i - 1) + (b.NI-1)*((j-1)+(b.NJ-1)*(k-1))
}

// HexCell is the fully resolved view of one cell: its global id plus the
// global ids of its 8 nodes and 6 faces. Node and face ordering follow the
// NMF convention used throughout the assembler.
type HexCell struct {
	CellSeq int
	NodeSeq [NumOfVertex]int
	FaceSeq [NumOfSurf]int
}

// Cell resolves cell (i,j,k) after numbering. Node 1 sits at (i,j,k) and the
// numbering proceeds counter-clockwise around the K-min plane, then the
// K-max plane.
func (b *Block3D) Cell(i, j, k int) HexCell {
	return HexCell{
		CellSeq: b.CellIndex(i, j, k),
		NodeSeq: [NumOfVertex]int{
			b.NodeIndex(i, j, k),
			b.NodeIndex(i+1, j, k),
			b.NodeIndex(i+1, j+1, k),
			b.NodeIndex(i, j+1, k),
			b.NodeIndex(i, j, k+1),
			b.NodeIndex(i+1, j, k+1),
			b.NodeIndex(i+1, j+1, k+1),
			b.NodeIndex(i, j+1, k+1),
		},
		FaceSeq: [NumOfSurf]int{
			b.faceI[b.faceIIdx(i, j, k)],
			b.faceI[b.faceIIdx(i+1, j, k)],
			b.faceJ[b.faceJIdx(i, j, k)],
			b.faceJ[b.faceJIdx(i, j+1, k)],
			b.faceK[b.faceKIdx(i, j, k)],
			b.faceK[b.faceKIdx(i, j, k+1)],
		},
	}
}

// SurfNodeNum gives the node counts along a surface's primary and secondary
// axes. The axes follow the cyclic rule I->(J,K), J->(K,I), K->(I,J).
func (b *Block3D) SurfNodeNum(f int) (npri, nsec int) {
	switch f {
	case SurfIMin, SurfIMax:
		return b.NJ, b.NK
	case SurfJMin, SurfJMax:
		return b.NK, b.NI
	case SurfKMin, SurfKMax:
		return b.NI, b.NJ
	}
	panic(fmt.Errorf("%w: %d is not a valid surface index for a block", ErrRange, f))
}

// SurfToIJK converts surface-local node coordinates (pri, sec) to block
// coordinates.
func (b *Block3D) SurfToIJK(f, p, s int) (i, j, k int) {
	switch f {
	case SurfIMin:
		return 1, p, s
	case SurfIMax:
		return b.NI, p, s
	case SurfJMin:
		return s, 1, p
	case SurfJMax:
		return s, b.NJ, p
	case SurfKMin:
		return p, s, 1
	case SurfKMax:
		return p, s, b.NK
	}
	panic(fmt.Errorf("%w: %d is not a valid surface index for a block", ErrRange, f))
}

// boundaryFaceID addresses the global-id slot of the boundary face whose
// node window starts at surface coordinates (p, s); p and s index the face
// grid, 1..npri-1 and 1..nsec-1.
func (b *Block3D) boundaryFaceID(f, p, s int) *int {
	switch f {
	case SurfIMin:
		return &b.faceI[b.faceIIdx(1, p, s)]
	case SurfIMax:
		return &b.faceI[b.faceIIdx(b.NI, p, s)]
	case SurfJMin:
		return &b.faceJ[b.faceJIdx(s, 1, p)]
	case SurfJMax:
		return &b.faceJ[b.faceJIdx(s, b.NJ, p)]
	case SurfKMin:
		return &b.faceK[b.faceKIdx(p, s, 1)]
	case SurfKMax:
		return &b.faceK[b.faceKIdx(p, s, b.NK)]
	}
	panic(fmt.Errorf("%w: %d is not a valid surface index for a block", ErrRange, f))
}

// edgeEndpoints gives the surface-local node coordinates of the two ends of
// the boundary edge sitting at the given slot.
func edgeEndpoints(slot, npri, nsec int) (p1, s1, p2, s2 int) {
	switch slot {
	case slotPriMin:
		return 1, 1, 1, nsec
	case slotPriMax:
		return npri, 1, npri, nsec
	case slotSecMin:
		return 1, 1, npri, 1
	case slotSecMax:
		return 1, nsec, npri, nsec
	}
	panic(fmt.Errorf("%w: %d is not a valid edge slot", ErrRange, slot))
}

// resetNumbering clears all global ids so a numbering pass always starts
// from a clean slate.
func (b *Block3D) resetNumbering() {
	clearInts(b.cellID)
	clearInts(b.nodeID)
	clearInts(b.faceI)
	clearInts(b.faceJ)
	clearInts(b.faceK)
	for n := range b.edge {
		b.edge[n].GlobalIndex = 0
	}
}

func clearInts(a []int) {
	for i := range a {
		a[i] = 0
	}
}

// verifyIncidence checks the static skeleton tables: every surface has 4
// distinct edges, every edge lies on exactly 2 distinct surfaces, and the
// two tables agree with each other.
func verifyIncidence() error {
	var edgeCount [NumOfEdge + 1]int
	for f := 1; f <= NumOfSurf; f++ {
		seen := map[int]bool{}
		for _, e := range surfaceEdges[f-1] {
			if e < 1 || e > NumOfEdge || seen[e] {
				return fmt.Errorf("%w: surface %d has an invalid or repeated edge %d",
					ErrTopology, f, e)
			}
			seen[e] = true
			edgeCount[e]++
			s := edgeSurfaces[e-1]
			if s[0] != f && s[1] != f {
				return fmt.Errorf("%w: edge %d does not list surface %d as dependent",
					ErrTopology, e, f)
			}
		}
	}
	for e := 1; e <= NumOfEdge; e++ {
		if edgeCount[e] != 2 {
			return fmt.Errorf("%w: edge %d bounds %d surfaces, want 2",
				ErrTopology, e, edgeCount[e])
		}
		if edgeSurfaces[e-1][0] == edgeSurfaces[e-1][1] {
			return fmt.Errorf("%w: edge %d lists the same surface twice", ErrTopology, e)
		}
	}
	return nil
}
