// Package mesh assembles the flat unstructured representation of a glued
// multi-block grid: nodes with coordinates, faces with owning cell pairs,
// cells with their bounding faces. The tables are what a downstream
// flat-mesh writer consumes.
package mesh

import (
	"fmt"

	"github.com/notargets/gridglue/geom"
	"github.com/notargets/gridglue/types"
)

// Node is one deduplicated grid point.
type Node struct {
	ID    int // 1-based global id
	Coord geom.Vec
}

// Face is one deduplicated quad face. Nodes are ordered by the right-hand
// convention so Normal points from LeftCell toward RightCell; LeftCell is 0
// for boundary faces.
type Face struct {
	ID        int
	Nodes     [4]int
	LeftCell  int
	RightCell int
	AtBdry    bool
	BC        types.BCFLAG // zone kind of boundary faces, BC_None for interior

	Area   float64
	Center geom.Vec
	Normal geom.Vec
}

// Cell is one hexahedral cell with its global node and face ids.
type Cell struct {
	ID    int
	Nodes [8]int
	Faces [6]int
}

// Mesh is the assembled flat mesh. Entity ids are 1-based; id n lives at
// slice index n-1.
type Mesh struct {
	Nodes []Node
	Faces []Face
	Cells []Cell
}

func (m *Mesh) NumOfNode() int { return len(m.Nodes) }
func (m *Mesh) NumOfFace() int { return len(m.Faces) }
func (m *Mesh) NumOfCell() int { return len(m.Cells) }

func (m *Mesh) Node(id int) *Node { return &m.Nodes[id-1] }
func (m *Mesh) Face(id int) *Face { return &m.Faces[id-1] }
func (m *Mesh) Cell(id int) *Cell { return &m.Cells[id-1] }

// NumOfBdryFace counts boundary faces.
func (m *Mesh) NumOfBdryFace() int {
	cnt := 0
	for n := range m.Faces {
		if m.Faces[n].AtBdry {
			cnt++
		}
	}
	return cnt
}

// PrintStatistics prints mesh statistics.
func (m *Mesh) PrintStatistics() {
	fmt.Printf("Mesh Statistics:\n")
	fmt.Printf("  Nodes: %d\n", m.NumOfNode())
	fmt.Printf("  Cells: %d\n", m.NumOfCell())
	fmt.Printf("  Faces: %d\n", m.NumOfFace())
	fmt.Printf("  Boundary faces: %d\n", m.NumOfBdryFace())

	zoneCounts := make(map[types.BCFLAG]int)
	for n := range m.Faces {
		if m.Faces[n].AtBdry {
			zoneCounts[m.Faces[n].BC]++
		}
	}
	fmt.Printf("  Boundary zones:\n")
	for bc, count := range zoneCounts {
		fmt.Printf("    %s: %d\n", bc, count)
	}
}
