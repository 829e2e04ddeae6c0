package mesh

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/notargets/gridglue/geom"
	"github.com/notargets/gridglue/nmf"
	"github.com/notargets/gridglue/plot3d"
	"github.com/notargets/gridglue/types"
)

var log = logrus.StandardLogger()

// Corner coordinates of a one-to-one interface must coincide within this
// distance on both sides.
const cornerTol = 1e-9

// GlueFiles reads a mapping declaration and a Plot3D coordinate grid and
// assembles the flat mesh.
func GlueFiles(mappingPath, gridPath string) (*Mesh, error) {
	mp, err := nmf.ReadFile(mappingPath)
	if err != nil {
		return nil, err
	}
	g, err := plot3d.ReadFile(gridPath)
	if err != nil {
		return nil, err
	}
	return Glue(mp, g)
}

// Glue resolves the mapping's topology, numbers every entity globally and
// assembles the flat mesh. The phases run strictly in order; any detected
// inconsistency aborts before a partial mesh can escape.
func Glue(mp *nmf.Mapping, g *plot3d.Grid) (*Mesh, error) {
	if err := checkConsistency(mp, g); err != nil {
		return nil, err
	}
	if err := mp.ComputeTopology(); err != nil {
		return nil, err
	}
	if err := mp.Numbering(); err != nil {
		return nil, err
	}
	if err := verifyInterfaceCorners(mp, g); err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"blocks": mp.NumOfBlk(),
		"cells":  mp.NumOfCell(),
		"faces":  mp.NumOfFace(),
		"nodes":  mp.NumOfNode(),
	}).Info("topology resolved")

	a := &assembler{
		mp: mp,
		g:  g,
		msh: &Mesh{
			Nodes: make([]Node, mp.NumOfNode()),
			Faces: make([]Face, mp.NumOfFace()),
			Cells: make([]Cell, mp.NumOfCell()),
		},
		state: make([]faceState, mp.NumOfFace()),
	}
	a.copyNodes()
	a.copyCells()
	if err := a.copyFaces(); err != nil {
		return nil, err
	}
	a.deriveGeometry()
	log.WithFields(logrus.Fields{
		"boundaryFaces": a.msh.NumOfBdryFace(),
	}).Info("mesh assembled")
	return a.msh, nil
}

// checkConsistency verifies the coordinate grid matches the mapping
// declaration block for block before any numbering work begins.
func checkConsistency(mp *nmf.Mapping, g *plot3d.Grid) error {
	if mp.NumOfBlk() != g.NumOfBlock() {
		return fmt.Errorf("%w: mapping has %d blocks, grid has %d",
			nmf.ErrInconsistentGrid, mp.NumOfBlk(), g.NumOfBlock())
	}
	for n := 1; n <= mp.NumOfBlk(); n++ {
		b := mp.Block(n)
		gb := g.Block(n)
		if b.NI != gb.NI || b.NJ != gb.NJ || b.NK != gb.NK {
			return fmt.Errorf("%w: block %d is (%d,%d,%d) in the mapping but (%d,%d,%d) in the grid",
				nmf.ErrInconsistentGrid, n, b.NI, b.NJ, b.NK, gb.NI, gb.NJ, gb.NK)
		}
	}
	return nil
}

// verifyInterfaceCorners checks that the four corners of every one-to-one
// window coincide physically on both sides. An interface whose declared
// orientation disagrees with the coordinates is an input fault, not
// something to repair.
func verifyInterfaceCorners(mp *nmf.Mapping, g *plot3d.Grid) error {
	for n, e := range mp.Entries() {
		if !e.DoubleSided() {
			continue
		}
		corners := [4][2]int{
			{e.Rg1.S1, e.Rg1.S2}, {e.Rg1.E1, e.Rg1.S2},
			{e.Rg1.S1, e.Rg1.E2}, {e.Rg1.E1, e.Rg1.E2},
		}
		for _, c := range corners {
			q, t := e.MapNode(1, c[0], c[1])
			i1, j1, k1 := mp.Block(e.Rg1.Blk).SurfToIJK(e.Rg1.Face, c[0], c[1])
			i2, j2, k2 := mp.Block(e.Rg2.Blk).SurfToIJK(e.Rg2.Face, q, t)
			p1 := g.Block(e.Rg1.Blk).At(i1, j1, k1)
			p2 := g.Block(e.Rg2.Blk).At(i2, j2, k2)
			if p1.Distance(p2) > cornerTol {
				return fmt.Errorf("%w: entry %d: corner (%d,%d) of %s sits at %v but its image (%d,%d) of %s sits at %v",
					nmf.ErrTopology, n+1, c[0], c[1], e.Rg1, p1, q, t, e.Rg2, p2)
			}
		}
	}
	return nil
}

type faceState uint8

const (
	faceUnseen faceState = iota
	facePartial
	faceResolved
)

type assembler struct {
	mp    *nmf.Mapping
	g     *plot3d.Grid
	msh   *Mesh
	state []faceState
}

// copyNodes writes each node's coordinate from the first block that reaches
// it; later blocks reuse the id and never overwrite the coordinate.
func (a *assembler) copyNodes() {
	visited := make([]bool, a.msh.NumOfNode())
	for n := 1; n <= a.mp.NumOfBlk(); n++ {
		b := a.mp.Block(n)
		gb := a.g.Block(n)
		for k := 1; k <= b.NK; k++ {
			for j := 1; j <= b.NJ; j++ {
				for i := 1; i <= b.NI; i++ {
					id := b.NodeIndex(i, j, k)
					if visited[id-1] {
						continue
					}
					a.msh.Nodes[id-1] = Node{ID: id, Coord: gb.At(i, j, k)}
					visited[id-1] = true
				}
			}
		}
	}
}

func (a *assembler) copyCells() {
	for n := 1; n <= a.mp.NumOfBlk(); n++ {
		b := a.mp.Block(n)
		for k := 1; k < b.NK; k++ {
			for j := 1; j < b.NJ; j++ {
				for i := 1; i < b.NI; i++ {
					c := b.Cell(i, j, k)
					a.msh.Cells[c.CellSeq-1] = Cell{
						ID:    c.CellSeq,
						Nodes: c.NodeSeq,
						Faces: c.FaceSeq,
					}
				}
			}
		}
	}
}

// faceNodeOrder lists, per local cell face, which of the cell's 8 nodes form
// the face, ordered by the right-hand convention with the normal pointing
// from the left cell to the right cell.
var faceNodeOrder = [6][4]int{
	{1, 5, 8, 4}, // I-min
	{2, 3, 7, 6}, // I-max
	{6, 5, 1, 2}, // J-min
	{3, 4, 8, 7}, // J-max
	{4, 3, 2, 1}, // K-min
	{8, 5, 6, 7}, // K-max
}

func faceNodes(c nmf.HexCell, localFace int) (nodes [4]int) {
	for n, v := range faceNodeOrder[localFace-1] {
		nodes[n] = c.NodeSeq[v-1]
	}
	return
}

// recordInterior registers a block-interior face: populated exactly once,
// both owning cells known immediately.
func (a *assembler) recordInterior(faceID, left, right int, nodes [4]int) error {
	if a.state[faceID-1] != faceUnseen {
		return fmt.Errorf("%w: interior face %d already populated", nmf.ErrTopology, faceID)
	}
	a.msh.Faces[faceID-1] = Face{
		ID: faceID, Nodes: nodes, LeftCell: left, RightCell: right,
	}
	a.state[faceID-1] = faceResolved
	return nil
}

// recordBoundary registers one visitation of a block-boundary face. The
// first visitation populates the node list and the right cell; the second,
// legal only for shared interface faces, fills the remaining cell slot.
func (a *assembler) recordBoundary(faceID, cell int, bdry bool, bc types.BCFLAG, nodes [4]int) error {
	f := &a.msh.Faces[faceID-1]
	switch a.state[faceID-1] {
	case faceUnseen:
		*f = Face{ID: faceID, Nodes: nodes, RightCell: cell, AtBdry: bdry, BC: bc}
		a.state[faceID-1] = facePartial
		return nil
	case facePartial:
		if f.AtBdry {
			return fmt.Errorf("%w: boundary face %d visited twice", nmf.ErrTopology, faceID)
		}
		if f.LeftCell == 0 {
			f.LeftCell = cell
		} else if f.RightCell == 0 {
			f.RightCell = cell
		}
		a.state[faceID-1] = faceResolved
		return nil
	default:
		return fmt.Errorf("%w: double-sided face %d visited more than twice", nmf.ErrTopology, faceID)
	}
}

func (a *assembler) copyFaces() error {
	for n := 1; n <= a.mp.NumOfBlk(); n++ {
		if err := a.copyBlockFaces(n); err != nil {
			return err
		}
	}
	// Every shared face must have been claimed from both sides.
	for id := 1; id <= a.msh.NumOfFace(); id++ {
		if a.state[id-1] == facePartial && !a.msh.Faces[id-1].AtBdry {
			return fmt.Errorf("%w: interface face %d visited only once", nmf.ErrTopology, id)
		}
	}
	return nil
}

func (a *assembler) copyBlockFaces(n int) error {
	b := a.mp.Block(n)

	// Interior I direction.
	for k := 1; k < b.NK; k++ {
		for j := 1; j < b.NJ; j++ {
			for i := 2; i < b.NI; i++ {
				cur := b.Cell(i, j, k)
				adj := b.Cell(i-1, j, k)
				if err := a.recordInterior(cur.FaceSeq[0], adj.CellSeq, cur.CellSeq,
					faceNodes(cur, 1)); err != nil {
					return err
				}
			}
		}
	}
	// Interior J direction.
	for k := 1; k < b.NK; k++ {
		for i := 1; i < b.NI; i++ {
			for j := 2; j < b.NJ; j++ {
				cur := b.Cell(i, j, k)
				adj := b.Cell(i, j-1, k)
				if err := a.recordInterior(cur.FaceSeq[2], adj.CellSeq, cur.CellSeq,
					faceNodes(cur, 3)); err != nil {
					return err
				}
			}
		}
	}
	// Interior K direction.
	for i := 1; i < b.NI; i++ {
		for j := 1; j < b.NJ; j++ {
			for k := 2; k < b.NK; k++ {
				cur := b.Cell(i, j, k)
				adj := b.Cell(i, j, k-1)
				if err := a.recordInterior(cur.FaceSeq[4], adj.CellSeq, cur.CellSeq,
					faceNodes(cur, 5)); err != nil {
					return err
				}
			}
		}
	}

	// The six boundary surfaces.
	for f := 1; f <= nmf.NumOfSurf; f++ {
		if err := a.copySurfaceFaces(n, f); err != nil {
			return err
		}
	}
	return nil
}

// copySurfaceFaces walks the face grid of one boundary surface, visiting
// each face through its adjacent cell. A linked surface is boundary outside
// its one-to-one window; only faces inside the window are shared.
func (a *assembler) copySurfaceFaces(n, f int) error {
	b := a.mp.Block(n)
	s := b.Surf(f)
	var own nmf.Range
	if s.EntryIndex >= 0 {
		e := a.mp.Entries()[s.EntryIndex]
		own = e.Rg1
		if s.Side == 2 {
			own = e.Rg2
		}
	}
	npri, nsec := b.SurfNodeNum(f)
	for sc := 1; sc < nsec; sc++ {
		for p := 1; p < npri; p++ {
			i, j, k := b.SurfToIJK(f, p, sc)
			// The adjacent cell sits one layer inside on max surfaces.
			ci, cj, ck := i, j, k
			switch f {
			case nmf.SurfIMax:
				ci = b.NI - 1
			case nmf.SurfJMax:
				cj = b.NJ - 1
			case nmf.SurfKMax:
				ck = b.NK - 1
			}
			cur := b.Cell(ci, cj, ck)
			bdry := s.EntryIndex < 0 || !own.ContainsFace(p, sc)
			var bc types.BCFLAG
			if bdry {
				bc = a.boundaryKind(n, f, p, sc)
			}
			if err := a.recordBoundary(cur.FaceSeq[f-1], cur.CellSeq, bdry, bc,
				faceNodes(cur, f)); err != nil {
				return err
			}
		}
	}
	return nil
}

// boundaryKind resolves the BC zone of a boundary face from the
// single-sided entry containing it.
func (a *assembler) boundaryKind(blk, face, pri, sec int) types.BCFLAG {
	for _, e := range a.mp.Entries() {
		if !e.DoubleSided() && e.ContainsFace(blk, face, pri, sec) == 1 {
			return e.Kind
		}
	}
	return types.BC_Unprocessed
}

// deriveGeometry populates the derived area/center/normal of every face.
func (a *assembler) deriveGeometry() {
	for n := range a.msh.Faces {
		f := &a.msh.Faces[n]
		var v [4]geom.Vec
		for i, id := range f.Nodes {
			v[i] = a.msh.Node(id).Coord
		}
		f.Area = geom.QuadArea(v[0], v[1], v[2], v[3])
		f.Center = geom.QuadCenter(v[0], v[1], v[2], v[3])
		f.Normal = geom.QuadNormal(v[0], v[1], v[2], v[3])
	}
}
