// Package plot3d reads ASCII multi-block Plot3D coordinate grids: a block
// count, the (nI,nJ,nK) node dimensions per block, then for each block its
// X, Y and Z values in Fortran order (I fastest). The package carries node
// coordinates only; topology lives in package nmf.
package plot3d

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/notargets/gridglue/geom"
)

// Block is one block's coordinate lattice.
type Block struct {
	NI, NJ, NK int
	X, Y, Z    []float64 // len NI*NJ*NK each, Fortran order
}

func (b *Block) idx(i, j, k int) int {
	if i < 1 || i > b.NI || j < 1 || j > b.NJ || k < 1 || k > b.NK {
		panic(fmt.Errorf("node (%d,%d,%d) outside %dx%dx%d block", i, j, k, b.NI, b.NJ, b.NK))
	}
	return (i - 1) + b.NI*((j-1)+b.NJ*(k-1))
}

// At is the coordinate of node (i,j,k), 1-based.
func (b *Block) At(i, j, k int) geom.Vec {
	n := b.idx(i, j, k)
	return geom.Vec{b.X[n], b.Y[n], b.Z[n]}
}

func (b *Block) NodeNum() int { return b.NI * b.NJ * b.NK }

// Grid is a whole multi-block coordinate file.
type Grid struct {
	Blk []*Block
}

func (g *Grid) NumOfBlock() int { return len(g.Blk) }

// Block gives access to a block through its 1-based index.
func (g *Grid) Block(n int) *Block {
	return g.Blk[n-1]
}

// ReadFile reads an ASCII Plot3D grid file.
func ReadFile(path string) (*Grid, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}

// Parse reads an ASCII Plot3D grid from r.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	nextInt := func(what string) (int, error) {
		if !sc.Scan() {
			return 0, fmt.Errorf("unexpected EOF reading %s", what)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("reading %s: %q is not an integer", what, sc.Text())
		}
		return v, nil
	}
	nextFloat := func(dst []float64, what string) error {
		for n := range dst {
			if !sc.Scan() {
				return fmt.Errorf("unexpected EOF reading %s", what)
			}
			v, err := strconv.ParseFloat(sc.Text(), 64)
			if err != nil {
				return fmt.Errorf("reading %s: %q is not a number", what, sc.Text())
			}
			dst[n] = v
		}
		return nil
	}

	nBlk, err := nextInt("block count")
	if err != nil {
		return nil, err
	}
	if nBlk <= 0 {
		return nil, fmt.Errorf("invalid block count %d", nBlk)
	}

	g := &Grid{Blk: make([]*Block, nBlk)}
	for n := range g.Blk {
		b := &Block{}
		if b.NI, err = nextInt("I dimension"); err != nil {
			return nil, err
		}
		if b.NJ, err = nextInt("J dimension"); err != nil {
			return nil, err
		}
		if b.NK, err = nextInt("K dimension"); err != nil {
			return nil, err
		}
		if b.NI < 2 || b.NJ < 2 || b.NK < 2 {
			return nil, fmt.Errorf("block %d: dimensions (%d,%d,%d) must all be at least 2",
				n+1, b.NI, b.NJ, b.NK)
		}
		g.Blk[n] = b
	}
	for n, b := range g.Blk {
		nn := b.NodeNum()
		b.X = make([]float64, nn)
		b.Y = make([]float64, nn)
		b.Z = make([]float64, nn)
		if err = nextFloat(b.X, fmt.Sprintf("X of block %d", n+1)); err != nil {
			return nil, err
		}
		if err = nextFloat(b.Y, fmt.Sprintf("Y of block %d", n+1)); err != nil {
			return nil, err
		}
		if err = nextFloat(b.Z, fmt.Sprintf("Z of block %d", n+1)); err != nil {
			return nil, err
		}
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}
