package plot3d

import (
	"strings"
	"testing"

	"github.com/notargets/gridglue/geom"
	"github.com/stretchr/testify/assert"
)

var unitCube = `
1
2 2 2
0 1 0 1 0 1 0 1
0 0 1 1 0 0 1 1
0 0 0 0 1 1 1 1
`

func TestParse(t *testing.T) {
	g, err := Parse(strings.NewReader(unitCube))
	assert.NoError(t, err)
	assert.Equal(t, 1, g.NumOfBlock())

	b := g.Block(1)
	assert.Equal(t, 2, b.NI)
	assert.Equal(t, 8, b.NodeNum())
	assert.Equal(t, geom.Vec{0, 0, 0}, b.At(1, 1, 1))
	assert.Equal(t, geom.Vec{1, 0, 0}, b.At(2, 1, 1))
	assert.Equal(t, geom.Vec{0, 1, 0}, b.At(1, 2, 1))
	assert.Equal(t, geom.Vec{1, 1, 1}, b.At(2, 2, 2))
	assert.Panics(t, func() { b.At(3, 1, 1) })
}

func TestParseMultiBlock(t *testing.T) {
	in := `
2
2 2 2
2 2 2
0 1 0 1 0 1 0 1
0 0 1 1 0 0 1 1
0 0 0 0 1 1 1 1
1 2 1 2 1 2 1 2
0 0 1 1 0 0 1 1
0 0 0 0 1 1 1 1
`
	g, err := Parse(strings.NewReader(in))
	assert.NoError(t, err)
	assert.Equal(t, 2, g.NumOfBlock())
	assert.Equal(t, geom.Vec{1, 0, 0}, g.Block(2).At(1, 1, 1))
	assert.Equal(t, geom.Vec{2, 1, 1}, g.Block(2).At(2, 2, 2))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.Error(t, err)
	_, err = Parse(strings.NewReader("0\n"))
	assert.Error(t, err)
	_, err = Parse(strings.NewReader("x\n"))
	assert.Error(t, err)
	_, err = Parse(strings.NewReader("1\n2 2 1\n"))
	assert.Error(t, err)
	// Coordinate list cut short
	_, err = Parse(strings.NewReader("1\n2 2 2\n0 1 0 1\n"))
	assert.Error(t, err)
	// Non-numeric coordinate
	_, err = Parse(strings.NewReader("1\n2 2 2\n0 1 0 1 0 1 0 x\n"))
	assert.Error(t, err)
}
