package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlueParameters(t *testing.T) {
	data := `
Title: "Two Cube Test"
MappingFile: two_cubes.nmf
GridFile: two_cubes.xyz
OutFile: formalized.nmf
Verbose: true
`
	gp := &GlueParameters{}
	assert.NoError(t, gp.Parse([]byte(data)))
	assert.Equal(t, "Two Cube Test", gp.Title)
	assert.Equal(t, "two_cubes.nmf", gp.MappingFile)
	assert.Equal(t, "two_cubes.xyz", gp.GridFile)
	assert.Equal(t, "formalized.nmf", gp.OutFile)
	assert.True(t, gp.Verbose)

	assert.Error(t, gp.Parse([]byte(":\n  -")))
}
