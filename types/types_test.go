package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	{ // Test packed int for cross-block entity references
		ek := NewEntityKey(1, 0)
		assert.Equal(t, EntityKey(1<<32), ek)
		assert.Equal(t, 1, ek.Block())
		assert.Equal(t, 0, ek.Local())

		ek = NewEntityKey(3, 12)
		assert.Equal(t, EntityKey(3<<32+12), ek)
		assert.Equal(t, 3, ek.Block())
		assert.Equal(t, 12, ek.Local())

		// Test maximum indices
		ek = NewEntityKey(1<<32-1, 1<<32-1)
		assert.Equal(t, EntityKey(1<<64-1), ek)
		assert.Equal(t, 1<<32-1, ek.Block())
		assert.Equal(t, 1<<32-1, ek.Local())

		assert.Panics(t, func() { NewEntityKey(-1, 0) })
		assert.Panics(t, func() { NewEntityKey(0, 1<<32) })

		assert.Equal(t, "(2,5)", NewEntityKey(2, 5).String())
	}
	{ // Keyword folding: case and '-'/'_' are interchangeable
		tokens := []string{"ONE_TO_ONE", "one-to-one", "One_To_One", "wall", "Symmetry", "SYM", "inflow", "OUTFLOW"}
		flags := []BCFLAG{BC_One2One, BC_One2One, BC_One2One, BC_Wall, BC_Sym, BC_Sym, BC_In, BC_Out}
		for i, token := range tokens {
			bf, ok := NewBCFLAG(token)
			assert.True(t, ok, token)
			assert.Equal(t, flags[i], bf, token)
		}
		_, ok := NewBCFLAG("FOO")
		assert.False(t, ok)

		assert.Equal(t, "ONE_TO_ONE", BC_One2One.String())
		assert.Equal(t, "WALL", BC_Wall.String())
		assert.Equal(t, "ONE_TO_ONE", FormalizeBCName("one-to-one"))
	}
}
