package types

import (
	"fmt"
	"strings"
)

// BCFLAG enumerates the closed vocabulary of boundary-condition keywords
// recognized in a mapping file. The numeric values follow the NMF convention.
type BCFLAG uint8

const (
	BC_None BCFLAG = iota
	BC_Collapsed
	BC_One2One
	BC_Patched
	BC_PoleDir1
	BC_PoleDir2
	BC_SymX
	BC_SymY
	BC_SymZ
	BC_Unprocessed
	BC_Wall
	BC_Sym
	BC_In
	BC_Out
)

var bcNames = map[BCFLAG]string{
	BC_Collapsed:   "COLLAPSED",
	BC_One2One:     "ONE_TO_ONE",
	BC_Patched:     "PATCHED",
	BC_PoleDir1:    "POLE_DIR1",
	BC_PoleDir2:    "POLE_DIR2",
	BC_SymX:        "SYM_X",
	BC_SymY:        "SYM_Y",
	BC_SymZ:        "SYM_Z",
	BC_Unprocessed: "UNPROCESSED",
	BC_Wall:        "WALL",
	BC_Sym:         "SYM",
	BC_In:          "INFLOW",
	BC_Out:         "OUTFLOW",
}

var BCNameMap = map[string]BCFLAG{
	"COLLAPSED":   BC_Collapsed,
	"ONE_TO_ONE":  BC_One2One,
	"PATCHED":     BC_Patched,
	"POLE_DIR1":   BC_PoleDir1,
	"POLE_DIR2":   BC_PoleDir2,
	"SYM_X":       BC_SymX,
	"SYM_Y":       BC_SymY,
	"SYM_Z":       BC_SymZ,
	"UNPROCESSED": BC_Unprocessed,
	"WALL":        BC_Wall,
	"SYM":         BC_Sym,
	"SYMMETRY":    BC_Sym,
	"INFLOW":      BC_In,
	"OUTFLOW":     BC_Out,
}

func (bf BCFLAG) String() string {
	if s, ok := bcNames[bf]; ok {
		return s
	}
	return fmt.Sprintf("BCFLAG(%d)", uint8(bf))
}

// FormalizeBCName upper-cases a keyword token and replaces '-' with '_' so
// that "one-to-one", "One_To_One" and "ONE_TO_ONE" all compare equal.
func FormalizeBCName(token string) string {
	return strings.ReplaceAll(strings.ToUpper(token), "-", "_")
}

// NewBCFLAG resolves a keyword token against the closed vocabulary.
// The second return is false for unrecognized tokens.
func NewBCFLAG(token string) (BCFLAG, bool) {
	bf, ok := BCNameMap[FormalizeBCName(token)]
	return bf, ok
}
