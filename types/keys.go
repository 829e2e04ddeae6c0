package types

import (
	"fmt"
	"math"
)

/*
EntityKey packs a (block index, local entity index) pair into a uint64 so that
cross-block references to surfaces and frame edges can be used as map keys and
compared without holding pointers into block storage. Both indices are 1-based
and must fit in 32 bits.
*/
type EntityKey uint64

func NewEntityKey(block, local int) (packed EntityKey) {
	var (
		limit = math.MaxUint32
	)
	if block < 0 || block > limit || local < 0 || local > limit {
		panic(fmt.Errorf("unable to pack two ints into a uint64, have %d and %d as inputs",
			block, local))
	}
	packed = EntityKey(local + block<<32)
	return
}

func (ek EntityKey) Block() int {
	return int(ek >> 32)
}

func (ek EntityKey) Local() int {
	return int(ek & math.MaxUint32)
}

func (ek EntityKey) String() string {
	return fmt.Sprintf("(%d,%d)", ek.Block(), ek.Local())
}
