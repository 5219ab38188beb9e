package Trees

import "fmt"

// InvalidSliceError is the panic value of From when the given slice isn't strictly ascending: vs[I]>=vs[I+1].
type InvalidSliceError struct {
	I int
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending at index %d", e.I)
}

// RankError is the panic value of SelectByRank when K>=Size.
type RankError struct {
	K, Size uint64
}

func (e RankError) Error() string {
	return fmt.Sprintf("rank %d out of range for tree of size %d", e.K, e.Size)
}

// RotationError is the panic value of a rotation at a node without the child that should be lifted.
type RotationError struct {
	Node    uint64
	missing side
}

func (e RotationError) Error() string {
	s := "left"
	if e.missing == right {
		s = "right"
	}
	return fmt.Sprintf("can't rotate node %d: no %s child", e.Node, s)
}

// CapacityError is the panic value of Insert when the handle type can't address another node.
type CapacityError struct {
	Nodes uint64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("tree is full at %d nodes", e.Nodes)
}
