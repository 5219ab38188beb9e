package Trees

import "golang.org/x/exp/constraints"

// OrderedIndex is an in-memory set of ordered values answering order statistics queries.
// Nodes are referred to by handles of type S, where 0 means no node. Receivers that have a bool
// as a second return value indicate whether the first return value is defined.
// Implementations aren't safe for concurrent mutation; callers serialize every mutating call.
type OrderedIndex[T any, S constraints.Unsigned] interface {
	//Insert v and return its node. Inserting a value already present returns the
	//existing node and changes nothing.
	Insert(v T) S
	//Find the node of v, 0 if v isn't present.
	Find(v T) S
	//Erase node n. Erase(0) does nothing.
	Erase(n S)
	//Remove v, returning whether it was present.
	Remove(v T) bool
	//Key held by node n.
	Key(n S) T
	//Size is the number of values.
	Size() S
	//CountLesser is the number of values strictly less than v.
	CountLesser(v T) S
	//SelectByRank returns the value of rank k starting from 0.
	//0<=k<Size(), otherwise it panics.
	SelectByRank(k S) T
	//Minimum value.
	Minimum() (T, bool)
	//Maximum value.
	Maximum() (T, bool)
	//Predecessor returns the greatest value less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest value greater than v.
	Successor(v T) (T, bool)
	//InOrder gives values in ascending order until f returns false. The index
	//must not be modified during the iteration.
	InOrder(f func(v T) bool)
	//Verify reports whether the internal invariants hold. It's a detection
	//mechanism for tests; nothing gets repaired.
	Verify() bool
}

var _ OrderedIndex[int, uint32] = (*Tree[int, uint32])(nil)
