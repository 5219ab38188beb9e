package Trees

import "golang.org/x/exp/constraints"

type color bool

const (
	black color = false
	red   color = true
)

// side of a child under its parent. !left==right.
type side bool

const (
	left  side = false
	right side = true
)

// info of a node in the Tree, addressed by its index in the arena.
// Index 0 is nil: it's never written, so it reads as a black leaf with no links and no size.
type info[S constraints.Unsigned] struct {
	p, l, r  S // parent, left and right child. 0 means absent.
	lsz, rsz S // number of nodes in the left and right subtrees.
	c        color
}
