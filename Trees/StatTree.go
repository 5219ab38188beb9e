package Trees

import (
	"cmp"
	"golang.org/x/exp/constraints"
	"math/bits"
)

// Tree is a red-black tree with no repeated values, augmented with the sizes of both subtrees of
// every node so that CountLesser and SelectByRank are O(log n).
// T is the type of values it will hold, S is the type of node handles and of the size counters, so
// S must be wide enough for the largest size of the tree plus one.
// Nodes live in an arena and are addressed by handles of type S; 0 is the handle of no node. A
// handle is valid until the node is erased, after which it may be reused by a later Insert.
// The zero value isn't usable, create it with New or From.
// Tree isn't safe for concurrent use. Read-only methods may run concurrently with each other,
// never with Insert, Erase, Remove or Clear.
type Tree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
	cnt S
}

// New empty tree, with room for hint nodes before growing.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *Tree[T, S] {
	ifs := make([]info[S], 1, int(hint)+1)
	vs := make([]T, 0, hint)
	return &Tree[T, S]{base: base[T, S]{ifs: ifs, vs: vs}}
}

// From a given value array, directly build a tree. The array is handed to the tree and it mustn't be
// modified by the caller later. vs must be strictly ascending, otherwise From panics with InvalidSliceError.
// Nodes on the deepest level of an incomplete tree are red, all others are black.
// Time: O(n)
func From[T cmp.Ordered, S constraints.Unsigned](vs []T) *Tree[T, S] {
	for i := 1; i < len(vs); i++ {
		if !(vs[i-1] < vs[i]) {
			panic(InvalidSliceError{i - 1})
		}
	}
	n := S(len(vs))
	if int(n) != len(vs) {
		panic(CapacityError{uint64(len(vs))})
	}
	u := &Tree[T, S]{base: base[T, S]{ifs: make([]info[S], len(vs)+1), vs: vs}, cnt: n}
	if n == 0 {
		return u
	}
	redDepth := bits.Len(uint(len(vs))+1) - 1 // every path to nil has at least this many nodes.
	type span struct {
		lo, hi, p S // handles lo..hi inclusive, parent p
		d         int
	}
	mid := func(lo, hi S) S { return lo + (hi-lo)>>1 }
	u.root = mid(1, n)
	st := make([]span, 0, bits.Len(uint(len(vs)))+1)
	st = append(st, span{1, n, 0, 0})
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		m := mid(top.lo, top.hi)
		nd := &u.ifs[m]
		nd.p, nd.lsz, nd.rsz = top.p, m-top.lo, top.hi-m
		if top.d == redDepth {
			nd.c = red
		}
		if top.lo < m {
			nd.l = mid(top.lo, m-1)
			st = append(st, span{top.lo, m - 1, m, top.d + 1})
		}
		if m < top.hi {
			nd.r = mid(m+1, top.hi)
			st = append(st, span{m + 1, top.hi, m, top.d + 1})
		}
	}
	return u
}

// Size of the tree.
// Time: O(1)
func (u *Tree[T, S]) Size() S {
	return u.cnt
}

// Root handle, 0 if the tree is empty.
func (u *Tree[T, S]) Root() S {
	return u.root
}

// Key held by node n. n must be a valid handle.
func (u *Tree[T, S]) Key(n S) T {
	return u.vs[n-1]
}

func (u *Tree[T, S]) Left(n S) S {
	return u.ifs[n].l
}

func (u *Tree[T, S]) Right(n S) S {
	return u.ifs[n].r
}

func (u *Tree[T, S]) Parent(n S) S {
	return u.ifs[n].p
}

// IsRed reports the color of n. Absent nodes are black.
func (u *Tree[T, S]) IsRed(n S) bool {
	return u.ifs[n].c == red
}

// Clear the tree. Every handle becomes invalid.
func (u *Tree[T, S]) Clear() {
	u.base.Clear()
	u.cnt = 0
}

// Insert v and return the handle of its node. If v is already in the tree, the existing node is
// returned and nothing changes.
// Time: O(log n)
func (u *Tree[T, S]) Insert(v T) S {
	p, d := S(0), left
	for cur := u.root; cur != 0; {
		if k := u.vs[cur-1]; v < k {
			p, d, cur = cur, left, u.ifs[cur].l
		} else if v > k {
			p, d, cur = cur, right, u.ifs[cur].r
		} else {
			return cur
		}
	}
	x := u.alloc(v)
	u.ifs[x].p = p
	if p == 0 {
		u.root = x
	} else {
		u.setChild(p, d, x)
	}
	for c, q := x, p; q != 0; c, q = q, u.ifs[q].p {
		if u.ifs[q].l == c {
			u.ifs[q].lsz++
		} else {
			u.ifs[q].rsz++
		}
	}
	u.cnt++
	u.insertFixup(x)
	return x
}

// insertFixup restores the red-black coloring after the red node x was linked as a leaf.
// At most 2 rotations.
func (u *Tree[T, S]) insertFixup(x S) {
	// a red parent is never the root, so g!=0.
	for p := u.ifs[x].p; u.ifs[p].c == red; p = u.ifs[x].p {
		g := u.ifs[p].p
		d := u.sideOf(p)
		if un := u.child(g, !d); u.ifs[un].c == red {
			u.ifs[p].c, u.ifs[un].c, u.ifs[g].c = black, black, red
			x = g
			continue
		}
		if u.sideOf(x) != d { // inner child, make it outer.
			x = p
			u.rotate(x, d)
			p = u.ifs[x].p
		}
		u.ifs[p].c, u.ifs[g].c = black, red
		u.rotate(g, !d)
	}
	u.ifs[u.root].c = black
}

// shrinkFrom decrements the size counters of every ancestor of n on the side leading to n.
func (u *Tree[T, S]) shrinkFrom(n S) {
	for c, q := n, u.ifs[n].p; q != 0; c, q = q, u.ifs[q].p {
		if u.ifs[q].l == c {
			u.ifs[q].lsz--
		} else {
			u.ifs[q].rsz--
		}
	}
}

// Erase node z from the tree. Does nothing if z==0. z is invalid afterward.
// Time: O(log n)
func (u *Tree[T, S]) Erase(z S) {
	if z == 0 {
		return
	}
	removed := u.ifs[z].c
	var x, xp S // the node taking the removed position and its parent. x may be 0.
	if zi := u.ifs[z]; zi.l == 0 {
		x, xp = zi.r, zi.p
		u.shrinkFrom(z)
		u.transplant(z, x)
	} else if zi.r == 0 {
		x, xp = zi.l, zi.p
		u.shrinkFrom(z)
		u.transplant(z, x)
	} else {
		y := u.leftmost(zi.r)
		removed = u.ifs[y].c
		x = u.ifs[y].r
		u.shrinkFrom(y)
		if u.ifs[y].p == z {
			xp = y
		} else {
			xp = u.ifs[y].p
			u.transplant(y, x)
			u.ifs[y].r = zi.r
			u.ifs[zi.r].p = y
		}
		u.transplant(z, y)
		zi = u.ifs[z] // sizes of z were updated by shrinkFrom.
		yi := &u.ifs[y]
		yi.l, yi.c, yi.lsz, yi.rsz = zi.l, zi.c, zi.lsz, zi.rsz
		u.ifs[zi.l].p = y
	}
	if removed == black {
		u.eraseFixup(x, xp)
	}
	u.cnt--
	u.release(z)
}

// eraseFixup restores the red-black coloring after a black node was removed above x, where x
// carries an extra black. x may be 0, so its parent xp is tracked separately.
// At most 3 rotations.
func (u *Tree[T, S]) eraseFixup(x, xp S) {
	for x != u.root && u.ifs[x].c == black {
		d := right
		if u.ifs[xp].l == x {
			d = left
		}
		// x carries less black than its sibling, so the sibling exists.
		w := u.child(xp, !d)
		if u.ifs[w].c == red {
			u.ifs[w].c, u.ifs[xp].c = black, red
			u.rotate(xp, d)
			w = u.child(xp, !d)
		}
		if u.ifs[u.ifs[w].l].c == black && u.ifs[u.ifs[w].r].c == black {
			u.ifs[w].c = red
			x, xp = xp, u.ifs[xp].p
			continue
		}
		if far := u.child(w, !d); u.ifs[far].c == black {
			u.ifs[u.child(w, d)].c, u.ifs[w].c = black, red
			u.rotate(w, !d)
			w = u.child(xp, !d)
		}
		u.ifs[w].c, u.ifs[xp].c = u.ifs[xp].c, black
		u.ifs[u.child(w, !d)].c = black
		u.rotate(xp, d)
		x = u.root
	}
	if x != 0 {
		u.ifs[x].c = black
	}
}

// Remove v from the tree. Returns false if v wasn't in the tree.
// Time: O(log n)
func (u *Tree[T, S]) Remove(v T) bool {
	if n := u.Find(v); n != 0 {
		u.Erase(n)
		return true
	}
	return false
}
