package Trees

import (
	"golang.org/x/exp/constraints"
)

// base is the node arena shared by the tree's engines. It owns every node; links are indexes into ifs.
type base[T any, S constraints.Unsigned] struct {
	root, free S       // free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
	ifs        []info[S] // ifs[0] is nil. len(ifs)=number of allocated slots+1
	vs         []T       // vs[i] corresponds to ifs[i+1]
}

func (u *base[T, S]) child(n S, d side) S {
	if d == right {
		return u.ifs[n].r
	}
	return u.ifs[n].l
}

func (u *base[T, S]) setChild(n S, d side, c S) {
	if d == right {
		u.ifs[n].r = c
	} else {
		u.ifs[n].l = c
	}
}

// sideOf n under its parent. n mustn't be the root.
func (u *base[T, S]) sideOf(n S) side {
	if u.ifs[u.ifs[n].p].l == n {
		return left
	}
	return right
}

// size of the subtree rooting at n.
func (u *base[T, S]) size(n S) S {
	if n == 0 {
		return 0
	}
	return u.ifs[n].lsz + u.ifs[n].rsz + 1
}

// addFree index once.
func (u *base[T, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a detached red node holding v. Holes are filled before appending to the arrays.
func (u *base[T, S]) alloc(v T) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[S]{c: red}
		u.vs[i-1] = v
		return i
	}
	i := S(len(u.ifs))
	if int(i) != len(u.ifs) || i == 0 {
		panic(CapacityError{uint64(len(u.ifs) - 1)})
	}
	u.ifs = append(u.ifs, info[S]{c: red})
	u.vs = append(u.vs, v)
	return i
}

// release the slot of a detached node, dropping its value.
func (u *base[T, S]) release(n S) {
	u.vs[n-1] = *new(T)
	u.addFree(n)
}

// replaceChild old under p by c. p==0 means old is the root. The parent link of c isn't touched.
func (u *base[T, S]) replaceChild(p, old, c S) {
	if p == 0 {
		u.root = c
	} else if u.ifs[p].l == old {
		u.ifs[p].l = c
	} else {
		u.ifs[p].r = c
	}
}

// transplant c into the position of old. Sizes and the links of old are left as they were.
func (u *base[T, S]) transplant(old, c S) {
	p := u.ifs[old].p
	u.replaceChild(p, old, c)
	if c != 0 {
		u.ifs[c].p = p
	}
}

// rotateLeft x, lifting its right child y into its place:
//
//	   x             y
//	  / \           / \
//	 a   y   --->  x   c
//	    / \       / \
//	   b   c     a   b
//
// Only the sizes of x and y change.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateLeft(x S) {
	y := u.ifs[x].r
	if y == 0 {
		panic(RotationError{uint64(x), right})
	}
	xi, yi := &u.ifs[x], &u.ifs[y]
	b := yi.l
	xi.r, xi.rsz = b, yi.lsz
	if b != 0 {
		u.ifs[b].p = x
	}
	u.replaceChild(xi.p, x, y)
	yi.p = xi.p
	yi.l, yi.lsz = x, xi.lsz+xi.rsz+1
	xi.p = y
}

// rotateRight x, lifting its left child y into its place. Mirror of rotateLeft.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateRight(x S) {
	y := u.ifs[x].l
	if y == 0 {
		panic(RotationError{uint64(x), left})
	}
	xi, yi := &u.ifs[x], &u.ifs[y]
	b := yi.r
	xi.l, xi.lsz = b, yi.rsz
	if b != 0 {
		u.ifs[b].p = x
	}
	u.replaceChild(xi.p, x, y)
	yi.p = xi.p
	yi.r, yi.rsz = x, xi.lsz+xi.rsz+1
	xi.p = y
}

// rotate x down toward d.
func (u *base[T, S]) rotate(x S, d side) {
	if d == left {
		u.rotateLeft(x)
	} else {
		u.rotateRight(x)
	}
}

// leftmost node of the subtree rooting at n, n!=0.
func (u *base[T, S]) leftmost(n S) S {
	for u.ifs[n].l != 0 {
		n = u.ifs[n].l
	}
	return n
}

func (u *base[T, S]) rightmost(n S) S {
	for u.ifs[n].r != 0 {
		n = u.ifs[n].r
	}
	return n
}

// next node in in-order after n, using parent links. 0 if n is the last.
func (u *base[T, S]) next(n S) S {
	if r := u.ifs[n].r; r != 0 {
		return u.leftmost(r)
	}
	p := u.ifs[n].p
	for p != 0 && u.ifs[p].r == n {
		n, p = p, u.ifs[p].p
	}
	return p
}

// Clear the tree. Doesn't allocate new arrays; the values are dropped.
func (u *base[T, S]) Clear() {
	clear(u.vs)
	u.vs = u.vs[:0]
	clear(u.ifs)
	u.ifs = u.ifs[:1]
	u.root, u.free = 0, 0
}
