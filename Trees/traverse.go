package Trees

import (
	"github.com/g-m-twostay/rbstat/Queues"
)

// Walk every node once in preorder, a parent before its children and the left subtree before the right.
// It backtracks through parent links, so it needs no stack. Stops when f returns false.
// The tree mustn't be modified during the walk.
// Time: O(n); Space: O(1)
func (u *Tree[T, S]) Walk(f func(n S) bool) {
	var prev S
	for cur := u.root; cur != 0; {
		n := u.ifs[cur]
		var next S
		if prev == n.p { // came down from the parent.
			if !f(cur) {
				return
			}
			if n.l != 0 {
				next = n.l
			} else if n.r != 0 {
				next = n.r
			} else {
				next = n.p
			}
		} else if prev == n.l && n.r != 0 {
			next = n.r
		} else {
			next = n.p
		}
		prev, cur = cur, next
	}
}

type levelItem[S any] struct {
	n     S
	depth int
}

// LevelOrder visits every node once breadth first, with its depth; the root has depth 0. Stops when f returns false.
// Time: O(n); Space: O(width)
func (u *Tree[T, S]) LevelOrder(f func(n S, depth int) bool) {
	if u.root == 0 {
		return
	}
	q := Queues.MakeArrayQueue[levelItem[S]](uint(u.cnt>>1) + 1)
	q.Push(levelItem[S]{u.root, 0})
	for !q.Empty() {
		it, _ := q.Pop()
		if !f(it.n, it.depth) {
			return
		}
		if l := u.ifs[it.n].l; l != 0 {
			q.Push(levelItem[S]{l, it.depth + 1})
		}
		if r := u.ifs[it.n].r; r != 0 {
			q.Push(levelItem[S]{r, it.depth + 1})
		}
	}
}

// InOrder gives the values in ascending order until f returns false.
// Time: amortized O(1) per value; Space: O(1)
func (u *Tree[T, S]) InOrder(f func(v T) bool) {
	if u.root == 0 {
		return
	}
	for cur := u.leftmost(u.root); cur != 0; cur = u.next(cur) {
		if !f(u.vs[cur-1]) {
			return
		}
	}
}

// Height is the number of nodes on the longest path from the root, 0 for the empty tree.
// Time: O(n)
func (u *Tree[T, S]) Height() (h int) {
	u.LevelOrder(func(_ S, d int) bool {
		h = d + 1
		return true
	})
	return
}

// BlackHeight is the number of black nodes on the leftmost path from the root, the root included.
// In a valid tree every path from the root to an absent child has this many.
// Time: O(log n)
func (u *Tree[T, S]) BlackHeight() (h int) {
	for cur := u.root; cur != 0; cur = u.ifs[cur].l {
		if u.ifs[cur].c == black {
			h++
		}
	}
	return
}
