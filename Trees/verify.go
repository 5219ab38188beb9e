package Trees

import (
	"github.com/g-m-twostay/rbstat"
)

// Verify the tree: it's a proper binary tree of Size() nodes with agreeing parent links, every size
// counter is right, values are strictly ascending in-order, and the red-black coloring holds.
// The checkers run in this order and the first failure ends the check. Meant for tests: Time: O(n); Space: O(n)
func (u *Tree[T, S]) Verify() bool {
	return u.verifyStructure() && u.verifySizes() && u.verifyOrder() && u.verifyColors()
}

// dfs visits the nodes reachable from the root in preorder using an explicit stack until check
// returns false. It doesn't rely on parent links.
func (u *Tree[T, S]) dfs(check func(n S) bool) bool {
	if u.root == 0 {
		return true
	}
	st := make([]S, 1, 64)
	st[0] = u.root
	for len(st) > 0 {
		n := st[len(st)-1]
		st = st[:len(st)-1]
		if !check(n) {
			return false
		}
		if r := u.ifs[n].r; r != 0 {
			st = append(st, r)
		}
		if l := u.ifs[n].l; l != 0 {
			st = append(st, l)
		}
	}
	return true
}

// verifyStructure checks that every child links back to its parent, the root has no parent, no
// node is reached twice and exactly Size() nodes are reachable.
func (u *Tree[T, S]) verifyStructure() bool {
	if u.root == 0 {
		return u.cnt == 0
	}
	if u.ifs[u.root].p != 0 {
		return false
	}
	seen := rbstat.NewBitArray(len(u.ifs))
	var passed S
	ok := u.dfs(func(n S) bool {
		if int(n) >= len(u.ifs) || seen.Swap(int(n), true) {
			return false
		}
		nd := u.ifs[n]
		if nd.l != 0 && (int(nd.l) >= len(u.ifs) || u.ifs[nd.l].p != n) {
			return false
		}
		if nd.r != 0 && (int(nd.r) >= len(u.ifs) || u.ifs[nd.r].p != n) {
			return false
		}
		passed++
		return passed <= u.cnt
	})
	return ok && passed == u.cnt
}

// verifySizes checks the counters of every node against its children. Together with the structure
// check this proves every counter equals the size of its subtree.
func (u *Tree[T, S]) verifySizes() bool {
	if u.size(u.root) != u.cnt {
		return false
	}
	return u.dfs(func(n S) bool {
		nd := u.ifs[n]
		return nd.lsz == u.size(nd.l) && nd.rsz == u.size(nd.r)
	})
}

// verifyOrder checks that in-order values are strictly ascending.
func (u *Tree[T, S]) verifyOrder() bool {
	var st []S
	var prev S
	for cur := u.root; cur != 0 || len(st) > 0; {
		for ; cur != 0; cur = u.ifs[cur].l {
			st = append(st, cur)
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		if prev != 0 && !(u.vs[prev-1] < u.vs[cur-1]) {
			return false
		}
		prev, cur = cur, u.ifs[cur].r
	}
	return true
}

// verifyColors checks that the root is black, no red node has a red child, and both children of every
// node have the same black height. Black heights are computed bottom up into a table indexed by handle.
func (u *Tree[T, S]) verifyColors() bool {
	if u.ifs[u.root].c != black {
		return false
	}
	order := make([]S, 0, u.cnt)
	u.dfs(func(n S) bool {
		order = append(order, n)
		return true
	})
	bh := make([]int, len(u.ifs)) // black nodes below n on any path to an absent child; bh[0]=0.
	below := func(c S) int {
		if c != 0 && u.ifs[c].c == black {
			return bh[c] + 1
		}
		return bh[c]
	}
	for i := len(order) - 1; i > -1; i-- { // reversed preorder has children before parents.
		n := order[i]
		nd := u.ifs[n]
		if nd.c == red && (u.ifs[nd.l].c == red || u.ifs[nd.r].c == red) {
			return false
		}
		if hl := below(nd.l); hl != below(nd.r) {
			return false
		} else {
			bh[n] = hl
		}
	}
	return true
}
