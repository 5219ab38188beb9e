package Trees

// Find the node holding v. Returns 0 if v isn't in the tree.
// Time: O(log n); Space: O(1)
func (u *Tree[T, S]) Find(v T) S {
	for cur := u.root; cur != 0; {
		if k := u.vs[cur-1]; v < k {
			cur = u.ifs[cur].l
		} else if v > k {
			cur = u.ifs[cur].r
		} else {
			return cur
		}
	}
	return 0
}

// Has v in the tree.
func (u *Tree[T, S]) Has(v T) bool {
	return u.Find(v) != 0
}

// CountLesser returns the number of values in the tree that are strictly less than v. v needn't be in the tree.
// Time: O(log n); Space: O(1)
func (u *Tree[T, S]) CountLesser(v T) S {
	var ra S = 0
	for cur := u.root; cur != 0; {
		if k := u.vs[cur-1]; v < k {
			cur = u.ifs[cur].l
		} else if v > k {
			ra += u.ifs[cur].lsz + 1
			cur = u.ifs[cur].r
		} else {
			return ra + u.ifs[cur].lsz
		}
	}
	return ra
}

// SelectByRank returns the value of rank k, starting from 0. Panics with RankError if k>=Size().
// Time: O(log n); Space: O(1)
func (u *Tree[T, S]) SelectByRank(k S) T {
	if k >= u.cnt {
		panic(RankError{uint64(k), uint64(u.cnt)})
	}
	cur := u.root
	for {
		if lsz := u.ifs[cur].lsz; k < lsz {
			cur = u.ifs[cur].l
		} else if k > lsz {
			k -= lsz + 1
			cur = u.ifs[cur].r
		} else {
			return u.vs[cur-1]
		}
	}
}

// Minimum value of the tree; false if the tree is empty.
func (u *Tree[T, S]) Minimum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return u.vs[u.leftmost(u.root)-1], true
}

// Maximum value of the tree; false if the tree is empty.
func (u *Tree[T, S]) Maximum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return u.vs[u.rightmost(u.root)-1], true
}

// Predecessor returns the greatest value less than v.
// Time: O(log n); Space: O(1)
func (u *Tree[T, S]) Predecessor(v T) (p T, ok bool) {
	for cur := u.root; cur != 0; {
		if v <= u.vs[cur-1] {
			cur = u.ifs[cur].l
		} else {
			p, ok = u.vs[cur-1], true
			cur = u.ifs[cur].r
		}
	}
	return
}

// Successor returns the smallest value greater than v.
// Time: O(log n); Space: O(1)
func (u *Tree[T, S]) Successor(v T) (p T, ok bool) {
	for cur := u.root; cur != 0; {
		if v < u.vs[cur-1] {
			p, ok = u.vs[cur-1], true
			cur = u.ifs[cur].l
		} else {
			cur = u.ifs[cur].r
		}
	}
	return
}
