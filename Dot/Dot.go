// Package Dot renders a red-black tree as a Graphviz digraph. Every node is a filled record colored
// like the node; every absent child is drawn as its own point so the black leaves are visible.
package Dot

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ansel1/merry"
	"golang.org/x/exp/constraints"
)

// Graph is the read-only view of a tree that Write needs. *Trees.Tree satisfies it.
type Graph[T any, S constraints.Unsigned] interface {
	Root() S
	//Walk visits a parent before its children, each node once.
	Walk(f func(n S) bool)
	Left(n S) S
	Right(n S) S
	IsRed(n S) bool
	Key(n S) T
}

// Write the digraph of g to w.
func Write[T any, S constraints.Unsigned](w io.Writer, g Graph[T, S]) error {
	bw := bufio.NewWriter(w)
	var err error
	printf := func(format string, a ...any) {
		if err == nil {
			_, err = fmt.Fprintf(bw, format, a...)
		}
	}
	nils := 0
	edge := func(from, to S) {
		if to != 0 {
			printf("\tn%d -> n%d;\n", from, to)
			return
		}
		printf("\tnil%d [shape=point];\n\tn%d -> nil%d;\n", nils, from, nils)
		nils++
	}
	printf("digraph DG {\n\tnode [shape=record, style=filled, fontcolor=white];\n")
	if g.Root() != 0 {
		g.Walk(func(n S) bool {
			c := "black"
			if g.IsRed(n) {
				c = "red"
			}
			printf("\tn%d [label=%q, fillcolor=%s];\n", n, fmt.Sprint(g.Key(n)), c)
			edge(n, g.Left(n))
			edge(n, g.Right(n))
			return err == nil
		})
	}
	printf("}\n")
	if err == nil {
		err = bw.Flush()
	}
	return merry.Prepend(err, "dot: write")
}
