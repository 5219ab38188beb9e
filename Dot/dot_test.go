package Dot

import (
	"errors"
	"strings"
	"testing"

	"github.com/g-m-twostay/rbstat/Trees"
	"github.com/stretchr/testify/require"
)

func TestWrite_Empty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Write[int, uint8](&sb, Trees.New[int, uint8](0)))
	require.Equal(t, "digraph DG {\n\tnode [shape=record, style=filled, fontcolor=white];\n}\n", sb.String())
}

func TestWrite(t *testing.T) {
	tree := Trees.New[int, uint8](0)
	for _, v := range []int{2, 1, 3} {
		tree.Insert(v)
	}
	var sb strings.Builder
	require.NoError(t, Write[int, uint8](&sb, tree))
	out := sb.String()
	require.Equal(t, uint8(1), tree.Find(2)) // first insert takes the first slot.
	require.Contains(t, out, "\tn1 [label=\"2\", fillcolor=black];\n")
	require.Contains(t, out, "\tn2 [label=\"1\", fillcolor=red];\n")
	require.Contains(t, out, "\tn3 [label=\"3\", fillcolor=red];\n")
	require.Contains(t, out, "\tn1 -> n2;\n")
	require.Contains(t, out, "\tn1 -> n3;\n")
	require.Equal(t, 4, strings.Count(out, "[shape=point]"))
	require.Less(t, strings.Index(out, "n1 [label"), strings.Index(out, "n2 [label"))
	require.True(t, strings.HasSuffix(out, "}\n"))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite_Error(t *testing.T) {
	tree := Trees.New[int, uint16](0)
	for i := range 2000 {
		tree.Insert(i)
	}
	err := Write[int, uint16](failWriter{}, tree)
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
	require.Contains(t, err.Error(), "dot: write")
}
