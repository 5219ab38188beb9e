package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	c, err := parseFlags([]string{"-verify", "-erase", "2", "-dot", "t.dot", "-v"})
	require.NoError(t, err)
	require.Equal(t, config{dot: "t.dot", verify: true, erase: 2, verbose: true}, c)

	_, err = parseFlags([]string{"-erase", "-1"})
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	dot := filepath.Join(t.TempDir(), "tree.dot")
	tree, err := run(config{dot: dot, verify: true, erase: 2}, strings.NewReader("10 5 3 8 1 4 7 9 2 6 0"))
	require.NoError(t, err)
	require.Equal(t, uint32(8), tree.Size())
	require.Zero(t, tree.Find(5))
	require.Zero(t, tree.Find(3))
	require.Equal(t, 8, tree.SelectByRank(6))

	b, err := os.ReadFile(dot)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(b), "digraph DG {"))
	require.Equal(t, 8, strings.Count(string(b), "[label="))
}

func TestRun_Errors(t *testing.T) {
	_, err := run(config{}, strings.NewReader("3 1"))
	require.Error(t, err)

	tree, err := run(config{erase: 10}, strings.NewReader("2 1 2"))
	require.NoError(t, err)
	require.Zero(t, tree.Size())

	_, err = run(config{dot: filepath.Join(t.TempDir(), "missing", "tree.dot")}, strings.NewReader("1 1"))
	require.ErrorContains(t, err, "create dot file")
}
