// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/prim_kruskal"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("A B 1\nB C 2\nA C 3\n"), 0o644))

	out, err := execute(t, "--input", path)
	require.NoError(t, err)
	require.Equal(t, "A B 1\nB C 2\n# trees: 1, total weight: 3\n", out)

	out, err = execute(t, "-i", path, "-m", "prim", "-r", "C")
	require.NoError(t, err)
	require.Equal(t, "B C 2\nA B 1\n# trees: 1, total weight: 3\n", out)
}

func TestRootCmdErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("A B 1\n"), 0o644))

	_, err := execute(t, "-i", path, "-m", "boruvka")
	require.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	_, err = execute(t, "extra-arg")
	require.Error(t, err)
}
