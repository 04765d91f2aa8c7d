// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package dirdiff

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/antgroup/udiff/modules/difflib"
	"github.com/antgroup/udiff/modules/textio"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

func TestCompare(t *testing.T) {
	oldDir := writeTree(t, map[string]string{
		"same.txt":     "x\ny\n",
		"sub/edit.txt": "a\nb\nc\n",
		"gone.txt":     "bye\n",
		"bin.dat":      "a\x00b",
	})
	newDir := writeTree(t, map[string]string{
		"same.txt":     "x\ny\n",
		"sub/edit.txt": "a\nB\nc\n",
		"added.txt":    "hi\n",
		"bin.dat":      "a\x00c",
	})
	diffs, err := Compare(context.Background(), oldDir, newDir, &Options{Diff: difflib.DefaultOptions(), Jobs: 2})
	require.NoError(t, err)
	require.Len(t, diffs, 4)

	require.Equal(t, "added.txt", diffs[0].Path)
	require.Equal(t, []string{
		"--- /dev/null\n",
		"+++ " + filepath.Join(newDir, "added.txt") + "\n",
		"@@ -0,0 +1 @@\n",
		"+hi\n",
	}, diffs[0].Lines)

	require.Equal(t, "bin.dat", diffs[1].Path)
	require.Empty(t, diffs[1].Lines)
	require.Equal(t, "Binary files "+filepath.Join(oldDir, "bin.dat")+" and "+filepath.Join(newDir, "bin.dat")+" differ", diffs[1].Message)

	require.Equal(t, "gone.txt", diffs[2].Path)
	require.Equal(t, []string{
		"--- " + filepath.Join(oldDir, "gone.txt") + "\n",
		"+++ /dev/null\n",
		"@@ -1 +0,0 @@\n",
		"-bye\n",
	}, diffs[2].Lines)

	require.Equal(t, "sub/edit.txt", diffs[3].Path)
	require.Equal(t, []string{" a\n", "-b\n", "+B\n", " c\n"}, diffs[3].Lines[3:])
}

func TestCompareDates(t *testing.T) {
	oldDir := writeTree(t, map[string]string{"a.txt": "1\n"})
	newDir := writeTree(t, map[string]string{})
	diffs, err := Compare(context.Background(), oldDir, newDir, &Options{Dates: true})
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	require.Equal(t, "+++ /dev/null\t1970-01-01 00:00:00.000000000 +0000\n", diffs[0].Lines[1])
}

func TestCompareCanceled(t *testing.T) {
	oldDir := writeTree(t, map[string]string{"a.txt": "1\n"})
	newDir := writeTree(t, map[string]string{"a.txt": "2\n"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Compare(ctx, oldDir, newDir, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCompareMissingRoot(t *testing.T) {
	_, err := Compare(context.Background(), filepath.Join(t.TempDir(), "nope"), t.TempDir(), nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

type countProgress struct {
	total uint64
	done  atomic.Int64
}

func (c *countProgress) SetTotal(n uint64) { c.total = n }
func (c *countProgress) Add(n int)         { c.done.Add(int64(n)) }

func TestCompareProgress(t *testing.T) {
	oldDir, newDir := t.TempDir(), t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.WriteFile(filepath.Join(oldDir, name), []byte(name+"\n"), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(newDir, "a"), []byte("A\n"), 0644))
	p := &countProgress{}
	diffs, err := Compare(context.Background(), oldDir, newDir, &Options{Jobs: 2, Progress: p})
	require.NoError(t, err)
	require.Len(t, diffs, 3)
	require.Equal(t, uint64(3), p.total)
	require.Equal(t, int64(3), p.done.Load())
}

func TestCompareReadError(t *testing.T) {
	oldDir, newDir := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(oldDir, "big.txt"), []byte("0123456789\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(newDir, "big.txt"), []byte("9876543210\n"), 0644))
	_, err := Compare(context.Background(), oldDir, newDir, &Options{Text: &textio.Options{MaxSize: 4}})
	require.ErrorIs(t, err, textio.ErrTooLarge)
	require.ErrorContains(t, err, "compare big.txt")
}
