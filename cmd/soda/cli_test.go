package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withCapturedStdout(t *testing.T, f func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	f()
	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestHashCmd_PrintsStableHash(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.soda"), []byte("int x;"), 0o644))
	directory = dir

	out := withCapturedStdout(t, func() {
		require.NoError(t, hashCmd.RunE(hashCmd, nil))
	})
	assert.GreaterOrEqual(t, len(out), 2, "want a non-trivial hash line, got %q", out)

	again := withCapturedStdout(t, func() {
		require.NoError(t, hashCmd.RunE(hashCmd, nil))
	})
	assert.Equal(t, out, again, "hash should be the same for unchanged sources")
}

func TestScanCmd_ReportsFileCount(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.soda"), []byte("int x; int y;"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("not soda"), 0o644))
	directory = dir

	out := withCapturedStdout(t, func() {
		require.NoError(t, scanCmd.RunE(scanCmd, nil))
	})
	assert.Contains(t, out, "a.soda: 2 top-level statement(s)")
}

func TestSymbolsCmd_ListsTopLevelNames(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.soda")
	require.NoError(t, os.WriteFile(file, []byte("int x; void f() {}"), 0o644))

	out := withCapturedStdout(t, func() {
		require.NoError(t, symbolsCmd.RunE(symbolsCmd, []string{file}))
	})
	assert.Contains(t, out, "x")
	assert.Contains(t, out, "f")
}
