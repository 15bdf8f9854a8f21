package soda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soda-lang/soda/go/mapfs"
)

func TestLoad_ParsesEveryFileInTree(t *testing.T) {
	fsys := mapfs.MapFS{
		"a.soda":        []byte("int x;"),
		"nested/b.soda": []byte("class Widget {}"),
		"README.md":     []byte("not soda source"),
	}

	proj, err := Load(Options{}, fsys)
	require.NoError(t, err)
	assert.Len(t, proj.Files, 2, "README.md should be skipped")
	assert.NotEmpty(t, proj.ContentHash)
}

func TestLoad_StopsAtFirstErrorByDefault(t *testing.T) {
	fsys := mapfs.MapFS{"bad.soda": []byte("int x")}

	_, err := Load(Options{}, fsys)
	require.Error(t, err)
}

func TestLoad_PartialResultsKeepsGoodFiles(t *testing.T) {
	fsys := mapfs.MapFS{
		"good.soda": []byte("int x;"),
		"bad.soda":  []byte("int x"),
	}

	proj, err := Load(Options{PartialResults: true}, fsys)
	require.Error(t, err)
	_, ok := err.(ParseErrors)
	assert.True(t, ok, "got %T, want ParseErrors", err)
	assert.Len(t, proj.Files, 1)
}

func TestLoad_ContentHashChangesWithContent(t *testing.T) {
	fsys1 := mapfs.MapFS{"a.soda": []byte("int x;")}
	p1, err := Load(Options{}, fsys1)
	require.NoError(t, err)

	fsys2 := mapfs.MapFS{"a.soda": []byte("int y;")}
	p2, err := Load(Options{}, fsys2)
	require.NoError(t, err)

	assert.NotEqual(t, p1.ContentHash, p2.ContentHash)
}
