package mapfs

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFS_ReadFile(t *testing.T) {
	m := MapFS{"a.soda": []byte("int x;")}
	data, err := m.ReadFile("a.soda")
	require.NoError(t, err)
	assert.Equal(t, "int x;", string(data))
}

func TestMapFS_WalkDirFindsNestedFiles(t *testing.T) {
	m := MapFS{
		"a.soda":        []byte("int x;"),
		"nested/b.soda": []byte("int y;"),
	}
	var found []string
	err := fs.WalkDir(m, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			found = append(found, p)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestMapFS_OpenMissingIsNotExist(t *testing.T) {
	m := MapFS{}
	_, err := m.Open("missing.soda")
	require.Error(t, err)
	assert.True(t, fs.IsNotExist(err), "got %v, want fs.ErrNotExist", err)
}
