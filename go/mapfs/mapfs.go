// Package mapfs implements a small in-memory fs.FS, adapted from the
// original flat filename-to-real-path map into a genuine in-memory tree
// keyed by slash-separated path, so tests can hand a Project loader a
// filesystem without touching disk.
package mapfs

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// MapFS is an in-memory filesystem: keys are slash-separated paths
// relative to the root, values are file contents.
type MapFS map[string][]byte

var _ fs.FS = (MapFS)(nil)
var _ fs.ReadFileFS = (MapFS)(nil)

// Add stores name with the given content, overwriting any prior entry.
func (m MapFS) Add(name string, content []byte) {
	m[name] = content
}

func (m MapFS) Open(name string) (fs.File, error) {
	if name == "." {
		return m.openDir(".")
	}
	if content, ok := m[name]; ok {
		return &mapFile{name: path.Base(name), data: content}, nil
	}
	if isDir(m, name) {
		return m.openDir(name)
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

func (m MapFS) ReadFile(name string) ([]byte, error) {
	content, ok := m[name]
	if !ok {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrNotExist}
	}
	return content, nil
}

func isDir(m MapFS, name string) bool {
	prefix := name + "/"
	for k := range m {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

func (m MapFS) openDir(dir string) (fs.File, error) {
	seen := make(map[string]bool)
	var entries []fs.DirEntry
	for k := range m {
		rel := k
		if dir != "." {
			prefix := dir + "/"
			if !strings.HasPrefix(k, prefix) {
				continue
			}
			rel = strings.TrimPrefix(k, prefix)
		}
		base := rel
		isLeaf := true
		if idx := strings.IndexByte(rel, '/'); idx >= 0 {
			base = rel[:idx]
			isLeaf = false
		}
		if seen[base] {
			continue
		}
		seen[base] = true
		entries = append(entries, fileDirEntry{name: base, isDir: !isLeaf})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return &virtualDir{name: dir, entries: entries}, nil
}

type mapFile struct {
	name   string
	data   []byte
	offset int
}

func (f *mapFile) Stat() (fs.FileInfo, error) {
	return fileInfo{name: f.name, size: int64(len(f.data))}, nil
}

func (f *mapFile) Read(p []byte) (int, error) {
	if f.offset >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.offset:])
	f.offset += n
	return n, nil
}

func (f *mapFile) Close() error { return nil }

// virtualDir implements fs.ReadDirFile for a synthesized directory entry.
type virtualDir struct {
	name    string
	entries []fs.DirEntry
	pos     int
}

func (d *virtualDir) Stat() (fs.FileInfo, error) {
	return dirInfo{name: path.Base(d.name)}, nil
}

func (d *virtualDir) Read([]byte) (int, error) {
	return 0, fmt.Errorf("mapfs: %s is a directory", d.name)
}

func (d *virtualDir) Close() error { return nil }

func (d *virtualDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if d.pos >= len(d.entries) {
		if n <= 0 {
			return nil, nil
		}
		return nil, io.EOF
	}
	if n <= 0 || d.pos+n > len(d.entries) {
		n = len(d.entries) - d.pos
	}
	out := d.entries[d.pos : d.pos+n]
	d.pos += n
	return out, nil
}

type fileDirEntry struct {
	name  string
	isDir bool
}

func (e fileDirEntry) Name() string      { return e.name }
func (e fileDirEntry) IsDir() bool       { return e.isDir }
func (e fileDirEntry) Type() fs.FileMode { return e.Info1().Mode().Type() }
func (e fileDirEntry) Info1() fileInfo {
	mode := fs.FileMode(0)
	if e.isDir {
		mode = fs.ModeDir
	}
	return fileInfo{name: e.name, mode: mode}
}
func (e fileDirEntry) Info() (fs.FileInfo, error) { return e.Info1(), nil }

type fileInfo struct {
	name string
	size int64
	mode fs.FileMode
}

func (i fileInfo) Name() string       { return i.name }
func (i fileInfo) Size() int64        { return i.size }
func (i fileInfo) Mode() fs.FileMode  { return i.mode }
func (i fileInfo) ModTime() time.Time { return time.Time{} }
func (i fileInfo) IsDir() bool        { return i.mode.IsDir() }
func (i fileInfo) Sys() interface{}   { return nil }

type dirInfo struct {
	name string
}

func (d dirInfo) Name() string       { return d.name }
func (d dirInfo) Size() int64        { return 0 }
func (d dirInfo) Mode() fs.FileMode  { return fs.ModeDir }
func (d dirInfo) ModTime() time.Time { return time.Time{} }
func (d dirInfo) IsDir() bool        { return true }
func (d dirInfo) Sys() interface{}   { return nil }
