package soda

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"sort"
	"strings"

	"github.com/soda-lang/soda/internal/ast"
)

// Options affects how a file or a Project is parsed. An empty Options gets
// the default behavior.
type Options struct {
	// PartialResults, if set, makes Load return a populated Project
	// alongside a ParseErrors even when some files failed, instead of
	// discarding everything it found. Ignored by Parse/ParseOpts.
	PartialResults bool

	// StrictBOM, if set, turns a byte-order mark found anywhere past the
	// start of a file into a syntax error instead of passing it through
	// to the tokenizer as ordinary input.
	StrictBOM bool
}

// File is one successfully parsed and decorated source file within a
// Project.
type File struct {
	Path string
	TU   *ast.TU
}

// Project is a directory tree of Soda source files parsed and decorated
// together. Unlike Parse, which handles one file in isolation, a Project
// is the unit a command-line build or IDE-style tool actually works with.
type Project struct {
	Files []File

	// ContentHash is a short, stable digest of every successfully parsed
	// file's contents, ordered by path. It changes whenever any file in
	// the project changes, and is suitable as a cache key.
	ContentHash string
}

// Load walks every *.soda file reachable under fsys, parses and decorates
// each one, and returns the aggregate Project. If any file fails and
// opts.PartialResults is false, Load returns the first error immediately.
// If opts.PartialResults is true, Load keeps going and returns a
// ParseErrors alongside whatever did parse successfully.
func Load(opts Options, fsys fs.FS) (Project, error) {
	var paths []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".soda") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return Project{}, err
	}
	sort.Strings(paths)

	var result Project
	var errs []error
	hasher := sha256.New()

	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			if !opts.PartialResults {
				return Project{}, err
			}
			errs = append(errs, err)
			continue
		}
		tu, err := ParseOpts(path, data, opts)
		if err != nil {
			if !opts.PartialResults {
				return Project{}, err
			}
			errs = append(errs, err)
			continue
		}
		result.Files = append(result.Files, File{Path: path, TU: tu})
		hasher.Write([]byte(path))
		hasher.Write([]byte{0})
		hasher.Write(data)
	}
	result.ContentHash = hex.EncodeToString(hasher.Sum(nil)[:6])

	if len(errs) > 0 {
		return result, ParseErrors{Errors: errs}
	}
	return result, nil
}
