// Package soda is the front-end of the Soda toy language: it turns UTF-8
// source text into a fully decorated abstract syntax tree by running the
// tokenizer, the recursive-descent parser, and the two semantic passes in
// sequence. It stops at the first diagnostic and never attempts recovery,
// mirroring how the tool this front-end was modeled on treats a batch of
// SQL source as an all-or-nothing unit.
package soda

import (
	"os"

	"github.com/soda-lang/soda/internal/ast"
	"github.com/soda-lang/soda/internal/parser"
	"github.com/soda-lang/soda/internal/sema"
)

// Parse tokenizes and parses input, then runs the scope pass and the
// type-reference pass over the result, in that order: the reference pass
// depends on every symbol table the scope pass builds and must never run
// first. file is used only to label diagnostics.
func Parse(file string, input []byte) (*ast.TU, error) {
	return ParseOpts(file, input, Options{})
}

// ParseOpts is Parse with Options controlling reader behavior, such as
// StrictBOM from a project's soda.yaml.
func ParseOpts(file string, input []byte, opts Options) (*ast.TU, error) {
	var tu *ast.TU
	var err error
	if opts.StrictBOM {
		tu, err = parser.ParseStrictBOM(file, input)
	} else {
		tu, err = parser.Parse(file, input)
	}
	if err != nil {
		return nil, err
	}
	if err := sema.RunScopePass(file, tu); err != nil {
		return nil, err
	}
	if err := sema.RunTypeRefPass(file, tu); err != nil {
		return nil, err
	}
	return tu, nil
}

// ParseString is Parse for callers that already have source as a string,
// such as tests.
func ParseString(file, input string) (*ast.TU, error) {
	return Parse(file, []byte(input))
}

// ParseFile reads path from disk and runs Parse over its contents.
func ParseFile(path string) (*ast.TU, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}
