package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soda-lang/soda/internal/ast"
	"github.com/soda-lang/soda/internal/parser"
)

func parseAndRunScopePass(t *testing.T, src string) *ast.TU {
	t.Helper()
	tu, err := parser.ParseString("t.soda", src)
	require.NoError(t, err)
	require.NoError(t, RunScopePass("t.soda", tu))
	return tu
}

func TestScopePass_QualifiesNestedNames(t *testing.T) {
	tu := parseAndRunScopePass(t, "namespace a { class B { int x; } }")

	_, ok := tu.Symbols.Lookup("a")
	assert.True(t, ok, "TU symbols should contain %q", "a")

	ns := tu.Stmts[0].(*ast.Namespace)
	_, ok = ns.Symbols.Lookup("B")
	assert.True(t, ok, "namespace symbols should contain %q", "B")

	cd := ns.Stmts[0].(*ast.ClassDef)
	vd, ok := cd.Symbols.Lookup("x")
	require.True(t, ok, "class symbols should contain %q", "x")
	gotVd := vd.(*ast.VarDecl)
	assert.Equal(t, "a.B.x", gotVd.Name)
}

func TestScopePass_RedefinitionIsError(t *testing.T) {
	tu, err := parser.ParseString("t.soda", "int x; int x;")
	require.NoError(t, err)
	err = RunScopePass("t.soda", tu)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x")
}

func TestScopePass_ArgumentsCollideWithLocals(t *testing.T) {
	tu, err := parser.ParseString("t.soda", "void f(int x) { int x; }")
	require.NoError(t, err)
	err = RunScopePass("t.soda", tu)
	require.Error(t, err, "expected a redefinition error for a local shadowing an argument")
}

func TestScopePass_QualifiesArgumentNames(t *testing.T) {
	tu := parseAndRunScopePass(t, "namespace a { void f(int x) {} }")
	ns := tu.Stmts[0].(*ast.Namespace)
	fd := ns.Stmts[0].(*ast.FuncDef)
	require.Len(t, fd.Args, 1)
	assert.Equal(t, "a.f.x", fd.Args[0].Name)
}

func TestTypeRefPass_ResolvesKnownType(t *testing.T) {
	tu := parseAndRunScopePass(t, "class Widget {} Widget w;")
	require.NoError(t, RunTypeRefPass("t.soda", tu))

	vd := tu.Stmts[1].(*ast.VarDecl)
	require.NotNil(t, vd.Type.Resolved, "expected Widget to resolve")
	cd, ok := vd.Type.Resolved.(*ast.ClassDef)
	require.True(t, ok, "got %#v, want the Widget ClassDef", vd.Type.Resolved)
	assert.Equal(t, "Widget", cd.Name)
}

func TestTypeRefPass_UnknownTypeIsError(t *testing.T) {
	tu := parseAndRunScopePass(t, "Nope x;")
	err := RunTypeRefPass("t.soda", tu)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type name")
}
