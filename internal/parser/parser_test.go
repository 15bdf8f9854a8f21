package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soda-lang/soda/internal/ast"
	"github.com/soda-lang/soda/internal/token"
)

func mustParseExpr(t *testing.T, input string) ast.Expr {
	t.Helper()
	p, err := New("t.soda", []byte(input))
	require.NoError(t, err)
	e, err := p.parseExpr(0)
	require.NoError(t, err)
	return e
}

func TestParser_PrecedenceClimbing(t *testing.T) {
	// x + y * z => BinOp('+', Ident x, BinOp('*', Ident y, Ident z))
	e := mustParseExpr(t, "x + y * z")
	top, ok := e.(*ast.BinOp)
	require.True(t, ok, "top-level op: got %#v, want PLUS BinOp", e)
	assert.Equal(t, token.PlusToken, token.Kind(top.Op))

	lhs, ok := top.Lhs.(*ast.Ident)
	require.True(t, ok, "lhs: got %#v, want Ident", top.Lhs)
	assert.Equal(t, "x", lhs.Name)

	rhs, ok := top.Rhs.(*ast.BinOp)
	require.True(t, ok, "rhs: got %#v, want STAR BinOp", top.Rhs)
	assert.Equal(t, token.StarToken, token.Kind(rhs.Op))
}

func TestParser_CallExpression(t *testing.T) {
	e := mustParseExpr(t, "a.b(1, x)")
	call, ok := e.(*ast.CallExpr)
	require.True(t, ok, "got %#v, want CallExpr", e)
	assert.Equal(t, "a.b", call.Callee.Name)
	assert.Len(t, call.Args, 2)
}

func TestParser_VarDeclAtGlobalScope(t *testing.T) {
	tu, err := ParseString("t.soda", "const int x = 1;")
	require.NoError(t, err)
	require.Len(t, tu.Stmts, 1)

	vd, ok := tu.Stmts[0].(*ast.VarDecl)
	require.True(t, ok, "got %T, want *ast.VarDecl", tu.Stmts[0])
	assert.Equal(t, "x", vd.Name)
	assert.True(t, vd.Type.Const)
	assert.Equal(t, "int", vd.Type.Name)
}

func TestParser_FuncDefAtGlobalScope(t *testing.T) {
	tu, err := ParseString("t.soda", "public int add(int a, int b) { return a + b; }")
	require.NoError(t, err)

	fd, ok := tu.Stmts[0].(*ast.FuncDef)
	require.True(t, ok, "got %T, want *ast.FuncDef", tu.Stmts[0])
	assert.Equal(t, "add", fd.Name)
	assert.Equal(t, ast.AccessPublic, fd.Access)
	assert.Len(t, fd.Args, 2)
	require.Len(t, fd.Stmts, 1)
	_, ok = fd.Stmts[0].(*ast.ReturnStmt)
	assert.True(t, ok, "body stmt: got %T, want *ast.ReturnStmt", fd.Stmts[0])
}

func TestParser_CallStatementAtLocalScope(t *testing.T) {
	tu, err := ParseString("t.soda", "void main() { foo(); }")
	require.NoError(t, err)

	fd := tu.Stmts[0].(*ast.FuncDef)
	es, ok := fd.Stmts[0].(*ast.ExprStmt)
	require.True(t, ok, "got %T, want *ast.ExprStmt", fd.Stmts[0])
	_, ok = es.Expr.(*ast.CallExpr)
	assert.True(t, ok, "got %T, want *ast.CallExpr", es.Expr)
}

func TestParser_NamespaceAndClass(t *testing.T) {
	tu, err := ParseString("t.soda", "namespace a { class B { int x; } }")
	require.NoError(t, err)

	ns, ok := tu.Stmts[0].(*ast.Namespace)
	require.True(t, ok, "got %#v", tu.Stmts[0])
	assert.Equal(t, "a", ns.Name)

	cd, ok := ns.Stmts[0].(*ast.ClassDef)
	require.True(t, ok, "got %#v", ns.Stmts[0])
	assert.Equal(t, "B", cd.Name)

	vd, ok := cd.Stmts[0].(*ast.VarDecl)
	require.True(t, ok, "got %#v", cd.Stmts[0])
	assert.Equal(t, "x", vd.Name)
}

func TestParser_IfSwitchCase(t *testing.T) {
	src := `void f() {
		if (x) { return; } else { break; }
		switch (x) {
		case 1: return;
		default: break;
		}
	}`
	tu, err := ParseString("t.soda", src)
	require.NoError(t, err)

	fd := tu.Stmts[0].(*ast.FuncDef)
	ifs, ok := fd.Stmts[0].(*ast.IfStmt)
	require.True(t, ok, "got %#v", fd.Stmts[0])
	assert.NotNil(t, ifs.Else)

	sw, ok := fd.Stmts[1].(*ast.SwitchStmt)
	require.True(t, ok, "got %#v", fd.Stmts[1])
	require.Len(t, sw.Cases, 2)
	assert.NotNil(t, sw.Cases[0].Label, "case 0 should have a label")
	assert.Nil(t, sw.Cases[1].Label, "default case should have a nil label")
}

func TestParser_ForeignDecl(t *testing.T) {
	tu, err := ParseString("t.soda", `[CCode(name="puts")] void cputs(string s);`)
	require.NoError(t, err)

	decl, ok := tu.Stmts[0].(*ast.FuncDecl)
	require.True(t, ok, "got %T, want *ast.FuncDecl", tu.Stmts[0])
	require.NotNil(t, decl.Foreign, "expected a foreign annotation")

	v, ok := decl.Foreign.Get("name")
	require.True(t, ok)
	assert.Equal(t, "puts", v)
}

func TestParser_UnknownTopLevelTokenIsSyntaxError(t *testing.T) {
	_, err := ParseString("t.soda", "+")
	require.Error(t, err)
}

func TestParser_DanglingVarDeclIsSyntaxError(t *testing.T) {
	_, err := ParseString("t.soda", "int x")
	require.Error(t, err, "expected a syntax error for a missing semicolon")
}
