package soda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soda-lang/soda/internal/ast"
)

func TestParse_RunsScopeThenTypeRefPass(t *testing.T) {
	tu, err := ParseString("t.soda", "class Widget {} Widget w;")
	require.NoError(t, err)

	vd := tu.Stmts[1].(*ast.VarDecl)
	assert.Equal(t, "w", vd.Name)
	assert.NotNil(t, vd.Type.Resolved, "expected Widget to be resolved by the reference pass")
}

func TestParse_StopsAtFirstSyntaxError(t *testing.T) {
	_, err := ParseString("t.soda", "int x")
	require.Error(t, err)
}

func TestParse_StopsAtFirstSemanticError(t *testing.T) {
	_, err := ParseString("t.soda", "Nope x;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type name")
}

func TestParseFile_MissingFileIsError(t *testing.T) {
	_, err := ParseFile("/nonexistent/path/to/source.soda")
	require.Error(t, err)
}
