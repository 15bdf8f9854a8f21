package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soda-lang/soda/internal/parser"
)

func TestDumpString_TopLevelShape(t *testing.T) {
	tu, err := parser.ParseString("t.soda", "int x;")
	require.NoError(t, err)

	got := DumpString(tu)
	assert.True(t, strings.HasPrefix(got, `(TU (1,1) file="t.soda"`), "got %q, want a TU header at (1,1)", got)
	assert.Contains(t, got, "(VarDecl")
}

func TestDumpString_IndentsChildrenByFixedWidth(t *testing.T) {
	tu, err := parser.ParseString("t.soda", "int x;")
	require.NoError(t, err)

	lines := strings.Split(DumpString(tu), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[1], strings.Repeat(" ", indentWidth)+"(VarDecl"),
		"got %q, want a %d-space indented VarDecl", lines[1], indentWidth)
}

func TestDumpString_NestedDepthCompounds(t *testing.T) {
	tu, err := parser.ParseString("t.soda", "namespace a { int x; }")
	require.NoError(t, err)

	lines := strings.Split(DumpString(tu), "\n")
	// TU -> Namespace -> VarDecl -> TypeIdent, each one level deeper.
	var varDeclLine string
	for _, l := range lines {
		if strings.Contains(l, "(VarDecl") {
			varDeclLine = l
			break
		}
	}
	require.NotEmpty(t, varDeclLine, "no VarDecl line found in:\n%s", DumpString(tu))
	assert.True(t, strings.HasPrefix(varDeclLine, strings.Repeat(" ", 2*indentWidth)), "got %q, want depth-2 indentation", varDeclLine)
}
