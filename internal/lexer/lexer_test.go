package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soda-lang/soda/internal/token"
)

func kinds(t *testing.T, input string) []token.Kind {
	t.Helper()
	l := NewFromString("t.soda", input)
	var got []token.Kind
	for {
		tok := l.NextToken()
		got = append(got, tok.Kind)
		if tok.Kind == token.EOFToken {
			return got
		}
	}
}

func TestLexer_MaximalMunchOperators(t *testing.T) {
	got := kinds(t, ">>= >> >= >")
	want := []token.Kind{
		token.RshiftAssignToken,
		token.RshiftToken,
		token.GeToken,
		token.GtToken,
		token.EOFToken,
	}
	assert.Equal(t, want, got)
}

func TestLexer_NumericLiterals(t *testing.T) {
	l := NewFromString("t.soda", "0x00ff 0b101 0o17 42 3.14 .5 7.")
	want := []struct {
		kind token.Kind
		text string
	}{
		{token.HexIntToken, "00ff"},
		{token.BinIntToken, "101"},
		{token.OctIntToken, "17"},
		{token.DecIntToken, "42"},
		{token.FloatToken, "3.14"},
		{token.FloatToken, ".5"},
		{token.FloatToken, "7."},
		{token.EOFToken, ""},
	}
	for i, w := range want {
		tok := l.NextToken()
		assert.Equalf(t, w.kind, tok.Kind, "token %d", i)
		assert.Equalf(t, w.text, tok.Text, "token %d", i)
	}
}

func TestLexer_RadixPrefixEmptyDigitsIsError(t *testing.T) {
	l := NewFromString("t.soda", "0x")
	tok := l.NextToken()
	assert.Equal(t, token.ErrorToken, tok.Kind)
}

func TestLexer_StringAndCharLiterals(t *testing.T) {
	l := NewFromString("t.soda", `"a\"b" 'x' 'it\'s'`)

	tok := l.NextToken()
	require.Equal(t, token.StringToken, tok.Kind)
	assert.Equal(t, `a\"b`, tok.Text)

	tok = l.NextToken()
	require.Equal(t, token.CharToken, tok.Kind)
	assert.Equal(t, "x", tok.Text)

	tok = l.NextToken()
	require.Equal(t, token.CharToken, tok.Kind)
	assert.Equal(t, `it\'s`, tok.Text)
}

func TestLexer_UnterminatedStringIsError(t *testing.T) {
	l := NewFromString("t.soda", `"abc`)
	tok := l.NextToken()
	assert.Equal(t, token.ErrorToken, tok.Kind)
}

func TestLexer_CommentsAreSkipped(t *testing.T) {
	got := kinds(t, "a // line comment\n/* block\ncomment */ b")
	want := []token.Kind{token.IdentToken, token.IdentToken, token.EOFToken}
	assert.Equal(t, want, got)
}

func TestLexer_UnterminatedBlockCommentIsError(t *testing.T) {
	l := NewFromString("t.soda", "/* never closed")
	tok := l.NextToken()
	assert.Equal(t, token.ErrorToken, tok.Kind)
}

func TestLexer_KeywordsVersusIdentifiers(t *testing.T) {
	got := kinds(t, "if elif fund class")
	want := []token.Kind{
		token.IfToken,
		token.ElifToken,
		token.IdentToken, // "fund" is not the keyword "fun"
		token.ClassToken,
		token.EOFToken,
	}
	assert.Equal(t, want, got)
}

func TestLexer_NonASCIILetterIsInvalidIdentifierStart(t *testing.T) {
	l := NewFromString("t.soda", "café")
	tok := l.NextToken()
	require.Equal(t, token.IdentToken, tok.Kind)
	assert.Equal(t, "caf", tok.Text)

	tok = l.NextToken()
	assert.Equal(t, token.ErrorToken, tok.Kind, "want ERROR for the non-ASCII code point")
}

func TestLexer_DotVersusFloat(t *testing.T) {
	got := kinds(t, "a.b")
	want := []token.Kind{token.IdentToken, token.DotToken, token.IdentToken, token.EOFToken}
	assert.Equal(t, want, got)
}
