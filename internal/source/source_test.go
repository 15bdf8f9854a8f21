package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReader_LineTracking(t *testing.T) {
	r := NewReaderString("a\r\nb\nc")

	want := []struct {
		rn  rune
		pos Position
	}{
		{'a', Position{Offset: 1, Line: 0, Column: 1}},
		{'\r', Position{Offset: 2, Line: 1, Column: 0}},
		{'b', Position{Offset: 3, Line: 1, Column: 1}},
		{'\n', Position{Offset: 4, Line: 2, Column: 0}},
		{'c', Position{Offset: 5, Line: 2, Column: 1}},
		{EOF, Position{Offset: 5, Line: 2, Column: 1}},
	}

	for i, w := range want {
		got := r.Next()
		assert.Equalf(t, w.rn, got, "step %d: rune", i)
		assert.Equalf(t, w.pos, r.Position(), "step %d: position", i)
	}
}

func TestReader_Peek(t *testing.T) {
	r := NewReaderString("ab")
	assert.Equal(t, 'a', r.Peek())
	assert.Equal(t, 'a', r.Peek(), "repeated peek")
	assert.Equal(t, 'a', r.Next())
	assert.Equal(t, 'b', r.Peek(), "peek after next")
}

func TestReader_BOMAndJoinersSkipped(t *testing.T) {
	r := NewReaderString("\xef\xbb\xbf\xe2\x81\xa0x") // BOM, word joiner, x
	assert.Equal(t, 'x', r.Next())
	assert.Equal(t, Position{Offset: 1, Line: 0, Column: 1}, r.Position(), "BOM/joiner counted in position")
}

func TestReader_MalformedUTF8(t *testing.T) {
	r := NewReader([]byte{'a', 0xff, 'b'})
	assert.Equal(t, 'a', r.Next())
	assert.Equal(t, Invalid, r.Next())
	assert.Equal(t, 'b', r.Next())
}

func TestReader_EOFIsStable(t *testing.T) {
	r := NewReaderString("")
	assert.Equal(t, EOF, r.Next())
	assert.Equal(t, EOF, r.Next(), "EOF on repeat")
}

func TestReader_WhitespaceCoversUnicodeSet(t *testing.T) {
	for _, rn := range []rune{'\t', ' ', ' ', ' ', ' ', '　'} {
		assert.Truef(t, IsWhitespace(rn), "expected %U to be whitespace", rn)
	}
	assert.False(t, IsWhitespace('x'), "'x' should not be whitespace")
}
