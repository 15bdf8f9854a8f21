// Package lexer implements the tokenizer: it consumes code points from a
// source.Reader and emits a token.Token at a time. It knows nothing about
// grammar — only about lexical classes, keywords, and maximal munch.
package lexer

import (
	"fmt"
	"strings"

	"github.com/smasher164/xid"
	"github.com/soda-lang/soda/internal/source"
	"github.com/soda-lang/soda/internal/token"
)

// Lexer tokenizes a single source file. It is a thin consumer of
// source.Reader: it never inspects bytes directly, only code points and
// positions.
type Lexer struct {
	file   string
	reader *source.Reader
}

// New creates a Lexer over in-memory source text.
func New(file string, input []byte) *Lexer {
	return &Lexer{file: file, reader: source.NewReader(input)}
}

// NewFromString is equivalent to New(file, []byte(input)).
func NewFromString(file, input string) *Lexer {
	return &Lexer{file: file, reader: source.NewReaderString(input)}
}

// NewStrictBOM is New with strict byte-order-mark checking: a BOM found
// anywhere but the start of the file tokenizes as an ERROR token instead
// of passing through as ordinary input.
func NewStrictBOM(file string, input []byte) *Lexer {
	return &Lexer{file: file, reader: source.NewReaderStrictBOM(input)}
}

// File returns the source file name tokens from this lexer are attributed
// to, for use in diagnostics built from a bare token.Token.
func (l *Lexer) File() string {
	return l.file
}

// isIdentStart/isIdentContinue classify identifier characters using the
// same UAX #31 primitives the teacher's SQL scanners use (xid.Start /
// xid.Continue), restricted to the ASCII subset the grammar in §4.2
// defines: identifiers are [A-Za-z_][A-Za-z0-9_]*, so any non-ASCII
// code point — even one that is a valid Unicode identifier character —
// is not part of Soda's identifier grammar and falls through to the
// "invalid starting code point" case.
func isIdentStart(r rune) bool {
	return r == '_' || (r < 0x80 && xid.Start(r))
}

func isIdentContinue(r rune) bool {
	return r == '_' || (r < 0x80 && xid.Continue(r))
}

func isDecDigit(r rune) bool { return r >= '0' && r <= '9' }
func isHexDigit(r rune) bool {
	return isDecDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
func isOctDigit(r rune) bool { return r >= '0' && r <= '7' }
func isBinDigit(r rune) bool { return r == '0' || r == '1' }

var singleCharPunct = map[rune]token.Kind{
	'.': token.DotToken,
	'~': token.TildeToken,
	'?': token.QuestionToken,
	':': token.ColonToken,
	';': token.SemicolonToken,
	',': token.CommaToken,
	'(': token.LParenToken,
	')': token.RParenToken,
	'[': token.LBracketToken,
	']': token.RBracketToken,
	'{': token.LBraceToken,
	'}': token.RBraceToken,
}

// NextToken skips whitespace and comments, reads one token, and returns it.
// End of input yields an EOFToken; an invalid starting code point yields
// an ErrorToken whose text is the offending code point.
func (l *Lexer) NextToken() token.Token {
	for {
		l.skipWhitespace()
		start := l.reader.Position()
		r := l.reader.Peek()

		switch {
		case r == source.EOF:
			return token.Token{Kind: token.EOFToken, Range: source.Range{Start: start, End: start}}

		case r == '/':
			l.reader.Next()
			switch l.reader.Peek() {
			case '/':
				l.reader.Next()
				l.scanLineComment()
				continue
			case '*':
				l.reader.Next()
				if errTok, ok := l.scanBlockComment(start); !ok {
					return errTok
				}
				continue
			default:
				return l.finishOperator(start, '/')
			}
		}

		l.reader.Next() // consume r; every remaining case dispatches on an already-consumed rune

		switch {
		case isIdentStart(r):
			return l.scanIdentOrKeyword(start, r)
		case isDecDigit(r):
			return l.scanNumber(start, r)
		case r == '.':
			if isDecDigit(l.reader.Peek()) {
				return l.scanNumber(start, r)
			}
			return l.punctToken(token.DotToken, start, ".")
		case r == '\'':
			return l.scanCharLiteral(start)
		case r == '"':
			return l.scanStringLiteral(start)
		case isOperatorStart(r):
			return l.finishOperator(start, r)
		default:
			if kind, ok := singleCharPunct[r]; ok {
				return l.punctToken(kind, start, string(r))
			}
			return l.errorToken(start, "%c", r)
		}
	}
}

func (l *Lexer) skipWhitespace() {
	for source.IsWhitespace(l.reader.Peek()) {
		l.reader.Next()
	}
}

func (l *Lexer) scanLineComment() {
	for {
		r := l.reader.Peek()
		if r == source.EOF || source.IsLineTerminator(r) {
			return
		}
		l.reader.Next()
	}
}

// scanBlockComment consumes up to and including the closing "*/". The
// leading "/*" has already been consumed by the caller. On success it
// returns (zero, true); on an unterminated comment it returns an error
// token and false.
func (l *Lexer) scanBlockComment(start source.Position) (token.Token, bool) {
	for {
		r := l.reader.Peek()
		if r == source.EOF {
			end := l.reader.Position()
			return token.Token{Kind: token.ErrorToken, Range: source.Range{Start: start, End: end},
				Text: "unterminated multi-line comment"}, false
		}
		l.reader.Next()
		if r == '*' && l.reader.Peek() == '/' {
			l.reader.Next()
			return token.Token{}, true
		}
	}
}

func (l *Lexer) scanIdentOrKeyword(start source.Position, first rune) token.Token {
	var sb strings.Builder
	sb.WriteRune(first)
	for isIdentContinue(l.reader.Peek()) {
		sb.WriteRune(l.reader.Next())
	}
	end := l.reader.Position()
	text := sb.String()
	kind := token.IdentToken
	if kw, ok := token.Keywords[text]; ok {
		kind = kw
	}
	return token.Token{Kind: kind, Range: source.Range{Start: start, End: end}, Text: text}
}

// scanNumber handles every numeric production in §4.2: radix-prefixed
// integers, decimal integers, and float literals reached either by a
// digit run followed by '.' or a leading '.' followed by a digit run.
// first has already been consumed by the caller.
func (l *Lexer) scanNumber(start source.Position, first rune) token.Token {
	if first == '0' {
		switch l.reader.Peek() {
		case 'x', 'X':
			l.reader.Next()
			return l.scanRadixDigits(token.HexIntToken, isHexDigit, start, "hex")
		case 'b', 'B':
			l.reader.Next()
			return l.scanRadixDigits(token.BinIntToken, isBinDigit, start, "binary")
		case 'o', 'O':
			l.reader.Next()
			return l.scanRadixDigits(token.OctIntToken, isOctDigit, start, "octal")
		}
	}

	var sb strings.Builder
	sb.WriteRune(first)
	isFloat := first == '.'

	for {
		p := l.reader.Peek()
		if isDecDigit(p) {
			sb.WriteRune(l.reader.Next())
			continue
		}
		if p == '.' && !isFloat {
			sb.WriteRune(l.reader.Next())
			isFloat = true
			continue
		}
		break
	}

	end := l.reader.Position()
	kind := token.DecIntToken
	if isFloat {
		kind = token.FloatToken
	}
	return token.Token{Kind: kind, Range: source.Range{Start: start, End: end}, Text: sb.String()}
}

// scanRadixDigits consumes the digit run after a `0x`/`0b`/`0o` prefix. The
// range of the resulting token is restarted to cover only the digits, per
// §4.2's token range discipline, even though origStart covers the leading
// '0' for error reporting of an empty digit run.
func (l *Lexer) scanRadixDigits(kind token.Kind, isDigit func(rune) bool, origStart source.Position, radixName string) token.Token {
	digitsStart := l.reader.Position()
	var sb strings.Builder
	for isDigit(l.reader.Peek()) {
		sb.WriteRune(l.reader.Next())
	}
	end := l.reader.Position()
	if sb.Len() == 0 {
		return l.errorTokenRange(source.Range{Start: origStart, End: end},
			"malformed numeric literal: empty digits after %s radix prefix", radixName)
	}
	return token.Token{Kind: kind, Range: source.Range{Start: digitsStart, End: end}, Text: sb.String()}
}

// scanCharLiteral and scanStringLiteral share the same shape: open/close
// quote, `\<quote>` recognized as an escape so it doesn't terminate the
// literal early, raw lexeme (escapes kept verbatim) with outer quotes
// stripped, ERROR on an unterminated literal at end of input.
func (l *Lexer) scanCharLiteral(start source.Position) token.Token {
	return l.scanQuoted(start, '\'', token.CharToken, "character")
}

func (l *Lexer) scanStringLiteral(start source.Position) token.Token {
	return l.scanQuoted(start, '"', token.StringToken, "string")
}

func (l *Lexer) scanQuoted(start source.Position, quote rune, kind token.Kind, what string) token.Token {
	var sb strings.Builder
	for {
		r := l.reader.Peek()
		if r == source.EOF {
			end := l.reader.Position()
			return token.Token{Kind: token.ErrorToken, Range: source.Range{Start: start, End: end},
				Text: "unterminated " + what + " literal"}
		}
		if r == quote {
			l.reader.Next()
			break
		}
		if r == '\\' {
			l.reader.Next()
			sb.WriteRune('\\')
			esc := l.reader.Peek()
			if esc == source.EOF {
				end := l.reader.Position()
				return token.Token{Kind: token.ErrorToken, Range: source.Range{Start: start, End: end},
					Text: "unterminated " + what + " literal"}
			}
			sb.WriteRune(l.reader.Next())
			continue
		}
		sb.WriteRune(l.reader.Next())
	}
	end := l.reader.Position()
	return token.Token{Kind: kind, Range: source.Range{Start: start, End: end}, Text: sb.String()}
}

func isOperatorStart(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '&', '|', '^', '=', '!', '<', '>':
		return true
	}
	return false
}

// finishOperator applies the maximal-munch tie-breaks of §4.2. first has
// already been consumed.
func (l *Lexer) finishOperator(start source.Position, first rune) token.Token {
	next := func(text string, kind token.Kind) token.Token {
		l.reader.Next()
		return token.Token{Kind: kind, Range: source.Range{Start: start, End: l.reader.Position()}, Text: text}
	}
	stop := func(text string, kind token.Kind) token.Token {
		return token.Token{Kind: kind, Range: source.Range{Start: start, End: l.reader.Position()}, Text: text}
	}

	switch first {
	case '>':
		if l.reader.Peek() == '>' {
			l.reader.Next()
			if l.reader.Peek() == '=' {
				return next(">>=", token.RshiftAssignToken)
			}
			return stop(">>", token.RshiftToken)
		}
		if l.reader.Peek() == '=' {
			return next(">=", token.GeToken)
		}
		return stop(">", token.GtToken)
	case '<':
		if l.reader.Peek() == '<' {
			l.reader.Next()
			if l.reader.Peek() == '=' {
				return next("<<=", token.LshiftAssignToken)
			}
			return stop("<<", token.LshiftToken)
		}
		if l.reader.Peek() == '=' {
			return next("<=", token.LeToken)
		}
		return stop("<", token.LtToken)
	case '+':
		if l.reader.Peek() == '+' {
			return next("++", token.PlusPlusToken)
		}
		if l.reader.Peek() == '=' {
			return next("+=", token.PlusAssignToken)
		}
		return stop("+", token.PlusToken)
	case '-':
		if l.reader.Peek() == '-' {
			return next("--", token.MinusMinusToken)
		}
		if l.reader.Peek() == '=' {
			return next("-=", token.MinusAssignToken)
		}
		if l.reader.Peek() == '>' {
			return next("->", token.ArrowToken)
		}
		return stop("-", token.MinusToken)
	case '*':
		if l.reader.Peek() == '=' {
			return next("*=", token.StarAssignToken)
		}
		return stop("*", token.StarToken)
	case '/':
		if l.reader.Peek() == '=' {
			return next("/=", token.SlashAssignToken)
		}
		return stop("/", token.SlashToken)
	case '%':
		if l.reader.Peek() == '=' {
			return next("%=", token.PercentAssignToken)
		}
		return stop("%", token.PercentToken)
	case '&':
		if l.reader.Peek() == '&' {
			return next("&&", token.AndAndToken)
		}
		if l.reader.Peek() == '=' {
			return next("&=", token.AndAssignToken)
		}
		return stop("&", token.AndToken)
	case '|':
		if l.reader.Peek() == '|' {
			return next("||", token.OrOrToken)
		}
		if l.reader.Peek() == '=' {
			return next("|=", token.OrAssignToken)
		}
		return stop("|", token.OrToken)
	case '^':
		if l.reader.Peek() == '=' {
			return next("^=", token.XorAssignToken)
		}
		return stop("^", token.XorToken)
	case '=':
		if l.reader.Peek() == '=' {
			return next("==", token.EqEqToken)
		}
		return stop("=", token.AssignToken)
	case '!':
		if l.reader.Peek() == '=' {
			return next("!=", token.NeToken)
		}
		return stop("!", token.NotToken)
	}
	panic("lexer: finishOperator called with non-operator rune")
}

func (l *Lexer) punctToken(kind token.Kind, start source.Position, text string) token.Token {
	return token.Token{Kind: kind, Range: source.Range{Start: start, End: l.reader.Position()}, Text: text}
}

func (l *Lexer) errorToken(start source.Position, format string, args ...interface{}) token.Token {
	return l.errorTokenRange(source.Range{Start: start, End: l.reader.Position()}, format, args...)
}

func (l *Lexer) errorTokenRange(rng source.Range, format string, args ...interface{}) token.Token {
	return token.Token{Kind: token.ErrorToken, Range: rng, Text: fmt.Sprintf(format, args...)}
}
