// Package token defines the canonical token kinds and the Token record
// produced by the tokenizer. It knows nothing about the reader or the
// grammar — only about the shape of a lexical unit.
package token

import "github.com/soda-lang/soda/internal/source"

// Kind enumerates every distinguishable lexical unit. Each single-character
// punctuator is its own kind (§9 Design Notes: do not rely on numeric
// equivalence between ASCII code points and token kinds).
type Kind int

const (
	EOFToken Kind = iota + 1
	ErrorToken

	// Literal classes
	DecIntToken
	HexIntToken
	OctIntToken
	BinIntToken
	FloatToken
	CharToken
	StringToken

	IdentToken

	// Keywords
	IfToken
	ElifToken
	ElseToken
	FunToken
	VarToken
	ConstToken
	StructToken
	EnumToken
	UnionToken
	AliasToken
	ReturnToken
	ImportToken
	FromToken
	ClassToken
	SwitchToken
	CaseToken
	DefaultToken
	BreakToken
	VoidToken
	NamespaceToken
	DelegateToken
	StaticToken
	PublicToken
	PrivateToken
	ProtectedToken
	InternalToken
	CCodeToken

	// Single-character punctuation
	DotToken
	TildeToken
	QuestionToken
	ColonToken
	SemicolonToken
	CommaToken
	LParenToken
	RParenToken
	LBracketToken
	RBracketToken
	LBraceToken
	RBraceToken

	// Multi-character operators, maximal munch (§4.2)
	PlusToken
	PlusPlusToken
	PlusAssignToken
	MinusToken
	MinusMinusToken
	MinusAssignToken
	ArrowToken
	StarToken
	StarAssignToken
	SlashToken
	SlashAssignToken
	PercentToken
	PercentAssignToken
	AndToken
	AndAndToken
	AndAssignToken
	OrToken
	OrOrToken
	OrAssignToken
	XorToken
	XorAssignToken
	AssignToken
	EqEqToken
	NotToken
	NeToken
	LtToken
	LeToken
	LshiftToken
	LshiftAssignToken
	GtToken
	GeToken
	RshiftToken
	RshiftAssignToken

	maxTokenKind
)

// Keywords maps reserved words to their keyword kind; everything else that
// matches the identifier grammar is IdentToken.
var Keywords = map[string]Kind{
	"if":        IfToken,
	"elif":      ElifToken,
	"else":      ElseToken,
	"fun":       FunToken,
	"var":       VarToken,
	"const":     ConstToken,
	"struct":    StructToken,
	"enum":      EnumToken,
	"union":     UnionToken,
	"alias":     AliasToken,
	"return":    ReturnToken,
	"import":    ImportToken,
	"from":      FromToken,
	"class":     ClassToken,
	"switch":    SwitchToken,
	"case":      CaseToken,
	"default":   DefaultToken,
	"break":     BreakToken,
	"void":      VoidToken,
	"namespace": NamespaceToken,
	"delegate":  DelegateToken,
	"static":    StaticToken,
	"public":    PublicToken,
	"private":   PrivateToken,
	"protected": ProtectedToken,
	"internal":  InternalToken,
	"CCode":     CCodeToken,
}

var kindNames = map[Kind]string{
	EOFToken:   "EOF",
	ErrorToken: "ERROR",

	DecIntToken: "DEC_ICONST",
	HexIntToken: "HEX_ICONST",
	OctIntToken: "OCT_ICONST",
	BinIntToken: "BIN_ICONST",
	FloatToken:  "FCONST",
	CharToken:   "CCONST",
	StringToken: "SCONST",

	IdentToken: "IDENT",

	IfToken:        "IF",
	ElifToken:      "ELIF",
	ElseToken:      "ELSE",
	FunToken:       "FUN",
	VarToken:       "VAR",
	ConstToken:     "CONST",
	StructToken:    "STRUCT",
	EnumToken:      "ENUM",
	UnionToken:     "UNION",
	AliasToken:     "ALIAS",
	ReturnToken:    "RETURN",
	ImportToken:    "IMPORT",
	FromToken:      "FROM",
	ClassToken:     "CLASS",
	SwitchToken:    "SWITCH",
	CaseToken:      "CASE",
	DefaultToken:   "DEFAULT",
	BreakToken:     "BREAK",
	VoidToken:      "VOID",
	NamespaceToken: "NAMESPACE",
	DelegateToken:  "DELEGATE",
	StaticToken:    "STATIC",
	PublicToken:    "PUBLIC",
	PrivateToken:   "PRIVATE",
	ProtectedToken: "PROTECTED",
	InternalToken:  "INTERNAL",
	CCodeToken:     "CCODE",

	DotToken:       "DOT",
	TildeToken:     "TILDE",
	QuestionToken:  "QUESTION",
	ColonToken:     "COLON",
	SemicolonToken: "SEMICOLON",
	CommaToken:     "COMMA",
	LParenToken:    "LPAREN",
	RParenToken:    "RPAREN",
	LBracketToken:  "LBRACKET",
	RBracketToken:  "RBRACKET",
	LBraceToken:    "LBRACE",
	RBraceToken:    "RBRACE",

	PlusToken:          "PLUS",
	PlusPlusToken:      "PLUS_PLUS",
	PlusAssignToken:    "PLUS_ASSIGN",
	MinusToken:         "MINUS",
	MinusMinusToken:    "MINUS_MINUS",
	MinusAssignToken:   "MINUS_ASSIGN",
	ArrowToken:         "ARROW",
	StarToken:          "STAR",
	StarAssignToken:    "STAR_ASSIGN",
	SlashToken:         "SLASH",
	SlashAssignToken:   "SLASH_ASSIGN",
	PercentToken:       "PERCENT",
	PercentAssignToken: "PERCENT_ASSIGN",
	AndToken:           "AND",
	AndAndToken:        "AND_AND",
	AndAssignToken:     "AND_ASSIGN",
	OrToken:            "OR",
	OrOrToken:          "OR_OR",
	OrAssignToken:      "OR_ASSIGN",
	XorToken:           "XOR",
	XorAssignToken:     "XOR_ASSIGN",
	AssignToken:        "ASSIGN",
	EqEqToken:          "EQ_OP",
	NotToken:           "NOT",
	NeToken:            "NE_OP",
	LtToken:            "LT",
	LeToken:            "LE_OP",
	LshiftToken:        "LSHIFT",
	LshiftAssignToken:  "LSHIFT_ASSIGN",
	GtToken:            "GT",
	GeToken:            "GE_OP",
	RshiftToken:        "RSHIFT",
	RshiftAssignToken:  "RSHIFT_ASSIGN",
}

func init() {
	// make sure we panic if a description isn't declared
	for k := EOFToken; k < maxTokenKind; k++ {
		if kindNames[k] == "" {
			panic("token: missing name for kind")
		}
	}
}

func (k Kind) String() string {
	return kindNames[k]
}

func (k Kind) GoString() string {
	return kindNames[k]
}

// Token is the tagged record the tokenizer emits: a kind, a source range,
// and the raw lexeme (outer delimiters stripped for char/string literals,
// base prefix stripped for radix-prefixed integers).
type Token struct {
	Kind  Kind
	Range source.Range
	Text  string
}
