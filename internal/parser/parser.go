// Package parser implements the recursive-descent parser: it consumes the
// token stream from internal/lexer and builds an internal/ast tree. It
// knows nothing about scopes or type resolution; that is internal/sema's
// job.
package parser

import (
	"github.com/soda-lang/soda/internal/ast"
	"github.com/soda-lang/soda/internal/diag"
	"github.com/soda-lang/soda/internal/lexer"
	"github.com/soda-lang/soda/internal/source"
	"github.com/soda-lang/soda/internal/token"
)

// Parser holds an eagerly tokenized buffer and a cursor into it. Eager
// buffering (one of the two strategies the component design allows) makes
// lookahead(n) and the save/restore rewind used for the var-decl/func-def
// ambiguity trivial index arithmetic.
type Parser struct {
	file string
	toks []token.Token
	pos  int
}

// New tokenizes input completely and returns a Parser positioned at the
// first token. It returns an error immediately if the tokenizer produces an
// ERROR token, rather than deferring a confusing downstream "unexpected
// token" failure.
func New(file string, input []byte) (*Parser, error) {
	return newFromLexer(file, lexer.New(file, input))
}

// NewStrictBOM is New with strict byte-order-mark checking (see
// lexer.NewStrictBOM).
func NewStrictBOM(file string, input []byte) (*Parser, error) {
	return newFromLexer(file, lexer.NewStrictBOM(file, input))
}

func newFromLexer(file string, lx *lexer.Lexer) (*Parser, error) {
	var toks []token.Token
	for {
		tok := lx.NextToken()
		if tok.Kind == token.ErrorToken {
			return nil, diag.New(file, tok.Range, "%s", tok.Text)
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOFToken {
			break
		}
	}
	return &Parser{file: file, toks: toks}, nil
}

// Parse tokenizes and parses a complete translation unit.
func Parse(file string, input []byte) (*ast.TU, error) {
	p, err := New(file, input)
	if err != nil {
		return nil, err
	}
	return p.ParseTU()
}

func ParseString(file, input string) (*ast.TU, error) {
	return Parse(file, []byte(input))
}

// ParseStrictBOM is Parse with strict byte-order-mark checking (see
// lexer.NewStrictBOM).
func ParseStrictBOM(file string, input []byte) (*ast.TU, error) {
	p, err := NewStrictBOM(file, input)
	if err != nil {
		return nil, err
	}
	return p.ParseTU()
}

// ---- token stream primitives (current/next/lookahead/accept/expect) ----

func (p *Parser) current() token.Token     { return p.toks[p.pos] }
func (p *Parser) currentKind() token.Kind  { return p.toks[p.pos].Kind }
func (p *Parser) next() token.Kind {
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return p.currentKind()
}
func (p *Parser) lookahead(n int) token.Kind {
	idx := p.pos + n
	if idx >= len(p.toks) {
		idx = len(p.toks) - 1
	}
	return p.toks[idx].Kind
}

func (p *Parser) accept(k token.Kind) bool {
	if p.currentKind() == k {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expect(k token.Kind) (token.Token, error) {
	tok := p.current()
	if tok.Kind != k {
		return token.Token{}, p.errorf(tok.Range, "expected %s, found %s %q", k, tok.Kind, tok.Text)
	}
	p.next()
	return tok, nil
}

func (p *Parser) errorf(rng source.Range, format string, args ...interface{}) error {
	return diag.New(p.file, rng, format, args...)
}

// save/restore implement the one rewind mechanism the parser uses: an
// index saved before a speculative attempt, restored verbatim on failure.
func (p *Parser) save() int        { return p.pos }
func (p *Parser) restore(mark int) { p.pos = mark }

// rangeFrom builds a range from a previously captured start position to
// the end of the most recently consumed token.
func (p *Parser) rangeFrom(start source.Position) source.Range {
	if p.pos == 0 {
		return source.Range{Start: start, End: start}
	}
	return source.Range{Start: start, End: p.toks[p.pos-1].Range.End}
}

// ---- translation unit ----

func (p *Parser) ParseTU() (*ast.TU, error) {
	start := p.current().Range.Start
	var stmts []ast.Stmt
	for p.currentKind() != token.EOFToken {
		st, err := p.parseTopStmt(false)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	return &ast.TU{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}, File: p.file, Stmts: stmts}, nil
}

// ---- top-level statements ----

// parseTopStmt parses the top-stmt production. local controls how the
// var-decl/func-def ambiguity (and, below it, the declaration/call-
// expression-statement ambiguity) is resolved: at local (statement) scope
// func-def is tried first and a failing declaration attempt falls back to
// an expression statement; at global scope var-decl is tried first and
// there is no expression-statement fallback, matching the grammar (a bare
// top-stmt cannot be an expr-stmt).
func (p *Parser) parseTopStmt(local bool) (ast.Stmt, error) {
	switch p.currentKind() {
	case token.LBracketToken:
		return p.parseForeignDecl()
	case token.AliasToken:
		return p.parseAlias()
	case token.ImportToken:
		return p.parseImportStmt()
	case token.NamespaceToken:
		return p.parseNamespace()
	case token.ClassToken:
		return p.parseClassDef()
	case token.DelegateToken:
		return p.parseDelegateStmt()
	case token.SemicolonToken:
		start := p.current().Range.Start
		p.next()
		return &ast.EmptyStmt{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}}, nil
	case token.PrivateToken, token.ProtectedToken, token.PublicToken, token.InternalToken,
		token.StaticToken, token.ConstToken, token.IdentToken, token.VoidToken:
		return p.parseDeclOrExprStmt(local)
	default:
		tok := p.current()
		return nil, p.errorf(tok.Range, "unexpected token %s in statement", tok.Kind)
	}
}

func (p *Parser) parseDeclOrExprStmt(local bool) (ast.Stmt, error) {
	mark := p.save()
	if local {
		if fd, err := p.tryFuncDef(); err == nil {
			return fd, nil
		}
		p.restore(mark)
		if vd, err := p.tryVarDecl(); err == nil {
			return vd, nil
		}
		p.restore(mark)
		return p.parseExprStmt()
	}
	if vd, err := p.tryVarDecl(); err == nil {
		return vd, nil
	}
	p.restore(mark)
	if fd, err := p.tryFuncDef(); err == nil {
		return fd, nil
	}
	p.restore(mark)
	// Neither production matched; re-run the var-decl attempt once more to
	// surface a concrete, located error rather than a generic one.
	_, err := p.tryVarDecl()
	return nil, err
}

// parseSpecifiers consumes the specifiers production. Repeated access
// specifiers keep the first one seen; static may appear anywhere in the
// run.
func (p *Parser) parseSpecifiers() (ast.Access, bool) {
	access := ast.AccessNone
	static := false
	for {
		switch p.currentKind() {
		case token.PrivateToken:
			if access == ast.AccessNone {
				access = ast.AccessPrivate
			}
			p.next()
		case token.ProtectedToken:
			if access == ast.AccessNone {
				access = ast.AccessProtected
			}
			p.next()
		case token.PublicToken:
			if access == ast.AccessNone {
				access = ast.AccessPublic
			}
			p.next()
		case token.InternalToken:
			if access == ast.AccessNone {
				access = ast.AccessInternal
			}
			p.next()
		case token.StaticToken:
			static = true
			p.next()
		default:
			return access, static
		}
	}
}

func (p *Parser) parseTypeIdent() (*ast.TypeIdent, error) {
	start := p.current().Range.Start
	constFlag := p.accept(token.ConstToken)
	// The keyword `void` is accepted as a type name, e.g. as a return type.
	if p.currentKind() == token.VoidToken {
		p.next()
		return &ast.TypeIdent{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}, Name: "void", Const: constFlag}, nil
	}
	name, err := p.parseFqIdentText()
	if err != nil {
		return nil, err
	}
	return &ast.TypeIdent{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}, Name: name, Const: constFlag}, nil
}

func (p *Parser) parseFqIdentText() (string, error) {
	tok, err := p.expect(token.IdentToken)
	if err != nil {
		return "", err
	}
	name := tok.Text
	for p.accept(token.DotToken) {
		part, err := p.expect(token.IdentToken)
		if err != nil {
			return "", err
		}
		name += "." + part.Text
	}
	return name, nil
}

// tryVarDecl attempts var-decl ::= specifiers type-ident ident [ "=" expr ] ";"
// from the current position. Any mismatch is reported as an error and the
// caller is responsible for restoring the saved index.
func (p *Parser) tryVarDecl() (*ast.VarDecl, error) {
	start := p.current().Range.Start
	access, static := p.parseSpecifiers()
	typeIdent, err := p.parseTypeIdent()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IdentToken)
	if err != nil {
		return nil, err
	}
	if p.currentKind() == token.LParenToken {
		return nil, p.errorf(nameTok.Range, "expected a variable declaration, found '(' (looks like a function definition)")
	}
	var init ast.Expr
	if p.accept(token.AssignToken) {
		init, err = p.parseExpr(0)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SemicolonToken); err != nil {
		return nil, err
	}
	return &ast.VarDecl{
		NodeBase: ast.NodeBase{Span: p.rangeFrom(start)},
		Access:   access, Static: static, Type: typeIdent, Name: nameTok.Text, Init: init,
	}, nil
}

// tryFuncDef attempts func-def ::= specifiers type-ident ident "(" arg-list ")" compound-stmt.
func (p *Parser) tryFuncDef() (*ast.FuncDef, error) {
	start := p.current().Range.Start
	access, static := p.parseSpecifiers()
	typeIdent, err := p.parseTypeIdent()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IdentToken)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParenToken); err != nil {
		return nil, err
	}
	args, err := p.parseArgListInner()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParenToken); err != nil {
		return nil, err
	}
	stmts, _, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDef{
		NodeBase: ast.NodeBase{Span: p.rangeFrom(start)},
		Access:   access, Static: static, Return: typeIdent, Name: nameTok.Text, Args: args, Stmts: stmts,
	}, nil
}

func (p *Parser) parseArgListInner() ([]*ast.Argument, error) {
	var args []*ast.Argument
	if p.currentKind() == token.RParenToken {
		return args, nil
	}
	for {
		arg, err := p.parseArgument()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.accept(token.CommaToken) {
			break
		}
	}
	return args, nil
}

// parseArgument parses one arg-list entry. The grammar reuses var-decl's
// shape for arguments, but the Argument node carries only type, name, and
// default, so any specifiers are consumed and discarded.
func (p *Parser) parseArgument() (*ast.Argument, error) {
	start := p.current().Range.Start
	p.parseSpecifiers()
	typeIdent, err := p.parseTypeIdent()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IdentToken)
	if err != nil {
		return nil, err
	}
	var def ast.Expr
	if p.accept(token.AssignToken) {
		def, err = p.parseExpr(0)
		if err != nil {
			return nil, err
		}
	}
	return &ast.Argument{
		NodeBase: ast.NodeBase{Span: p.rangeFrom(start)},
		Type:     typeIdent, Name: nameTok.Text, Default: def,
	}, nil
}

func (p *Parser) parseForeignDecl() (*ast.FuncDecl, error) {
	start := p.current().Range.Start
	if _, err := p.expect(token.LBracketToken); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.CCodeToken); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParenToken); err != nil {
		return nil, err
	}
	ann := ast.NewForeignAnnotation(source.Range{})
	if p.currentKind() != token.RParenToken {
		for {
			keyTok, err := p.expect(token.IdentToken)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.AssignToken); err != nil {
				return nil, err
			}
			valTok, err := p.expect(token.StringToken)
			if err != nil {
				return nil, err
			}
			ann.Set(keyTok.Text, valTok.Text)
			if !p.accept(token.CommaToken) {
				break
			}
		}
	}
	if _, err := p.expect(token.RParenToken); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBracketToken); err != nil {
		return nil, err
	}
	ann.Span = p.rangeFrom(start)

	typeIdent, err := p.parseTypeIdent()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IdentToken)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParenToken); err != nil {
		return nil, err
	}
	args, err := p.parseArgListInner()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParenToken); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SemicolonToken); err != nil {
		return nil, err
	}
	return &ast.FuncDecl{
		NodeBase: ast.NodeBase{Span: p.rangeFrom(start)},
		Return:   typeIdent, Name: nameTok.Text, Args: args, Foreign: ann,
	}, nil
}

func (p *Parser) parseAlias() (*ast.Alias, error) {
	start := p.current().Range.Start
	p.next() // "alias"
	nameTok, err := p.expect(token.IdentToken)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.AssignToken); err != nil {
		return nil, err
	}
	target, err := p.parseTypeIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SemicolonToken); err != nil {
		return nil, err
	}
	return &ast.Alias{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}, Name: nameTok.Text, Target: target}, nil
}

func (p *Parser) parseImportStmt() (*ast.Import, error) {
	start := p.current().Range.Start
	p.next() // "import"
	name, err := p.parseFqIdentText()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SemicolonToken); err != nil {
		return nil, err
	}
	return &ast.Import{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}, Name: name}, nil
}

func (p *Parser) parseNamespace() (*ast.Namespace, error) {
	start := p.current().Range.Start
	p.next() // "namespace"
	var name string
	if p.currentKind() == token.IdentToken {
		var err error
		name, err = p.parseFqIdentText()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.LBraceToken); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for p.currentKind() != token.RBraceToken {
		if p.currentKind() == token.EOFToken {
			return nil, p.errorf(p.current().Range, "unexpected end of input, expected '}'")
		}
		st, err := p.parseTopStmt(false)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	if _, err := p.expect(token.RBraceToken); err != nil {
		return nil, err
	}
	return &ast.Namespace{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}, Name: name, Stmts: stmts}, nil
}

func (p *Parser) parseClassDef() (*ast.ClassDef, error) {
	start := p.current().Range.Start
	p.next() // "class"
	nameTok, err := p.expect(token.IdentToken)
	if err != nil {
		return nil, err
	}
	var bases []*ast.TypeIdent
	if p.accept(token.ColonToken) {
		for {
			bstart := p.current().Range.Start
			bname, err := p.parseFqIdentText()
			if err != nil {
				return nil, err
			}
			bases = append(bases, &ast.TypeIdent{NodeBase: ast.NodeBase{Span: p.rangeFrom(bstart)}, Name: bname})
			if !p.accept(token.CommaToken) {
				break
			}
		}
	}
	if _, err := p.expect(token.LBraceToken); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for p.currentKind() != token.RBraceToken {
		if p.currentKind() == token.EOFToken {
			return nil, p.errorf(p.current().Range, "unexpected end of input, expected '}'")
		}
		st, err := p.parseTopStmt(false)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, st)
	}
	if _, err := p.expect(token.RBraceToken); err != nil {
		return nil, err
	}
	return &ast.ClassDef{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}, Name: nameTok.Text, Bases: bases, Stmts: stmts}, nil
}

func (p *Parser) parseDelegateStmt() (*ast.Delegate, error) {
	start := p.current().Range.Start
	p.next() // "delegate"
	typeIdent, err := p.parseTypeIdent()
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.IdentToken)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParenToken); err != nil {
		return nil, err
	}
	args, err := p.parseArgListInner()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParenToken); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SemicolonToken); err != nil {
		return nil, err
	}
	return &ast.Delegate{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}, Return: typeIdent, Name: nameTok.Text, Args: args}, nil
}

// ---- statements (local scope) ----

func (p *Parser) parseBlock() ([]ast.Stmt, source.Range, error) {
	start := p.current().Range.Start
	if _, err := p.expect(token.LBraceToken); err != nil {
		return nil, source.Range{}, err
	}
	var stmts []ast.Stmt
	for p.currentKind() != token.RBraceToken {
		if p.currentKind() == token.EOFToken {
			return nil, source.Range{}, p.errorf(p.current().Range, "unexpected end of input, expected '}'")
		}
		st, err := p.parseStmt()
		if err != nil {
			return nil, source.Range{}, err
		}
		stmts = append(stmts, st)
	}
	if _, err := p.expect(token.RBraceToken); err != nil {
		return nil, source.Range{}, err
	}
	return stmts, p.rangeFrom(start), nil
}

func (p *Parser) parseCompoundStmt() (*ast.CompoundStmt, error) {
	stmts, rng, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.CompoundStmt{NodeBase: ast.NodeBase{Span: rng}, Stmts: stmts}, nil
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.currentKind() {
	case token.LBraceToken:
		return p.parseCompoundStmt()
	case token.IfToken:
		return p.parseIfStmt()
	case token.SwitchToken:
		return p.parseSwitchStmt()
	case token.ReturnToken:
		return p.parseReturnStmt()
	case token.BreakToken:
		return p.parseBreakStmt()
	default:
		return p.parseTopStmt(true)
	}
}

func (p *Parser) parseIfStmt() (*ast.IfStmt, error) {
	start := p.current().Range.Start
	p.next() // "if"
	if _, err := p.expect(token.LParenToken); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParenToken); err != nil {
		return nil, err
	}
	then, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	var elseStmt ast.Stmt
	if p.accept(token.ElseToken) {
		elseStmt, err = p.parseStmt()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}, Cond: cond, Then: then, Else: elseStmt}, nil
}

func (p *Parser) parseSwitchStmt() (*ast.SwitchStmt, error) {
	start := p.current().Range.Start
	p.next() // "switch"
	if _, err := p.expect(token.LParenToken); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParenToken); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBraceToken); err != nil {
		return nil, err
	}
	var cases []*ast.CaseStmt
	for p.currentKind() != token.RBraceToken {
		if p.currentKind() == token.EOFToken {
			return nil, p.errorf(p.current().Range, "unexpected end of input, expected '}'")
		}
		c, err := p.parseCase()
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	if _, err := p.expect(token.RBraceToken); err != nil {
		return nil, err
	}
	return &ast.SwitchStmt{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}, Expr: expr, Cases: cases}, nil
}

func (p *Parser) parseCase() (*ast.CaseStmt, error) {
	start := p.current().Range.Start
	var label ast.Expr
	if p.accept(token.CaseToken) {
		var err error
		label, err = p.parseExpr(0)
		if err != nil {
			return nil, err
		}
	} else if _, err := p.expect(token.DefaultToken); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ColonToken); err != nil {
		return nil, err
	}
	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	return &ast.CaseStmt{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}, Label: label, Body: body}, nil
}

func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	start := p.current().Range.Start
	p.next() // "return"
	var e ast.Expr
	if p.currentKind() != token.SemicolonToken {
		var err error
		e, err = p.parseExpr(0)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SemicolonToken); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}, Expr: e}, nil
}

func (p *Parser) parseBreakStmt() (*ast.BreakStmt, error) {
	start := p.current().Range.Start
	p.next() // "break"
	if _, err := p.expect(token.SemicolonToken); err != nil {
		return nil, err
	}
	return &ast.BreakStmt{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}}, nil
}

// parseExprStmt parses expr-stmt ::= call ";"; the grammar permits only
// call expressions here, so it parses a call directly rather than a
// general expression.
func (p *Parser) parseExprStmt() (*ast.ExprStmt, error) {
	start := p.current().Range.Start
	call, err := p.parseCallExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SemicolonToken); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}, Expr: call}, nil
}

// ---- expressions ----

// precedence implements the ascending table from the component design: a
// higher number binds more tightly. Every listed operator is left
// associative, so climbing recurses with a floor of prec+1.
var precedence = map[token.Kind]int{
	token.AndAndToken: 10, token.OrOrToken: 10,
	token.LeToken: 20, token.GeToken: 20, token.NeToken: 20, token.EqEqToken: 20,
	token.LshiftToken: 30, token.RshiftToken: 30,
	token.AndToken: 40, token.OrToken: 40, token.XorToken: 40,
	token.LtToken: 50, token.GtToken: 50,
	token.PlusToken: 60, token.MinusToken: 60,
	token.StarToken: 70, token.SlashToken: 70, token.PercentToken: 70,
	token.PlusPlusToken: 80, token.MinusMinusToken: 80,
}

func (p *Parser) parseExpr(minPrec int) (ast.Expr, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		opTok := p.current()
		prec, ok := precedence[opTok.Kind]
		if !ok || prec < minPrec {
			return lhs, nil
		}
		p.next()
		rhs, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinOp{
			NodeBase: ast.NodeBase{Span: lhs.Range().Join(rhs.Range())},
			Op:       int(opTok.Kind), OpText: opTok.Text, Lhs: lhs, Rhs: rhs,
		}
	}
}

func (p *Parser) parseCallExpr() (*ast.CallExpr, error) {
	start := p.current().Range.Start
	name, err := p.parseFqIdentText()
	if err != nil {
		return nil, err
	}
	callee := &ast.Ident{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}, Name: name}
	if _, err := p.expect(token.LParenToken); err != nil {
		return nil, err
	}
	var args []ast.Expr
	if p.currentKind() != token.RParenToken {
		for {
			e, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			args = append(args, e)
			if !p.accept(token.CommaToken) {
				break
			}
		}
	}
	if _, err := p.expect(token.RParenToken); err != nil {
		return nil, err
	}
	return &ast.CallExpr{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}, Callee: callee, Args: args}, nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	start := p.current().Range.Start
	switch p.currentKind() {
	case token.DecIntToken:
		tok, _ := p.expect(token.DecIntToken)
		return &ast.IntegerLit{NodeBase: ast.NodeBase{Span: tok.Range}, Text: tok.Text, Base: 10}, nil
	case token.HexIntToken:
		tok, _ := p.expect(token.HexIntToken)
		return &ast.IntegerLit{NodeBase: ast.NodeBase{Span: tok.Range}, Text: tok.Text, Base: 16}, nil
	case token.OctIntToken:
		tok, _ := p.expect(token.OctIntToken)
		return &ast.IntegerLit{NodeBase: ast.NodeBase{Span: tok.Range}, Text: tok.Text, Base: 8}, nil
	case token.BinIntToken:
		tok, _ := p.expect(token.BinIntToken)
		return &ast.IntegerLit{NodeBase: ast.NodeBase{Span: tok.Range}, Text: tok.Text, Base: 2}, nil
	case token.FloatToken:
		tok, _ := p.expect(token.FloatToken)
		return &ast.FloatLit{NodeBase: ast.NodeBase{Span: tok.Range}, Text: tok.Text}, nil
	case token.StringToken:
		tok, _ := p.expect(token.StringToken)
		return &ast.StrLit{NodeBase: ast.NodeBase{Span: tok.Range}, Text: tok.Text}, nil
	case token.LParenToken:
		p.next()
		e, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParenToken); err != nil {
			return nil, err
		}
		return e, nil
	case token.IdentToken:
		mark := p.save()
		if call, err := p.parseCallExpr(); err == nil {
			return call, nil
		}
		p.restore(mark)
		name, err := p.parseFqIdentText()
		if err != nil {
			return nil, err
		}
		return &ast.Ident{NodeBase: ast.NodeBase{Span: p.rangeFrom(start)}, Name: name}, nil
	default:
		tok := p.current()
		return nil, p.errorf(tok.Range, "unexpected token %s in expression", tok.Kind)
	}
}
