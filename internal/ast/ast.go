// Package ast defines the abstract syntax tree the parser builds and the
// two semantic passes decorate. Rather than the class-hierarchy-plus-visitor
// shape of the original front-end, every node kind is a concrete Go struct
// satisfying a small sealed interface, and traversals are ordinary
// exhaustive type switches (see internal/sema and internal/printer).
package ast

import "github.com/soda-lang/soda/internal/source"

// Node is the shared header of every AST node: a source range and a weak,
// non-owning back-pointer to the enclosing node. Parent is nil until one of
// the semantic passes sets it; nothing in the parser reads it.
type Node interface {
	Range() source.Range
	ParentNode() Node
	SetParent(Node)
}

// Expr is the sealed interface implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is the sealed interface implemented by every statement node,
// including TypeIdent and ForeignAnnotation, which the data model groups
// with statements even though they read more like type/annotation nodes.
type Stmt interface {
	Node
	stmtNode()
}

// NodeBase is the shared header record every concrete node type embeds:
// a source range and a weak parent back-pointer. It is exported so that
// the parser, which lives in a different package, can populate Span while
// constructing a node literal.
type NodeBase struct {
	Span   source.Range
	Parent Node
}

func (b *NodeBase) Range() source.Range { return b.Span }
func (b *NodeBase) ParentNode() Node    { return b.Parent }
func (b *NodeBase) SetParent(p Node)    { b.Parent = p }

// Scope is a symbol table under construction or fully built: a mapping from
// a local (non-qualified) name to the statement node that defines it, plus
// insertion order for deterministic traversal and dumping.
type Scope struct {
	order   []string
	entries map[string]Stmt
}

func NewScope() *Scope {
	return &Scope{entries: make(map[string]Stmt)}
}

// Define inserts name → node. It reports false without modifying the scope
// if name is already defined, leaving redefinition handling to the caller.
func (s *Scope) Define(name string, node Stmt) bool {
	if _, exists := s.entries[name]; exists {
		return false
	}
	s.order = append(s.order, name)
	s.entries[name] = node
	return true
}

func (s *Scope) Lookup(name string) (Stmt, bool) {
	n, ok := s.entries[name]
	return n, ok
}

// Names returns the locally defined names in definition order.
func (s *Scope) Names() []string {
	return s.order
}

// Access is the access specifier attached to a declaration. The zero value
// means no access specifier was written.
type Access int

const (
	AccessNone Access = iota
	AccessPublic
	AccessPrivate
	AccessProtected
	AccessInternal
)

func (a Access) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessPrivate:
		return "private"
	case AccessProtected:
		return "protected"
	case AccessInternal:
		return "internal"
	default:
		return ""
	}
}

// ---- Expressions ----

type IntegerLit struct {
	NodeBase
	Text string // digits only; base prefix already stripped by the tokenizer
	Base int    // 2, 8, 10, or 16
}

func (*IntegerLit) exprNode() {}

type FloatLit struct {
	NodeBase
	Text string // raw lexeme, e.g. "123.456", ".456", "123."
}

func (*FloatLit) exprNode() {}

// Ident is a (possibly dotted) name used in expression position: a bare
// identifier or a call callee. Resolved is left nil by the two passes this
// repository implements; binding non-type identifier uses is future work
// the reference pass explicitly declines to do.
type Ident struct {
	NodeBase
	Name     string
	Resolved Stmt
}

func (*Ident) exprNode() {}

type StrLit struct {
	NodeBase
	Text string
}

func (*StrLit) exprNode() {}

// BinOp is a binary expression. Op is the operator token kind (e.g.
// token.PlusToken); parenthesized sub-expressions do not survive parsing,
// so Lhs/Rhs are exactly the operands as written modulo grouping.
type BinOp struct {
	NodeBase
	Op       int // token.Kind value stored as a plain int; convert with token.Kind(Op)
	OpText   string
	Lhs, Rhs Expr
}

func (*BinOp) exprNode() {}

type CallExpr struct {
	NodeBase
	Callee *Ident
	Args   []Expr
}

func (*CallExpr) exprNode() {}

// ---- Statements ----

// TU is the translation unit: the AST root for one source file or stream.
type TU struct {
	NodeBase
	File    string
	Stmts   []Stmt
	Symbols *Scope
}

func (*TU) stmtNode() {}

// Namespace holds top-level declarations under a (possibly anonymous)
// dotted name segment.
type Namespace struct {
	NodeBase
	Name    string // as written; the scope pass qualifies it; "" means anonymous
	Stmts   []Stmt
	Symbols *Scope
}

func (*Namespace) stmtNode() {}

type Import struct {
	NodeBase
	Name string // dotted fq-ident
}

func (*Import) stmtNode() {}

// Alias binds a new local name to an existing type.
type Alias struct {
	NodeBase
	Name   string
	Target *TypeIdent
}

func (*Alias) stmtNode() {}

type ClassDef struct {
	NodeBase
	Name    string
	Bases   []*TypeIdent
	Stmts   []Stmt
	Symbols *Scope
}

func (*ClassDef) stmtNode() {}

type Delegate struct {
	NodeBase
	Return  *TypeIdent
	Name    string
	Args    []*Argument
	Symbols *Scope
}

func (*Delegate) stmtNode() {}

// FuncDecl is a prototype with no body, used for foreign (CCode) bindings.
type FuncDecl struct {
	NodeBase
	Return  *TypeIdent
	Name    string
	Args    []*Argument
	Foreign *ForeignAnnotation // nil unless preceded by [CCode(...)]
}

func (*FuncDecl) stmtNode() {}

type FuncDef struct {
	NodeBase
	Access  Access
	Static  bool
	Return  *TypeIdent
	Name    string
	Args    []*Argument
	Stmts   []Stmt
	Symbols *Scope
}

func (*FuncDef) stmtNode() {}

type VarDecl struct {
	NodeBase
	Access Access
	Static bool
	Type   *TypeIdent
	Name   string
	Init   Expr // nil if undeclared
}

func (*VarDecl) stmtNode() {}

type Argument struct {
	NodeBase
	Type    *TypeIdent
	Name    string
	Default Expr // nil if none
}

func (*Argument) stmtNode() {}

// TypeIdent is a type reference: a (possibly dotted) name, an optional
// const qualifier, and — after the reference pass — the declaration it
// binds to. The data model groups this with statements rather than
// expressions; VarDecl, Argument, Alias, and ClassDef all embed one.
type TypeIdent struct {
	NodeBase
	Name     string
	Const    bool
	Resolved Stmt
}

func (*TypeIdent) stmtNode() {}

type CompoundStmt struct {
	NodeBase
	Stmts   []Stmt
	Symbols *Scope
}

func (*CompoundStmt) stmtNode() {}

type IfStmt struct {
	NodeBase
	Cond Expr
	Then Stmt
	Else Stmt // nil if no else branch
}

func (*IfStmt) stmtNode() {}

type SwitchStmt struct {
	NodeBase
	Expr    Expr
	Cases   []*CaseStmt
	Symbols *Scope
}

func (*SwitchStmt) stmtNode() {}

// CaseStmt represents both "case <expr>:" and "default:" with a nullable
// Label; Label == nil means default. The original front-end encodes both
// with one node kind and a nullable label, and this repository keeps that
// encoding rather than splitting it into two node kinds.
type CaseStmt struct {
	NodeBase
	Label Expr // nil for "default"
	Body  Stmt
}

func (*CaseStmt) stmtNode() {}

type ReturnStmt struct {
	NodeBase
	Expr Expr // nil for a bare "return;"
}

func (*ReturnStmt) stmtNode() {}

type BreakStmt struct {
	NodeBase
}

func (*BreakStmt) stmtNode() {}

// ExprStmt wraps an expression used as a statement. The grammar restricts
// these to call expressions; the parser enforces that, not this type.
type ExprStmt struct {
	NodeBase
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

type EmptyStmt struct {
	NodeBase
}

func (*EmptyStmt) stmtNode() {}

// ForeignAnnotation carries the string-keyed parameter map of a
// "[CCode(name="value", ...)]" annotation. Keys preserves write order so
// dumps and diagnostics are deterministic; Values gives O(1) lookup.
type ForeignAnnotation struct {
	NodeBase
	Keys   []string
	Values map[string]string
}

func (*ForeignAnnotation) stmtNode() {}

func NewForeignAnnotation(rng source.Range) *ForeignAnnotation {
	return &ForeignAnnotation{NodeBase: NodeBase{Span: rng}, Values: make(map[string]string)}
}

// Set appends name to Keys if not already present, and sets its value.
func (f *ForeignAnnotation) Set(name, value string) {
	if _, exists := f.Values[name]; !exists {
		f.Keys = append(f.Keys, name)
	}
	f.Values[name] = value
}

func (f *ForeignAnnotation) Get(name string) (string, bool) {
	v, ok := f.Values[name]
	return v, ok
}
