// Package sema implements the two decorating passes that run after
// parsing: a scope/naming pass that builds per-scope symbol tables and
// assigns fully-qualified dotted names, and a type-reference pass that
// binds every type occurrence to its declaration via lexical scoping.
// Both are plain exhaustive type switches over internal/ast, in place of
// the accept/visit double dispatch the original front-end used.
package sema

import (
	"strings"

	"github.com/soda-lang/soda/internal/ast"
	"github.com/soda-lang/soda/internal/diag"
)

// scopePass carries the stack of namespace/class/function name segments
// used to build fully-qualified names. The symbol table under construction
// is not kept on a stack here: each visit method receives the innermost
// one as a parameter.
type scopePass struct {
	file  string
	names []string
}

// RunScopePass builds per-scope symbol tables for tu and rewrites every
// name-bearing declaration to its fully-qualified dotted form. It returns
// the first redefinition error encountered, if any.
func RunScopePass(file string, tu *ast.TU) error {
	p := &scopePass{file: file}
	return p.visitTU(tu)
}

func (p *scopePass) qualify(local string) string {
	if len(p.names) == 0 {
		return local
	}
	return strings.Join(p.names, ".") + "." + local
}

// defineErr inserts local -> node into scope, reporting a redefinition
// error against the range of the earlier definition if the name is
// already taken.
func (p *scopePass) defineErr(file string, scope *ast.Scope, local string, node ast.Stmt) error {
	if !scope.Define(local, node) {
		prev, _ := scope.Lookup(local)
		return diag.New(file, prev.Range(), "%q is already defined in this scope", local)
	}
	return nil
}

func (p *scopePass) pushName(n string) { p.names = append(p.names, n) }
func (p *scopePass) popName()          { p.names = p.names[:len(p.names)-1] }

func (p *scopePass) visitTU(tu *ast.TU) error {
	scope := ast.NewScope()
	for _, st := range tu.Stmts {
		st.SetParent(tu)
		if err := p.visitStmt(scope, st); err != nil {
			return err
		}
	}
	tu.Symbols = scope
	return nil
}

// visitStmt dispatches on concrete statement type. scope is the symbol
// table of the innermost enclosing scope-bearing node; scope-bearing nodes
// push their own fresh scope for their children before returning here.
func (p *scopePass) visitStmt(scope *ast.Scope, st ast.Stmt) error {
	switch n := st.(type) {
	case *ast.Namespace:
		return p.visitNamespace(scope, n)
	case *ast.ClassDef:
		return p.visitClassDef(scope, n)
	case *ast.FuncDef:
		return p.visitFuncDef(scope, n)
	case *ast.FuncDecl:
		return p.visitFuncDecl(scope, n)
	case *ast.Delegate:
		return p.visitDelegate(scope, n)
	case *ast.VarDecl:
		return p.visitVarDecl(scope, n)
	case *ast.Alias:
		return p.visitAlias(scope, n)
	case *ast.Import:
		return nil // imports do not define a name in this scope
	case *ast.CompoundStmt:
		return p.visitCompoundStmt(n)
	case *ast.IfStmt:
		return p.visitIfStmt(scope, n)
	case *ast.SwitchStmt:
		return p.visitSwitchStmt(scope, n)
	case *ast.ReturnStmt:
		if n.Expr != nil {
			n.Expr.SetParent(n)
		}
		return nil
	case *ast.ExprStmt:
		n.Expr.SetParent(n)
		return nil
	case *ast.BreakStmt, *ast.EmptyStmt:
		return nil
	default:
		return nil
	}
}

func (p *scopePass) visitNamespace(parentScope *ast.Scope, n *ast.Namespace) error {
	// An anonymous namespace ("namespace { ... }") contributes no name
	// segment and does not occupy a slot in the enclosing symbol table.
	if n.Name != "" {
		qualified := p.qualify(n.Name)
		local := n.Name
		n.Name = qualified
		if err := p.defineErr(p.file, parentScope, local, n); err != nil {
			return err
		}
		p.pushName(local)
		defer p.popName()
	}
	scope := ast.NewScope()
	for _, st := range n.Stmts {
		st.SetParent(n)
		if err := p.visitStmt(scope, st); err != nil {
			return err
		}
	}
	n.Symbols = scope
	return nil
}

func (p *scopePass) visitClassDef(parentScope *ast.Scope, n *ast.ClassDef) error {
	local := n.Name
	n.Name = p.qualify(local)
	if err := p.defineErr(p.file, parentScope, local, n); err != nil {
		return err
	}
	p.pushName(local)
	defer p.popName()

	for _, b := range n.Bases {
		b.SetParent(n)
	}
	scope := ast.NewScope()
	for _, st := range n.Stmts {
		st.SetParent(n)
		if err := p.visitStmt(scope, st); err != nil {
			return err
		}
	}
	n.Symbols = scope
	return nil
}

func (p *scopePass) visitFuncDef(parentScope *ast.Scope, n *ast.FuncDef) error {
	local := n.Name
	n.Name = p.qualify(local)
	if err := p.defineErr(p.file, parentScope, local, n); err != nil {
		return err
	}
	p.pushName(local)
	defer p.popName()

	n.Return.SetParent(n)
	scope := ast.NewScope()
	for _, arg := range n.Args {
		arg.SetParent(n)
		argLocal := arg.Name
		arg.Name = p.qualify(argLocal)
		if err := p.defineErr(p.file, scope, argLocal, arg); err != nil {
			return err
		}
		if arg.Default != nil {
			arg.Default.SetParent(arg)
		}
	}
	for _, st := range n.Stmts {
		st.SetParent(n)
		if err := p.visitStmt(scope, st); err != nil {
			return err
		}
	}
	n.Symbols = scope
	return nil
}

func (p *scopePass) visitFuncDecl(parentScope *ast.Scope, n *ast.FuncDecl) error {
	local := n.Name
	n.Name = p.qualify(local)
	if err := p.defineErr(p.file, parentScope, local, n); err != nil {
		return err
	}
	n.Return.SetParent(n)
	p.pushName(local)
	for _, arg := range n.Args {
		arg.SetParent(n)
		arg.Name = p.qualify(arg.Name)
	}
	p.popName()
	if n.Foreign != nil {
		n.Foreign.SetParent(n)
	}
	return nil
}

func (p *scopePass) visitDelegate(parentScope *ast.Scope, n *ast.Delegate) error {
	local := n.Name
	n.Name = p.qualify(local)
	if err := p.defineErr(p.file, parentScope, local, n); err != nil {
		return err
	}
	p.pushName(local)
	defer p.popName()

	n.Return.SetParent(n)
	scope := ast.NewScope()
	for _, arg := range n.Args {
		arg.SetParent(n)
		argLocal := arg.Name
		arg.Name = p.qualify(argLocal)
		if err := p.defineErr(p.file, scope, argLocal, arg); err != nil {
			return err
		}
	}
	n.Symbols = scope
	return nil
}

func (p *scopePass) visitVarDecl(scope *ast.Scope, n *ast.VarDecl) error {
	local := n.Name
	n.Name = p.qualify(local)
	if err := p.defineErr(p.file, scope, local, n); err != nil {
		return err
	}
	n.Type.SetParent(n)
	if n.Init != nil {
		n.Init.SetParent(n)
	}
	return nil
}

func (p *scopePass) visitAlias(scope *ast.Scope, n *ast.Alias) error {
	local := n.Name
	n.Name = p.qualify(local)
	if err := p.defineErr(p.file, scope, local, n); err != nil {
		return err
	}
	n.Target.SetParent(n)
	return nil
}

func (p *scopePass) visitCompoundStmt(n *ast.CompoundStmt) error {
	scope := ast.NewScope()
	for _, st := range n.Stmts {
		st.SetParent(n)
		if err := p.visitStmt(scope, st); err != nil {
			return err
		}
	}
	n.Symbols = scope
	return nil
}

// visitIfStmt does not open a scope: its branches share the enclosing
// scope, exactly as a bare (non-brace) branch statement would.
func (p *scopePass) visitIfStmt(scope *ast.Scope, n *ast.IfStmt) error {
	n.Cond.SetParent(n)
	n.Then.SetParent(n)
	if err := p.visitStmt(scope, n.Then); err != nil {
		return err
	}
	if n.Else != nil {
		n.Else.SetParent(n)
		if err := p.visitStmt(scope, n.Else); err != nil {
			return err
		}
	}
	return nil
}

func (p *scopePass) visitSwitchStmt(parentScope *ast.Scope, n *ast.SwitchStmt) error {
	n.Expr.SetParent(n)
	scope := ast.NewScope()
	for _, c := range n.Cases {
		c.SetParent(n)
		if c.Label != nil {
			c.Label.SetParent(c)
		}
		c.Body.SetParent(c)
		if err := p.visitStmt(scope, c.Body); err != nil {
			return err
		}
	}
	n.Symbols = scope
	return nil
}
