package sema

import (
	"github.com/soda-lang/soda/internal/ast"
	"github.com/soda-lang/soda/internal/diag"
)

// typeRefPass walks the AST a second time, after the scope pass has
// populated every Symbols field, resolving each TypeIdent and base-class
// identifier against the lexical scope stack.
type typeRefPass struct {
	file   string
	scopes []*ast.Scope
}

// RunTypeRefPass resolves every TypeIdent and ClassDef base identifier in
// tu. It must run after RunScopePass; calling it first would search empty
// symbol tables and every lookup would fail.
func RunTypeRefPass(file string, tu *ast.TU) error {
	p := &typeRefPass{file: file}
	return p.visitTU(tu)
}

func (p *typeRefPass) push(s *ast.Scope) { p.scopes = append(p.scopes, s) }
func (p *typeRefPass) pop()              { p.scopes = p.scopes[:len(p.scopes)-1] }

// lookup searches the scope stack innermost-to-outermost, per the
// component design's lexical-scope rule.
func (p *typeRefPass) lookup(name string) (ast.Stmt, bool) {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		if n, ok := p.scopes[i].Lookup(name); ok {
			return n, true
		}
	}
	return nil, false
}

func (p *typeRefPass) resolve(ti *ast.TypeIdent) error {
	decl, ok := p.lookup(ti.Name)
	if !ok {
		return diag.New(p.file, ti.Range(), "unknown type name %q", ti.Name)
	}
	ti.Resolved = decl
	return nil
}

func (p *typeRefPass) visitTU(tu *ast.TU) error {
	p.push(tu.Symbols)
	defer p.pop()
	return p.visitStmts(tu.Stmts)
}

func (p *typeRefPass) visitStmts(stmts []ast.Stmt) error {
	for _, st := range stmts {
		if err := p.visitStmt(st); err != nil {
			return err
		}
	}
	return nil
}

func (p *typeRefPass) visitStmt(st ast.Stmt) error {
	switch n := st.(type) {
	case *ast.Namespace:
		p.push(n.Symbols)
		defer p.pop()
		return p.visitStmts(n.Stmts)
	case *ast.ClassDef:
		for _, b := range n.Bases {
			if err := p.resolve(b); err != nil {
				return err
			}
		}
		p.push(n.Symbols)
		defer p.pop()
		return p.visitStmts(n.Stmts)
	case *ast.FuncDef:
		if err := p.resolve(n.Return); err != nil {
			return err
		}
		p.push(n.Symbols)
		defer p.pop()
		if err := p.visitArgs(n.Args); err != nil {
			return err
		}
		return p.visitStmts(n.Stmts)
	case *ast.FuncDecl:
		if err := p.resolve(n.Return); err != nil {
			return err
		}
		return p.visitArgs(n.Args)
	case *ast.Delegate:
		if err := p.resolve(n.Return); err != nil {
			return err
		}
		p.push(n.Symbols)
		defer p.pop()
		return p.visitArgs(n.Args)
	case *ast.VarDecl:
		return p.resolve(n.Type)
	case *ast.Alias:
		return p.resolve(n.Target)
	case *ast.CompoundStmt:
		p.push(n.Symbols)
		defer p.pop()
		return p.visitStmts(n.Stmts)
	case *ast.IfStmt:
		if err := p.visitStmt(n.Then); err != nil {
			return err
		}
		if n.Else != nil {
			return p.visitStmt(n.Else)
		}
		return nil
	case *ast.SwitchStmt:
		p.push(n.Symbols)
		defer p.pop()
		for _, c := range n.Cases {
			if err := p.visitStmt(c.Body); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

func (p *typeRefPass) visitArgs(args []*ast.Argument) error {
	for _, a := range args {
		if err := p.resolve(a.Type); err != nil {
			return err
		}
	}
	return nil
}
