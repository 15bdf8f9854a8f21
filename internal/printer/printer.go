// Package printer renders a decorated AST as the canonical debug dump
// described in the external interfaces: each node prints
// "(kind (line,col) fields...)" with children indented by a fixed width.
// This is deliberately a thin, test-oriented collaborator: it reads the
// tree through ordinary type switches and never mutates it.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/soda-lang/soda/internal/ast"
)

const indentWidth = 2

// Dump writes the canonical s-expression form of node to w.
func Dump(w io.Writer, node ast.Node) {
	fmt.Fprintln(w, dumpNode(node, 0))
}

// DumpString is a convenience wrapper returning the dump as a string,
// primarily used by golden-style tests.
func DumpString(node ast.Node) string {
	var b strings.Builder
	Dump(&b, node)
	return strings.TrimRight(b.String(), "\n")
}

// DumpRepr renders node's raw Go struct shape instead of the canonical
// s-expression form. It is a developer-convenience alternate reachable
// from the CLI's --dump=repr mode; unlike Dump it is not a stable
// contract and is meant for ad hoc inspection while debugging a pass.
func DumpRepr(w io.Writer, node ast.Node) {
	fmt.Fprintln(w, repr.String(node, repr.Indent("  ")))
}

func pos(n ast.Node) string {
	p := n.Range().Start
	return fmt.Sprintf("(%d,%d)", p.Line+1, p.Column+1)
}

func indent(depth int) string {
	return strings.Repeat(" ", depth*indentWidth)
}

func dumpNode(n ast.Node, depth int) string {
	if n == nil {
		return indent(depth) + "nil"
	}
	var b strings.Builder
	b.WriteString(indent(depth))

	switch v := n.(type) {
	case *ast.TU:
		fmt.Fprintf(&b, "(TU %s file=%q", pos(v), v.File)
		dumpChildren(&b, depth, stmtNodes(v.Stmts))
		b.WriteString(")")
	case *ast.Namespace:
		fmt.Fprintf(&b, "(Namespace %s name=%q", pos(v), v.Name)
		dumpChildren(&b, depth, stmtNodes(v.Stmts))
		b.WriteString(")")
	case *ast.Import:
		fmt.Fprintf(&b, "(Import %s name=%q)", pos(v), v.Name)
	case *ast.Alias:
		fmt.Fprintf(&b, "(Alias %s name=%q", pos(v), v.Name)
		dumpChildren(&b, depth, []ast.Node{v.Target})
		b.WriteString(")")
	case *ast.ClassDef:
		fmt.Fprintf(&b, "(ClassDef %s name=%q", pos(v), v.Name)
		dumpChildren(&b, depth, append(typeIdentNodes(v.Bases), stmtNodes(v.Stmts)...))
		b.WriteString(")")
	case *ast.Delegate:
		fmt.Fprintf(&b, "(Delegate %s name=%q", pos(v), v.Name)
		dumpChildren(&b, depth, append([]ast.Node{v.Return}, argNodes(v.Args)...))
		b.WriteString(")")
	case *ast.FuncDecl:
		fmt.Fprintf(&b, "(FuncDecl %s name=%q", pos(v), v.Name)
		kids := append([]ast.Node{v.Return}, argNodes(v.Args)...)
		if v.Foreign != nil {
			kids = append(kids, v.Foreign)
		}
		dumpChildren(&b, depth, kids)
		b.WriteString(")")
	case *ast.FuncDef:
		fmt.Fprintf(&b, "(FuncDef %s name=%q access=%s static=%t", pos(v), v.Name, v.Access, v.Static)
		kids := append([]ast.Node{v.Return}, argNodes(v.Args)...)
		kids = append(kids, stmtNodes(v.Stmts)...)
		dumpChildren(&b, depth, kids)
		b.WriteString(")")
	case *ast.VarDecl:
		fmt.Fprintf(&b, "(VarDecl %s name=%q access=%s static=%t", pos(v), v.Name, v.Access, v.Static)
		kids := []ast.Node{v.Type}
		if v.Init != nil {
			kids = append(kids, v.Init)
		}
		dumpChildren(&b, depth, kids)
		b.WriteString(")")
	case *ast.Argument:
		fmt.Fprintf(&b, "(Argument %s name=%q", pos(v), v.Name)
		kids := []ast.Node{v.Type}
		if v.Default != nil {
			kids = append(kids, v.Default)
		}
		dumpChildren(&b, depth, kids)
		b.WriteString(")")
	case *ast.TypeIdent:
		resolved := "unresolved"
		if v.Resolved != nil {
			resolved = "resolved"
		}
		fmt.Fprintf(&b, "(TypeIdent %s name=%q const=%t %s)", pos(v), v.Name, v.Const, resolved)
	case *ast.CompoundStmt:
		fmt.Fprintf(&b, "(CompoundStmt %s", pos(v))
		dumpChildren(&b, depth, stmtNodes(v.Stmts))
		b.WriteString(")")
	case *ast.IfStmt:
		fmt.Fprintf(&b, "(IfStmt %s", pos(v))
		kids := []ast.Node{v.Cond, v.Then}
		if v.Else != nil {
			kids = append(kids, v.Else)
		}
		dumpChildren(&b, depth, kids)
		b.WriteString(")")
	case *ast.SwitchStmt:
		fmt.Fprintf(&b, "(SwitchStmt %s", pos(v))
		kids := append([]ast.Node{v.Expr}, caseNodes(v.Cases)...)
		dumpChildren(&b, depth, kids)
		b.WriteString(")")
	case *ast.CaseStmt:
		label := "default"
		if v.Label != nil {
			label = "case"
		}
		fmt.Fprintf(&b, "(CaseStmt %s kind=%s", pos(v), label)
		kids := []ast.Node{}
		if v.Label != nil {
			kids = append(kids, v.Label)
		}
		kids = append(kids, v.Body)
		dumpChildren(&b, depth, kids)
		b.WriteString(")")
	case *ast.ReturnStmt:
		fmt.Fprintf(&b, "(ReturnStmt %s", pos(v))
		if v.Expr != nil {
			dumpChildren(&b, depth, []ast.Node{v.Expr})
		}
		b.WriteString(")")
	case *ast.BreakStmt:
		fmt.Fprintf(&b, "(BreakStmt %s)", pos(v))
	case *ast.ExprStmt:
		fmt.Fprintf(&b, "(ExprStmt %s", pos(v))
		dumpChildren(&b, depth, []ast.Node{v.Expr})
		b.WriteString(")")
	case *ast.EmptyStmt:
		fmt.Fprintf(&b, "(EmptyStmt %s)", pos(v))
	case *ast.ForeignAnnotation:
		fmt.Fprintf(&b, "(ForeignAnnotation %s", pos(v))
		for _, k := range v.Keys {
			fmt.Fprintf(&b, " %s=%q", k, v.Values[k])
		}
		b.WriteString(")")
	case *ast.IntegerLit:
		fmt.Fprintf(&b, "(Integer %s value=%q base=%d)", pos(v), v.Text, v.Base)
	case *ast.FloatLit:
		fmt.Fprintf(&b, "(Float %s value=%q)", pos(v), v.Text)
	case *ast.Ident:
		fmt.Fprintf(&b, "(Ident %s name=%q)", pos(v), v.Name)
	case *ast.StrLit:
		fmt.Fprintf(&b, "(StrLit %s text=%q)", pos(v), v.Text)
	case *ast.BinOp:
		fmt.Fprintf(&b, "(BinOp %s op=%q", pos(v), v.OpText)
		dumpChildren(&b, depth, []ast.Node{v.Lhs, v.Rhs})
		b.WriteString(")")
	case *ast.CallExpr:
		fmt.Fprintf(&b, "(CallExpr %s", pos(v))
		kids := append([]ast.Node{v.Callee}, exprNodes(v.Args)...)
		dumpChildren(&b, depth, kids)
		b.WriteString(")")
	default:
		fmt.Fprintf(&b, "(unknown-node %T)", n)
	}
	return b.String()
}

func dumpChildren(b *strings.Builder, depth int, kids []ast.Node) {
	for _, k := range kids {
		if k == nil {
			continue
		}
		b.WriteString("\n")
		b.WriteString(dumpNode(k, depth+1))
	}
}

func stmtNodes(stmts []ast.Stmt) []ast.Node {
	out := make([]ast.Node, len(stmts))
	for i, s := range stmts {
		out[i] = s
	}
	return out
}

func exprNodes(exprs []ast.Expr) []ast.Node {
	out := make([]ast.Node, len(exprs))
	for i, e := range exprs {
		out[i] = e
	}
	return out
}

func argNodes(args []*ast.Argument) []ast.Node {
	out := make([]ast.Node, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

func typeIdentNodes(tis []*ast.TypeIdent) []ast.Node {
	out := make([]ast.Node, len(tis))
	for i, t := range tis {
		out[i] = t
	}
	return out
}

func caseNodes(cases []*ast.CaseStmt) []ast.Node {
	out := make([]ast.Node, len(cases))
	for i, c := range cases {
		out[i] = c
	}
	return out
}
