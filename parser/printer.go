/*
File   : lox/parser/printer.go
Package: parser

Printer renders an Expr as the parenthesized text spec.md §6.3
specifies, for the `parse` subcommand. Grounded on the teacher's
main/print_visitor.go PrintingVisitor (a visitor that accumulates into a
buffer), narrowed to the ExprVisitor this package actually defines.
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/ckessler/lox/objects"
)

// Printer implements ExprVisitor, producing spec §6.3's parenthesized
// AST text. It never errors — printing is a pure syntactic rendering.
type Printer struct{}

// Print renders a single expression.
func (Printer) Print(e Expr) string {
	v, _ := e.AcceptExpr(Printer{})
	return v.(string)
}

func (p Printer) VisitLiteralExpr(e *LiteralExpr) (any, error) {
	switch e.Kind {
	case LiteralNumber:
		return objects.LiteralText(objects.Number(e.Number)), nil
	case LiteralString:
		return e.Str, nil
	case LiteralBoolean:
		if e.Boolean {
			return "true", nil
		}
		return "false", nil
	default:
		return "nil", nil
	}
}

func (p Printer) VisitGroupingExpr(e *GroupingExpr) (any, error) {
	return p.parenthesize("group", e.Expression), nil
}

func (p Printer) VisitUnaryExpr(e *UnaryExpr) (any, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Right), nil
}

func (p Printer) VisitBinaryExpr(e *BinaryExpr) (any, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right), nil
}

func (p Printer) VisitLogicalExpr(e *LogicalExpr) (any, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right), nil
}

func (p Printer) VisitVariableExpr(e *VariableExpr) (any, error) {
	return e.Name.Lexeme, nil
}

func (p Printer) VisitAssignExpr(e *AssignExpr) (any, error) {
	return p.parenthesize("= "+e.Name.Lexeme, e.Value), nil
}

func (p Printer) VisitCallExpr(e *CallExpr) (any, error) {
	args := append([]Expr{e.Callee}, e.Arguments...)
	return p.parenthesize("call", args...), nil
}

func (p Printer) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%s", name)
	for _, e := range exprs {
		b.WriteByte(' ')
		v, _ := e.AcceptExpr(p)
		b.WriteString(v.(string))
	}
	b.WriteByte(')')
	return b.String()
}
