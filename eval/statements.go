/*
File   : lox/eval/statements.go
Package: eval

Statement execution: the other half of parser.StmtVisitor, grounded on
the teacher's eval/eval_statements.go, eval/eval_conditionals.go, and
eval/eval_loops.go (if/while/block dispatch) and eval/eval_controls.go
(return/function declaration), narrowed to spec.md §4.3's statement
forms and rewired around the *RuntimeError/returnSignal error values
types.go defines in place of the teacher's sentinel objects.
*/
package eval

import (
	"fmt"

	"github.com/ckessler/lox/environment"
	"github.com/ckessler/lox/function"
	"github.com/ckessler/lox/objects"
	"github.com/ckessler/lox/parser"
)

func (i *Interpreter) VisitExpressionStmt(s *parser.ExpressionStmt) error {
	_, err := i.eval(s.Expression)
	return err
}

// VisitPrintStmt writes the expression's Display text, the "run"
// formatting mode (integer-valued numbers without a trailing .0, as
// opposed to tokenize/parse's LiteralText mode).
func (i *Interpreter) VisitPrintStmt(s *parser.PrintStmt) error {
	v, err := i.eval(s.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(i.Stdout, v.Display())
	return nil
}

// VisitVarStmt binds Name in the current scope. A declaration with no
// initializer binds Nil (spec.md §3).
func (i *Interpreter) VisitVarStmt(s *parser.VarStmt) error {
	var v objects.Value = objects.Nil{}
	if s.Initializer != nil {
		var err error
		v, err = i.eval(s.Initializer)
		if err != nil {
			return err
		}
	}
	i.Env.Define(s.Name.Lexeme, v)
	return nil
}

func (i *Interpreter) VisitBlockStmt(s *parser.BlockStmt) error {
	return i.executeBlock(s.Statements, environment.New(i.Env))
}

func (i *Interpreter) VisitIfStmt(s *parser.IfStmt) error {
	cond, err := i.eval(s.Condition)
	if err != nil {
		return err
	}
	if objects.Truthy(cond) {
		return i.execute(s.Then)
	}
	if s.Else != nil {
		return i.execute(s.Else)
	}
	return nil
}

func (i *Interpreter) VisitWhileStmt(s *parser.WhileStmt) error {
	for {
		cond, err := i.eval(s.Condition)
		if err != nil {
			return err
		}
		if !objects.Truthy(cond) {
			return nil
		}
		if err := i.execute(s.Body); err != nil {
			return err
		}
	}
}

// VisitFunctionStmt binds a Function closing over the environment in
// scope at declaration time, so it sees later mutations to that scope
// (spec.md §8 property 7).
func (i *Interpreter) VisitFunctionStmt(s *parser.FunctionStmt) error {
	fn := &function.Function{
		Name:    s.Name.Lexeme,
		Params:  s.Params,
		Body:    s.Body,
		Closure: i.Env,
	}
	i.Env.Define(s.Name.Lexeme, fn)
	return nil
}

// VisitReturnStmt raises a returnSignal rather than executing anything
// further; callFunction recovers it at the call frame (spec.md §9).
func (i *Interpreter) VisitReturnStmt(s *parser.ReturnStmt) error {
	var v objects.Value = objects.Nil{}
	if s.Value != nil {
		var err error
		v, err = i.eval(s.Value)
		if err != nil {
			return err
		}
	}
	return &returnSignal{Value: v}
}
