/*
File   : lox/eval/evaluator.go
Package: eval

The tree-walking evaluator. Grounded on the teacher's eval/evaluator.go
(an Evaluator holding scope + writer state, with Eval dispatching over
AST node kinds) and eval/eval_controls.go's call-dispatch handling for
closures, narrowed to spec.md's smaller AST and reworked to implement
parser.ExprVisitor/parser.StmtVisitor directly rather than a single
untyped Eval(node) switch, so every AST kind is a compile-time
obligation on Interpreter.
*/
package eval

import (
	"io"
	"os"

	"github.com/ckessler/lox/environment"
	"github.com/ckessler/lox/function"
	"github.com/ckessler/lox/lexer"
	"github.com/ckessler/lox/objects"
	"github.com/ckessler/lox/parser"
)

// Interpreter walks statements and expressions, carrying the live
// environment chain. Globals never changes after New; Env tracks the
// environment currently in scope, moving into and back out of block
// and call-frame scopes as execution proceeds.
type Interpreter struct {
	Globals *environment.Environment
	Env     *environment.Environment
	Stdout  io.Writer
}

// New creates an Interpreter with the clock native bound in Globals,
// the only builtin spec.md §4.3 names.
func New() *Interpreter {
	globals := environment.New(nil)
	globals.Define("clock", function.Clock())
	return &Interpreter{Globals: globals, Env: globals, Stdout: os.Stdout}
}

// Run executes a program's statements in order, stopping at the first
// RuntimeError (spec.md §7: "the first runtime error ... exits 70;
// nested evaluations therefore do not need recovery paths beyond
// propagation").
func (i *Interpreter) Run(stmts []parser.Stmt) error {
	for _, s := range stmts {
		if err := i.execute(s); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate runs a single expression and reports its value, for the
// `evaluate` subcommand (spec.md §6.1).
func (i *Interpreter) Evaluate(e parser.Expr) (objects.Value, error) {
	return i.eval(e)
}

func (i *Interpreter) execute(s parser.Stmt) error {
	return s.AcceptStmt(i)
}

func (i *Interpreter) eval(e parser.Expr) (objects.Value, error) {
	v, err := e.AcceptExpr(i)
	if err != nil {
		return nil, err
	}
	return v.(objects.Value), nil
}

// executeBlock runs stmts with env installed as the current
// environment, restoring the previous environment on every exit path
// (spec.md §4.3: "this discipline must hold on every exit path: normal
// completion, runtime error, return unwind").
func (i *Interpreter) executeBlock(stmts []parser.Stmt, env *environment.Environment) error {
	previous := i.Env
	i.Env = env
	defer func() { i.Env = previous }()

	for _, s := range stmts {
		if err := i.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) VisitLiteralExpr(e *parser.LiteralExpr) (any, error) {
	switch e.Kind {
	case parser.LiteralNumber:
		return objects.Number(e.Number), nil
	case parser.LiteralString:
		return objects.String(e.Str), nil
	case parser.LiteralBoolean:
		return objects.Boolean(e.Boolean), nil
	default:
		return objects.Nil{}, nil
	}
}

func (i *Interpreter) VisitGroupingExpr(e *parser.GroupingExpr) (any, error) {
	return i.eval(e.Expression)
}

func (i *Interpreter) VisitUnaryExpr(e *parser.UnaryExpr) (any, error) {
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case lexer.MINUS:
		n, ok := right.(objects.Number)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	case lexer.BANG:
		return objects.Boolean(!objects.Truthy(right)), nil
	}
	return nil, newRuntimeError(e.Operator, "Unknown unary operator '%s'.", e.Operator.Lexeme)
}

func (i *Interpreter) VisitBinaryExpr(e *parser.BinaryExpr) (any, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.PLUS:
		if ln, ok := left.(objects.Number); ok {
			if rn, ok := right.(objects.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(objects.String); ok {
			if rs, ok := right.(objects.String); ok {
				return ls + rs, nil
			}
		}
		return nil, newRuntimeError(e.Operator, "Operands must be two numbers or two strings.")
	case lexer.MINUS:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return ln - rn, nil
	case lexer.STAR:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return ln * rn, nil
	case lexer.SLASH:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return ln / rn, nil
	case lexer.GREATER:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return objects.Boolean(ln > rn), nil
	case lexer.GREATER_EQUAL:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return objects.Boolean(ln >= rn), nil
	case lexer.LESS:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return objects.Boolean(ln < rn), nil
	case lexer.LESS_EQUAL:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operands must be numbers.")
		}
		return objects.Boolean(ln <= rn), nil
	case lexer.EQUAL_EQUAL:
		return objects.Boolean(objects.Equal(left, right)), nil
	case lexer.BANG_EQUAL:
		return objects.Boolean(!objects.Equal(left, right)), nil
	}
	return nil, newRuntimeError(e.Operator, "Unknown binary operator '%s'.", e.Operator.Lexeme)
}

func bothNumbers(left, right objects.Value) (objects.Number, objects.Number, bool) {
	ln, ok := left.(objects.Number)
	if !ok {
		return 0, 0, false
	}
	rn, ok := right.(objects.Number)
	if !ok {
		return 0, 0, false
	}
	return ln, rn, true
}

// VisitLogicalExpr short-circuits: `and`'s right side evaluates only if
// the left is truthy, `or`'s only if the left is falsy (spec.md §8
// property 5).
func (i *Interpreter) VisitLogicalExpr(e *parser.LogicalExpr) (any, error) {
	left, err := i.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == lexer.OR {
		if objects.Truthy(left) {
			return left, nil
		}
	} else {
		if !objects.Truthy(left) {
			return left, nil
		}
	}
	return i.eval(e.Right)
}

func (i *Interpreter) VisitVariableExpr(e *parser.VariableExpr) (any, error) {
	v, err := i.Env.Get(e.Name.Lexeme)
	if err != nil {
		return nil, newRuntimeError(e.Name, "%s", err.Error())
	}
	return v, nil
}

func (i *Interpreter) VisitAssignExpr(e *parser.AssignExpr) (any, error) {
	v, err := i.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if err := i.Env.Assign(e.Name.Lexeme, v); err != nil {
		return nil, newRuntimeError(e.Name, "%s", err.Error())
	}
	return v, nil
}

// VisitCallExpr evaluates callee and arguments, then dispatches on the
// concrete callable kind. Arity and callability checks are raised at
// the call's closing paren (spec.md §4.3 step 1/3), matching
// CallExpr.ClosingParen's purpose.
func (i *Interpreter) VisitCallExpr(e *parser.CallExpr) (any, error) {
	callee, err := i.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]objects.Value, len(e.Arguments))
	for idx, a := range e.Arguments {
		v, err := i.eval(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	switch fn := callee.(type) {
	case *function.Function:
		if len(args) != fn.Arity() {
			return nil, newRuntimeError(e.ClosingParen, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return i.callFunction(fn, args)
	case *function.Native:
		if len(args) != fn.Arity() {
			return nil, newRuntimeError(e.ClosingParen, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		v, err := fn.GoFn(args)
		if err != nil {
			return nil, newRuntimeError(e.ClosingParen, "%s", err.Error())
		}
		return v, nil
	default:
		return nil, newRuntimeError(e.ClosingParen, "Can only call functions and classes.")
	}
}

// callFunction binds args to fn's parameters in a fresh environment
// nested inside fn's closure (not the caller's environment — that is
// exactly what makes closures observe their defining scope rather than
// their call site), runs the body, and recovers a returnSignal as the
// call's result. A function that falls off its body's end returns Nil
// (spec.md §4.3).
func (i *Interpreter) callFunction(fn *function.Function, args []objects.Value) (objects.Value, error) {
	callEnv := environment.New(fn.Closure)
	for idx, param := range fn.Params {
		callEnv.Define(param.Lexeme, args[idx])
	}

	err := i.executeBlock(fn.Body, callEnv)
	if err == nil {
		return objects.Nil{}, nil
	}
	if r, ok := asReturn(err); ok {
		return r.Value, nil
	}
	return nil, err
}
