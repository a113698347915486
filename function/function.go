/*
File   : lox/function/function.go
Package: function

Callable values. Grounded on the teacher's function.Function (a Name,
Params, Body, and captured Scp), adapted to spec.md §4.3's closure
semantics and extended with Native for the single builtin spec.md names:
`clock`.

Function and Native hold only data; invocation mechanics (binding
parameters, running the body, unwinding a return) live in package eval,
which type-switches on *Function/*Native rather than calling a Call
method here. That mirrors the teacher's own eval/evaluator.go, which
type-switches on *function.Function instead of giving it a Call method,
and avoids an eval<->function import cycle: eval already imports
function for these types, and function cannot import eval back.
*/
package function

import (
	"time"

	"github.com/ckessler/lox/environment"
	"github.com/ckessler/lox/lexer"
	"github.com/ckessler/lox/objects"
	"github.com/ckessler/lox/parser"
)

// Function is a user-defined function: its declaration plus the
// environment it closed over at definition time.
type Function struct {
	Name    string
	Params  []lexer.Token
	Body    []parser.Stmt
	Closure *environment.Environment
}

func (f *Function) Type() objects.Type { return objects.CallableType }

func (f *Function) Display() string { return "<fn " + f.Name + ">" }

// Arity reports how many arguments Function expects.
func (f *Function) Arity() int { return len(f.Params) }

// Native is a builtin implemented in Go rather than in Lox source.
type Native struct {
	Name   string
	ArityN int
	GoFn   func(args []objects.Value) (objects.Value, error)
}

func (n *Native) Type() objects.Type { return objects.CallableType }

func (n *Native) Display() string { return "<native fn>" }

// Arity reports how many arguments Native expects.
func (n *Native) Arity() int { return n.ArityN }

// Clock is the sole native function spec.md §4.3 names: it takes no
// arguments and returns the whole number of seconds since the Unix
// epoch as a Number. Grounded on original_source/src/function.rs's
// Clock::call, which truncates milliseconds-since-epoch to whole
// seconds rather than returning fractional seconds.
func Clock() *Native {
	return &Native{
		Name:   "clock",
		ArityN: 0,
		GoFn: func(args []objects.Value) (objects.Value, error) {
			return objects.Number(float64(time.Now().UnixMilli() / 1000)), nil
		},
	}
}
