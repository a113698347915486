/*
File   : lox/eval/types.go
Package: eval

Error and control-flow types for the evaluator. Grounded on the
teacher's eval/types.go (which defines the handful of sentinel object
kinds evalution produces, such as std.ReturnValue and std.Error) but
reworked around Go's native error values: a *RuntimeError carries the
{line, message, token} record spec.md §7 requires, and returnSignal is
a distinguished error implementation that callFunction tells apart
from an ordinary RuntimeError with a type assertion (asReturn), exactly
as spec.md §9 asks ("a distinguished variant of the statement-execution
result, not a runtime error").
*/
package eval

import (
	"fmt"

	"github.com/ckessler/lox/lexer"
	"github.com/ckessler/lox/objects"
)

// RuntimeError is a runtime fault: an ill-typed operand, an undefined
// variable, a bad call. Token anchors the "[line L]" prefix spec.md
// §6.4 requires.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Runtime Error: %s", e.Token.Line, e.Message)
}

func newRuntimeError(tok lexer.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// returnSignal is not a fault. It unwinds statement execution from
// wherever `return` appears back to the nearest call frame, which
// recovers Value as the call's result (spec.md §9's non-local return).
type returnSignal struct {
	Value objects.Value
}

func (r *returnSignal) Error() string { return "return" }

// asReturn reports whether err is a returnSignal, returning it if so.
func asReturn(err error) (*returnSignal, bool) {
	r, ok := err.(*returnSignal)
	return r, ok
}
