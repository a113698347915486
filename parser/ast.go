/*
File   : lox/parser/ast.go
Package: parser

The abstract syntax tree. Expr and Stmt are closed sum types (spec.md §3,
§9) implemented with the visitor pattern the teacher's parser/node.go
uses, narrowed to exactly the eight Expr and eight Stmt kinds spec.md §3
names. Adding a node kind requires adding a method to ExprVisitor or
StmtVisitor, which is a compile-time obligation at every visitor
implementation — the "exhaustive case handling" spec.md §9 asks for.
*/
package parser

import "github.com/ckessler/lox/lexer"

// Expr is any expression node.
type Expr interface {
	AcceptExpr(v ExprVisitor) (any, error)
}

// Stmt is any statement node.
type Stmt interface {
	AcceptStmt(v StmtVisitor) error
}

// ExprVisitor is implemented by anything that walks Expr trees: the
// evaluator (returns objects.Value) and the AST printer (returns string).
// The `any` return keeps the single interface usable by both, matching
// the teacher's single NodeVisitor interface serving both evaluation and
// printing call sites.
type ExprVisitor interface {
	VisitLiteralExpr(e *LiteralExpr) (any, error)
	VisitGroupingExpr(e *GroupingExpr) (any, error)
	VisitUnaryExpr(e *UnaryExpr) (any, error)
	VisitBinaryExpr(e *BinaryExpr) (any, error)
	VisitLogicalExpr(e *LogicalExpr) (any, error)
	VisitVariableExpr(e *VariableExpr) (any, error)
	VisitAssignExpr(e *AssignExpr) (any, error)
	VisitCallExpr(e *CallExpr) (any, error)
}

// StmtVisitor is implemented by anything that executes Stmt trees.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) error
	VisitPrintStmt(s *PrintStmt) error
	VisitVarStmt(s *VarStmt) error
	VisitBlockStmt(s *BlockStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitWhileStmt(s *WhileStmt) error
	VisitFunctionStmt(s *FunctionStmt) error
	VisitReturnStmt(s *ReturnStmt) error
}

// LiteralKind tags which field of a LiteralExpr is meaningful, mirroring
// lexer.Literal's payload discipline (spec §3's LiteralValue sum).
type LiteralKind int

const (
	LiteralNumber LiteralKind = iota
	LiteralString
	LiteralBoolean
	LiteralNil
)

// LiteralExpr is a literal number, string, boolean, or nil.
type LiteralExpr struct {
	Kind    LiteralKind
	Number  float64
	Str     string
	Boolean bool
}

func (e *LiteralExpr) AcceptExpr(v ExprVisitor) (any, error) { return v.VisitLiteralExpr(e) }

// GroupingExpr is a parenthesized sub-expression.
type GroupingExpr struct {
	Expression Expr
}

func (e *GroupingExpr) AcceptExpr(v ExprVisitor) (any, error) { return v.VisitGroupingExpr(e) }

// UnaryExpr is `-` or `!` applied to Right.
type UnaryExpr struct {
	Operator lexer.Token
	Right    Expr
}

func (e *UnaryExpr) AcceptExpr(v ExprVisitor) (any, error) { return v.VisitUnaryExpr(e) }

// BinaryExpr is a binary arithmetic/comparison/equality expression.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *BinaryExpr) AcceptExpr(v ExprVisitor) (any, error) { return v.VisitBinaryExpr(e) }

// LogicalExpr is `and`/`or`, which short-circuit (spec §4.3) and so
// cannot share BinaryExpr's eager-evaluate-both-sides handling.
type LogicalExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *LogicalExpr) AcceptExpr(v ExprVisitor) (any, error) { return v.VisitLogicalExpr(e) }

// VariableExpr reads the value bound to Name.
type VariableExpr struct {
	Name lexer.Token
}

func (e *VariableExpr) AcceptExpr(v ExprVisitor) (any, error) { return v.VisitVariableExpr(e) }

// AssignExpr assigns Value to the variable Name. Only produced when the
// parser's assignment target parsed as a VariableExpr (spec §3, §4.2).
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

func (e *AssignExpr) AcceptExpr(v ExprVisitor) (any, error) { return v.VisitAssignExpr(e) }

// CallExpr invokes Callee with Arguments. ClosingParen anchors error
// reporting at the call site's closing ')' (spec §3 invariant).
type CallExpr struct {
	Callee       Expr
	ClosingParen lexer.Token
	Arguments    []Expr
}

func (e *CallExpr) AcceptExpr(v ExprVisitor) (any, error) { return v.VisitCallExpr(e) }

// ExpressionStmt evaluates Expression for its side effects.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) AcceptStmt(v StmtVisitor) error { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates Expression and writes its Display form.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) AcceptStmt(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// VarStmt declares Name, optionally initialized by Initializer (nil
// means "initialize to Nil", spec §3).
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

func (s *VarStmt) AcceptStmt(v StmtVisitor) error { return v.VisitVarStmt(s) }

// BlockStmt introduces a new lexical scope around Statements.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) AcceptStmt(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// IfStmt executes Then or Else (if present) depending on Condition.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (s *IfStmt) AcceptStmt(v StmtVisitor) error { return v.VisitIfStmt(s) }

// WhileStmt repeats Body while Condition is truthy.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) AcceptStmt(v StmtVisitor) error { return v.VisitWhileStmt(s) }

// FunctionStmt declares a named function.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *FunctionStmt) AcceptStmt(v StmtVisitor) error { return v.VisitFunctionStmt(s) }

// ReturnStmt unwinds to the nearest call frame with Value's result
// (Nil if Value is nil, i.e. a bare `return;`).
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

func (s *ReturnStmt) AcceptStmt(v StmtVisitor) error { return v.VisitReturnStmt(s) }
