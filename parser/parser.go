/*
File   : lox/parser/parser.go
Package: parser

Recursive-descent parser implementing the grammar in spec.md §4.2
exactly (precedence low to high: assignment, logic_or, logic_and,
equality, comparison, term, factor, unary, call, primary).

Grounded on the teacher's Parser shape (an Errors []string slice
collected rather than panicking on the first failure, consulted by
HasErrors the way main.go's executeFileWithRecovery does) and
the recursive-descent control flow of original_source/src/parse.rs.
*/
package parser

import (
	"fmt"

	"github.com/ckessler/lox/lexer"
)

const maxArgs = 255

// Parser turns a token stream into a sequence of top-level statements.
type Parser struct {
	tokens  []lexer.Token
	current int

	// Errors accumulates "[line L] Error: <msg>" diagnostics; parsing
	// continues via panic-mode synchronize after each one.
	Errors []string
}

// New creates a Parser over an already-scanned token stream.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// HasErrors reports whether any syntax errors were collected.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// parseError is a sentinel used internally to unwind a single
// declaration/statement/expression parse back to synchronize, without
// aborting the whole parser (panic-mode recovery, spec §4.2).
type parseError struct{ msg string }

func (e parseError) Error() string { return e.msg }

// Parse parses a full program: declaration* EOF (statement mode, used by
// the `run` subcommand). Semicolons are required wherever the grammar
// names them.
func (p *Parser) Parse() []Stmt {
	var stmts []Stmt
	for !p.isAtEnd() {
		if stmt := p.declarationRecovering(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// ParseExpressions parses a sequence of bare top-level expressions, one
// per declaration, with no trailing `;` required (spec §4.2's
// exit-code-decision carve-out for the `parse`/`evaluate` subcommands'
// expression-report mode). Each expression is wrapped in an
// ExpressionStmt so callers have a uniform []Stmt to walk.
func (p *Parser) ParseExpressions() []Stmt {
	var stmts []Stmt
	for !p.isAtEnd() {
		expr, err := p.safeExpression()
		if err != nil {
			p.synchronize()
			continue
		}
		stmts = append(stmts, &ExpressionStmt{Expression: expr})
		// A trailing ';' is accepted (not required) between bare
		// expressions, so `1+2;3+4` and `1+2\n3+4` both parse.
		if p.check(lexer.SEMICOLON) {
			p.advance()
		}
	}
	return stmts
}

func (p *Parser) safeExpression() (expr Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(parseError); ok {
				err = pe
				return
			}
			panic(r)
		}
	}()
	return p.expression(), nil
}

// declarationRecovering parses one declaration, catching a parseError
// panic and running synchronize before returning nil for that
// declaration (spec §4.2 panic-mode recovery).
func (p *Parser) declarationRecovering() (stmt Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()
	return p.declaration()
}

func (p *Parser) declaration() Stmt {
	if p.match(lexer.FUN) {
		return p.functionDecl("function")
	}
	if p.match(lexer.VAR) {
		return p.varDecl()
	}
	return p.statement()
}

func (p *Parser) functionDecl(kind string) Stmt {
	name := p.consume(lexer.IDENTIFIER, fmt.Sprintf("Expect %s name.", kind))
	p.consume(lexer.LEFT_PAREN, fmt.Sprintf("Expect '(' after %s name.", kind))
	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("Can't have more than %d parameters.", maxArgs))
			}
			params = append(params, p.consume(lexer.IDENTIFIER, "Expect parameter name."))
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")
	p.consume(lexer.LEFT_BRACE, fmt.Sprintf("Expect '{' before %s body.", kind))
	body := p.block()
	return &FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) varDecl() Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")
	var initializer Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) statement() Stmt {
	switch {
	case p.match(lexer.PRINT):
		return p.printStmt()
	case p.match(lexer.LEFT_BRACE):
		return &BlockStmt{Statements: p.block()}
	case p.match(lexer.IF):
		return p.ifStmt()
	case p.match(lexer.WHILE):
		return p.whileStmt()
	case p.match(lexer.FOR):
		return p.forStmt()
	case p.match(lexer.RETURN):
		return p.returnStmt()
	default:
		return p.exprStmt()
	}
}

func (p *Parser) block() []Stmt {
	var stmts []Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.declarationRecovering(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}

func (p *Parser) ifStmt() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")
	then := p.statement()
	var els Stmt
	if p.match(lexer.ELSE) {
		els = p.statement()
	}
	return &IfStmt{Condition: cond, Then: then, Else: els}
}

func (p *Parser) whileStmt() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	cond := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &WhileStmt{Condition: cond, Body: body}
}

// forStmt desugars `for (init; cond; incr) body` into
// Block[init, While(cond ?? true, Block[body, Expression(incr)])]
// exactly as spec.md §4.2 specifies.
func (p *Parser) forStmt() Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.check(lexer.VAR):
		p.advance()
		initializer = p.varDecl()
	default:
		initializer = p.exprStmt()
	}

	var condition Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var increment Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &LiteralExpr{Kind: LiteralBoolean, Boolean: true}
	}
	body = &WhileStmt{Condition: condition, Body: body}
	if initializer != nil {
		body = &BlockStmt{Statements: []Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) returnStmt() Stmt {
	keyword := p.previous()
	var value Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after return value.")
	return &ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) printStmt() Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	return &PrintStmt{Expression: value}
}

func (p *Parser) exprStmt() Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return &ExpressionStmt{Expression: expr}
}

func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment parses logic_or, then — if the result is followed by '=' —
// desugars it into an AssignExpr provided the left side parsed as a
// VariableExpr; otherwise it reports "Invalid assignment target." at the
// '=' token and continues without advancing further state (spec §4.2).
func (p *Parser) assignment() Expr {
	expr := p.logicOr()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment() // right-associative

		if name, ok := expr.(*VariableExpr); ok {
			return &AssignExpr{Name: name.Name, Value: value}
		}
		p.errorAt(equals, "Invalid assignment target.")
		return expr
	}
	return expr
}

func (p *Parser) logicOr() Expr {
	expr := p.logicAnd()
	for p.match(lexer.OR) {
		op := p.previous()
		right := p.logicAnd()
		expr = &LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) logicAnd() Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		op := p.previous()
		right := p.equality()
		expr = &LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		op := p.previous()
		right := p.factor()
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		op := p.previous()
		right := p.unary()
		expr = &BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		op := p.previous()
		right := p.unary()
		return &UnaryExpr{Operator: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() Expr {
	expr := p.primary()
	for {
		if p.match(lexer.LEFT_PAREN) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), fmt.Sprintf("Can't have more than %d arguments.", maxArgs))
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	closingParen := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &CallExpr{Callee: callee, ClosingParen: closingParen, Arguments: args}
}

func (p *Parser) primary() Expr {
	switch {
	case p.match(lexer.FALSE):
		return &LiteralExpr{Kind: LiteralBoolean, Boolean: false}
	case p.match(lexer.TRUE):
		return &LiteralExpr{Kind: LiteralBoolean, Boolean: true}
	case p.match(lexer.NIL):
		return &LiteralExpr{Kind: LiteralNil}
	case p.match(lexer.NUMBER):
		return &LiteralExpr{Kind: LiteralNumber, Number: p.previous().Literal.Number}
	case p.match(lexer.STRING):
		return &LiteralExpr{Kind: LiteralString, Str: p.previous().Literal.Str}
	case p.match(lexer.IDENTIFIER):
		return &VariableExpr{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &GroupingExpr{Expression: expr}
	}
	panic(p.errorAt(p.peek(), "Expect expression."))
}

// --- token-stream primitives ---

func (p *Parser) match(kinds ...lexer.TokenType) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == kind
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool { return p.peek().Type == lexer.EOF }

func (p *Parser) peek() lexer.Token { return p.tokens[p.current] }

func (p *Parser) previous() lexer.Token { return p.tokens[p.current-1] }

func (p *Parser) consume(kind lexer.TokenType, msg string) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.errorAt(p.peek(), msg))
}

// errorAt records a "[line L] Error: <msg>" diagnostic (the same
// "[line L] Error: ..." shape the scanner's errorf uses) and returns it
// as an error for callers that need to panic with it.
func (p *Parser) errorAt(tok lexer.Token, msg string) error {
	e := parseError{msg: fmt.Sprintf("[line %d] Error: %s", tok.Line, msg)}
	p.Errors = append(p.Errors, e.msg)
	return e
}

// synchronize discards tokens until a statement boundary: just past a
// consumed ';', or right before a token that begins a new statement
// (spec §4.2 panic-mode recovery). It always advances past the token
// that caused the error first, both because that token is previous()
// (undefined at current==0 otherwise) and because it guarantees every
// synchronize call consumes at least one token, which is what keeps
// the declaration/block loops above from spinning forever on a token
// that can neither start nor end a statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS, lexer.FUN, lexer.VAR, lexer.FOR, lexer.IF,
			lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		p.advance()
	}
}
