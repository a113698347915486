/*
File   : lox/cmd/lox/main.go
Package: main

The command-line driver: subcommand dispatch, file reading, and exit
code selection. Grounded on the teacher's main/main.go (a thin
arg-dispatch layer using github.com/fatih/color for red/yellow/cyan
diagnostic output around a lexer/parser/eval core it does not itself
implement) and on kristofer-smog's cmd/smog/main.go (a single-binary,
subcommand-per-pipeline-stage CLI, the shape spec.md §6.1's table
describes directly: one subcommand per pipeline stage rather than a
REPL-first driver). spec.md explicitly places this driver out of the
interpreter's scope (§1 "out of scope: external collaborators") and
specifies it only by its stdout/stderr/exit-code contract, which is
what this file implements.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/ckessler/lox/eval"
	"github.com/ckessler/lox/lexer"
	"github.com/ckessler/lox/parser"
)

var red = color.New(color.FgRed)

func main() {
	if len(os.Args) < 3 {
		red.Fprintln(os.Stderr, "Usage: lox <tokenize|parse|evaluate|run> <file>")
		os.Exit(1)
	}

	subcommand := os.Args[1]
	path := os.Args[2]

	run, ok := subcommands[subcommand]
	if !ok {
		red.Fprintf(os.Stderr, "Unknown subcommand: %s\n", subcommand)
		os.Exit(1)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read file %s\n", path)
		os.Exit(1)
	}

	// Empty source: every subcommand reports the lone EOF token and
	// exits 0, rather than running its normal (and in parse/evaluate/run's
	// case, silent) pipeline over zero statements (spec.md §6.1).
	if len(source) == 0 {
		fmt.Println("EOF  null")
		os.Exit(0)
	}

	os.Exit(run(string(source)))
}

var subcommands = map[string]func(string) int{
	"tokenize": runTokenize,
	"parse":    runParse,
	"evaluate": runEvaluate,
	"run":      runProgram,
}

// runTokenize implements the `tokenize` subcommand (spec.md §6.1/§6.2):
// one printed line per token, exit 65 if the scan set its error flag.
func runTokenize(source string) int {
	lex := lexer.New(source)
	tokens := lex.ScanTokens()

	for _, tok := range tokens {
		fmt.Println(tok.String())
	}
	for _, msg := range lex.Errors {
		red.Fprintln(os.Stderr, msg)
	}
	if len(lex.Errors) > 0 {
		return 65
	}
	return 0
}

// runParse implements the `parse` subcommand: print each top-level
// expression in parenthesized AST form (spec.md §6.3). Bare-expression
// mode (no trailing `;` required) matches the "expression-report mode"
// spec.md §6.1's table names for parse/evaluate.
func runParse(source string) int {
	lex := lexer.New(source)
	tokens := lex.ScanTokens()
	if len(lex.Errors) > 0 {
		for _, msg := range lex.Errors {
			red.Fprintln(os.Stderr, msg)
		}
		return 65
	}

	p := parser.New(tokens)
	stmts := p.ParseExpressions()
	if p.HasErrors() {
		for _, msg := range p.Errors {
			red.Fprintln(os.Stderr, msg)
		}
		return 65
	}

	printer := parser.Printer{}
	for _, s := range stmts {
		exprStmt := s.(*parser.ExpressionStmt)
		fmt.Println(printer.Print(exprStmt.Expression))
	}
	return 0
}

// runEvaluate implements the `evaluate` subcommand: run the full
// pipeline in expression-report mode, printing the Display value of
// each top-level expression statement (spec.md §6.1).
func runEvaluate(source string) int {
	lex := lexer.New(source)
	tokens := lex.ScanTokens()
	if len(lex.Errors) > 0 {
		for _, msg := range lex.Errors {
			red.Fprintln(os.Stderr, msg)
		}
		return 65
	}

	p := parser.New(tokens)
	stmts := p.ParseExpressions()
	if p.HasErrors() {
		for _, msg := range p.Errors {
			red.Fprintln(os.Stderr, msg)
		}
		return 65
	}

	interp := eval.New()
	for _, s := range stmts {
		exprStmt := s.(*parser.ExpressionStmt)
		v, err := interp.Evaluate(exprStmt.Expression)
		if err != nil {
			red.Fprintln(os.Stderr, err.Error())
			return 70
		}
		fmt.Println(v.Display())
	}
	return 0
}

// runProgram implements the `run` subcommand: the full pipeline in
// program mode, where only explicit `print` statements emit to stdout
// (spec.md §6.1).
func runProgram(source string) int {
	lex := lexer.New(source)
	tokens := lex.ScanTokens()
	if len(lex.Errors) > 0 {
		for _, msg := range lex.Errors {
			red.Fprintln(os.Stderr, msg)
		}
		return 65
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		for _, msg := range p.Errors {
			red.Fprintln(os.Stderr, msg)
		}
		return 65
	}

	interp := eval.New()
	if err := interp.Run(stmts); err != nil {
		red.Fprintln(os.Stderr, err.Error())
		return 70
	}
	return 0
}
