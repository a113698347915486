package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}

func TestScanTokens_Punctuation(t *testing.T) {
	tokens := New("(){},.-+;*/").ScanTokens()
	assert.Equal(t, []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT,
		MINUS, PLUS, SEMICOLON, STAR, SLASH, EOF,
	}, kinds(tokens))
}

func TestScanTokens_TwoCharOperators(t *testing.T) {
	tokens := New("! != = == < <= > >=").ScanTokens()
	assert.Equal(t, []TokenType{
		BANG, BANG_EQUAL, EQUAL, EQUAL_EQUAL, LESS, LESS_EQUAL,
		GREATER, GREATER_EQUAL, EOF,
	}, kinds(tokens))
}

func TestScanTokens_String(t *testing.T) {
	tokens := New(`"hello world"`).ScanTokens()
	require.Len(t, tokens, 2)
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Literal.Str)
	assert.Equal(t, `"hello world"`, tokens[0].Lexeme)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	lex := New(`"oops`)
	tokens := lex.ScanTokens()
	require.Len(t, tokens, 1)
	assert.Equal(t, EOF, tokens[0].Type)
	require.Len(t, lex.Errors, 1)
	assert.Equal(t, "[line 1] Error: Unterminated string.", lex.Errors[0])
}

func TestScanTokens_StringWithEmbeddedNewlineAdvancesLine(t *testing.T) {
	tokens := New("\"a\nb\" 1").ScanTokens()
	require.Len(t, tokens, 3)
	assert.Equal(t, "a\nb", tokens[0].Literal.Str)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_Numbers(t *testing.T) {
	tokens := New("123 45.67 8.").ScanTokens()
	require.Len(t, tokens, 5)
	assert.Equal(t, NUMBER, tokens[0].Type)
	assert.Equal(t, 123.0, tokens[0].Literal.Number)
	assert.Equal(t, NUMBER, tokens[1].Type)
	assert.Equal(t, 45.67, tokens[1].Literal.Number)
	// trailing dot with no following digit: NUMBER(8) then DOT, not consumed
	assert.Equal(t, NUMBER, tokens[2].Type)
	assert.Equal(t, 8.0, tokens[2].Literal.Number)
	assert.Equal(t, DOT, tokens[3].Type)
}

func TestScanTokens_KeywordsAndIdentifiers(t *testing.T) {
	tokens := New("and class myVar1 while").ScanTokens()
	assert.Equal(t, []TokenType{AND, CLASS, IDENTIFIER, WHILE, EOF}, kinds(tokens))
	assert.Equal(t, "myVar1", tokens[2].Lexeme)
}

func TestScanTokens_CommentsAreSkipped(t *testing.T) {
	tokens := New("1 // a comment\n2").ScanTokens()
	require.Len(t, tokens, 3)
	assert.Equal(t, 1.0, tokens[0].Literal.Number)
	assert.Equal(t, 2.0, tokens[1].Literal.Number)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_UnexpectedCharacterContinuesScanning(t *testing.T) {
	lex := New("1 @ 2")
	tokens := lex.ScanTokens()
	require.Len(t, lex.Errors, 1)
	assert.Equal(t, "[line 1] Error: Unexpected character: @", lex.Errors[0])
	assert.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, kinds(tokens))
}

func TestScanTokens_EmptySourceYieldsOnlyEOF(t *testing.T) {
	tokens := New("").ScanTokens()
	require.Len(t, tokens, 1)
	assert.Equal(t, EOF, tokens[0].Type)
	assert.Equal(t, "EOF  null", tokens[0].String())
}

func TestTokenString_NumberLiteralNormalized(t *testing.T) {
	tokens := New("5").ScanTokens()
	assert.Equal(t, "NUMBER 5 5.0", tokens[0].String())
}
