package token

import "fmt"

// TokenType identifies the lexical class of a token. The values double as the
// names used in the token stream debug view.
type TokenType string

const (
	ARROW     TokenType = "arrow"
	COMMA     TokenType = "comma"
	DIVIDE    TokenType = "divide"
	END       TokenType = "end"
	FUNC      TokenType = "func_keyword"
	IDENT     TokenType = "identifier"
	LCURLY    TokenType = "left_curly"
	LPAREN    TokenType = "left_paren"
	MINUS     TokenType = "minus"
	MODULO    TokenType = "modulo"
	MULTIPLY  TokenType = "multiply"
	PLUS      TokenType = "plus"
	RETURN    TokenType = "return_keyword"
	RCURLY    TokenType = "right_curly"
	RPAREN    TokenType = "right_paren"
	SEMICOLON TokenType = "semicolon"
)

// Token is a classified unit of source text. Line and Column point at the
// first character of the lexeme.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

// String renders the token in the debug view format:
// <kind> "<lexeme>" <line> <column>
func (t Token) String() string {
	return fmt.Sprintf("%s %q %d %d", t.Type, t.Lexeme, t.Line, t.Column)
}

// keywords maps identifier-shaped lexemes to their dedicated token types.
// Extending the language with a new keyword only means adding a row here.
var keywords = map[string]TokenType{
	"func":   FUNC,
	"return": RETURN,
}

// LookupIdent reclassifies an identifier lexeme against the keyword table.
// Lexemes that are not keywords stay plain identifiers.
func LookupIdent(lexeme string) TokenType {
	if tt, ok := keywords[lexeme]; ok {
		return tt
	}
	return IDENT
}
