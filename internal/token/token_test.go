package token_test

import (
	"testing"

	"github.com/vexlang/vex/internal/token"
)

func TestTokenString(t *testing.T) {
	testCases := []struct {
		name     string
		tok      token.Token
		expected string
	}{
		{"identifier", token.Token{Type: token.IDENT, Lexeme: "add", Line: 1, Column: 6}, `identifier "add" 1 6`},
		{"keyword", token.Token{Type: token.FUNC, Lexeme: "func", Line: 3, Column: 1}, `func_keyword "func" 3 1`},
		{"arrow", token.Token{Type: token.ARROW, Lexeme: "->", Line: 2, Column: 17}, `arrow "->" 2 17`},
		{"end", token.Token{Type: token.END, Lexeme: "", Line: 4, Column: 2}, `end "" 4 2`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tok.String(); got != tc.expected {
				t.Errorf("String() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestLookupIdent(t *testing.T) {
	testCases := []struct {
		lexeme   string
		expected token.TokenType
	}{
		{"func", token.FUNC},
		{"return", token.RETURN},
		{"funcs", token.IDENT},
		{"Return", token.IDENT},
		{"int", token.IDENT},
		{"x", token.IDENT},
	}

	for _, tc := range testCases {
		if got := token.LookupIdent(tc.lexeme); got != tc.expected {
			t.Errorf("LookupIdent(%q) = %v, want %v", tc.lexeme, got, tc.expected)
		}
	}
}
