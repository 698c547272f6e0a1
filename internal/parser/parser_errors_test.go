package parser_test

import (
	"testing"

	"github.com/vexlang/vex/internal/diagnostics"
	"github.com/vexlang/vex/internal/lexer"
	"github.com/vexlang/vex/internal/parser"
	"github.com/vexlang/vex/internal/pipeline"
	"github.com/vexlang/vex/internal/token"
)

// parseExpectingError runs the pipeline over source and returns the first
// diagnostic, failing the test if parsing succeeds.
func parseExpectingError(t *testing.T, source string) (*pipeline.PipelineContext, *diagnostics.DiagnosticError) {
	t.Helper()

	ctx := &pipeline.PipelineContext{SourceCode: source, FilePath: "test.vx"}
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)

	if len(ctx.Errors) == 0 {
		t.Fatalf("expected a parse error, got none")
	}
	return ctx, ctx.Errors[0]
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name         string
		input        string
		expectedCode diagnostics.ErrorCode
		expectedType token.TokenType
		expectedText string
		expectedLine int
		expectedCol  int
	}{
		{
			"unknown_parameter_class",
			"func f(intt a) { }",
			diagnostics.ErrP002, token.IDENT, "intt", 1, 8,
		},
		{
			"unknown_return_class",
			"func f() -> str { }",
			diagnostics.ErrP002, token.IDENT, "str", 1, 13,
		},
		{
			"unknown_object_in_expression",
			"func f(int a) { return b; }",
			diagnostics.ErrP003, token.IDENT, "b", 1, 24,
		},
		{
			"statement_at_top_level",
			"return x;",
			diagnostics.ErrP001, token.RETURN, "return", 1, 1,
		},
		{
			"missing_function_name",
			"func (int a) { }",
			diagnostics.ErrP001, token.LPAREN, "(", 1, 6,
		},
		{
			"missing_parameter_name",
			"func f(int) { }",
			diagnostics.ErrP001, token.RPAREN, ")", 1, 11,
		},
		{
			"operator_without_operand",
			"func f(int a) { return a+; }",
			diagnostics.ErrP001, token.SEMICOLON, ";", 1, 26,
		},
		{
			"unterminated_body",
			"func f() {",
			diagnostics.ErrP001, token.END, "", 1, 11,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, err := parseExpectingError(t, tc.input)

			if ctx.Graph != nil {
				t.Errorf("partial graph returned on error")
			}
			if err.Code != tc.expectedCode {
				t.Errorf("code = %s, want %s", err.Code, tc.expectedCode)
			}
			if err.Token.Type != tc.expectedType {
				t.Errorf("token type = %s, want %s", err.Token.Type, tc.expectedType)
			}
			if err.Token.Lexeme != tc.expectedText {
				t.Errorf("token lexeme = %q, want %q", err.Token.Lexeme, tc.expectedText)
			}
			if err.Token.Line != tc.expectedLine || err.Token.Column != tc.expectedCol {
				t.Errorf("token position = %d:%d, want %d:%d",
					err.Token.Line, err.Token.Column, tc.expectedLine, tc.expectedCol)
			}
			if err.File != "test.vx" {
				t.Errorf("file = %q, want %q", err.File, "test.vx")
			}
			if len(ctx.Errors) != 1 {
				t.Errorf("got %d diagnostics, want exactly 1 (fail fast)", len(ctx.Errors))
			}
		})
	}
}

func TestNilTokenStream(t *testing.T) {
	ctx := &pipeline.PipelineContext{}
	ctx = (&parser.ParserProcessor{}).Process(ctx)

	if len(ctx.Errors) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(ctx.Errors))
	}
	if ctx.Errors[0].Code != diagnostics.ErrP004 {
		t.Errorf("code = %s, want %s", ctx.Errors[0].Code, diagnostics.ErrP004)
	}
}
