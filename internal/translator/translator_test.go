package translator_test

import (
	"testing"

	"github.com/vexlang/vex/internal/lexer"
	"github.com/vexlang/vex/internal/parser"
	"github.com/vexlang/vex/internal/pipeline"
	"github.com/vexlang/vex/internal/translator"
)

// compile runs the full pipeline over source and returns the final context.
func compile(t *testing.T, source string) *pipeline.PipelineContext {
	t.Helper()

	ctx := &pipeline.PipelineContext{SourceCode: source}
	ctx = pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&translator.TranslatorProcessor{},
	).Run(ctx)

	if len(ctx.Errors) > 0 {
		t.Fatalf("compilation failed: %v", ctx.Errors[0])
	}
	return ctx
}

func TestTranslate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"add_function",
			"func add(int a, int b) -> int { return a+b; }",
			"int add(int a, int b) {\n  return (a+b);\n}\n",
		},
		{
			"noop_function",
			"func noop() { }",
			"void noop() {\n}\n",
		},
		{
			"identity_function",
			"func identity(int x) -> int { return x; }",
			"int identity(int x) {\n  return x;\n}\n",
		},
		{
			"left_nested_sum",
			"func sum(int a, int b, int c) -> int { return a+b+c; }",
			"int sum(int a, int b, int c) {\n  return ((a+b)+c);\n}\n",
		},
		{
			"two_functions",
			"func first() { }\nfunc second(int n) -> int { return n; }",
			"void first() {\n}\nint second(int n) {\n  return n;\n}\n",
		},
		{
			"empty_source",
			"",
			"",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := compile(t, tc.input)
			if ctx.CCode != tc.expected {
				t.Errorf("C output mismatch:\ngot:\n%q\nwant:\n%q", ctx.CCode, tc.expected)
			}
		})
	}
}

func TestTranslateIsIdempotent(t *testing.T) {
	ctx := compile(t, "func add(int a, int b) -> int { return a+b; }")

	first := translator.Translate(ctx.Graph)
	second := translator.Translate(ctx.Graph)
	if first != second {
		t.Errorf("repeated translation differs:\nfirst:\n%q\nsecond:\n%q", first, second)
	}
	if first != ctx.CCode {
		t.Errorf("direct translation differs from pipeline output")
	}
}

func TestTranslatorSkipsMissingGraph(t *testing.T) {
	ctx := &pipeline.PipelineContext{}
	ctx = (&translator.TranslatorProcessor{}).Process(ctx)
	if ctx.CCode != "" {
		t.Errorf("CCode = %q, want empty with no graph", ctx.CCode)
	}
}
