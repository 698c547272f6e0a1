package parser

import (
	"github.com/vexlang/vex/internal/diagnostics"
	"github.com/vexlang/vex/internal/pipeline"
	"github.com/vexlang/vex/internal/token"
)

// ParserProcessor adapts the parser to the compilation pipeline.
type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Tokens == nil {
		// Should not be hit if the lexer runs first, but as a safeguard:
		err := diagnostics.NewError(diagnostics.ErrP004, token.Token{}, "parser: token stream is nil")
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	parser := New(ctx.Tokens, ctx)
	ctx.Graph = parser.Run()

	// Ensure all errors have the file path set
	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}

	return ctx
}
