package lexer

import (
	"github.com/vexlang/vex/internal/pipeline"
)

// LexerProcessor adapts the lexer to the compilation pipeline.
type LexerProcessor struct {
	// ColumnsPerTab overrides the default tab width when > 0.
	ColumnsPerTab int
}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	lexer := New(ctx.SourceCode)
	if lp.ColumnsPerTab > 0 {
		lexer.SetColumnsPerTab(lp.ColumnsPerTab)
	}
	ctx.Tokens = lexer.Run()
	return ctx
}
