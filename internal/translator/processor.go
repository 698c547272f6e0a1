package translator

import (
	"github.com/vexlang/vex/internal/pipeline"
)

// TranslatorProcessor adapts the translator to the compilation pipeline.
type TranslatorProcessor struct{}

func (tp *TranslatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Graph == nil {
		return ctx
	}
	ctx.CCode = Translate(ctx.Graph)
	return ctx
}
