package pipeline

import (
	"github.com/vexlang/vex/internal/diagnostics"
	"github.com/vexlang/vex/internal/graph"
	"github.com/vexlang/vex/internal/token"
)

// Processor is a single pipeline stage. Each stage reads the artifacts left
// by earlier stages and fills in its own; it must not mutate upstream
// artifacts.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries the artifacts handed from stage to stage. Each
// artifact has exactly one producer:
//
//	SourceCode - set by the caller before the run
//	Tokens     - lexer
//	Graph      - parser
//	CCode      - translator
type PipelineContext struct {
	FilePath   string
	SourceCode string
	Tokens     []token.Token
	Graph      *graph.Package
	CCode      string
	Errors     []*diagnostics.DiagnosticError
}
