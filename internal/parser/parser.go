// Package parser converts a list of tokens into a program graph. The tokens
// are grouped into program entities, entity properties, and relationships
// between entities. Unlike tokens, which come in a flat list, the graph is a
// highly structured representation of the program.
package parser

import (
	"fmt"

	"github.com/vexlang/vex/internal/config"
	"github.com/vexlang/vex/internal/diagnostics"
	"github.com/vexlang/vex/internal/graph"
	"github.com/vexlang/vex/internal/pipeline"
	"github.com/vexlang/vex/internal/token"
)

// parserState is the current state of the parser's state machine.
type parserState int

const (
	// Start of a new program entity
	stateStart parserState = iota
	// Expecting a function name
	stateFuncName
	// Expecting a function parameter list
	stateFuncParamsStart
	// Expecting a function parameter or an empty parameter list
	stateFuncParamOrEnd
	// Expecting a function parameter, starting with its class
	stateFuncParam
	// Expecting a function parameter name
	stateFuncParamName
	// Expecting another function parameter, or the end of the parameter list
	stateFuncParamsNextOrEnd
	// Expecting a function return clause or function body
	stateFuncReturnClause
	// Expecting a class in the function return clause
	stateFuncReturnType
	// Expecting a function body
	stateFuncBody
	// Expecting a statement or end of block
	stateStatement
	// Inside an expression, expecting a value
	stateExpressionValue
	// Inside an expression, expecting an operator
	stateExpressionOperator
)

// Parser converts a list of tokens into a program graph.
type Parser struct {
	tokens []token.Token
	pos    int
	state  parserState
	ctx    *pipeline.PipelineContext

	// References into the graph under construction, tracking where new
	// entities should be inserted.
	pkg                *graph.Package
	function           *graph.Function
	object             *graph.Object
	cls                *graph.Class
	returnStatement    *graph.ReturnStatement
	objectExpression   *graph.ObjectExpression
	operatorExpression *graph.OperatorExpression
}

// New creates a parser over the given token list, which must include a
// terminating end token. Diagnostics are reported through ctx.
func New(tokens []token.Token, ctx *pipeline.PipelineContext) *Parser {
	return &Parser{tokens: tokens, state: stateStart, ctx: ctx}
}

// Run executes the parser and returns the top-level entity of the program
// graph, or nil after reporting a diagnostic for the first token that cannot
// continue the grammar. No partial graph is ever returned.
//
// The parser is a predictive state machine: one token of lookahead, no
// backtracking, and the token position only ever advances. Identifiers are
// resolved against already-declared entities as parsing proceeds.
func (p *Parser) Run() *graph.Package {
	p.pkg = graph.NewPackage()
	p.pkg.SetName(config.DefaultPackageName)

	// The int class is implicitly declared before any user code.
	intClass := graph.NewClass()
	intClass.SetName(config.IntClassName)
	p.pkg.AddClass(intClass)

	for {
		switch p.state {
		case stateStart:
			switch p.currentToken().Type {
			case token.END:
				return p.pkg
			case token.FUNC:
				p.function = graph.NewFunction()
				p.function.SetReturnType(graph.ReturnNone)
				p.pkg.AddFunction(p.function)
				p.state = stateFuncName
				p.advanceToken()
			default:
				return p.fail(diagnostics.ErrP001, "unexpected token")
			}
		case stateFuncName:
			switch p.currentToken().Type {
			case token.IDENT:
				p.function.SetName(p.currentToken().Lexeme)
				p.state = stateFuncParamsStart
				p.advanceToken()
			default:
				return p.fail(diagnostics.ErrP001, "expected function name")
			}
		case stateFuncParamsStart:
			switch p.currentToken().Type {
			case token.LPAREN:
				p.state = stateFuncParamOrEnd
				p.advanceToken()
			default:
				return p.fail(diagnostics.ErrP001, "expected parameter list")
			}
		case stateFuncParamOrEnd:
			switch p.currentToken().Type {
			case token.RPAREN:
				p.state = stateFuncReturnClause
				p.advanceToken()
			default:
				p.state = stateFuncParam
			}
		case stateFuncParam:
			switch p.currentToken().Type {
			case token.IDENT:
				p.cls = p.pkg.Class(p.currentToken().Lexeme)
				if p.cls == nil {
					return p.fail(diagnostics.ErrP002,
						fmt.Sprintf("unknown class '%s'", p.currentToken().Lexeme))
				}
				p.object = graph.NewObject()
				p.object.SetClass(p.cls)
				p.function.AddObject(p.object)
				p.state = stateFuncParamName
				p.advanceToken()
			default:
				return p.fail(diagnostics.ErrP001, "expected parameter class")
			}
		case stateFuncParamName:
			switch p.currentToken().Type {
			case token.IDENT:
				p.object.SetName(p.currentToken().Lexeme)
				p.state = stateFuncParamsNextOrEnd
				p.advanceToken()
			default:
				return p.fail(diagnostics.ErrP001, "expected parameter name")
			}
		case stateFuncParamsNextOrEnd:
			switch p.currentToken().Type {
			case token.COMMA:
				p.state = stateFuncParam
				p.advanceToken()
			case token.RPAREN:
				p.state = stateFuncReturnClause
				p.advanceToken()
			default:
				return p.fail(diagnostics.ErrP001, "expected ',' or ')' in parameter list")
			}
		case stateFuncReturnClause:
			switch p.currentToken().Type {
			case token.ARROW:
				p.state = stateFuncReturnType
				p.advanceToken()
			default:
				p.state = stateFuncBody
			}
		case stateFuncReturnType:
			switch p.currentToken().Type {
			case token.IDENT:
				p.cls = p.pkg.Class(p.currentToken().Lexeme)
				if p.cls == nil {
					return p.fail(diagnostics.ErrP002,
						fmt.Sprintf("unknown class '%s'", p.currentToken().Lexeme))
				}
				p.function.SetReturnType(graph.ReturnValue)
				p.function.SetReturnClass(p.cls)
				p.state = stateFuncBody
				p.advanceToken()
			default:
				return p.fail(diagnostics.ErrP001, "expected return class")
			}
		case stateFuncBody:
			switch p.currentToken().Type {
			case token.LCURLY:
				p.state = stateStatement
				p.advanceToken()
			default:
				return p.fail(diagnostics.ErrP001, "expected function body")
			}
		case stateStatement:
			switch p.currentToken().Type {
			case token.RCURLY:
				p.state = stateStart
				p.advanceToken()
			case token.RETURN:
				p.returnStatement = graph.NewReturnStatement()
				p.function.AddStatement(p.returnStatement)
				p.state = stateExpressionValue
				p.advanceToken()
			default:
				return p.fail(diagnostics.ErrP001, "expected statement or end of block")
			}
		case stateExpressionValue:
			switch p.currentToken().Type {
			case token.IDENT:
				obj := p.function.Object(p.currentToken().Lexeme)
				if obj == nil {
					return p.fail(diagnostics.ErrP003,
						fmt.Sprintf("unknown object '%s'", p.currentToken().Lexeme))
				}
				p.object = obj
				p.objectExpression = graph.NewObjectExpression()
				p.objectExpression.SetObject(obj)
				p.state = stateExpressionOperator
				p.advanceToken()
			default:
				return p.fail(diagnostics.ErrP001, "expected expression value")
			}
		case stateExpressionOperator:
			switch p.currentToken().Type {
			case token.SEMICOLON:
				if p.operatorExpression != nil {
					p.operatorExpression.AddOperand(p.objectExpression)
					p.returnStatement.SetExpression(p.operatorExpression)
					p.operatorExpression = nil
				} else {
					p.returnStatement.SetExpression(p.objectExpression)
				}
				p.objectExpression = nil
				p.state = stateStatement
				p.advanceToken()
			case token.PLUS:
				// Each + wraps everything parsed so far as the first operand
				// of a fresh expression, keeping the tree left-nested.
				operatorExpression := graph.NewOperatorExpression()
				operatorExpression.SetOperatorType(graph.OperatorPlus)
				if p.operatorExpression != nil {
					p.operatorExpression.AddOperand(p.objectExpression)
					operatorExpression.AddOperand(p.operatorExpression)
				} else {
					operatorExpression.AddOperand(p.objectExpression)
				}
				p.operatorExpression = operatorExpression
				p.objectExpression = nil
				p.state = stateExpressionValue
				p.advanceToken()
			default:
				return p.fail(diagnostics.ErrP001, "expected operator or ';'")
			}
		}
	}
}

func (p *Parser) currentToken() token.Token { return p.tokens[p.pos] }

// advanceToken moves to the next token, never past the end token.
func (p *Parser) advanceToken() {
	if p.currentToken().Type == token.END {
		return
	}
	p.pos++
}

// fail reports a diagnostic referencing the current token and aborts the
// parse.
func (p *Parser) fail(code diagnostics.ErrorCode, message string) *graph.Package {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(code, p.currentToken(), message))
	return nil
}
