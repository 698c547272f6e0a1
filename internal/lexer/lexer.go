// Package lexer converts a source code string into a list of tokens. The
// characters in the string are grouped into lexemes, substrings that make up
// the "words" of the language. Each lexeme is immediately converted into a
// token. Unlike strings and lexemes, tokens are uniform data structures and
// more easily handled by subsequent compiler phases.
package lexer

import (
	"github.com/vexlang/vex/internal/config"
	"github.com/vexlang/vex/internal/token"
)

// lexerState is the current state of the lexer's state machine.
type lexerState int

const (
	// Start of a new lexeme
	stateStart lexerState = iota
	// Either CR or CRLF, both of which indicate a single newline
	stateCrOrCrlf
	// Either / (division), // (single-line comment), or /* (multi-line comment)
	stateDivideOrComment
	// String of [A-Za-z_][A-Za-z0-9_]*. Either an identifier or keyword.
	stateIdentifierOrKeyword
	// Either - (minus) or -> (arrow)
	stateMinusOrArrow
	// Currently in a multi-line comment
	stateMultiLineComment
	// Either CR or CRLF, but inside a multi-line comment
	stateMultiLineCommentCrOrCrlf
	// Encountered *, will end multi-line comment if next char is /
	stateMultiLineCommentMaybeEnd
	// Currently in a single-line comment, terminated on newline
	stateSingleLineComment
)

// Lexer converts source code into a list of tokens.
type Lexer struct {
	source            string
	state             lexerState
	index             int
	startIndex        int
	lineNumber        int
	startLineNumber   int
	columnNumber      int
	startColumnNumber int
	columnsPerTab     int
	tokens            []token.Token
}

// New creates a lexer for the given source code. The source must end in a
// NUL sentinel; one is appended if missing.
func New(source string) *Lexer {
	if len(source) == 0 || source[len(source)-1] != 0 {
		source += "\x00"
	}
	return &Lexer{
		source:        source,
		state:         stateStart,
		lineNumber:    1,
		columnNumber:  1,
		columnsPerTab: config.DefaultColumnsPerTab,
	}
}

// SetColumnsPerTab sets the number of columns per tab, which affects the
// column number associated with each token.
func (l *Lexer) SetColumnsPerTab(columnsPerTab int) {
	l.columnsPerTab = columnsPerTab
}

// Run executes the lexer and returns the token list. The final token is
// always of type token.END, and the lexer must not be run again afterwards.
//
// The lexer is a state machine with the following additional properties:
//   - An index into the source string indicates the current character. The
//     index is only ever incremented.
//   - On entering the start state the current index is saved to mark the
//     start of a new lexeme, and referenced later to capture the whole
//     lexeme.
//   - Line and column numbers are tracked along with the index and attached
//     to generated tokens.
//   - Generated tokens are appended to the result list, which is only ever
//     appended to.
func (l *Lexer) Run() []token.Token {
	for {
		switch l.state {
		case stateCrOrCrlf:
			if l.currentChar() == '\n' {
				l.advanceChar()
			}
			l.advanceLine()
			l.state = stateStart
		case stateDivideOrComment:
			switch l.currentChar() {
			case '/':
				l.advanceChar()
				l.state = stateSingleLineComment
			case '*':
				l.advanceChar()
				l.state = stateMultiLineComment
			default:
				l.addToken(token.DIVIDE)
				l.state = stateStart
			}
		case stateIdentifierOrKeyword:
			if isAlphanumeric(l.currentChar()) {
				l.advanceChar()
			} else {
				l.addToken(token.LookupIdent(l.lexeme()))
				l.state = stateStart
			}
		case stateMinusOrArrow:
			if l.currentChar() == '>' {
				l.advanceChar()
				l.addToken(token.ARROW)
			} else {
				l.addToken(token.MINUS)
			}
			l.state = stateStart
		case stateMultiLineComment:
			switch l.currentChar() {
			case '\n':
				l.advanceChar()
				l.advanceLine()
			case '\r':
				l.advanceChar()
				l.state = stateMultiLineCommentCrOrCrlf
			case '*':
				l.advanceChar()
				l.state = stateMultiLineCommentMaybeEnd
			case 0:
				// Unterminated comment runs to end of input.
				l.state = stateStart
			default:
				l.advanceChar()
			}
		case stateMultiLineCommentCrOrCrlf:
			if l.currentChar() == '\n' {
				l.advanceChar()
			}
			l.advanceLine()
			l.state = stateMultiLineComment
		case stateMultiLineCommentMaybeEnd:
			switch l.currentChar() {
			case '/':
				l.advanceChar()
				l.state = stateStart
			case 0:
				l.state = stateStart
			default:
				l.state = stateMultiLineComment
			}
		case stateSingleLineComment:
			switch l.currentChar() {
			case '\n':
				l.advanceChar()
				l.advanceLine()
				l.state = stateStart
			case '\r':
				l.advanceChar()
				l.state = stateCrOrCrlf
			case 0:
				l.state = stateStart
			default:
				l.advanceChar()
			}
		case stateStart:
			l.startLexeme()
			if isAlpha(l.currentChar()) {
				l.advanceChar()
				l.state = stateIdentifierOrKeyword
				break
			}
			switch l.currentChar() {
			case '+':
				l.advanceChar()
				l.addToken(token.PLUS)
			case '*':
				l.advanceChar()
				l.addToken(token.MULTIPLY)
			case '%':
				l.advanceChar()
				l.addToken(token.MODULO)
			case ',':
				l.advanceChar()
				l.addToken(token.COMMA)
			case ';':
				l.advanceChar()
				l.addToken(token.SEMICOLON)
			case '{':
				l.advanceChar()
				l.addToken(token.LCURLY)
			case '}':
				l.advanceChar()
				l.addToken(token.RCURLY)
			case '(':
				l.advanceChar()
				l.addToken(token.LPAREN)
			case ')':
				l.advanceChar()
				l.addToken(token.RPAREN)
			case '\n':
				l.advanceChar()
				l.advanceLine()
			case '\r':
				l.advanceChar()
				l.state = stateCrOrCrlf
			case '\t':
				l.advanceChar()
				l.advanceTab()
			case ' ':
				l.advanceChar()
			case '/':
				l.advanceChar()
				l.state = stateDivideOrComment
			case '-':
				l.advanceChar()
				l.state = stateMinusOrArrow
			case 0:
				l.addToken(token.END)
				return l.tokens
			default:
				// Characters with no token yet (&, !, #, ...) are skipped.
				// Reserved for future tokens.
				l.advanceChar()
			}
		}
	}
}

func (l *Lexer) currentChar() byte { return l.source[l.index] }

// startLexeme begins a new lexeme, saving the current index/column/line.
func (l *Lexer) startLexeme() {
	l.startIndex = l.index
	l.startLineNumber = l.lineNumber
	l.startColumnNumber = l.columnNumber
}

// advanceChar advances to the next input character, incrementing the index
// and column. The index never moves past the sentinel.
func (l *Lexer) advanceChar() {
	if l.index == len(l.source)-1 {
		return
	}
	l.index++
	l.columnNumber++
}

// advanceLine advances to the next line, resetting to column 1.
func (l *Lexer) advanceLine() {
	l.lineNumber++
	l.columnNumber = 1
}

// advanceTab advances one tab worth of columns, taking partial tabs into
// account: the column moves to the next multiple of columnsPerTab.
func (l *Lexer) advanceTab() {
	l.columnNumber = (l.columnNumber + l.columnsPerTab) / l.columnsPerTab * l.columnsPerTab
}

// lexeme returns the substring between the saved index and the current index.
func (l *Lexer) lexeme() string {
	return l.source[l.startIndex:l.index]
}

// addToken appends a new token of the given type to the result list.
func (l *Lexer) addToken(tokenType token.TokenType) {
	l.tokens = append(l.tokens, token.Token{
		Type:   tokenType,
		Lexeme: l.lexeme(),
		Line:   l.startLineNumber,
		Column: l.startColumnNumber,
	})
}

func isAlpha(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isAlphanumeric(ch byte) bool {
	return isAlpha(ch) || '0' <= ch && ch <= '9'
}
