// Package translator converts the program graph into C code. The C code can
// then be run through a C compiler to generate a working program binary.
//
// Translation is a read-only traversal of a complete, well-formed graph; the
// parser guarantees well-formedness by construction and no re-validation
// happens here.
package translator

import (
	"fmt"
	"strings"

	"github.com/vexlang/vex/internal/graph"
)

// operatorSymbols maps operator types to their C spelling. Adding an operator
// to the language only means adding a row here.
var operatorSymbols = map[graph.OperatorType]string{
	graph.OperatorPlus: "+",
}

// Translate converts the given package into C code, visiting contained
// functions in declaration order.
func Translate(pkg *graph.Package) string {
	var code strings.Builder
	for _, function := range pkg.Functions() {
		code.WriteString(translateFunction(function))
	}
	return code.String()
}

// translateFunction emits a function's signature, parameter list, and body.
func translateFunction(function *graph.Function) string {
	var code strings.Builder
	switch function.ReturnType() {
	case graph.ReturnNone:
		code.WriteString("void ")
	case graph.ReturnValue:
		code.WriteString(function.ReturnClass().Name() + " ")
	}
	code.WriteString(function.Name() + "(")

	objects := function.Objects()
	for i, object := range objects {
		code.WriteString(object.Class().Name() + " " + object.Name())
		if i != len(objects)-1 {
			code.WriteString(", ")
		}
	}
	code.WriteString(") {\n")

	for _, statement := range function.Statements() {
		code.WriteString("  ")
		switch statement := statement.(type) {
		case *graph.ReturnStatement:
			code.WriteString("return " + translateExpression(statement.Expression()))
		case graph.Expression:
			code.WriteString(translateExpression(statement))
		default:
			panic(fmt.Sprintf("translator: unhandled statement kind %T", statement))
		}
		code.WriteString(";\n")
	}
	code.WriteString("}\n")
	return code.String()
}

// translateExpression emits an expression, recursively visiting
// sub-expressions.
func translateExpression(expression graph.Expression) string {
	switch expression := expression.(type) {
	case *graph.OperatorExpression:
		var code strings.Builder
		code.WriteString("(")
		operands := expression.Operands()
		for i, operand := range operands {
			code.WriteString(translateExpression(operand))
			if i != len(operands)-1 {
				code.WriteString(operatorSymbols[expression.OperatorType()])
			}
		}
		code.WriteString(")")
		return code.String()
	case *graph.ObjectExpression:
		return expression.Object().Name()
	default:
		panic(fmt.Sprintf("translator: unhandled expression kind %T", expression))
	}
}
