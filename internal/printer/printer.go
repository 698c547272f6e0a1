// Package printer renders the program graph in string form, useful for
// visualizing the graph for debugging or instructive purposes. It consumes
// only the graph's public read accessors.
package printer

import (
	"fmt"
	"strings"

	"github.com/vexlang/vex/internal/graph"
)

// indentStep is the number of spaces added per depth level.
const indentStep = 2

// Print converts the package into a textual tree, one node per line in the
// form <EntityKind>:<name-or-attribute>, recursively visiting children.
func Print(pkg *graph.Package) string {
	return printPackage(pkg, 0)
}

func printPackage(pkg *graph.Package, indent int) string {
	var text strings.Builder
	text.WriteString(pad(indent) + "Package:" + pkg.Name() + "\n")
	for _, function := range pkg.Functions() {
		text.WriteString(printFunction(function, indent+indentStep))
	}
	return text.String()
}

func printFunction(function *graph.Function, indent int) string {
	var text strings.Builder
	text.WriteString(pad(indent) + "Function:" + function.ReturnType().String() + "\n")
	if function.ReturnType() == graph.ReturnValue {
		text.WriteString(printClass(function.ReturnClass(), indent+indentStep))
	}
	for _, object := range function.Objects() {
		text.WriteString(printObject(object, indent+indentStep))
	}
	for _, statement := range function.Statements() {
		text.WriteString(printStatement(statement, indent+indentStep))
	}
	return text.String()
}

func printClass(cls *graph.Class, indent int) string {
	return pad(indent) + "Class:" + cls.Name() + "\n"
}

func printObject(object *graph.Object, indent int) string {
	text := pad(indent) + "Object:" + object.Name() + "\n"
	text += printClass(object.Class(), indent+indentStep)
	return text
}

func printStatement(statement graph.Statement, indent int) string {
	switch statement := statement.(type) {
	case *graph.ReturnStatement:
		text := pad(indent) + "ReturnStatement\n"
		text += printExpression(statement.Expression(), indent+indentStep)
		return text
	case graph.Expression:
		return printExpression(statement, indent)
	default:
		panic(fmt.Sprintf("printer: unhandled statement kind %T", statement))
	}
}

func printExpression(expression graph.Expression, indent int) string {
	switch expression := expression.(type) {
	case *graph.OperatorExpression:
		var text strings.Builder
		text.WriteString(pad(indent) + "OperatorExpression:" + expression.OperatorType().String() + "\n")
		for _, operand := range expression.Operands() {
			text.WriteString(printExpression(operand, indent+indentStep))
		}
		return text.String()
	case *graph.ObjectExpression:
		text := pad(indent) + "ObjectExpression\n"
		text += printObject(expression.Object(), indent+indentStep)
		return text
	default:
		panic(fmt.Sprintf("printer: unhandled expression kind %T", expression))
	}
}

func pad(indent int) string {
	return strings.Repeat(" ", indent)
}
