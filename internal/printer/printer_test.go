package printer_test

import (
	"strings"
	"testing"

	"github.com/vexlang/vex/internal/graph"
	"github.com/vexlang/vex/internal/printer"
)

// buildAddPackage constructs the graph for:
//
//	func add(int a, int b) -> int { return a+b; }
func buildAddPackage() *graph.Package {
	pkg := graph.NewPackage()
	pkg.SetName("default")

	intClass := graph.NewClass()
	intClass.SetName("int")
	pkg.AddClass(intClass)

	fn := graph.NewFunction()
	fn.SetName("add")
	fn.SetReturnType(graph.ReturnValue)
	fn.SetReturnClass(intClass)
	pkg.AddFunction(fn)

	a := graph.NewObject()
	a.SetName("a")
	a.SetClass(intClass)
	fn.AddObject(a)

	b := graph.NewObject()
	b.SetName("b")
	b.SetClass(intClass)
	fn.AddObject(b)

	aExpr := graph.NewObjectExpression()
	aExpr.SetObject(a)
	bExpr := graph.NewObjectExpression()
	bExpr.SetObject(b)

	plus := graph.NewOperatorExpression()
	plus.SetOperatorType(graph.OperatorPlus)
	plus.AddOperand(aExpr)
	plus.AddOperand(bExpr)

	ret := graph.NewReturnStatement()
	ret.SetExpression(plus)
	fn.AddStatement(ret)

	return pkg
}

func TestPrintTree(t *testing.T) {
	expected := strings.Join([]string{
		"Package:default",
		"  Function:value",
		"    Class:int",
		"    Object:a",
		"      Class:int",
		"    Object:b",
		"      Class:int",
		"    ReturnStatement",
		"      OperatorExpression:plus",
		"        ObjectExpression",
		"          Object:a",
		"            Class:int",
		"        ObjectExpression",
		"          Object:b",
		"            Class:int",
		"",
	}, "\n")

	if actual := printer.Print(buildAddPackage()); actual != expected {
		t.Errorf("tree mismatch:\ngot:\n%s\nwant:\n%s", actual, expected)
	}
}

func TestPrintEmptyFunction(t *testing.T) {
	pkg := graph.NewPackage()
	pkg.SetName("default")
	fn := graph.NewFunction()
	fn.SetName("noop")
	fn.SetReturnType(graph.ReturnNone)
	pkg.AddFunction(fn)

	expected := "Package:default\n  Function:none\n"
	if actual := printer.Print(pkg); actual != expected {
		t.Errorf("tree mismatch:\ngot:\n%s\nwant:\n%s", actual, expected)
	}
}
