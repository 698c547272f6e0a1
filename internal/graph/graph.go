// Package graph holds the in-memory representation of a program. Every
// program entity (packages, functions, classes, objects, statements) is a
// node in a tree owned top-down by the Package. Reference edges used for name
// resolution (Object→Class, Function.returnClass→Class) point at nodes owned
// elsewhere in the tree and carry no ownership.
//
// Entity hierarchy:
//
//	Entity
//	  Package
//	  Function
//	  Class
//	  Object
//	  Statement
//	    ReturnStatement
//	    Expression
//	      ObjectExpression
//	      OperatorExpression
package graph

// Entity is the base of every graph node. Names are unique only within the
// containing entity, and the parent link is set by the container on add and
// cleared on remove. The parent link is for traversal and debugging only.
type Entity interface {
	Name() string
	SetName(name string)
	Parent() Entity
	setParent(parent Entity)
}

// entity provides the shared name/parent state. Concrete node types embed it.
type entity struct {
	name   string
	parent Entity
}

func (e *entity) Name() string            { return e.name }
func (e *entity) SetName(name string)     { e.name = name }
func (e *entity) Parent() Entity          { return e.parent }
func (e *entity) setParent(parent Entity) { e.parent = parent }

// Statement is the fundamental program execution unit. The set of statement
// kinds is closed; consumers switch exhaustively over the concrete types.
type Statement interface {
	Entity
	statementNode()
}

// Expression is a Statement that evaluates to a value. Like Statement, the
// kind set is closed.
type Expression interface {
	Statement
	expressionNode()
}

// Package is the top-level entity, containing all other entities directly or
// indirectly. Different packages and their contents are isolated from each
// other.
type Package struct {
	entity
	classes   []*Class
	functions []*Function
}

func NewPackage() *Package { return &Package{} }

// Class returns the contained class with the given name, or nil. Lookup is a
// linear scan in insertion order; the first match wins.
func (p *Package) Class(name string) *Class {
	for _, c := range p.classes {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// Classes lists the contained classes in insertion order.
func (p *Package) Classes() []*Class { return p.classes }

// AddClass appends c to the contained classes and makes p its parent.
func (p *Package) AddClass(c *Class) {
	p.classes = append(p.classes, c)
	c.setParent(p)
}

// RemoveClass removes c from the contained classes, clearing its parent.
func (p *Package) RemoveClass(c *Class) {
	for i, existing := range p.classes {
		if existing == c {
			p.classes = append(p.classes[:i], p.classes[i+1:]...)
			c.setParent(nil)
			return
		}
	}
}

// Function returns the contained function with the given name, or nil.
func (p *Package) Function(name string) *Function {
	for _, f := range p.functions {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// Functions lists the contained functions in insertion order.
func (p *Package) Functions() []*Function { return p.functions }

// AddFunction appends f to the contained functions and makes p its parent.
func (p *Package) AddFunction(f *Function) {
	p.functions = append(p.functions, f)
	f.setParent(p)
}

// RemoveFunction removes f from the contained functions, clearing its parent.
func (p *Package) RemoveFunction(f *Function) {
	for i, existing := range p.functions {
		if existing == f {
			p.functions = append(p.functions[:i], p.functions[i+1:]...)
			f.setParent(nil)
			return
		}
	}
}

// Class is the fundamental entity of the typing system. Every object must
// have a class. In the current feature set a class is identity only.
type Class struct {
	entity
}

func NewClass() *Class { return &Class{} }

// ReturnType describes a function's return semantics.
type ReturnType int

const (
	// ReturnNone means the function returns no object.
	ReturnNone ReturnType = iota
	// ReturnValue means the function returns an object by value.
	ReturnValue
)

func (rt ReturnType) String() string {
	switch rt {
	case ReturnNone:
		return "none"
	case ReturnValue:
		return "value"
	default:
		return "unknown"
	}
}

// Function is a grouping of program logic. It holds its parameters and locals
// as contained Objects, and its body as an ordered list of Statements.
type Function struct {
	entity
	returnType  ReturnType
	returnClass *Class
	objects     []*Object
	statements  []Statement
}

func NewFunction() *Function { return &Function{} }

// ReturnType reports whether the function returns a value.
func (f *Function) ReturnType() ReturnType      { return f.returnType }
func (f *Function) SetReturnType(rt ReturnType) { f.returnType = rt }

// ReturnClass is the class of the returned object. It is nil when the return
// type is ReturnNone, and mandatory otherwise. The reference is non-owning.
func (f *Function) ReturnClass() *Class       { return f.returnClass }
func (f *Function) SetReturnClass(cls *Class) { f.returnClass = cls }

// Object returns the contained object with the given name, or nil.
func (f *Function) Object(name string) *Object {
	for _, o := range f.objects {
		if o.Name() == name {
			return o
		}
	}
	return nil
}

// Objects lists the contained objects in declaration order.
func (f *Function) Objects() []*Object { return f.objects }

// AddObject appends o to the contained objects and makes f its parent.
func (f *Function) AddObject(o *Object) {
	f.objects = append(f.objects, o)
	o.setParent(f)
}

// RemoveObject removes o from the contained objects, clearing its parent.
func (f *Function) RemoveObject(o *Object) {
	for i, existing := range f.objects {
		if existing == o {
			f.objects = append(f.objects[:i], f.objects[i+1:]...)
			o.setParent(nil)
			return
		}
	}
}

// Statements lists the body statements in source order.
func (f *Function) Statements() []Statement { return f.statements }

// AddStatement appends s to the body and makes f its parent.
func (f *Function) AddStatement(s Statement) {
	f.statements = append(f.statements, s)
	s.setParent(f)
}

// RemoveStatement removes s from the body, clearing its parent.
func (f *Function) RemoveStatement(s Statement) {
	for i, existing := range f.statements {
		if existing == s {
			f.statements = append(f.statements[:i], f.statements[i+1:]...)
			s.setParent(nil)
			return
		}
	}
}

// Object is the fundamental data entity. Every piece of data that is stored
// or operated on belongs to an object.
type Object struct {
	entity
	cls *Class
}

func NewObject() *Object { return &Object{} }

// Class is the object's class. The reference is non-owning.
func (o *Object) Class() *Class       { return o.cls }
func (o *Object) SetClass(cls *Class) { o.cls = cls }

// ReturnStatement exits a function, returning control to the caller. The
// optional expression's resulting object is passed back to the caller.
type ReturnStatement struct {
	entity
	expression Expression
}

func NewReturnStatement() *ReturnStatement { return &ReturnStatement{} }

func (r *ReturnStatement) statementNode() {}

func (r *ReturnStatement) Expression() Expression     { return r.expression }
func (r *ReturnStatement) SetExpression(e Expression) { r.expression = e }

// OperatorType is the kind of operator appearing in an OperatorExpression.
type OperatorType int

const (
	// OperatorPlus is the + binary operator.
	OperatorPlus OperatorType = iota
)

func (ot OperatorType) String() string {
	switch ot {
	case OperatorPlus:
		return "plus"
	default:
		return "unknown"
	}
}

// ObjectExpression evaluates to the value of a single object, e.g. "a".
type ObjectExpression struct {
	entity
	object *Object
}

func NewObjectExpression() *ObjectExpression { return &ObjectExpression{} }

func (o *ObjectExpression) statementNode()  {}
func (o *ObjectExpression) expressionNode() {}

// Object is the referenced object. The reference is non-owning.
func (o *ObjectExpression) Object() *Object       { return o.object }
func (o *ObjectExpression) SetObject(obj *Object) { o.object = obj }

// OperatorExpression combines two or more sub-expressions with a common
// operator. For example, a+b is an OperatorExpression of type plus with
// sub-expressions a and b. Operands accumulate in source order.
type OperatorExpression struct {
	entity
	operatorType OperatorType
	operands     []Expression
}

func NewOperatorExpression() *OperatorExpression { return &OperatorExpression{} }

func (o *OperatorExpression) statementNode()  {}
func (o *OperatorExpression) expressionNode() {}

func (o *OperatorExpression) OperatorType() OperatorType      { return o.operatorType }
func (o *OperatorExpression) SetOperatorType(ot OperatorType) { o.operatorType = ot }

// Operands lists the sub-expressions in the order they were added.
func (o *OperatorExpression) Operands() []Expression { return o.operands }

// AddOperand appends e to the operands and makes o its parent.
func (o *OperatorExpression) AddOperand(e Expression) {
	o.operands = append(o.operands, e)
	e.setParent(o)
}

// RemoveOperand removes e from the operands, clearing its parent.
func (o *OperatorExpression) RemoveOperand(e Expression) {
	for i, existing := range o.operands {
		if existing == e {
			o.operands = append(o.operands[:i], o.operands[i+1:]...)
			e.setParent(nil)
			return
		}
	}
}
