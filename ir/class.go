package ir

// ClassDecl represents a class.
type ClassDecl struct {
	FileTop

	// Name is the class identifier.
	Name string

	// TypeParameters is the generic parameter list without brackets.
	// Rendered only when non-empty.
	TypeParameters string

	// Extends is the base class, if any.
	Extends string

	// Implements lists implemented interfaces in order.
	Implements []string

	// Modifiers holds export, declare and abstract qualifiers.
	Modifiers Modifiers

	// Members are rendered constructors first, then properties, then methods.
	// Order within each group is preserved.
	Constructors []Constructor
	Properties   []Property
	Methods      []Method
}

// Kind returns KindClass.
func (d *ClassDecl) Kind() DeclarationKind { return KindClass }

// DeclName returns the class name.
func (d *ClassDecl) DeclName() string { return d.Name }

func (*ClassDecl) sealed() {}

// InterfaceDecl represents an interface.
type InterfaceDecl struct {
	FileTop

	// Name is the interface identifier.
	Name string

	// TypeParameters is the generic parameter list without brackets.
	TypeParameters string

	// Extends lists base interfaces in order.
	Extends []string

	// Modifiers holds export and declare qualifiers.
	Modifiers Modifiers

	// Properties render before Methods.
	Properties []Property
	Methods    []MethodSignature
}

// Kind returns KindInterface.
func (d *InterfaceDecl) Kind() DeclarationKind { return KindInterface }

// DeclName returns the interface name.
func (d *InterfaceDecl) DeclName() string { return d.Name }

func (*InterfaceDecl) sealed() {}
