package ir

// Property represents a field of a class or interface.
type Property struct {
	// Name is the property name. Required.
	Name string

	// Type is the type annotation. Required.
	Type string

	// Default is the initializer expression, if any.
	Default *string

	// IsOptional marks the property optional (name?: T).
	// Ignored when Default is set, since a default already implies optionality.
	IsOptional bool

	// IsReadonly adds the readonly keyword.
	IsReadonly bool

	// Modifiers holds access and static qualifiers.
	Modifiers Modifiers

	// Doc documents the property.
	Doc *DocTags
}

// Parameter represents a single call argument of a method or signature.
type Parameter struct {
	// Name is the parameter name. Required.
	Name string

	// Type is the type annotation. Required.
	Type string

	// Default is the default value expression, if any.
	Default *string

	// IsOptional marks the parameter optional (name?: T).
	// Ignored when Default is set.
	IsOptional bool

	// IsRest renders the parameter as a rest parameter (...name: T).
	IsRest bool
}

// ConstructorParameter represents a constructor argument. Parameters with an
// access modifier or IsReadonly are promoted to class properties by the
// target language.
type ConstructorParameter struct {
	Parameter

	// Access is one of Public, Protected, Private, or None.
	Access Modifiers

	// IsReadonly adds the readonly keyword.
	IsReadonly bool
}

// IsPromoted reports whether the parameter declares a class property.
func (p ConstructorParameter) IsPromoted() bool {
	return p.Access.Access() != None || p.IsReadonly
}

// Method represents a class method with an implementation.
type Method struct {
	// Name is the method name. Required.
	Name string

	// TypeParameters is the generic parameter list without brackets (e.g. "T, K extends keyof T").
	TypeParameters string

	// Parameters in declaration order.
	Parameters []Parameter

	// ReturnType is omitted from output when empty.
	ReturnType string

	// Body is the implementation text. Empty renders an empty block.
	Body string

	// Modifiers holds access, static, abstract and async qualifiers.
	Modifiers Modifiers

	// Doc documents the method.
	Doc *DocTags
}

// MethodSignature represents an interface method without implementation.
type MethodSignature struct {
	// Name is the method name. Required.
	Name string

	// TypeParameters is the generic parameter list without brackets.
	TypeParameters string

	// Parameters in declaration order.
	Parameters []Parameter

	// ReturnType is omitted from output when empty.
	ReturnType string

	// IsOptional marks the method optional (name?(): T).
	IsOptional bool

	// Doc documents the signature.
	Doc *DocTags
}

// Constructor represents a class initializer.
type Constructor struct {
	// Parameters in declaration order.
	Parameters []ConstructorParameter

	// Body is the implementation text. Empty renders {}.
	Body string

	// Modifiers holds the access qualifier.
	Modifiers Modifiers

	// Doc documents the constructor.
	Doc *DocTags
}
