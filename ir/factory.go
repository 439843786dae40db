package ir

import (
	"strconv"
	"strings"
)

// NewClass returns an exported class.
func NewClass(name string) *ClassDecl {
	return &ClassDecl{Name: name, Modifiers: Export}
}

// NewAbstractClass returns an exported abstract class.
func NewAbstractClass(name string) *ClassDecl {
	return &ClassDecl{Name: name, Modifiers: Export | Abstract}
}

// NewInterface returns an exported interface with the given members.
func NewInterface(name string, props []Property, methods []MethodSignature) *InterfaceDecl {
	return &InterfaceDecl{
		Name:       name,
		Modifiers:  Export,
		Properties: props,
		Methods:    methods,
	}
}

// NewEnum returns an exported enum with the given values.
func NewEnum(name string, values ...EnumValue) *EnumDecl {
	return &EnumDecl{Name: name, Modifiers: Export, Values: values}
}

// NewEnumFromNames returns an exported enum whose members have no initializers.
func NewEnumFromNames(name string, names ...string) *EnumDecl {
	values := make([]EnumValue, len(names))
	for i, n := range names {
		values[i] = EnumValue{Name: n}
	}
	return NewEnum(name, values...)
}

// NewEnumValue returns an enum member initialized with the given literal text.
// An empty value yields a bare member.
func NewEnumValue(name, value string) EnumValue {
	v := EnumValue{Name: name}
	if value != "" {
		v.Value = Literal(value)
	}
	return v
}

// NewTypeAlias returns an exported type alias.
func NewTypeAlias(name, definition string) *TypeAliasDecl {
	return &TypeAliasDecl{Name: name, Definition: definition, Modifiers: Export}
}

// NewStringUnion returns an exported alias for the union of the given string
// literals, e.g. 'a' | 'b'. Order is preserved and duplicates are kept.
func NewStringUnion(name string, values ...string) *TypeAliasDecl {
	return NewTypeAlias(name, StringUnion(values...))
}

// StringUnion joins values as quoted string literals separated by " | ".
func StringUnion(values ...string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = Quote(v)
	}
	return strings.Join(quoted, " | ")
}

// NewBarrel returns a barrel export declaration.
func NewBarrel(entries ...BarrelEntry) *BarrelExportDecl {
	return &BarrelExportDecl{Entries: entries}
}

// ExportAll re-exports every symbol of path.
func ExportAll(path string) BarrelEntry {
	return BarrelEntry{Path: path}
}

// ExportNamed re-exports the given symbols of path.
func ExportNamed(path string, symbols ...string) BarrelEntry {
	return BarrelEntry{Path: path, Symbols: symbols}
}

// ExportTypes re-exports the given symbols of path as types only.
// With no symbols every type is re-exported.
func ExportTypes(path string, symbols ...string) BarrelEntry {
	return BarrelEntry{Path: path, Symbols: symbols, TypeOnly: true}
}

// NewProperty returns a required property.
func NewProperty(name, typ string) Property {
	return Property{Name: name, Type: typ}
}

// OptionalProperty returns a property marked optional.
func OptionalProperty(name, typ string) Property {
	return Property{Name: name, Type: typ, IsOptional: true}
}

// NewParameter returns a required parameter.
func NewParameter(name, typ string) Parameter {
	return Parameter{Name: name, Type: typ}
}

// OptionalParameter returns a parameter marked optional.
func OptionalParameter(name, typ string) Parameter {
	return Parameter{Name: name, Type: typ, IsOptional: true}
}

// NewMethod returns a method without modifiers. An empty body renders an empty block.
func NewMethod(name string, params []Parameter, returnType, body string) Method {
	return Method{
		Name:       name,
		Parameters: params,
		ReturnType: returnType,
		Body:       body,
	}
}

// NewAsyncMethod returns an async method.
func NewAsyncMethod(name string, params []Parameter, returnType, body string) Method {
	m := NewMethod(name, params, returnType, body)
	m.Modifiers = Async
	return m
}

// NewMethodSignature returns an interface method signature.
func NewMethodSignature(name string, params []Parameter, returnType string) MethodSignature {
	return MethodSignature{Name: name, Parameters: params, ReturnType: returnType}
}

// NewConstructor returns a constructor with the given body and parameters.
func NewConstructor(body string, params ...ConstructorParameter) Constructor {
	return Constructor{Parameters: params, Body: body}
}

// NewConstructorParameter returns a plain, unpromoted constructor parameter.
func NewConstructorParameter(name, typ string) ConstructorParameter {
	return ConstructorParameter{Parameter: NewParameter(name, typ)}
}

// PromotedParameter returns a constructor parameter that declares a class property.
func PromotedParameter(name, typ string, access Modifiers, readonly bool) ConstructorParameter {
	return ConstructorParameter{
		Parameter:  NewParameter(name, typ),
		Access:     access.Access(),
		IsReadonly: readonly,
	}
}

// Literal returns a pointer to text, for optional literal fields.
func Literal(text string) *string {
	return &text
}

// StringLiteral returns a pointer to s as a quoted string literal.
func StringLiteral(s string) *string {
	return Literal(Quote(s))
}

// NumberLiteral returns a pointer to n as a numeric literal.
func NumberLiteral(n int64) *string {
	return Literal(strconv.FormatInt(n, 10))
}

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Quote returns s as a single-quoted string literal.
func Quote(s string) string {
	return "'" + quoteReplacer.Replace(s) + "'"
}
