package ir

// EnumDecl represents an enumeration.
type EnumDecl struct {
	FileTop

	// Name is the enum identifier.
	Name string

	// IsConst renders a const enum.
	IsConst bool

	// Modifiers holds export and declare qualifiers.
	Modifiers Modifiers

	// Values in declaration order.
	Values []EnumValue
}

// Kind returns KindEnum.
func (d *EnumDecl) Kind() DeclarationKind { return KindEnum }

// DeclName returns the enum name.
func (d *EnumDecl) DeclName() string { return d.Name }

func (*EnumDecl) sealed() {}

// EnumValue represents a single enum member.
type EnumValue struct {
	// Name is the member name. Required.
	Name string

	// Value is the initializer as literal source text (e.g. "2" or "'red'").
	// A nil Value renders the bare name.
	Value *string

	// Doc documents the member.
	Doc *DocTags
}
