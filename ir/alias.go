package ir

// TypeAliasDecl represents a type alias.
type TypeAliasDecl struct {
	FileTop

	// Name is the alias identifier.
	Name string

	// TypeParameters is the generic parameter list without brackets.
	TypeParameters string

	// Definition is the right-hand side, emitted verbatim. Required.
	Definition string

	// Modifiers holds export and declare qualifiers.
	Modifiers Modifiers
}

// Kind returns KindTypeAlias.
func (d *TypeAliasDecl) Kind() DeclarationKind { return KindTypeAlias }

// DeclName returns the alias name.
func (d *TypeAliasDecl) DeclName() string { return d.Name }

func (*TypeAliasDecl) sealed() {}
