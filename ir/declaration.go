// Package ir defines the Intermediate Representation for TypeScript declarations.
// These records are language-neutral descriptions of a type and its members
// that generators turn into formatted source text.
//
// Records are plain values. A declaration contains its members by value and
// is never updated after construction; generators only read them.
package ir

// DeclarationKind identifies the category of a top-level declaration.
type DeclarationKind int

const (
	KindClass        DeclarationKind = iota // class with constructors, properties and methods
	KindInterface                           // interface with properties and method signatures
	KindEnum                                // enumeration of named values
	KindTypeAlias                           // type X = ...
	KindBarrelExport                        // module re-export manifest
)

// String returns the string representation of the declaration kind.
func (k DeclarationKind) String() string {
	switch k {
	case KindClass:
		return "Class"
	case KindInterface:
		return "Interface"
	case KindEnum:
		return "Enum"
	case KindTypeAlias:
		return "TypeAlias"
	case KindBarrelExport:
		return "BarrelExport"
	default:
		return "Unknown"
	}
}

// Declaration is the base interface for all top-level declaration records.
type Declaration interface {
	// Kind returns the declaration kind for type switching.
	Kind() DeclarationKind

	// DeclName returns the declared name. Barrel exports have no name.
	DeclName() string

	// Ensure only types in this package can implement Declaration.
	sealed()
}

// FileTop holds the text that precedes a declaration in its file.
type FileTop struct {
	// Header is emitted verbatim at the top of the file (license, lint pragmas).
	Header string

	// Imports are complete import statements, one per line.
	Imports []string

	// Doc documents the declaration itself.
	Doc *DocTags
}
