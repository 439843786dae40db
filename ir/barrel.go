package ir

// BarrelExportDecl represents a module whose only content is re-exports.
type BarrelExportDecl struct {
	// Header is emitted verbatim before the exports.
	Header string

	// Entries in output order.
	Entries []BarrelEntry
}

// Kind returns KindBarrelExport.
func (d *BarrelExportDecl) Kind() DeclarationKind { return KindBarrelExport }

// DeclName returns "" since barrels are unnamed.
func (d *BarrelExportDecl) DeclName() string { return "" }

func (*BarrelExportDecl) sealed() {}

// BarrelEntry re-exports symbols from one module.
type BarrelEntry struct {
	// Path is the module specifier (e.g. "./user"). Required.
	Path string

	// Symbols are the named exports. Empty means export *.
	Symbols []string

	// TypeOnly renders export type.
	TypeOnly bool
}

// IsWildcard reports whether the entry re-exports every symbol.
func (e BarrelEntry) IsWildcard() bool {
	return len(e.Symbols) == 0
}
