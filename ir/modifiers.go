package ir

// Modifiers is a bit set of declaration and member qualifiers.
// The zero value is None.
type Modifiers uint16

// None renders as the empty string.
const None Modifiers = 0

const (
	Export Modifiers = 1 << iota
	ExportDefault
	Declare
	Public
	Protected
	Private
	Static
	Abstract
	Async
	Readonly
)

// AccessMask selects the access-level bits.
const AccessMask = Public | Protected | Private

// Has reports whether every flag in f is set.
func (m Modifiers) Has(f Modifiers) bool {
	return f != None && m&f == f
}

// With returns m with the flags in f set.
func (m Modifiers) With(f Modifiers) Modifiers {
	return m | f
}

// Without returns m with the flags in f cleared.
func (m Modifiers) Without(f Modifiers) Modifiers {
	return m &^ f
}

// Access returns only the access-level bits of m.
func (m Modifiers) Access() Modifiers {
	return m & AccessMask
}
