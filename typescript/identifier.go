package typescript

import (
	"unicode"

	"github.com/broady/tsdecl/ir"
)

// isIdentifier reports whether name can appear unquoted as a member name:
// a letter, _ or $ followed by letters, digits, _ or $.
// Reserved words are allowed in member position.
func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || r == '$' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func isNumeric(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// memberName returns name as it must appear in a member declaration.
// Identifiers, numeric keys, and names already written as string literals or
// computed keys pass through; anything else is quoted.
func memberName(name string) string {
	if isIdentifier(name) || isNumeric(name) {
		return name
	}
	switch name[0] {
	case '\'', '"', '[':
		return name
	}
	return ir.Quote(name)
}
