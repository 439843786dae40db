package typescript

import (
	"strings"

	"github.com/broady/tsdecl/ir"
)

// modifierOrder is the fixed keyword order of the TypeScript grammar.
// Adding a modifier means adding one row here.
var modifierOrder = [...]struct {
	flag    ir.Modifiers
	keyword string
}{
	{ir.ExportDefault, "export default"},
	{ir.Export, "export"},
	{ir.Declare, "declare"},
	{ir.Public, "public"},
	{ir.Protected, "protected"},
	{ir.Private, "private"},
	{ir.Static, "static"},
	{ir.Abstract, "abstract"},
	{ir.Async, "async"},
	{ir.Readonly, "readonly"},
}

// RenderModifiers returns the keywords for m separated by single spaces.
// ExportDefault takes precedence over Export. None renders as "".
func RenderModifiers(m ir.Modifiers) string {
	if m == ir.None {
		return ""
	}
	if m.Has(ir.ExportDefault) {
		m = m.Without(ir.Export)
	}

	var words []string
	for _, mod := range modifierOrder {
		if m.Has(mod.flag) {
			words = append(words, mod.keyword)
		}
	}
	return strings.Join(words, " ")
}

// modifierPrefix renders m followed by a space, ready to precede a keyword.
func modifierPrefix(m ir.Modifiers) string {
	s := RenderModifiers(m)
	if s == "" {
		return ""
	}
	return s + " "
}
