package typescript

import (
	"bytes"

	"github.com/broady/tsdecl/ir"
)

// generateTypeAlias emits [modifiers] type Name[<T>] = Definition;
// The definition is not checked.
func (g *Generator) generateTypeAlias(buf *bytes.Buffer, a *ir.TypeAliasDecl) {
	g.w.TopOfType(buf, a.FileTop)

	heading(buf, a.Modifiers, "type", a.Name, a.TypeParameters)
	buf.WriteString(" = ")
	buf.WriteString(a.Definition)
	buf.WriteString(";\n")
}
