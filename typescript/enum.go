package typescript

import (
	"bytes"

	"github.com/broady/tsdecl/ir"
)

// generateEnum emits one member per line. Every member but the last gets a
// trailing comma. A documented member other than the first is preceded by a
// blank line.
func (g *Generator) generateEnum(buf *bytes.Buffer, e *ir.EnumDecl) error {
	g.w.TopOfType(buf, e.FileTop)

	keyword := "enum"
	if e.IsConst {
		keyword = "const enum"
	}
	heading(buf, e.Modifiers, keyword, e.Name, "")
	buf.WriteString(" {\n")

	indent := g.w.indentAt(1)
	for i, v := range e.Values {
		if err := v.Check(); err != nil {
			return err
		}
		if !v.Doc.IsZero() {
			if i > 0 {
				buf.WriteString("\n")
			}
			buf.WriteString(g.w.docs.GenerateTags(1, v.Doc))
		}

		buf.WriteString(indent)
		buf.WriteString(memberName(v.Name))
		if v.Value != nil {
			buf.WriteString(" = ")
			buf.WriteString(*v.Value)
		}
		if i < len(e.Values)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}

	buf.WriteString("}\n")
	return nil
}
