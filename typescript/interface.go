package typescript

import (
	"bytes"
	"strings"

	"github.com/broady/tsdecl/ir"
)

// generateInterface emits properties, then method signatures. Methods never
// get bodies here.
func (g *Generator) generateInterface(buf *bytes.Buffer, i *ir.InterfaceDecl) error {
	g.w.TopOfType(buf, i.FileTop)

	heading(buf, i.Modifiers, "interface", i.Name, i.TypeParameters)
	if len(i.Extends) > 0 {
		buf.WriteString(" extends ")
		buf.WriteString(strings.Join(i.Extends, ", "))
	}
	buf.WriteString(" {\n")

	m := members{buf: buf}
	for _, p := range i.Properties {
		m.next()
		if err := g.w.Property(buf, p, 1); err != nil {
			return err
		}
	}
	for _, sig := range i.Methods {
		m.next()
		if err := g.w.MethodSignature(buf, sig, 1); err != nil {
			return err
		}
	}

	buf.WriteString("}\n")
	return nil
}
