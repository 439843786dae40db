package typescript

import (
	"bytes"
	"strings"

	"github.com/broady/tsdecl/ir"
)

// generateClass emits constructors, then properties, then methods, each group
// in input order.
func (g *Generator) generateClass(buf *bytes.Buffer, c *ir.ClassDecl) error {
	g.w.TopOfType(buf, c.FileTop)

	heading(buf, c.Modifiers, "class", c.Name, c.TypeParameters)
	if c.Extends != "" {
		buf.WriteString(" extends ")
		buf.WriteString(c.Extends)
	}
	if len(c.Implements) > 0 {
		buf.WriteString(" implements ")
		buf.WriteString(strings.Join(c.Implements, ", "))
	}
	buf.WriteString(" {\n")

	m := members{buf: buf}
	for _, ctor := range c.Constructors {
		m.next()
		if err := g.w.Constructor(buf, ctor, 1); err != nil {
			return err
		}
	}
	for _, p := range c.Properties {
		m.next()
		if err := g.w.Property(buf, p, 1); err != nil {
			return err
		}
	}
	for _, method := range c.Methods {
		m.next()
		if err := g.w.Method(buf, method, 1); err != nil {
			return err
		}
	}

	buf.WriteString("}\n")
	return nil
}
