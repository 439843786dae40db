package typescript

import (
	"bytes"
	"strings"

	"github.com/broady/tsdecl/ir"
)

// generateBarrel emits one re-export per entry:
//
//	export [type] * from 'path';
//	export [type] { a, b } from 'path';
func (g *Generator) generateBarrel(buf *bytes.Buffer, b *ir.BarrelExportDecl) {
	g.w.TopOfType(buf, ir.FileTop{Header: b.Header})

	for _, e := range b.Entries {
		buf.WriteString("export ")
		if e.TypeOnly {
			buf.WriteString("type ")
		}
		if e.IsWildcard() {
			buf.WriteString("* ")
		} else {
			buf.WriteString("{ ")
			buf.WriteString(strings.Join(e.Symbols, ", "))
			buf.WriteString(" } ")
		}
		buf.WriteString("from ")
		buf.WriteString(ir.Quote(e.Path))
		buf.WriteString(";\n")
	}
}
