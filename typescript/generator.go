// Package typescript renders IR declarations as TypeScript source.
package typescript

import (
	"bytes"

	"github.com/cockroachdb/errors"

	"github.com/broady/tsdecl/ir"
)

// Generator renders declarations. It is immutable after New and safe for
// concurrent use; each Generate call owns its own buffer.
type Generator struct {
	w Writer
}

var _ DeclarationGenerator = (*Generator)(nil)

// New returns a Generator for cfg.
func New(cfg Config) *Generator {
	return &Generator{w: NewWriter(cfg.indentString(), cfg.Docs, cfg.ConstructorInlineLimit)}
}

// Name returns "typescript".
func (g *Generator) Name() string { return "typescript" }

// FileExtension returns ".ts".
func (g *Generator) FileExtension() string { return ".ts" }

// Writer returns the shared rendering primitives used by g.
func (g *Generator) Writer() Writer { return g.w }

// Generate renders d as complete source text ending in a single newline.
// A nil declaration or a missing required field fails with an error wrapping
// ir.ErrInvalidArgument, and no text is returned.
func (g *Generator) Generate(d ir.Declaration) (string, error) {
	if err := ir.Validate(d); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	var err error
	switch t := d.(type) {
	case *ir.ClassDecl:
		err = g.generateClass(&buf, t)
	case *ir.InterfaceDecl:
		err = g.generateInterface(&buf, t)
	case *ir.EnumDecl:
		err = g.generateEnum(&buf, t)
	case *ir.TypeAliasDecl:
		g.generateTypeAlias(&buf, t)
	case *ir.BarrelExportDecl:
		g.generateBarrel(&buf, t)
	default:
		err = errors.Wrapf(ir.ErrInvalidArgument, "unsupported declaration kind: %s", d.Kind())
	}
	if err != nil {
		return "", errors.Wrapf(err, "generate %s %q", d.Kind(), d.DeclName())
	}
	return buf.String(), nil
}

// members tracks blank-line separation inside a body: one blank line
// between members, none before the first.
type members struct {
	buf   *bytes.Buffer
	count int
}

func (m *members) next() {
	if m.count > 0 {
		m.buf.WriteString("\n")
	}
	m.count++
}

// heading writes "[modifiers ]keyword name<T>".
func heading(buf *bytes.Buffer, mods ir.Modifiers, keyword, name, tp string) {
	buf.WriteString(modifierPrefix(mods))
	buf.WriteString(keyword)
	buf.WriteString(" ")
	buf.WriteString(name)
	buf.WriteString(typeParams(tp))
}
