package typescript

import (
	"bytes"
	"strings"

	"github.com/broady/tsdecl/ir"
)

// DefaultConstructorInlineLimit is the largest number of plain constructor
// parameters kept on the signature line.
const DefaultConstructorInlineLimit = 2

// Writer renders the fragments shared by every declaration kind.
// It holds no state between calls; every method appends to the buffer it is given.
type Writer struct {
	indent      string
	docs        DocGenerator
	inlineLimit int
}

// NewWriter returns a Writer using indent for one nesting level and docs for
// documentation blocks. A nil docs renders JSDoc. An inlineLimit below 1
// selects DefaultConstructorInlineLimit.
func NewWriter(indent string, docs DocGenerator, inlineLimit int) Writer {
	if docs == nil {
		docs = JSDoc{Indent: indent}
	}
	if inlineLimit < 1 {
		inlineLimit = DefaultConstructorInlineLimit
	}
	return Writer{indent: indent, docs: docs, inlineLimit: inlineLimit}
}

func (w Writer) indentAt(level int) string {
	return strings.Repeat(w.indent, level)
}

// TopOfType writes the header verbatim, then one import per line followed by
// a single blank line, then the declaration's documentation block.
func (w Writer) TopOfType(buf *bytes.Buffer, top ir.FileTop) {
	if top.Header != "" {
		buf.WriteString(top.Header)
		if !strings.HasSuffix(top.Header, "\n") {
			buf.WriteString("\n")
		}
	}
	for _, imp := range top.Imports {
		buf.WriteString(imp)
		buf.WriteString("\n")
	}
	if len(top.Imports) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString(w.docs.GenerateTags(0, top.Doc))
}

// Property writes an optional doc block and the line
// [modifiers] [readonly] name[?]: Type[ = default];
// Names that are not identifiers are quoted.
func (w Writer) Property(buf *bytes.Buffer, p ir.Property, level int) error {
	if err := p.Check(); err != nil {
		return err
	}

	buf.WriteString(w.docs.GenerateTags(level, p.Doc))
	buf.WriteString(w.indentAt(level))

	mods := p.Modifiers
	if p.IsReadonly {
		mods = mods.With(ir.Readonly)
	}
	buf.WriteString(modifierPrefix(mods))

	buf.WriteString(memberName(p.Name))
	if p.IsOptional && p.Default == nil {
		buf.WriteString("?")
	}
	buf.WriteString(": ")
	buf.WriteString(p.Type)
	if p.Default != nil {
		buf.WriteString(" = ")
		buf.WriteString(*p.Default)
	}
	buf.WriteString(";\n")
	return nil
}

// MethodSignature writes an optional doc block and the bodiless line
// name[?][<T>](params)[: ReturnType];
func (w Writer) MethodSignature(buf *bytes.Buffer, m ir.MethodSignature, level int) error {
	if err := m.Check(); err != nil {
		return err
	}

	buf.WriteString(w.docs.GenerateTags(level, m.Doc))
	buf.WriteString(w.indentAt(level))
	buf.WriteString(memberName(m.Name))
	if m.IsOptional {
		buf.WriteString("?")
	}
	buf.WriteString(typeParams(m.TypeParameters))
	buf.WriteString("(")
	buf.WriteString(w.Parameters(m.Parameters))
	buf.WriteString(")")
	buf.WriteString(returnType(m.ReturnType))
	buf.WriteString(";\n")
	return nil
}

// Method writes an optional doc block and
// [modifiers] name[<T>](params)[: ReturnType] { body }
// The body is indented one level deeper than the signature.
func (w Writer) Method(buf *bytes.Buffer, m ir.Method, level int) error {
	if err := m.Check(); err != nil {
		return err
	}

	buf.WriteString(w.docs.GenerateTags(level, m.Doc))
	buf.WriteString(w.indentAt(level))
	buf.WriteString(modifierPrefix(m.Modifiers))
	buf.WriteString(memberName(m.Name))
	buf.WriteString(typeParams(m.TypeParameters))
	buf.WriteString("(")
	buf.WriteString(w.Parameters(m.Parameters))
	buf.WriteString(")")
	buf.WriteString(returnType(m.ReturnType))
	w.block(buf, m.Body, level)
	return nil
}

// Constructor writes an optional doc block and the constructor.
// Parameters go one per line when any of them is promoted (access modifier or
// readonly) or when there are more than the inline limit; otherwise they stay
// on the signature line.
func (w Writer) Constructor(buf *bytes.Buffer, c ir.Constructor, level int) error {
	if err := c.Check(); err != nil {
		return err
	}

	buf.WriteString(w.docs.GenerateTags(level, c.Doc))
	buf.WriteString(w.indentAt(level))
	buf.WriteString(modifierPrefix(c.Modifiers))
	buf.WriteString("constructor(")

	if w.multilineConstructor(c.Parameters) {
		buf.WriteString("\n")
		inner := w.indentAt(level + 1)
		for i, p := range c.Parameters {
			buf.WriteString(inner)
			buf.WriteString(constructorParam(p))
			if i < len(c.Parameters)-1 {
				buf.WriteString(",")
			}
			buf.WriteString("\n")
		}
		buf.WriteString(w.indentAt(level))
	} else {
		parts := make([]string, len(c.Parameters))
		for i, p := range c.Parameters {
			parts[i] = constructorParam(p)
		}
		buf.WriteString(strings.Join(parts, ", "))
	}
	buf.WriteString(")")
	w.block(buf, c.Body, level)
	return nil
}

func (w Writer) multilineConstructor(params []ir.ConstructorParameter) bool {
	if len(params) > w.inlineLimit {
		return true
	}
	for _, p := range params {
		if p.IsPromoted() {
			return true
		}
	}
	return false
}

// Parameters formats a parameter list as name[?]: Type[ = default], comma-space separated.
func (w Writer) Parameters(params []ir.Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = param(p)
	}
	return strings.Join(parts, ", ")
}

// block writes " {}" for an empty body, otherwise the body re-indented one
// level deeper than level and closed at level.
func (w Writer) block(buf *bytes.Buffer, body string, level int) {
	lines := splitLines(body)
	if len(lines) == 0 {
		buf.WriteString(" {}\n")
		return
	}

	buf.WriteString(" {\n")
	inner := w.indentAt(level + 1)
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			buf.WriteString(inner)
			buf.WriteString(l)
		}
		buf.WriteString("\n")
	}
	buf.WriteString(w.indentAt(level))
	buf.WriteString("}\n")
}

func param(p ir.Parameter) string {
	var b strings.Builder
	if p.IsRest {
		b.WriteString("...")
	}
	b.WriteString(p.Name)
	if p.IsOptional && p.Default == nil && !p.IsRest {
		b.WriteString("?")
	}
	b.WriteString(": ")
	b.WriteString(p.Type)
	if p.Default != nil {
		b.WriteString(" = ")
		b.WriteString(*p.Default)
	}
	return b.String()
}

func constructorParam(p ir.ConstructorParameter) string {
	mods := p.Access.Access()
	if p.IsReadonly {
		mods = mods.With(ir.Readonly)
	}
	return modifierPrefix(mods) + param(p.Parameter)
}

func typeParams(tp string) string {
	tp = strings.TrimSpace(tp)
	if tp == "" {
		return ""
	}
	return "<" + tp + ">"
}

func returnType(rt string) string {
	if rt == "" {
		return ""
	}
	return ": " + rt
}
