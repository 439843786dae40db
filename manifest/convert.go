package manifest

import (
	"github.com/cockroachdb/errors"

	"github.com/broady/tsdecl/ir"
)

var modifierNames = map[string]ir.Modifiers{
	"export":         ir.Export,
	"export-default": ir.ExportDefault,
	"declare":        ir.Declare,
	"public":         ir.Public,
	"protected":      ir.Protected,
	"private":        ir.Private,
	"static":         ir.Static,
	"abstract":       ir.Abstract,
	"async":          ir.Async,
	"readonly":       ir.Readonly,
}

// ParseModifiers converts modifier names to a bit set.
func ParseModifiers(names []string) (ir.Modifiers, error) {
	var m ir.Modifiers
	for _, n := range names {
		f, ok := modifierNames[n]
		if !ok {
			return ir.None, errors.Mark(errors.Newf("unknown modifier %q", n), ErrInvalidManifest)
		}
		m |= f
	}
	return m, nil
}

// Declaration builds the IR record for f.
func (f File) Declaration() (ir.Declaration, error) {
	var (
		d   ir.Declaration
		err error
	)
	switch {
	case f.Class != nil:
		d, err = f.Class.build()
	case f.Interface != nil:
		d, err = f.Interface.build()
	case f.Enum != nil:
		d, err = f.Enum.build()
	case f.Type != nil:
		d, err = f.Type.build()
	case f.Barrel != nil:
		d = f.Barrel.build()
	default:
		err = errors.Mark(errors.New("no declaration"), ErrInvalidManifest)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "file %s", f.Path)
	}
	return d, nil
}

// fileTop converts the shared fields. A nil modifier list keeps def.
func (t Top) fileTop(def ir.Modifiers) (ir.FileTop, ir.Modifiers, error) {
	top := ir.FileTop{Header: t.Header, Imports: t.Imports, Doc: t.Doc.tags()}
	if t.Modifiers == nil {
		return top, def, nil
	}
	mods, err := ParseModifiers(t.Modifiers)
	return top, mods, err
}

func (c *Class) build() (*ir.ClassDecl, error) {
	decl := ir.NewClass(c.Name)
	top, mods, err := c.fileTop(decl.Modifiers)
	if err != nil {
		return nil, err
	}
	decl.FileTop = top
	decl.Modifiers = mods
	decl.TypeParameters = c.TypeParameters
	decl.Extends = c.Extends
	decl.Implements = c.Implements

	for _, ctor := range c.Constructors {
		decl.Constructors = append(decl.Constructors, ctor.build())
	}
	for _, p := range c.Properties {
		prop, err := p.build()
		if err != nil {
			return nil, err
		}
		decl.Properties = append(decl.Properties, prop)
	}
	for _, m := range c.Methods {
		method, err := m.build()
		if err != nil {
			return nil, err
		}
		decl.Methods = append(decl.Methods, method)
	}
	return decl, nil
}

func (i *Interface) build() (*ir.InterfaceDecl, error) {
	var props []ir.Property
	for _, p := range i.Properties {
		prop, err := p.build()
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
	}
	var sigs []ir.MethodSignature
	for _, m := range i.Methods {
		sigs = append(sigs, m.build())
	}

	decl := ir.NewInterface(i.Name, props, sigs)
	top, mods, err := i.fileTop(decl.Modifiers)
	if err != nil {
		return nil, err
	}
	decl.FileTop = top
	decl.Modifiers = mods
	decl.TypeParameters = i.TypeParameters
	decl.Extends = i.Extends
	return decl, nil
}

func (e *Enum) build() (*ir.EnumDecl, error) {
	var decl *ir.EnumDecl
	if len(e.Names) > 0 {
		decl = ir.NewEnumFromNames(e.Name, e.Names...)
	} else {
		values := make([]ir.EnumValue, len(e.Values))
		for i, v := range e.Values {
			values[i] = v.build()
		}
		decl = ir.NewEnum(e.Name, values...)
	}

	top, mods, err := e.fileTop(decl.Modifiers)
	if err != nil {
		return nil, err
	}
	decl.FileTop = top
	decl.Modifiers = mods
	decl.IsConst = e.Const
	return decl, nil
}

func (v EnumValue) build() ir.EnumValue {
	ev := ir.EnumValue{Name: v.Name, Doc: v.Doc.tags()}
	switch {
	case v.String != nil:
		ev.Value = ir.StringLiteral(*v.String)
	case v.Value != nil:
		ev.Value = ir.Literal(*v.Value)
	}
	return ev
}

func (a *TypeAlias) build() (*ir.TypeAliasDecl, error) {
	var decl *ir.TypeAliasDecl
	if len(a.Union) > 0 {
		decl = ir.NewStringUnion(a.Name, a.Union...)
	} else {
		decl = ir.NewTypeAlias(a.Name, a.Definition)
	}

	top, mods, err := a.fileTop(decl.Modifiers)
	if err != nil {
		return nil, err
	}
	decl.FileTop = top
	decl.Modifiers = mods
	decl.TypeParameters = a.TypeParameters
	return decl, nil
}

func (b *Barrel) build() *ir.BarrelExportDecl {
	entries := make([]ir.BarrelEntry, len(b.Exports))
	for i, e := range b.Exports {
		switch {
		case e.TypeOnly:
			entries[i] = ir.ExportTypes(e.From, e.Symbols...)
		case len(e.Symbols) > 0:
			entries[i] = ir.ExportNamed(e.From, e.Symbols...)
		default:
			entries[i] = ir.ExportAll(e.From)
		}
	}
	decl := ir.NewBarrel(entries...)
	decl.Header = b.Header
	return decl
}

func (p Property) build() (ir.Property, error) {
	prop := ir.NewProperty(p.Name, p.Type)
	if p.Optional {
		prop = ir.OptionalProperty(p.Name, p.Type)
	}
	mods, err := ParseModifiers(p.Modifiers)
	if err != nil {
		return ir.Property{}, errors.Wrapf(err, "property %s", p.Name)
	}
	prop.Modifiers = mods
	prop.Default = p.Default
	prop.IsReadonly = p.Readonly
	prop.Doc = p.Doc.tags()
	return prop, nil
}

func (p Parameter) build() ir.Parameter {
	param := ir.NewParameter(p.Name, p.Type)
	if p.Optional {
		param = ir.OptionalParameter(p.Name, p.Type)
	}
	param.Default = p.Default
	param.IsRest = p.Rest
	return param
}

func buildParams(params []Parameter) []ir.Parameter {
	var out []ir.Parameter
	for _, p := range params {
		out = append(out, p.build())
	}
	return out
}

func (c Constructor) build() ir.Constructor {
	params := make([]ir.ConstructorParameter, len(c.Parameters))
	for i, p := range c.Parameters {
		access := modifierNames[p.Access]
		if access != ir.None || p.Readonly {
			params[i] = ir.PromotedParameter(p.Name, p.Type, access, p.Readonly)
		} else {
			params[i] = ir.NewConstructorParameter(p.Name, p.Type)
		}
		params[i].Parameter = p.Parameter.build()
	}
	ctor := ir.NewConstructor(c.Body, params...)
	ctor.Modifiers = modifierNames[c.Access]
	ctor.Doc = c.Doc.tags()
	return ctor
}

func (m Method) build() (ir.Method, error) {
	mods, err := ParseModifiers(m.Modifiers)
	if err != nil {
		return ir.Method{}, errors.Wrapf(err, "method %s", m.Name)
	}
	method := ir.NewMethod(m.Name, buildParams(m.Parameters), m.Returns, m.Body)
	method.TypeParameters = m.TypeParameters
	method.Modifiers = mods
	method.Doc = m.Doc.tags()
	return method, nil
}

func (m MethodSignature) build() ir.MethodSignature {
	sig := ir.NewMethodSignature(m.Name, buildParams(m.Parameters), m.Returns)
	sig.TypeParameters = m.TypeParameters
	sig.IsOptional = m.Optional
	sig.Doc = m.Doc.tags()
	return sig
}

func (d *Doc) tags() *ir.DocTags {
	if d == nil {
		return nil
	}
	tags := &ir.DocTags{
		Summary:    d.Summary,
		Returns:    d.Returns,
		Deprecated: d.Deprecated,
		Examples:   d.Examples,
	}
	for _, p := range d.Params {
		tags.Params = append(tags.Params, ir.ParamTag{Name: p.Name, Description: p.Description})
	}
	return tags
}
