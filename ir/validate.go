package ir

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidArgument indicates a required record or field is missing.
// Generation fails with an error wrapping it and produces no output.
var ErrInvalidArgument = errors.New("invalid argument")

func missing(what string) error {
	return errors.Wrapf(ErrInvalidArgument, "%s is required", what)
}

// Check verifies the property's required fields.
func (p Property) Check() error {
	if p.Name == "" {
		return missing("property name")
	}
	if p.Type == "" {
		return errors.Wrapf(missing("type annotation"), "property %s", p.Name)
	}
	return nil
}

// Check verifies the parameter's required fields.
func (p Parameter) Check() error {
	if p.Name == "" {
		return missing("parameter name")
	}
	if p.Type == "" {
		return errors.Wrapf(missing("type annotation"), "parameter %s", p.Name)
	}
	return nil
}

// Check verifies the method and its parameters.
func (m Method) Check() error {
	if m.Name == "" {
		return missing("method name")
	}
	if err := checkParams(m.Parameters); err != nil {
		return errors.Wrapf(err, "method %s", m.Name)
	}
	return nil
}

// Check verifies the signature and its parameters.
func (m MethodSignature) Check() error {
	if m.Name == "" {
		return missing("method name")
	}
	if err := checkParams(m.Parameters); err != nil {
		return errors.Wrapf(err, "method %s", m.Name)
	}
	return nil
}

// Check verifies every constructor parameter.
func (c Constructor) Check() error {
	for _, p := range c.Parameters {
		if err := p.Check(); err != nil {
			return errors.Wrap(err, "constructor")
		}
	}
	return nil
}

// Check verifies the enum value's name.
func (v EnumValue) Check() error {
	if v.Name == "" {
		return missing("enum value name")
	}
	return nil
}

// Check verifies the entry's module path.
func (e BarrelEntry) Check() error {
	if e.Path == "" {
		return missing("module path")
	}
	return nil
}

func checkParams(params []Parameter) error {
	for _, p := range params {
		if err := p.Check(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a declaration and all of its members for missing required
// records or fields. It returns the first problem found, wrapping
// ErrInvalidArgument. Empty declaration names are accepted.
func Validate(d Declaration) error {
	if isNil(d) {
		return missing("declaration")
	}

	switch t := d.(type) {
	case *ClassDecl:
		for _, c := range t.Constructors {
			if err := c.Check(); err != nil {
				return errors.Wrapf(err, "class %s", t.Name)
			}
		}
		for _, p := range t.Properties {
			if err := p.Check(); err != nil {
				return errors.Wrapf(err, "class %s", t.Name)
			}
		}
		for _, m := range t.Methods {
			if err := m.Check(); err != nil {
				return errors.Wrapf(err, "class %s", t.Name)
			}
		}
	case *InterfaceDecl:
		for _, p := range t.Properties {
			if err := p.Check(); err != nil {
				return errors.Wrapf(err, "interface %s", t.Name)
			}
		}
		for _, m := range t.Methods {
			if err := m.Check(); err != nil {
				return errors.Wrapf(err, "interface %s", t.Name)
			}
		}
	case *EnumDecl:
		for _, v := range t.Values {
			if err := v.Check(); err != nil {
				return errors.Wrapf(err, "enum %s", t.Name)
			}
		}
	case *TypeAliasDecl:
		if t.Definition == "" {
			return errors.Wrapf(missing("definition"), "type %s", t.Name)
		}
	case *BarrelExportDecl:
		for i, e := range t.Entries {
			if err := e.Check(); err != nil {
				return errors.Wrapf(err, "barrel entry %d", i)
			}
		}
	default:
		return errors.Wrapf(ErrInvalidArgument, "unsupported declaration kind: %s", d.Kind())
	}
	return nil
}

// isNil reports whether d is nil or a typed nil pointer.
func isNil(d Declaration) bool {
	switch t := d.(type) {
	case nil:
		return true
	case *ClassDecl:
		return t == nil
	case *InterfaceDecl:
		return t == nil
	case *EnumDecl:
		return t == nil
	case *TypeAliasDecl:
		return t == nil
	case *BarrelExportDecl:
		return t == nil
	}
	return false
}
