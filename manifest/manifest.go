// Package manifest loads declaration manifests: YAML documents listing the
// files to generate and the declaration each one holds.
//
// A manifest looks like:
//
//	options:
//	  indentSize: 2
//	  lineEnding: lf
//	files:
//	  - path: models/status.ts
//	    type:
//	      name: Status
//	      union: [Active, Inactive]
//	  - path: models/index.ts
//	    barrel:
//	      exports:
//	        - from: ./status
package manifest

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidManifest indicates a manifest that failed to decode or validate.
var ErrInvalidManifest = errors.New("invalid manifest")

// Manifest is the root document.
type Manifest struct {
	Options Options `yaml:"options"`
	Files   []File  `yaml:"files" validate:"required,min=1,dive"`
}

// Options controls formatting and output encoding.
type Options struct {
	IndentStyle            string `yaml:"indentStyle" schema:"indentStyle" validate:"omitempty,oneof=space tab"`
	IndentSize             int    `yaml:"indentSize" schema:"indentSize" validate:"gte=0,lte=8"`
	LineEnding             string `yaml:"lineEnding" schema:"lineEnding" validate:"omitempty,oneof=lf crlf"`
	ConstructorInlineLimit int    `yaml:"constructorInlineLimit" schema:"constructorInlineLimit" validate:"gte=0"`
	Concurrency            int    `yaml:"concurrency" schema:"concurrency" validate:"gte=0"`
}

// File is one output file holding exactly one declaration.
type File struct {
	Path string `yaml:"path" validate:"required"`

	Class     *Class     `yaml:"class"`
	Interface *Interface `yaml:"interface"`
	Enum      *Enum      `yaml:"enum"`
	Type      *TypeAlias `yaml:"type"`
	Barrel    *Barrel    `yaml:"barrel"`
}

// Top holds the file-top fields shared by named declarations.
type Top struct {
	Header    string   `yaml:"header"`
	Imports   []string `yaml:"imports"`
	Doc       *Doc     `yaml:"doc"`
	Modifiers []string `yaml:"modifiers" validate:"omitempty,dive,modifier"`
}

// Doc is a documentation block.
type Doc struct {
	Summary    string     `yaml:"summary"`
	Params     []ParamDoc `yaml:"params" validate:"dive"`
	Returns    string     `yaml:"returns"`
	Deprecated *string    `yaml:"deprecated"`
	Examples   []string   `yaml:"examples"`
}

// ParamDoc documents one parameter.
type ParamDoc struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
}

// Class describes a class.
type Class struct {
	Top            `yaml:",inline"`
	Name           string        `yaml:"name" validate:"required"`
	TypeParameters string        `yaml:"typeParameters"`
	Extends        string        `yaml:"extends"`
	Implements     []string      `yaml:"implements"`
	Constructors   []Constructor `yaml:"constructors" validate:"dive"`
	Properties     []Property    `yaml:"properties" validate:"dive"`
	Methods        []Method      `yaml:"methods" validate:"dive"`
}

// Interface describes an interface.
type Interface struct {
	Top            `yaml:",inline"`
	Name           string            `yaml:"name" validate:"required"`
	TypeParameters string            `yaml:"typeParameters"`
	Extends        []string          `yaml:"extends"`
	Properties     []Property        `yaml:"properties" validate:"dive"`
	Methods        []MethodSignature `yaml:"methods" validate:"dive"`
}

// Enum describes an enum. Names is a shorthand for values without initializers.
type Enum struct {
	Top    `yaml:",inline"`
	Name   string      `yaml:"name" validate:"required"`
	Const  bool        `yaml:"const"`
	Values []EnumValue `yaml:"values" validate:"required_without=Names,excluded_with=Names,dive"`
	Names  []string    `yaml:"names" validate:"dive,required"`
}

// EnumValue is one enum member. Value is literal source text; String is
// quoted as a string literal.
type EnumValue struct {
	Name   string  `yaml:"name" validate:"required"`
	Value  *string `yaml:"value" validate:"excluded_with=String"`
	String *string `yaml:"string"`
	Doc    *Doc    `yaml:"doc"`
}

// TypeAlias describes a type alias. Union builds a string-literal union.
type TypeAlias struct {
	Top            `yaml:",inline"`
	Name           string   `yaml:"name" validate:"required"`
	TypeParameters string   `yaml:"typeParameters"`
	Definition     string   `yaml:"definition" validate:"required_without=Union,excluded_with=Union"`
	Union          []string `yaml:"union"`
}

// Barrel describes a re-export module.
type Barrel struct {
	Header  string        `yaml:"header"`
	Exports []BarrelEntry `yaml:"exports" validate:"required,min=1,dive"`
}

// BarrelEntry re-exports from one module.
type BarrelEntry struct {
	From     string   `yaml:"from" validate:"required"`
	Symbols  []string `yaml:"symbols"`
	TypeOnly bool     `yaml:"typeOnly"`
}

// Property describes a class or interface property.
type Property struct {
	Name      string   `yaml:"name" validate:"required"`
	Type      string   `yaml:"type" validate:"required"`
	Default   *string  `yaml:"default"`
	Optional  bool     `yaml:"optional"`
	Readonly  bool     `yaml:"readonly"`
	Modifiers []string `yaml:"modifiers" validate:"omitempty,dive,modifier"`
	Doc       *Doc     `yaml:"doc"`
}

// Parameter describes a method parameter.
type Parameter struct {
	Name     string  `yaml:"name" validate:"required"`
	Type     string  `yaml:"type" validate:"required"`
	Default  *string `yaml:"default"`
	Optional bool    `yaml:"optional"`
	Rest     bool    `yaml:"rest"`
}

// ConstructorParameter describes a constructor parameter.
type ConstructorParameter struct {
	Parameter `yaml:",inline"`
	Access    string `yaml:"access" validate:"omitempty,oneof=public protected private"`
	Readonly  bool   `yaml:"readonly"`
}

// Constructor describes a class constructor.
type Constructor struct {
	Parameters []ConstructorParameter `yaml:"parameters" validate:"dive"`
	Body       string                 `yaml:"body"`
	Access     string                 `yaml:"access" validate:"omitempty,oneof=public protected private"`
	Doc        *Doc                   `yaml:"doc"`
}

// Method describes a class method.
type Method struct {
	Name           string      `yaml:"name" validate:"required"`
	TypeParameters string      `yaml:"typeParameters"`
	Parameters     []Parameter `yaml:"parameters" validate:"dive"`
	Returns        string      `yaml:"returns"`
	Body           string      `yaml:"body"`
	Modifiers      []string    `yaml:"modifiers" validate:"omitempty,dive,modifier"`
	Doc            *Doc        `yaml:"doc"`
}

// MethodSignature describes an interface method.
type MethodSignature struct {
	Name           string      `yaml:"name" validate:"required"`
	TypeParameters string      `yaml:"typeParameters"`
	Parameters     []Parameter `yaml:"parameters" validate:"dive"`
	Returns        string      `yaml:"returns"`
	Optional       bool        `yaml:"optional"`
	Doc            *Doc        `yaml:"doc"`
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read manifest %s", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "manifest %s", path)
	}
	return m, nil
}

// Parse decodes and validates a manifest. Unknown keys are rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode"), ErrInvalidManifest)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}
