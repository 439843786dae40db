package ir

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifiers(t *testing.T) {
	m := Export | Abstract
	assert.True(t, m.Has(Export))
	assert.True(t, m.Has(Export|Abstract))
	assert.False(t, m.Has(Export|Async))
	assert.False(t, m.Has(None))
	assert.Equal(t, Export, m.Without(Abstract))
	assert.Equal(t, Export|Abstract|Async, m.With(Async))
	assert.Equal(t, Private, (Private | Static | Readonly).Access())
}

func TestDeclarationKind_String(t *testing.T) {
	tests := []struct {
		kind DeclarationKind
		want string
	}{
		{KindClass, "Class"},
		{KindInterface, "Interface"},
		{KindEnum, "Enum"},
		{KindTypeAlias, "TypeAlias"},
		{KindBarrelExport, "BarrelExport"},
		{DeclarationKind(99), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestDocTags_IsZero(t *testing.T) {
	msg := ""
	tests := []struct {
		name string
		doc  *DocTags
		want bool
	}{
		{"nil", nil, true},
		{"empty", &DocTags{}, true},
		{"summary", &DocTags{Summary: "s"}, false},
		{"params", &DocTags{Params: []ParamTag{{Name: "x"}}}, false},
		{"returns", &DocTags{Returns: "r"}, false},
		{"deprecated", &DocTags{Deprecated: &msg}, false},
		{"examples", &DocTags{Examples: []string{"f()"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doc.IsZero())
		})
	}

	assert.Nil(t, Summary(""))
	assert.Equal(t, "hi", Summary("hi").Summary)
}

func TestValidate(t *testing.T) {
	var nilClass *ClassDecl

	tests := []struct {
		name    string
		decl    Declaration
		wantErr string
	}{
		{name: "nil declaration", decl: nil, wantErr: "declaration is required"},
		{name: "typed nil", decl: nilClass, wantErr: "declaration is required"},
		{name: "empty class name is allowed", decl: &ClassDecl{}},
		{
			name:    "property without type",
			decl:    &ClassDecl{Name: "A", Properties: []Property{{Name: "x"}}},
			wantErr: "class A: property x: type annotation is required",
		},
		{
			name:    "property without name",
			decl:    &InterfaceDecl{Name: "I", Properties: []Property{{Type: "string"}}},
			wantErr: "property name is required",
		},
		{
			name: "method parameter without type",
			decl: &ClassDecl{Name: "A", Methods: []Method{
				{Name: "m", Parameters: []Parameter{{Name: "p"}}},
			}},
			wantErr: "class A: method m: parameter p: type annotation is required",
		},
		{
			name: "constructor parameter without name",
			decl: &ClassDecl{Name: "A", Constructors: []Constructor{
				{Parameters: []ConstructorParameter{{Parameter: Parameter{Type: "number"}}}},
			}},
			wantErr: "constructor: parameter name is required",
		},
		{
			name:    "signature without name",
			decl:    &InterfaceDecl{Name: "I", Methods: []MethodSignature{{}}},
			wantErr: "method name is required",
		},
		{
			name:    "enum value without name",
			decl:    &EnumDecl{Name: "E", Values: []EnumValue{{Name: "A"}, {}}},
			wantErr: "enum E: enum value name is required",
		},
		{
			name:    "alias without definition",
			decl:    &TypeAliasDecl{Name: "T"},
			wantErr: "type T: definition is required",
		},
		{
			name:    "barrel entry without path",
			decl:    NewBarrel(ExportAll("./a"), BarrelEntry{}),
			wantErr: "barrel entry 1: module path is required",
		},
		{name: "valid alias", decl: NewTypeAlias("ID", "string")},
		{name: "valid enum", decl: NewEnumFromNames("E", "A")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.decl)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "error should wrap ErrInvalidArgument: %v", err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
