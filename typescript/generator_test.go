package typescript

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/tsdecl/ir"
)

func generate(t *testing.T, d ir.Declaration) string {
	t.Helper()
	out, err := New(Config{}).Generate(d)
	require.NoError(t, err)
	return out
}

func TestGenerator_Metadata(t *testing.T) {
	g := New(Config{})
	assert.Equal(t, "typescript", g.Name())
	assert.Equal(t, ".ts", g.FileExtension())
}

func TestGenerate_ColorEnum(t *testing.T) {
	e := &ir.EnumDecl{
		Name: "Color",
		Values: []ir.EnumValue{
			{Name: "Red"},
			ir.NewEnumValue("Green", "2"),
			{Name: "Blue"},
		},
	}
	want := "enum Color {\n" +
		"  Red,\n" +
		"  Green = 2,\n" +
		"  Blue\n" +
		"}\n"
	assert.Equal(t, want, generate(t, e))
}

func TestGenerate_EnumSeparators(t *testing.T) {
	for n := 0; n <= 5; n++ {
		t.Run(fmt.Sprintf("%d values", n), func(t *testing.T) {
			names := make([]string, n)
			for i := range names {
				names[i] = fmt.Sprintf("V%d", i)
			}
			out := generate(t, ir.NewEnumFromNames("E", names...))

			commas := max(n-1, 0)
			assert.Equal(t, commas, strings.Count(out, ","))
			if n > 0 {
				assert.Contains(t, out, fmt.Sprintf("  V%d\n}", n-1))
			}
		})
	}
}

func TestGenerate_ConstEnum(t *testing.T) {
	e := ir.NewEnum("Dir", ir.NewEnumValue("Up", "'UP'"))
	e.IsConst = true
	assert.Equal(t, "export const enum Dir {\n  Up = 'UP'\n}\n", generate(t, e))
}

func TestGenerate_PointReadonlyConstructor(t *testing.T) {
	c := &ir.ClassDecl{
		Name: "Point",
		Constructors: []ir.Constructor{
			ir.NewConstructor("",
				ir.PromotedParameter("x", "number", ir.None, true),
				ir.PromotedParameter("y", "number", ir.None, true),
			),
		},
	}
	want := "class Point {\n" +
		"  constructor(\n" +
		"    readonly x: number,\n" +
		"    readonly y: number\n" +
		"  ) {}\n" +
		"}\n"
	assert.Equal(t, want, generate(t, c))
}

func TestGenerate_StatusUnion(t *testing.T) {
	out := generate(t, ir.NewStringUnion("Status", "Active", "Inactive"))
	assert.Equal(t, "export type Status = 'Active' | 'Inactive';\n", out)

	plain := ir.NewStringUnion("Status", "Active", "Inactive")
	plain.Modifiers = ir.None
	assert.Equal(t, "type Status = 'Active' | 'Inactive';\n", generate(t, plain))
}

func TestGenerate_TypeAliasGeneric(t *testing.T) {
	a := &ir.TypeAliasDecl{
		Name:           "Page",
		TypeParameters: "T",
		Definition:     "{ items: T[]; next?: string }",
		Modifiers:      ir.Export | ir.Declare,
	}
	assert.Equal(t, "export declare type Page<T> = { items: T[]; next?: string };\n", generate(t, a))
}

func TestGenerate_ClassMemberOrder(t *testing.T) {
	c := ir.NewClass("Service")
	// Members are supplied out of group order; the class still renders
	// constructors, then properties, then methods.
	c.Methods = []ir.Method{
		ir.NewMethod("m1", nil, "void", ""),
		ir.NewMethod("m2", nil, "void", ""),
	}
	c.Properties = []ir.Property{ir.NewProperty("p1", "string"), ir.NewProperty("p2", "string")}
	c.Constructors = []ir.Constructor{ir.NewConstructor("")}

	want := "export class Service {\n" +
		"  constructor() {}\n" +
		"\n" +
		"  p1: string;\n" +
		"\n" +
		"  p2: string;\n" +
		"\n" +
		"  m1(): void {}\n" +
		"\n" +
		"  m2(): void {}\n" +
		"}\n"
	assert.Equal(t, want, generate(t, c))
}

func TestGenerate_EmptyBodies(t *testing.T) {
	assert.Equal(t, "export class Empty {\n}\n", generate(t, ir.NewClass("Empty")))
	assert.Equal(t, "export interface Empty {\n}\n", generate(t, ir.NewInterface("Empty", nil, nil)))
	assert.Equal(t, "export enum Empty {\n}\n", generate(t, ir.NewEnum("Empty")))
	assert.Equal(t, "", generate(t, ir.NewBarrel()))
}

func TestGenerate_ClassHeading(t *testing.T) {
	tests := []struct {
		name string
		decl *ir.ClassDecl
		want string
	}{
		{
			name: "abstract generic",
			decl: &ir.ClassDecl{Name: "Repo", TypeParameters: "T", Modifiers: ir.Export | ir.Abstract},
			want: "export abstract class Repo<T> {\n",
		},
		{
			name: "export default wins over export",
			decl: &ir.ClassDecl{Name: "App", Modifiers: ir.Export | ir.ExportDefault},
			want: "export default class App {\n",
		},
		{
			name: "extends and implements",
			decl: &ir.ClassDecl{Name: "Dog", Extends: "Animal", Implements: []string{"Pet", "Walker"}},
			want: "class Dog extends Animal implements Pet, Walker {\n",
		},
		{
			name: "empty name accepted",
			decl: &ir.ClassDecl{},
			want: "class  {\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, strings.HasPrefix(generate(t, tt.decl), tt.want))
		})
	}
}

func TestGenerate_InterfaceNeverRendersBodies(t *testing.T) {
	i := ir.NewInterface("Store",
		[]ir.Property{ir.NewProperty("size", "number")},
		[]ir.MethodSignature{ir.NewMethodSignature("clear", nil, "void")},
	)
	i.Extends = []string{"A", "B"}
	want := "export interface Store extends A, B {\n" +
		"  size: number;\n" +
		"\n" +
		"  clear(): void;\n" +
		"}\n"
	out := generate(t, i)
	assert.Equal(t, want, out)
	assert.NotContains(t, out, "{}")
}

func TestGenerate_OptionalDefaultExclusion(t *testing.T) {
	c := ir.NewClass("Opts")
	c.Properties = []ir.Property{
		{Name: "retries", Type: "number", IsOptional: true, Default: ir.NumberLiteral(3)},
	}
	c.Methods = []ir.Method{{
		Name:       "run",
		Parameters: []ir.Parameter{{Name: "timeout", Type: "number", IsOptional: true, Default: ir.Literal("30")}},
	}}
	out := generate(t, c)
	assert.Contains(t, out, "retries: number = 3;")
	assert.Contains(t, out, "run(timeout: number = 30) {}")
	assert.NotContains(t, out, "?")
}

func TestGenerate_FactoryRoundTrip(t *testing.T) {
	c := ir.NewAbstractClass("Base")
	c.TypeParameters = "T extends object"
	c.Extends = "Root"
	c.Implements = []string{"Disposable"}
	c.Properties = []ir.Property{ir.OptionalProperty("label", "string")}
	c.Methods = []ir.Method{ir.NewAsyncMethod("dispose", nil, "Promise<void>", "await this.close();")}
	c.Constructors = []ir.Constructor{ir.NewConstructor("super();", ir.NewConstructorParameter("id", "string"))}

	out := generate(t, c)
	for _, want := range []string{
		"export abstract class Base<T extends object>",
		"extends Root",
		"implements Disposable",
		"constructor(id: string) {",
		"    super();",
		"label?: string;",
		"async dispose(): Promise<void> {",
		"    await this.close();",
	} {
		assert.Contains(t, out, want)
	}
}

func TestGenerate_SingleTrailingNewline(t *testing.T) {
	decls := []ir.Declaration{
		ir.NewClass("A"),
		ir.NewInterface("B", nil, nil),
		ir.NewEnumFromNames("C", "X"),
		ir.NewTypeAlias("D", "string"),
		ir.NewBarrel(ir.ExportAll("./a")),
	}
	for _, d := range decls {
		t.Run(d.Kind().String(), func(t *testing.T) {
			out := generate(t, d)
			assert.True(t, strings.HasSuffix(out, "\n"))
			assert.False(t, strings.HasSuffix(out, "\n\n"))
		})
	}
}

func TestGenerate_IndentConfig(t *testing.T) {
	e := ir.NewEnumFromNames("E", "A")

	tabs, err := New(Config{IndentStyle: "tab"}).Generate(e)
	require.NoError(t, err)
	assert.Equal(t, "export enum E {\n\tA\n}\n", tabs)

	four, err := New(Config{IndentSize: 4}).Generate(e)
	require.NoError(t, err)
	assert.Equal(t, "export enum E {\n    A\n}\n", four)
}

func TestGenerate_InvalidArgument(t *testing.T) {
	var nilEnum *ir.EnumDecl

	tests := []struct {
		name string
		decl ir.Declaration
	}{
		{"nil", nil},
		{"typed nil", nilEnum},
		{"property missing type", &ir.InterfaceDecl{Name: "I", Properties: []ir.Property{{Name: "x"}}}},
		{"parameter missing name", &ir.ClassDecl{Name: "C", Methods: []ir.Method{{Name: "m", Parameters: []ir.Parameter{{Type: "T"}}}}}},
		{"alias missing definition", ir.NewTypeAlias("T", "")},
		{"barrel entry missing path", ir.NewBarrel(ir.ExportNamed("", "A"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := New(Config{}).Generate(tt.decl)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ir.ErrInvalidArgument))
			assert.Empty(t, out)
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	g := New(Config{})
	d := goldenCases()[0].decl
	first, err := g.Generate(d)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := g.Generate(d)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestGenerate_Concurrent(t *testing.T) {
	g := New(Config{})
	cases := goldenCases()

	want := make([]string, len(cases))
	for i, c := range cases {
		out, err := g.Generate(c.decl)
		require.NoError(t, err)
		want[i] = out
	}

	var wg sync.WaitGroup
	got := make([][]string, 8)
	for w := range got {
		w := w
		got[w] = make([]string, len(cases))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, c := range cases {
				out, _ := g.Generate(c.decl)
				got[w][i] = out
			}
		}()
	}
	wg.Wait()

	for _, outs := range got {
		assert.Equal(t, want, outs)
	}
}
