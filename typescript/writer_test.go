package typescript

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/broady/tsdecl/ir"
)

func testWriter() Writer {
	return NewWriter("  ", nil, 0)
}

func TestWriter_Property(t *testing.T) {
	tests := []struct {
		name  string
		prop  ir.Property
		level int
		want  string
	}{
		{
			name: "plain",
			prop: ir.NewProperty("id", "string"),
			want: "id: string;\n",
		},
		{
			name: "optional",
			prop: ir.OptionalProperty("nick", "string"),
			want: "nick?: string;\n",
		},
		{
			name: "optional with default drops marker",
			prop: ir.Property{Name: "count", Type: "number", IsOptional: true, Default: ir.Literal("0")},
			want: "count: number = 0;\n",
		},
		{
			name:  "readonly with modifiers",
			prop:  ir.Property{Name: "VERSION", Type: "string", IsReadonly: true, Modifiers: ir.Public | ir.Static, Default: ir.StringLiteral("1")},
			level: 1,
			want:  "  public static readonly VERSION: string = '1';\n",
		},
		{
			name:  "documented",
			prop:  ir.Property{Name: "id", Type: "string", Doc: ir.Summary("Primary key.")},
			level: 1,
			want:  "  /** Primary key. */\n  id: string;\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, testWriter().Property(&buf, tt.prop, tt.level))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriter_PropertyInvalid(t *testing.T) {
	var buf bytes.Buffer
	err := testWriter().Property(&buf, ir.Property{Name: "x"}, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ir.ErrInvalidArgument))
	assert.Empty(t, buf.String())
}

func TestWriter_Parameters(t *testing.T) {
	tests := []struct {
		name   string
		params []ir.Parameter
		want   string
	}{
		{"empty", nil, ""},
		{"single", []ir.Parameter{ir.NewParameter("id", "string")}, "id: string"},
		{
			"optional and default",
			[]ir.Parameter{
				ir.OptionalParameter("limit", "number"),
				{Name: "page", Type: "number", IsOptional: true, Default: ir.Literal("1")},
			},
			"limit?: number, page: number = 1",
		},
		{
			"rest",
			[]ir.Parameter{ir.NewParameter("head", "string"), {Name: "tail", Type: "string[]", IsRest: true, IsOptional: true}},
			"head: string, ...tail: string[]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, testWriter().Parameters(tt.params))
		})
	}
}

func TestWriter_Method(t *testing.T) {
	tests := []struct {
		name   string
		method ir.Method
		want   string
	}{
		{
			name:   "empty body",
			method: ir.NewMethod("reset", nil, "void", ""),
			want:   "  reset(): void {}\n",
		},
		{
			name:   "no return type",
			method: ir.NewMethod("run", nil, "", ""),
			want:   "  run() {}\n",
		},
		{
			name: "body indented one level deeper",
			method: ir.Method{
				Name:           "map",
				TypeParameters: "T, U",
				Parameters:     []ir.Parameter{ir.NewParameter("fn", "(t: T) => U")},
				ReturnType:     "U[]",
				Modifiers:      ir.Protected,
				Body:           "const out: U[] = [];\n\nreturn out;\n",
			},
			want: "  protected map<T, U>(fn: (t: T) => U): U[] {\n" +
				"    const out: U[] = [];\n" +
				"\n" +
				"    return out;\n" +
				"  }\n",
		},
		{
			name:   "async",
			method: ir.NewAsyncMethod("load", nil, "Promise<void>", "await this.fetch();"),
			want:   "  async load(): Promise<void> {\n    await this.fetch();\n  }\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, testWriter().Method(&buf, tt.method, 1))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriter_MethodSignature(t *testing.T) {
	var buf bytes.Buffer
	sig := ir.MethodSignature{
		Name:           "get",
		TypeParameters: "K extends keyof T",
		Parameters:     []ir.Parameter{ir.NewParameter("key", "K")},
		ReturnType:     "T[K]",
		IsOptional:     true,
	}
	require.NoError(t, testWriter().MethodSignature(&buf, sig, 1))
	assert.Equal(t, "  get?<K extends keyof T>(key: K): T[K];\n", buf.String())
}

func TestWriter_Constructor(t *testing.T) {
	x := ir.NewConstructorParameter("x", "number")
	y := ir.NewConstructorParameter("y", "number")
	z := ir.NewConstructorParameter("z", "number")

	tests := []struct {
		name  string
		ctor  ir.Constructor
		limit int
		want  string
	}{
		{
			name: "no parameters",
			ctor: ir.NewConstructor(""),
			want: "  constructor() {}\n",
		},
		{
			name: "two plain parameters stay inline",
			ctor: ir.NewConstructor("this.x = x;", x, y),
			want: "  constructor(x: number, y: number) {\n    this.x = x;\n  }\n",
		},
		{
			name: "three plain parameters go multi-line",
			ctor: ir.NewConstructor("", x, y, z),
			want: "  constructor(\n    x: number,\n    y: number,\n    z: number\n  ) {}\n",
		},
		{
			name: "single promoted parameter goes multi-line",
			ctor: ir.NewConstructor("", ir.PromotedParameter("id", "string", ir.Private, false)),
			want: "  constructor(\n    private id: string\n  ) {}\n",
		},
		{
			name: "promoted with access and readonly",
			ctor: ir.Constructor{
				Modifiers:  ir.Protected,
				Parameters: []ir.ConstructorParameter{ir.PromotedParameter("id", "string", ir.Public, true), y},
			},
			want: "  protected constructor(\n    public readonly id: string,\n    y: number\n  ) {}\n",
		},
		{
			name:  "raised limit keeps three inline",
			ctor:  ir.NewConstructor("", x, y, z),
			limit: 3,
			want:  "  constructor(x: number, y: number, z: number) {}\n",
		},
		{
			name:  "lowered limit splits two",
			ctor:  ir.NewConstructor("", x, y),
			limit: 1,
			want:  "  constructor(\n    x: number,\n    y: number\n  ) {}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter("  ", nil, tt.limit)
			require.NoError(t, w.Constructor(&buf, tt.ctor, 1))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriter_TopOfType(t *testing.T) {
	tests := []struct {
		name string
		top  ir.FileTop
		want string
	}{
		{name: "empty", top: ir.FileTop{}, want: ""},
		{name: "header newline added", top: ir.FileTop{Header: "// generated"}, want: "// generated\n"},
		{name: "header kept verbatim", top: ir.FileTop{Header: "/* a */\n/* b */\n"}, want: "/* a */\n/* b */\n"},
		{
			name: "imports then blank line then doc",
			top: ir.FileTop{
				Header:  "// generated",
				Imports: []string{"import { A } from './a';", "import { B } from './b';"},
				Doc:     ir.Summary("Thing."),
			},
			want: "// generated\nimport { A } from './a';\nimport { B } from './b';\n\n/** Thing. */\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			testWriter().TopOfType(&buf, tt.top)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

type lineDocs struct{}

func (lineDocs) GenerateTags(level int, tags *ir.DocTags) string {
	if tags.IsZero() {
		return ""
	}
	return "// " + tags.Summary + "\n"
}

func TestWriter_InjectedDocs(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter("\t", lineDocs{}, 0)
	require.NoError(t, w.Property(&buf, ir.Property{Name: "a", Type: "A", Doc: ir.Summary("note")}, 0))
	assert.Equal(t, "// note\na: A;\n", buf.String())
}
