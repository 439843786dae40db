package tsdecl

import (
	"context"

	"go.uber.org/zap"

	"github.com/broady/tsdecl/ir"
	"github.com/broady/tsdecl/manifest"
	"github.com/broady/tsdecl/sink"
)

// Generator provides a fluent API for code generation.
// Create with FromDeclarations() or FromManifest() and configure with method chaining.
//
// Example:
//
//	tsdecl.FromDeclarations(files...).
//	    Indent("space", 4).
//	    LineEnding("crlf").
//	    ToDir(ctx, "./client/src/models")
type Generator struct {
	files []File
	cfg   Config
}

// FromDeclarations creates a Generator for the given files.
func FromDeclarations(files ...File) *Generator {
	return &Generator{files: files}
}

// FromManifest creates a Generator for every file in m, configured from m's options.
func FromManifest(m *manifest.Manifest) (*Generator, error) {
	g := &Generator{}
	for _, f := range m.Files {
		d, err := f.Declaration()
		if err != nil {
			return nil, err
		}
		g.Add(f.Path, d)
	}
	g.cfg.Format = m.Options.GeneratorConfig()
	g.cfg.LineEnding = m.Options.LineEnding
	g.cfg.Concurrency = m.Options.Concurrency
	return g, nil
}

// Add appends a declaration to generate at path.
func (g *Generator) Add(path string, d ir.Declaration) *Generator {
	g.files = append(g.files, File{Path: path, Decl: d})
	return g
}

// Indent sets the indentation style ("space" or "tab") and width.
func (g *Generator) Indent(style string, size int) *Generator {
	g.cfg.Format.IndentStyle = style
	g.cfg.Format.IndentSize = size
	return g
}

// ConstructorInlineLimit sets how many plain constructor parameters stay on one line.
func (g *Generator) ConstructorInlineLimit(n int) *Generator {
	g.cfg.Format.ConstructorInlineLimit = n
	return g
}

// LineEnding sets the output line ending: "lf" (default) or "crlf".
func (g *Generator) LineEnding(le string) *Generator {
	g.cfg.LineEnding = le
	return g
}

// Concurrency limits how many files render at once.
func (g *Generator) Concurrency(n int) *Generator {
	g.cfg.Concurrency = n
	return g
}

// Logger sets the logger for progress records.
func (g *Generator) Logger(l *zap.Logger) *Generator {
	g.cfg.Logger = l
	return g
}

// Files returns the files queued for generation.
func (g *Generator) Files() []File {
	return g.files
}

// ToDir generates files to the specified directory.
// This is a terminal operation that writes files to disk.
func (g *Generator) ToDir(ctx context.Context, dir string) (*GenerateResult, error) {
	return g.ToSink(ctx, sink.NewFilesystemSink(dir))
}

// ToSink generates files into s.
func (g *Generator) ToSink(ctx context.Context, s sink.OutputSink) (*GenerateResult, error) {
	return Generate(ctx, g.files, s, &g.cfg)
}

// Generate returns generated files in memory without writing to disk.
// Use ToDir() to write files to disk instead.
func (g *Generator) Generate(ctx context.Context) (map[string][]byte, *GenerateResult, error) {
	mem := sink.NewMemorySink()
	res, err := g.ToSink(ctx, mem)
	if err != nil {
		return nil, nil, err
	}
	return mem.Files(), res, nil
}
