package typescript

import (
	"strings"

	"github.com/broady/tsdecl/ir"
)

// DeclarationGenerator transforms IR declarations into target language source code.
type DeclarationGenerator interface {
	// Name returns the generator's identifier (e.g., "typescript").
	Name() string

	// FileExtension returns the output file suffix (e.g., ".ts").
	FileExtension() string

	// Generate produces the complete source text for one declaration.
	Generate(d ir.Declaration) (string, error)
}

// Config controls formatting.
type Config struct {
	// IndentStyle is "space" (default) or "tab".
	IndentStyle string

	// IndentSize is the number of spaces per level when IndentStyle is "space".
	// Default: 2.
	IndentSize int

	// ConstructorInlineLimit is the largest number of plain constructor
	// parameters rendered on the signature line. Default: 2.
	ConstructorInlineLimit int

	// Docs renders documentation tags. Default: JSDoc.
	Docs DocGenerator
}

// indentString returns the text of one indentation level.
func (c Config) indentString() string {
	if c.IndentStyle == "tab" {
		return "\t"
	}
	size := c.IndentSize
	if size <= 0 {
		size = 2
	}
	return strings.Repeat(" ", size)
}
