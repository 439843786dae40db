package typescript

import (
	"strings"

	"github.com/broady/tsdecl/ir"
)

// DocGenerator renders documentation tags as a comment block.
// The returned text is indented to indentLevel and ends with a newline,
// or is empty when there is nothing to render.
type DocGenerator interface {
	GenerateTags(indentLevel int, tags *ir.DocTags) string
}

// JSDoc renders DocTags as JSDoc comments.
type JSDoc struct {
	// Indent is the text of one indentation level.
	Indent string
}

// GenerateTags implements DocGenerator.
func (j JSDoc) GenerateTags(indentLevel int, tags *ir.DocTags) string {
	if tags.IsZero() {
		return ""
	}

	prefix := strings.Repeat(j.Indent, indentLevel)
	summary := splitLines(tags.Summary)
	onlySummary := len(tags.Params) == 0 && tags.Returns == "" &&
		tags.Deprecated == nil && len(tags.Examples) == 0
	if onlySummary && len(summary) == 0 {
		return ""
	}

	// Single line
	if onlySummary && len(summary) == 1 {
		return prefix + "/** " + escapeComment(summary[0]) + " */\n"
	}

	var b strings.Builder
	line := func(text string) {
		b.WriteString(prefix)
		if text == "" {
			b.WriteString(" *\n")
			return
		}
		b.WriteString(" * ")
		b.WriteString(escapeComment(text))
		b.WriteString("\n")
	}

	b.WriteString(prefix)
	b.WriteString("/**\n")
	for _, l := range summary {
		line(l)
	}
	for _, p := range tags.Params {
		line(strings.TrimSpace("@param " + p.Name + " " + p.Description))
	}
	if tags.Returns != "" {
		line("@returns " + tags.Returns)
	}
	if tags.Deprecated != nil {
		line(strings.TrimSpace("@deprecated " + *tags.Deprecated))
	}
	for _, ex := range tags.Examples {
		line("@example")
		for _, l := range splitLines(ex) {
			line(l)
		}
	}
	b.WriteString(prefix)
	b.WriteString(" */\n")
	return b.String()
}

// splitLines splits text into lines without trailing whitespace.
// Empty text yields no lines.
func splitLines(text string) []string {
	text = strings.TrimRight(text, " \t\r\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return lines
}

// escapeComment keeps text from terminating the enclosing comment.
func escapeComment(text string) string {
	return strings.ReplaceAll(text, "*/", `*\/`)
}
