package ir

// DocTags holds structured documentation for a declaration or member.
// A nil *DocTags means the element is undocumented.
type DocTags struct {
	// Summary is the free text of the comment. May span multiple lines.
	Summary string

	// Params documents parameters in declaration order.
	Params []ParamTag

	// Returns describes the return value.
	Returns string

	// Deprecated is non-nil if the element is deprecated.
	// The string value is the deprecation message (may be empty).
	Deprecated *string

	// Examples are code samples, each rendered under its own @example tag.
	Examples []string
}

// ParamTag documents a single parameter.
type ParamTag struct {
	Name        string
	Description string
}

// IsZero returns true if the documentation carries no content.
func (d *DocTags) IsZero() bool {
	if d == nil {
		return true
	}
	return d.Summary == "" && len(d.Params) == 0 && d.Returns == "" &&
		d.Deprecated == nil && len(d.Examples) == 0
}

// Summary returns DocTags holding only a summary line, or nil for empty text.
func Summary(text string) *DocTags {
	if text == "" {
		return nil
	}
	return &DocTags{Summary: text}
}
