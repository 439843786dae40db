package manifest

import (
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/schema"

	"github.com/broady/tsdecl/typescript"
)

// Override applies key=value pairs (keys use the YAML option names, e.g.
// "indentSize=4") on top of o and validates the result.
func (o *Options) Override(pairs []string) error {
	if len(pairs) == 0 {
		return nil
	}

	values := url.Values{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return errors.Mark(errors.Newf("option %q: expected key=value", pair), ErrInvalidManifest)
		}
		values.Set(key, value)
	}

	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(false)
	if err := dec.Decode(o, values); err != nil {
		return errors.Mark(errors.Wrap(err, "options"), ErrInvalidManifest)
	}
	return o.Validate()
}

// GeneratorConfig returns the formatting configuration for o.
func (o Options) GeneratorConfig() typescript.Config {
	return typescript.Config{
		IndentStyle:            o.IndentStyle,
		IndentSize:             o.IndentSize,
		ConstructorInlineLimit: o.ConstructorInlineLimit,
	}
}
