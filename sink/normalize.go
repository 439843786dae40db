package sink

import (
	"bytes"
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Line endings accepted by Normalize.
const (
	LineEndingLF   = "lf"
	LineEndingCRLF = "crlf"
)

// Normalize returns content as UTF-8 without a byte order mark, with every
// line ending converted to lineEnding ("lf" or "crlf"; empty means "lf").
// Invalid UTF-8 sequences are replaced with U+FFFD.
func Normalize(content []byte, lineEnding string) ([]byte, error) {
	var eol []byte
	switch lineEnding {
	case "", LineEndingLF:
		eol = []byte("\n")
	case LineEndingCRLF:
		eol = []byte("\r\n")
	default:
		return nil, errors.Newf("unknown line ending %q (expected %q or %q)", lineEnding, LineEndingLF, LineEndingCRLF)
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, content)
	if err != nil {
		return nil, errors.Wrap(err, "decode UTF-8")
	}

	out = bytes.ReplaceAll(out, []byte("\r\n"), []byte("\n"))
	if len(eol) > 1 {
		out = bytes.ReplaceAll(out, []byte("\n"), eol)
	}
	return out, nil
}

// NormalizingSink normalizes content before passing it to the wrapped sink.
type NormalizingSink struct {
	Next       OutputSink
	LineEnding string
}

// Normalizing wraps next so every write is normalized to lineEnding.
func Normalizing(next OutputSink, lineEnding string) *NormalizingSink {
	return &NormalizingSink{Next: next, LineEnding: lineEnding}
}

// WriteFile normalizes content and writes it to the wrapped sink.
func (s *NormalizingSink) WriteFile(ctx context.Context, path string, content []byte) error {
	normalized, err := Normalize(content, s.LineEnding)
	if err != nil {
		return errors.Wrapf(err, "normalize %s", path)
	}
	return s.Next.WriteFile(ctx, path, normalized)
}
