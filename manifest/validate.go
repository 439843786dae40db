package manifest

import (
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their YAML names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("modifier", func(fl validator.FieldLevel) bool {
		_, ok := modifierNames[fl.Field().String()]
		return ok
	})

	v.RegisterStructValidation(func(sl validator.StructLevel) {
		f := sl.Current().Interface().(File)
		if f.kinds() != 1 {
			sl.ReportError(f.Path, "path", "Path", "onekind", "")
		}
	}, File{})

	return v
}

// kinds counts the declarations set on f.
func (f File) kinds() int {
	n := 0
	if f.Class != nil {
		n++
	}
	if f.Interface != nil {
		n++
	}
	if f.Enum != nil {
		n++
	}
	if f.Type != nil {
		n++
	}
	if f.Barrel != nil {
		n++
	}
	return n
}

// Validate checks the manifest against its schema and reports every problem found.
func (m *Manifest) Validate() error {
	return validateStruct(m)
}

// Validate checks the options.
func (o *Options) Validate() error {
	return validateStruct(o)
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Mark(err, ErrInvalidManifest)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.Mark(errors.Newf("%s", strings.Join(msgs, "; ")), ErrInvalidManifest)
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_without":
		return field + " is required when " + fe.Param() + " is not set"
	case "excluded_with":
		return field + " cannot be combined with " + fe.Param()
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "modifier":
		return field + ": unknown modifier " + quoteValue(fe.Value())
	case "onekind":
		return "file " + quoteValue(fe.Value()) + " must declare exactly one of class, interface, enum, type, barrel"
	case "min":
		return field + " must have at least " + fe.Param() + " entries"
	default:
		return field + " failed " + fe.Tag() + " " + fe.Param()
	}
}

func quoteValue(v any) string {
	if s, ok := v.(string); ok {
		return `"` + s + `"`
	}
	return ""
}
