package exporters

import (
	"strings"

	"github.com/mrlokans/bookmarks/internal/entities"
)

// Field selects one column of a record.
type Field byte

const (
	FieldTitle       Field = 't'
	FieldURL         Field = 'u'
	FieldDescription Field = 'd'
)

// FormatSpec is the ordered list of fields a printer writes per record.
// Valid specs are the 15 orderings of a non-empty subset of {t, u, d}.
type FormatSpec []Field

// DefaultFormat prints every field in title, url, description order.
const DefaultFormat = "tud"

// ParseFormatSpec validates s and converts it into field selectors.
func ParseFormatSpec(s string) (FormatSpec, error) {
	if s == "" {
		return nil, &entities.ConfigError{Key: "format", Value: s, Reason: "must not be empty"}
	}

	spec := make(FormatSpec, 0, len(s))
	seen := make(map[Field]bool, 3)
	for i := 0; i < len(s); i++ {
		f := Field(s[i])
		switch f {
		case FieldTitle, FieldURL, FieldDescription:
		default:
			return nil, &entities.ConfigError{Key: "format", Value: s, Reason: "fields must be drawn from t, u and d"}
		}
		if seen[f] {
			return nil, &entities.ConfigError{Key: "format", Value: s, Reason: "fields must not repeat"}
		}
		seen[f] = true
		spec = append(spec, f)
	}

	return spec, nil
}

func (s FormatSpec) String() string {
	var b strings.Builder
	for _, f := range s {
		b.WriteByte(byte(f))
	}
	return b.String()
}

func (f Field) value(r entities.Record) string {
	switch f {
	case FieldTitle:
		return r.Title
	case FieldURL:
		return r.URL
	case FieldDescription:
		return r.Description
	default:
		return ""
	}
}
