package exporters

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookmarks/internal/entities"
)

var sampleRecord = entities.Record{
	Title:       "Example",
	URL:         "http://example.com",
	Description: "a description",
}

func TestParseFormatSpec_AllRecognizedSpecs(t *testing.T) {
	tests := []struct {
		spec     string
		expected string
	}{
		{"t", "Example\n"},
		{"u", "http://example.com\n"},
		{"d", "a description\n"},
		{"tu", "Example http://example.com\n"},
		{"ut", "http://example.com Example\n"},
		{"td", "Example a description\n"},
		{"dt", "a description Example\n"},
		{"ud", "http://example.com a description\n"},
		{"du", "a description http://example.com\n"},
		{"tud", "Example http://example.com a description\n"},
		{"tdu", "Example a description http://example.com\n"},
		{"utd", "http://example.com Example a description\n"},
		{"udt", "http://example.com a description Example\n"},
		{"dtu", "a description Example http://example.com\n"},
		{"dut", "a description http://example.com Example\n"},
	}

	require.Len(t, tests, 15)

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			spec, err := ParseFormatSpec(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.spec, spec.String())

			var buf bytes.Buffer
			require.NoError(t, NewPrinter(&buf, spec).Print(sampleRecord))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestParseFormatSpec_Rejects(t *testing.T) {
	for _, input := range []string{"", "xyz", "tt", "tudt", "T", "t u", "tux"} {
		t.Run(input, func(t *testing.T) {
			spec, err := ParseFormatSpec(input)
			assert.Nil(t, spec)

			var cfgErr *entities.ConfigError
			require.True(t, errors.As(err, &cfgErr), "expected ConfigError, got %v", err)
			assert.Equal(t, "format", cfgErr.Key)
			assert.Equal(t, input, cfgErr.Value)
		})
	}
}

func TestPrinter_EmptyFieldsKeepSeparators(t *testing.T) {
	spec, err := ParseFormatSpec("tud")
	require.NoError(t, err)

	var buf bytes.Buffer
	p := NewPrinter(&buf, spec)
	require.NoError(t, p.Print(entities.Record{URL: "http://a.example"}))
	require.NoError(t, p.Print(entities.Record{Title: "b"}))

	assert.Equal(t, " http://a.example \nb  \n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestPrinter_PropagatesWriteErrors(t *testing.T) {
	spec, err := ParseFormatSpec("u")
	require.NoError(t, err)

	err = NewPrinter(failingWriter{}, spec).Print(sampleRecord)
	assert.EqualError(t, err, "broken pipe")
}
