package parsers

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookmarks/internal/entities"
)

type extractor interface {
	Extract(src entities.Source, emit entities.EmitFunc) error
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func collect(t *testing.T, e extractor, path string) []entities.Record {
	t.Helper()

	var records []entities.Record
	err := e.Extract(entities.Source{Path: path}, func(r entities.Record) error {
		records = append(records, r)
		return nil
	})
	require.NoError(t, err)
	return records
}

func TestTextReader_ParseLine(t *testing.T) {
	tests := []struct {
		name       string
		schemeless bool
		line       string
		want       entities.Record
		ok         bool
	}{
		{
			name: "title url description",
			line: "plain text example http://example.txt with a description",
			want: entities.Record{Title: "plain text example", URL: "http://example.txt", Description: "with a description"},
			ok:   true,
		},
		{
			name: "url only",
			line: "https://go.dev/doc",
			want: entities.Record{URL: "https://go.dev/doc"},
			ok:   true,
		},
		{
			name: "surrounding whitespace is trimmed",
			line: "\t  Go   https://go.dev   docs  ",
			want: entities.Record{Title: "Go", URL: "https://go.dev", Description: "docs"},
			ok:   true,
		},
		{
			name: "first url wins",
			line: "two https://a.example and https://b.example",
			want: entities.Record{Title: "two", URL: "https://a.example", Description: "and https://b.example"},
			ok:   true,
		},
		{
			name: "no url",
			line: "just some words",
		},
		{
			name: "empty line",
			line: "",
		},
		{
			name: "url glued to a word",
			line: "prefixhttps://go.dev",
		},
		{
			name: "bare host is ignored in strict mode",
			line: "Go example.com homepage",
		},
		{
			name:       "bare host matches in schemeless mode",
			schemeless: true,
			line:       "Go example.com homepage",
			want:       entities.Record{Title: "Go", URL: "example.com", Description: "homepage"},
			ok:         true,
		},
		{
			name:       "schemed url still matches in schemeless mode",
			schemeless: true,
			line:       "Go https://go.dev homepage",
			want:       entities.Record{Title: "Go", URL: "https://go.dev", Description: "homepage"},
			ok:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewTextReader(tt.schemeless).ParseLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextReader_Extract(t *testing.T) {
	content := "\uFEFFplain text example http://example.txt with a description\r\n" +
		"nothing here\n" +
		"\n" +
		"Go https://go.dev\n"
	path := writeTemp(t, "links.txt", content)

	reader := NewTextReader(false)
	first := collect(t, reader, path)

	assert.Equal(t, []entities.Record{
		{Title: "plain text example", URL: "http://example.txt", Description: "with a description"},
		{Title: "Go", URL: "https://go.dev"},
	}, first)

	// Running again over the same file yields the same records.
	assert.Equal(t, first, collect(t, reader, path))
}

func TestMarkdownReader_ParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want entities.Record
		ok   bool
	}{
		{
			name: "link with description",
			line: "[markdown example](http://example.md) with a description",
			want: entities.Record{Title: "markdown example", URL: "http://example.md", Description: "with a description"},
			ok:   true,
		},
		{
			name: "list item",
			line: "- [Go](https://go.dev)",
			want: entities.Record{Title: "Go", URL: "https://go.dev"},
			ok:   true,
		},
		{
			name: "first link wins",
			line: "[a](https://a.example) [b](https://b.example)",
			want: entities.Record{Title: "a", URL: "https://a.example", Description: "[b](https://b.example)"},
			ok:   true,
		},
		{
			name: "empty title",
			line: "[](https://go.dev)",
			want: entities.Record{URL: "https://go.dev"},
			ok:   true,
		},
		{
			name: "plain text",
			line: "plain text example http://example.txt",
		},
		{
			name: "space between brackets and parens",
			line: "[Go] (https://go.dev)",
		},
		{
			name: "whitespace inside url",
			line: "[Go](https://go.dev /doc)",
		},
		{
			name: "heading",
			line: "# Reading list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NewMarkdownReader().ParseLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarkdownReader_Extract(t *testing.T) {
	content := "# Bookmarks\n" +
		"\n" +
		"[markdown example](http://example.md) with a description\n" +
		"* [Go](https://go.dev)\n" +
		"some prose without links\n"
	path := writeTemp(t, "links.md", content)

	reader := NewMarkdownReader()
	first := collect(t, reader, path)

	assert.Equal(t, []entities.Record{
		{Title: "markdown example", URL: "http://example.md", Description: "with a description"},
		{Title: "Go", URL: "https://go.dev"},
	}, first)
	assert.Equal(t, first, collect(t, reader, path))
}

func TestScanLines_MissingFile(t *testing.T) {
	err := ScanLines(filepath.Join(t.TempDir(), "missing.txt"), func(string) error { return nil })

	var ioErr *entities.IOError
	require.True(t, errors.As(err, &ioErr), "expected IOError, got %v", err)
	assert.Equal(t, "open", ioErr.Op)
}

func TestScanLines_LineTooLong(t *testing.T) {
	path := writeTemp(t, "long.txt", strings.Repeat("a", MaxLineLength+1)+"\n")

	err := ScanLines(path, func(string) error { return nil })

	var ioErr *entities.IOError
	require.True(t, errors.As(err, &ioErr), "expected IOError, got %v", err)
	assert.Equal(t, "read", ioErr.Op)
}

func TestScanLines_StopsOnCallbackError(t *testing.T) {
	path := writeTemp(t, "lines.txt", "one\ntwo\nthree\n")
	stop := errors.New("stop")

	var seen []string
	err := ScanLines(path, func(line string) error {
		seen = append(seen, line)
		if line == "two" {
			return stop
		}
		return nil
	})

	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"one", "two"}, seen)
}
