package parsers

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"mvdan.cc/xurls/v2"

	"github.com/mrlokans/bookmarks/internal/entities"
)

// TextReader extracts one record per line holding a URL:
//
//	title text http://example.com trailing description
type TextReader struct {
	matcher *regexp.Regexp
}

// NewTextReader returns a reader matching schemed URLs only. With
// schemeless set, bare host names such as example.com match as well.
func NewTextReader(schemeless bool) *TextReader {
	matcher := xurls.Strict()
	if schemeless {
		matcher = xurls.Relaxed()
	}
	return &TextReader{matcher: matcher}
}

func (r *TextReader) Requires() []entities.Capability {
	return []entities.Capability{entities.CapabilityURIMatcher}
}

func (r *TextReader) Extract(src entities.Source, emit entities.EmitFunc) error {
	return ScanLines(src.Path, func(line string) error {
		record, ok := r.ParseLine(line)
		if !ok {
			return nil
		}
		return emit(record)
	})
}

// ParseLine splits a line around its first whitespace-delimited URL.
// Lines without one report false.
func (r *TextReader) ParseLine(line string) (entities.Record, bool) {
	for _, loc := range r.matcher.FindAllStringIndex(line, -1) {
		start, end := loc[0], loc[1]
		if !boundaryBefore(line, start) || !boundaryAfter(line, end) {
			continue
		}

		return entities.Record{
			Title:       strings.TrimSpace(line[:start]),
			URL:         line[start:end],
			Description: strings.TrimSpace(line[end:]),
		}, true
	}

	return entities.Record{}, false
}

func boundaryBefore(line string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(line[:i])
	return unicode.IsSpace(r)
}

func boundaryAfter(line string, i int) bool {
	if i == len(line) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(line[i:])
	return unicode.IsSpace(r)
}
