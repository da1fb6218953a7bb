package parsers

import (
	"regexp"
	"strings"

	"github.com/mrlokans/bookmarks/internal/entities"
)

// markdownLinkPattern matches the first [title](url) on a line and captures
// whatever follows it as the description.
var markdownLinkPattern = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]+)\)(.*)$`)

// MarkdownReader extracts one record per line holding a markdown link.
type MarkdownReader struct{}

func NewMarkdownReader() *MarkdownReader {
	return &MarkdownReader{}
}

func (r *MarkdownReader) Requires() []entities.Capability {
	return nil
}

func (r *MarkdownReader) Extract(src entities.Source, emit entities.EmitFunc) error {
	return ScanLines(src.Path, func(line string) error {
		record, ok := r.ParseLine(line)
		if !ok {
			return nil
		}
		return emit(record)
	})
}

func (r *MarkdownReader) ParseLine(line string) (entities.Record, bool) {
	matches := markdownLinkPattern.FindStringSubmatch(line)
	if matches == nil {
		return entities.Record{}, false
	}

	return entities.Record{
		Title:       strings.TrimSpace(matches[1]),
		URL:         matches[2],
		Description: strings.TrimSpace(matches[3]),
	}, true
}
