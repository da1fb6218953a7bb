package extractors

import (
	"github.com/rs/zerolog"

	"github.com/mrlokans/bookmarks/internal/chrome"
	"github.com/mrlokans/bookmarks/internal/entities"
	"github.com/mrlokans/bookmarks/internal/favorites"
	"github.com/mrlokans/bookmarks/internal/firefox"
	"github.com/mrlokans/bookmarks/internal/parsers"
	"github.com/mrlokans/bookmarks/internal/safari"
)

// Extractor turns one classified source into records.
//
// Implementations:
//   - safari.Reader - Bookmarks.plist, binary or XML
//   - firefox.Reader - places.sqlite
//   - chrome.Reader - Chrome/Edge Bookmarks JSON
//   - favorites.Reader - directory of .url shortcuts
//   - parsers.TextReader - one URL per line
//   - parsers.MarkdownReader - one [title](url) link per line
type Extractor interface {
	// Requires lists the capabilities that must be available before Extract
	// is called.
	Requires() []entities.Capability

	// Extract calls emit once per record, in source order. An error returned
	// by emit stops the extraction and is returned unchanged.
	Extract(src entities.Source, emit entities.EmitFunc) error
}

var (
	_ Extractor = (*safari.Reader)(nil)
	_ Extractor = (*firefox.Reader)(nil)
	_ Extractor = (*chrome.Reader)(nil)
	_ Extractor = (*favorites.Reader)(nil)
	_ Extractor = (*parsers.TextReader)(nil)
	_ Extractor = (*parsers.MarkdownReader)(nil)
)

// DefaultExtractors returns one extractor per known kind.
func DefaultExtractors(schemeless bool, logger zerolog.Logger) map[entities.Kind]Extractor {
	return map[entities.Kind]Extractor{
		entities.KindSafariPlist: safari.NewReader(),
		entities.KindFirefoxDB:   firefox.NewReader(logger),
		entities.KindChromeJSON:  chrome.NewReader(),
		entities.KindIEFavorites: favorites.NewReader(logger),
		entities.KindPlainText:   parsers.NewTextReader(schemeless),
		entities.KindMarkdown:    parsers.NewMarkdownReader(),
	}
}
