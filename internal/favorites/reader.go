package favorites

import (
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"
	"gopkg.in/ini.v1"

	"github.com/mrlokans/bookmarks/internal/entities"
	"github.com/mrlokans/bookmarks/internal/utils"
)

const (
	shortcutSection = "InternetShortcut"
	urlKey          = "URL"
)

// Reader extracts internet shortcuts from an Internet Explorer or legacy
// Edge Favorites folder. Files that are not shortcuts are skipped.
type Reader struct {
	Logger zerolog.Logger
}

func NewReader(logger zerolog.Logger) *Reader {
	return &Reader{Logger: logger}
}

func (r *Reader) Requires() []entities.Capability {
	return []entities.Capability{
		entities.CapabilityWindowsFavorites,
		entities.CapabilityDirectoryWalker,
		entities.CapabilityINIParser,
	}
}

func (r *Reader) Extract(src entities.Source, emit entities.EmitFunc) error {
	return filepath.WalkDir(src.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &entities.IOError{Path: path, Op: "walk", Err: err}
		}
		if !d.Type().IsRegular() {
			return nil
		}

		url, ok, err := r.readShortcut(path)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		return emit(entities.Record{Title: utils.TitleFromFilename(path), URL: url})
	})
}

// readShortcut returns the URL of an internet shortcut file. ok is false
// when the file does not parse as INI or has no shortcut URL.
func (r *Reader) readShortcut(path string) (url string, ok bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, &entities.IOError{Path: path, Op: "read", Err: err}
	}

	// Windows writes shortcut files in the ANSI codepage.
	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			r.Logger.Debug().Err(err).Str("path", path).Msg("skipping undecodable file")
			return "", false, nil
		}
		data = decoded
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		r.Logger.Debug().Err(err).Str("path", path).Msg("skipping file that is not an internet shortcut")
		return "", false, nil
	}

	section, err := cfg.GetSection(shortcutSection)
	if err != nil || !section.HasKey(urlKey) {
		return "", false, nil
	}

	return section.Key(urlKey).String(), true, nil
}
