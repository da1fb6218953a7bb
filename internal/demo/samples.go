// Package demo writes one sample source per supported format, for trying
// the tool out and for end-to-end tests.
package demo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"howett.net/plist"

	"github.com/mrlokans/bookmarks/internal/entities"
)

// Bookmarks are written to every sample. Formats without descriptions
// drop them; the favorites sample names its files after the titles.
var Bookmarks = []entities.Record{
	{Title: "The Go Programming Language", URL: "https://go.dev/", Description: "golang"},
	{Title: "Gin Web Framework", URL: "https://gin-gonic.com/", Description: "web"},
	{Title: "SQLite Home Page", URL: "https://sqlite.org/"},
}

// Generate writes the samples into dir and returns their paths in the
// order they should be extracted.
func Generate(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create sample dir: %w", err)
	}

	writers := []struct {
		name  string
		write func(path string) error
	}{
		{"Bookmarks.plist", writeSafari},
		{"places.sqlite", writeFirefox},
		{"Bookmarks", writeChrome},
		{"Favorites", writeFavorites},
		{"links.txt", writeText},
		{"links.md", writeMarkdown},
	}

	paths := make([]string, 0, len(writers))
	for _, w := range writers {
		path := filepath.Join(dir, w.name)
		if err := os.RemoveAll(path); err != nil {
			return nil, fmt.Errorf("remove old %s: %w", w.name, err)
		}
		if err := w.write(path); err != nil {
			return nil, fmt.Errorf("write %s: %w", w.name, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func writeSafari(path string) error {
	children := make([]interface{}, 0, len(Bookmarks))
	for _, b := range Bookmarks {
		leaf := map[string]interface{}{
			"WebBookmarkType": "WebBookmarkTypeLeaf",
			"URLString":       b.URL,
			"URIDictionary":   map[string]interface{}{"title": b.Title},
		}
		if b.Description != "" {
			leaf["ReadingList"] = map[string]interface{}{"PreviewText": b.Description}
		}
		children = append(children, leaf)
	}

	root := map[string]interface{}{
		"WebBookmarkFileVersion": 1,
		"WebBookmarkType":        "WebBookmarkTypeList",
		"Children": []interface{}{
			map[string]interface{}{
				"Title":           "BookmarksBar",
				"WebBookmarkType": "WebBookmarkTypeList",
				"Children":        children,
			},
		},
	}

	data, err := plist.Marshal(root, plist.BinaryFormat)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

const placesSchema = `
	CREATE TABLE moz_places (
		id INTEGER PRIMARY KEY,
		url LONGVARCHAR,
		title LONGVARCHAR
	);
	CREATE TABLE moz_bookmarks (
		id INTEGER PRIMARY KEY,
		type INTEGER,
		fk INTEGER DEFAULT NULL,
		parent INTEGER,
		title LONGVARCHAR,
		guid TEXT
	);
	INSERT INTO moz_bookmarks (id, type, fk, parent, title, guid) VALUES
		(1, 2, NULL, 0, '', 'root________'),
		(2, 2, NULL, 1, 'menu', 'menu________'),
		(4, 2, NULL, 1, 'tags', 'tags________');
	INSERT INTO moz_places (id, url, title) VALUES
		(100, 'place:parent=menu', NULL);
	INSERT INTO moz_bookmarks (id, type, fk, parent, title) VALUES
		(3, 1, 100, 1, 'Recent Tags');
`

func writeFirefox(path string) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(placesSchema).Error; err != nil {
			return err
		}

		for i, b := range Bookmarks {
			placeID := i + 1
			if err := tx.Exec(`INSERT INTO moz_places (id, url, title) VALUES (?, ?, ?)`, placeID, b.URL, b.Title).Error; err != nil {
				return err
			}
			if err := tx.Exec(`INSERT INTO moz_bookmarks (id, type, fk, parent, title) VALUES (?, 1, ?, 2, ?)`, 10+i, placeID, b.Title).Error; err != nil {
				return err
			}
			if b.Description == "" {
				continue
			}
			// tag folder under the tags root, and the untitled link into it
			if err := tx.Exec(`INSERT INTO moz_bookmarks (id, type, fk, parent, title) VALUES (?, 2, NULL, 4, ?)`, 20+i, b.Description).Error; err != nil {
				return err
			}
			if err := tx.Exec(`INSERT INTO moz_bookmarks (id, type, fk, parent, title) VALUES (?, 1, ?, ?, NULL)`, 30+i, placeID, 20+i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

type chromeNode struct {
	Name     string       `json:"name"`
	Type     string       `json:"type"`
	URL      string       `json:"url,omitempty"`
	Children []chromeNode `json:"children,omitempty"`
}

func writeChrome(path string) error {
	var bar, other []chromeNode
	for i, b := range Bookmarks {
		node := chromeNode{Name: b.Title, Type: "url", URL: b.URL}
		if i == len(Bookmarks)-1 {
			other = append(other, node)
		} else {
			bar = append(bar, node)
		}
	}

	file := map[string]interface{}{
		"version": 1,
		"roots": map[string]chromeNode{
			"bookmark_bar": {Name: "Bookmarks bar", Type: "folder", Children: bar},
			"other":        {Name: "Other bookmarks", Type: "folder", Children: other},
			"synced":       {Name: "Mobile bookmarks", Type: "folder"},
		},
	}

	data, err := json.MarshalIndent(file, "", "   ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func writeFavorites(path string) error {
	if err := os.MkdirAll(filepath.Join(path, "Links"), 0755); err != nil {
		return err
	}

	for i, b := range Bookmarks {
		cfg := ini.Empty()
		section, err := cfg.NewSection("InternetShortcut")
		if err != nil {
			return err
		}
		if _, err := section.NewKey("URL", b.URL); err != nil {
			return err
		}

		dir := path
		if i > 0 {
			dir = filepath.Join(path, "Links")
		}
		if err := cfg.SaveTo(filepath.Join(dir, b.Title+".url")); err != nil {
			return err
		}
	}

	return os.WriteFile(filepath.Join(path, "desktop.ini"), []byte("[.ShellClassInfo]\r\nLocalizedResourceName=@shell32.dll,-12693\r\n"), 0644)
}

func writeText(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(f, "Reading list")
	for _, b := range Bookmarks {
		if _, err := fmt.Fprintf(f, "%s %s %s\n", b.Title, b.URL, b.Description); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdown(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(f, "# Reading list")
	fmt.Fprintln(f)
	for _, b := range Bookmarks {
		if _, err := fmt.Fprintf(f, "- [%s](%s) %s\n", b.Title, b.URL, b.Description); err != nil {
			return err
		}
	}
	return nil
}
