package chrome

import (
	"encoding/json"
	"os"

	"github.com/mrlokans/bookmarks/internal/entities"
)

const formatName = "bookmarks JSON"

// BookmarksFile is the subset of Chrome's Bookmarks file the reader uses.
// Edge and Chromium write the same layout.
type BookmarksFile struct {
	Roots struct {
		BookmarkBar Node `json:"bookmark_bar"`
		Other       Node `json:"other"`
	} `json:"roots"`
}

type Node struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Type     string `json:"type"`
	Children []Node `json:"children"`
}

// Reader extracts the direct children of the bookmark bar and the "other
// bookmarks" folder. Nested folders are not descended into: a folder child
// yields a record with an empty URL and its own children are never visited.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

func (r *Reader) Requires() []entities.Capability {
	return []entities.Capability{entities.CapabilityJSONDecoder}
}

func (r *Reader) Extract(src entities.Source, emit entities.EmitFunc) error {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return &entities.IOError{Path: src.Path, Op: "read", Err: err}
	}

	// The whole file must be one JSON document; trailing data is rejected.
	var bookmarks BookmarksFile
	if err := json.Unmarshal(data, &bookmarks); err != nil {
		return &entities.ParseError{Path: src.Path, Format: formatName, Err: err}
	}

	for _, root := range []Node{bookmarks.Roots.BookmarkBar, bookmarks.Roots.Other} {
		for _, child := range root.Children {
			if err := emit(entities.Record{Title: child.Name, URL: child.URL}); err != nil {
				return err
			}
		}
	}

	return nil
}
