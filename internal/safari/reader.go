package safari

import (
	"errors"
	"os"
	"sort"
	"strings"

	"howett.net/plist"

	"github.com/mrlokans/bookmarks/internal/entities"
)

const formatName = "property list"

// Keys of a Safari bookmark leaf. URLString marks the leaf itself; the
// title lives in its URIDictionary and the preview text in ReadingList.
const (
	urlKey         = "URLString"
	titleKey       = "title"
	previewTextKey = "PreviewText"
)

var errEmptyPlist = errors.New("property list is empty")

// Reader extracts bookmarks from Safari's Bookmarks.plist, binary or XML.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

func (r *Reader) Requires() []entities.Capability {
	return []entities.Capability{entities.CapabilityPlistDecoder}
}

func (r *Reader) Extract(src entities.Source, emit entities.EmitFunc) error {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return &entities.IOError{Path: src.Path, Op: "read", Err: err}
	}
	if len(data) == 0 {
		return &entities.ParseError{Path: src.Path, Format: formatName, Err: errEmptyPlist}
	}

	var root interface{}
	if _, err := plist.Unmarshal(data, &root); err != nil {
		return &entities.ParseError{Path: src.Path, Format: formatName, Err: err}
	}
	if root == nil {
		return &entities.ParseError{Path: src.Path, Format: formatName, Err: errEmptyPlist}
	}

	return walk(root, emit)
}

// walk visits the tree depth first. A dictionary holding a URLString is a
// bookmark and its subtree is not searched for further bookmarks.
func walk(node interface{}, emit entities.EmitFunc) error {
	switch n := node.(type) {
	case map[string]interface{}:
		if url, ok := n[urlKey].(string); ok {
			return emit(entities.Record{
				Title:       findString(n, titleKey),
				URL:         url,
				Description: findString(n, previewTextKey),
			})
		}
		for _, key := range sortedKeys(n) {
			if err := walk(n[key], emit); err != nil {
				return err
			}
		}
	case []interface{}:
		for _, child := range n {
			if err := walk(child, emit); err != nil {
				return err
			}
		}
	}
	return nil
}

// findString returns the first string value whose key equals key
// case-insensitively, checking the dictionary's own keys before descending.
func findString(node interface{}, key string) string {
	switch n := node.(type) {
	case map[string]interface{}:
		keys := sortedKeys(n)
		for _, k := range keys {
			if s, ok := n[k].(string); ok && strings.EqualFold(k, key) {
				return s
			}
		}
		for _, k := range keys {
			if s := findString(n[k], key); s != "" {
				return s
			}
		}
	case []interface{}:
		for _, child := range n {
			if s := findString(child, key); s != "" {
				return s
			}
		}
	}
	return ""
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
