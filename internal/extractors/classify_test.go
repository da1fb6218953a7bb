package extractors

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookmarks/internal/entities"
)

func TestClassify(t *testing.T) {
	dir := t.TempDir()

	files := []string{
		"Bookmarks.plist",
		"places.sqlite",
		"Bookmarks",
		"Chrome Bookmarks",
		"links.txt",
		"notes.md",
		"Favorites",
		"bookmarks.html",
		"Bookmarks.bak",
		"places.sqlite-wal",
		"readme.MD",
	}
	dirs := []string{
		"IE Favorites",
		"Favorites.d",
		"archive.plist",
		"Bookmarks.dir",
	}
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	for _, name := range dirs {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0o755))
	}

	tests := []struct {
		name  string
		kind  entities.Kind
		isDir bool
	}{
		{name: "Bookmarks.plist", kind: entities.KindSafariPlist},
		{name: "places.sqlite", kind: entities.KindFirefoxDB},
		{name: "Bookmarks", kind: entities.KindChromeJSON},
		{name: "Chrome Bookmarks", kind: entities.KindChromeJSON},
		{name: "links.txt", kind: entities.KindPlainText},
		{name: "notes.md", kind: entities.KindMarkdown},
		{name: "IE Favorites", kind: entities.KindIEFavorites, isDir: true},
		// regular file named like a favorites folder
		{name: "Favorites"},
		{name: "Favorites.d"},
		// directories never match file rules
		{name: "archive.plist"},
		{name: "Bookmarks.dir"},
		{name: "bookmarks.html"},
		{name: "Bookmarks.bak"},
		{name: "places.sqlite-wal"},
		{name: "readme.MD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			src, err := Classify(path)

			if tt.kind == "" {
				var classErr *entities.ClassificationError
				require.True(t, errors.As(err, &classErr), "expected ClassificationError, got %v", err)
				assert.Equal(t, "unable to process file: `"+path+"`", err.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, entities.Source{Path: path, Kind: tt.kind, IsDirectory: tt.isDir}, src)
		})
	}
}

func TestClassify_IsDeterministic(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "b.txt"),
		filepath.Join(dir, "c.plist"),
	}
	for _, p := range paths {
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}

	forward := make([]entities.Kind, len(paths))
	for i, p := range paths {
		src, err := Classify(p)
		require.NoError(t, err)
		forward[i] = src.Kind
	}

	for i := len(paths) - 1; i >= 0; i-- {
		src, err := Classify(paths[i])
		require.NoError(t, err)
		assert.Equal(t, forward[i], src.Kind)
	}
}

func TestClassify_FirstRuleWins(t *testing.T) {
	kind, ok := classifyName("export.plist.txt", false, true)
	require.True(t, ok)
	assert.Equal(t, entities.KindPlainText, kind)

	// ".sqlite" is checked before the Chrome suffix rule
	kind, ok = classifyName("Bookmarks.sqlite", false, true)
	require.True(t, ok)
	assert.Equal(t, entities.KindFirefoxDB, kind)
}

func TestClassify_MissingPathIsClassificationError(t *testing.T) {
	for _, name := range []string{"missing.txt", "Bookmarks", "Favorites", "missing.html"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			_, err := Classify(path)

			var classErr *entities.ClassificationError
			require.True(t, errors.As(err, &classErr), "expected ClassificationError, got %v", err)
			assert.Equal(t, path, classErr.Path)
			assert.EqualError(t, err, "unable to process file: `"+path+"`")
			assert.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}
