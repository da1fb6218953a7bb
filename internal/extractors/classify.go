package extractors

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mrlokans/bookmarks/internal/entities"
)

type rule struct {
	kind   entities.Kind
	dir    bool
	suffix string
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{kind: entities.KindSafariPlist, suffix: ".plist"},
	{kind: entities.KindFirefoxDB, suffix: ".sqlite"},
	{kind: entities.KindChromeJSON, suffix: "Bookmarks"},
	{kind: entities.KindIEFavorites, dir: true, suffix: "Favorites"},
	{kind: entities.KindPlainText, suffix: ".txt"},
	{kind: entities.KindMarkdown, suffix: ".md"},
}

// Classify stats path and picks its kind from the base name. A path that
// cannot be stat-ed matches no rule.
func Classify(path string) (entities.Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return entities.Source{}, &entities.ClassificationError{Path: path, Err: err}
	}

	kind, ok := classifyName(filepath.Base(path), info.IsDir(), info.Mode().IsRegular())
	if !ok {
		return entities.Source{}, &entities.ClassificationError{Path: path}
	}

	return entities.Source{
		Path:        path,
		Kind:        kind,
		IsDirectory: info.IsDir(),
	}, nil
}

func classifyName(name string, isDir, isRegular bool) (entities.Kind, bool) {
	for _, r := range rules {
		if (r.dir && !isDir) || (!r.dir && !isRegular) {
			continue
		}
		if strings.HasSuffix(name, r.suffix) {
			return r.kind, true
		}
	}
	return "", false
}
