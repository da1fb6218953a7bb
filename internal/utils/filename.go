package utils

import (
	"path/filepath"
	"strings"
)

// KnownShortcutExtensions contains the extensions Windows uses for internet
// shortcut files, longest first.
var KnownShortcutExtensions = []string{
	".website",
	".url",
}

// TitleFromFilename returns the base name of path without its shortcut
// extension. Unknown extensions are stripped as well; a name that is only an
// extension is kept as is.
func TitleFromFilename(path string) string {
	name := filepath.Base(path)
	lower := strings.ToLower(name)

	for _, ext := range KnownShortcutExtensions {
		if strings.HasSuffix(lower, ext) && len(name) > len(ext) {
			return name[:len(name)-len(ext)]
		}
	}

	if ext := filepath.Ext(name); ext != "" && len(name) > len(ext) {
		return strings.TrimSuffix(name, ext)
	}

	return name
}
