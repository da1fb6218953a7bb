package parsers

import (
	"bufio"
	"os"
	"strings"

	"github.com/mrlokans/bookmarks/internal/entities"
)

// MaxLineLength bounds a single line. Longer lines fail the whole file.
const MaxLineLength = 1024 * 1024

const byteOrderMark = "\uFEFF"

// LineFunc is called for every line of a file, without the line terminator.
type LineFunc func(line string) error

// ScanLines reads path line by line. Errors returned by fn stop the scan
// and are returned unchanged.
func ScanLines(path string, fn LineFunc) error {
	file, err := os.Open(path)
	if err != nil {
		return &entities.IOError{Path: path, Op: "open", Err: err}
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)

	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, byteOrderMark)
			first = false
		}

		if err := fn(line); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return &entities.IOError{Path: path, Op: "read", Err: err}
	}

	return nil
}
