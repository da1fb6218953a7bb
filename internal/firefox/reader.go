package firefox

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookmarks/internal/entities"
)

const formatName = "places database"

// tagsRootID is the id Firefox gives the tags root when its guid is missing.
const tagsRootID = 4

// placesQuery lists every titled bookmark with its target URL. Tags are
// bookmark rows without a title that point at the same place and live in a
// tag folder: a direct child of the tags root, titled with the tag name.
const placesQuery = `
	SELECT
		b.title,
		p.url,
		(
			SELECT group_concat(tag_folder.title, ' ')
			FROM moz_bookmarks AS tag_link
			JOIN moz_bookmarks AS tag_folder ON tag_folder.id = tag_link.parent
			WHERE tag_link.fk = b.fk
				AND tag_link.title IS NULL
				AND tag_folder.title IS NOT NULL
				AND tag_folder.parent = coalesce(
					(SELECT id FROM moz_bookmarks WHERE guid = 'tags________'),
					?
				)
		) AS tags
	FROM moz_bookmarks AS b
	JOIN moz_places AS p ON p.id = b.fk
	WHERE b.title IS NOT NULL
		AND p.url NOT LIKE 'place:%'
	ORDER BY b.id
`

// Reader extracts bookmarks from a Firefox places.sqlite file. The browser
// keeps the live database locked, so every extraction works on a private copy.
type Reader struct {
	// TempDir is the parent of the per-extraction copy directory; empty
	// means os.TempDir().
	TempDir string
	Logger  zerolog.Logger
}

func NewReader(logger zerolog.Logger) *Reader {
	return &Reader{Logger: logger}
}

func (r *Reader) Requires() []entities.Capability {
	return []entities.Capability{entities.CapabilitySQLite}
}

func (r *Reader) Extract(src entities.Source, emit entities.EmitFunc) error {
	tempDir, err := os.MkdirTemp(r.TempDir, "bookmarks-places-*")
	if err != nil {
		return &entities.IOError{Path: src.Path, Op: "create temporary directory for", Err: err}
	}
	defer func() {
		if err := os.RemoveAll(tempDir); err != nil {
			r.Logger.Warn().Err(err).Str("dir", tempDir).Msg("failed to remove temporary database copy")
		}
	}()

	copyPath := filepath.Join(tempDir, "places.sqlite")
	if err := copyFile(src.Path, copyPath); err != nil {
		return &entities.IOError{Path: src.Path, Op: "copy", Err: err}
	}
	r.Logger.Debug().Str("source", src.Path).Str("copy", copyPath).Msg("copied places database")

	return r.query(src.Path, copyPath, emit)
}

func (r *Reader) query(sourcePath, copyPath string, emit entities.EmitFunc) error {
	db, err := gorm.Open(sqlite.Open("file:"+copyPath+"?mode=ro"), &gorm.Config{
		Logger:                 logger.Discard,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return &entities.ParseError{Path: sourcePath, Format: formatName, Err: fmt.Errorf("failed to open database: %w", err)}
	}
	sqlDB, err := db.DB()
	if err != nil {
		return &entities.ParseError{Path: sourcePath, Format: formatName, Err: err}
	}
	defer sqlDB.Close()

	rows, err := db.Raw(placesQuery, tagsRootID).Rows()
	if err != nil {
		return &entities.ParseError{Path: sourcePath, Format: formatName, Err: fmt.Errorf("failed to query bookmarks: %w", err)}
	}
	defer rows.Close()

	for rows.Next() {
		var title, url string
		var tags sql.NullString

		if err := rows.Scan(&title, &url, &tags); err != nil {
			return &entities.ParseError{Path: sourcePath, Format: formatName, Err: fmt.Errorf("failed to scan row: %w", err)}
		}

		if err := emit(entities.Record{Title: title, URL: url, Description: tags.String}); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return &entities.ParseError{Path: sourcePath, Format: formatName, Err: fmt.Errorf("error iterating rows: %w", err)}
	}

	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		return err
	}
	return destFile.Close()
}
