package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/mrlokans/bookmarks/internal/config"
)

// PathsCommand lists the default bookmark locations that exist.
type PathsCommand struct {
	Env    config.Environment
	Stdout io.Writer
	Logger zerolog.Logger
}

func (cmd *PathsCommand) Run() error {
	for _, pattern := range config.DefaultPathPatterns(cmd.Env) {
		cmd.Logger.Debug().Str("pattern", pattern).Msg("Searching")
	}

	for _, path := range config.DefaultPaths(cmd.Env) {
		if _, err := fmt.Fprintln(cmd.Stdout, path); err != nil {
			return err
		}
	}
	return nil
}
