package cli

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mrlokans/bookmarks/internal/config"
	"github.com/mrlokans/bookmarks/internal/entrypoint"
)

// ServeCommand keeps the bookmarks of its sources in memory and serves
// them over HTTP.
type ServeCommand struct {
	Config  *config.Config
	Paths   []string
	Env     config.Environment
	Version string
	Logger  zerolog.Logger
}

func (cmd *ServeCommand) Run(ctx context.Context) error {
	paths, err := resolvePaths(cmd.Paths, cmd.Config.Paths, cmd.Env, cmd.Logger)
	if err != nil {
		return err
	}

	return entrypoint.Run(ctx, cmd.Config, paths, cmd.Version, cmd.Logger)
}
