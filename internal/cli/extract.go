package cli

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/mrlokans/bookmarks/internal/config"
	"github.com/mrlokans/bookmarks/internal/entities"
	"github.com/mrlokans/bookmarks/internal/exporters"
	"github.com/mrlokans/bookmarks/internal/extractors"
)

// ExtractCommand prints the bookmarks of every source, one line each.
type ExtractCommand struct {
	Paths       []string // Explicit sources; take precedence over ConfigPaths
	ConfigPaths []string
	Format      string
	Schemeless  bool
	Env         config.Environment
	Stdout      io.Writer
	Logger      zerolog.Logger
}

// Run prints each record as soon as it is extracted. ctx is checked between
// sources.
func (cmd *ExtractCommand) Run(ctx context.Context) error {
	// The format is validated before any source is opened.
	spec, err := exporters.ParseFormatSpec(cmd.Format)
	if err != nil {
		return err
	}

	paths, err := resolvePaths(cmd.Paths, cmd.ConfigPaths, cmd.Env, cmd.Logger)
	if err != nil {
		return err
	}

	printer := exporters.NewPrinter(cmd.Stdout, spec)

	dispatcher := extractors.NewDispatcher(
		extractors.NewRegistry(extractors.DefaultProbes()),
		extractors.DefaultExtractors(cmd.Schemeless, cmd.Logger),
		cmd.Logger,
	)
	result, err := extractors.NewPipeline(dispatcher, cmd.Logger).RunContext(ctx, paths, printer.Print)
	if err != nil {
		return err
	}

	cmd.Logger.Debug().
		Int("files", result.FilesProcessed).
		Int("records", result.RecordsExtracted).
		Str("format", spec.String()).
		Msg("Extraction complete")
	return nil
}

// resolvePaths picks explicit paths, then configured ones, then whatever
// default browser locations exist.
func resolvePaths(explicit, configured []string, env config.Environment, logger zerolog.Logger) ([]string, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}
	if len(configured) > 0 {
		logger.Debug().Strs("paths", configured).Msg("Using configured paths")
		return configured, nil
	}

	discovered := config.DefaultPaths(env)
	if len(discovered) == 0 {
		return nil, &entities.ConfigError{
			Key:    config.KeyPaths,
			Value:  "",
			Reason: "no paths given and no bookmark files found in the default locations",
		}
	}

	logger.Debug().Strs("paths", discovered).Msg("Using default paths")
	return discovered, nil
}
