package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrlokans/bookmarks/internal/config"
)

// Exit statuses. A successful extraction exits with ExitExtracted rather
// than 0, matching what existing scripts around the tool expect.
const (
	ExitOK        = 0
	ExitExtracted = 1
	ExitFailure   = 2
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	version string
	commit  string
	stdout  io.Writer
	stderr  io.Writer
	env     config.Environment

	viper     *viper.Viper
	cfg       *config.Config
	logger    zerolog.Logger
	extracted bool
}

// Execute runs the command line of the current process and returns the
// exit status. Only serve traps SIGINT and SIGTERM; an interrupted
// extraction exits right away.
func Execute(version, commit string) int {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, config.CurrentEnvironment(), version, commit)
}

// Run executes args and returns the exit status. Fatal errors are printed
// to stderr as a single "Error: ..." line.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, env config.Environment, version, commit string) int {
	a := &app{
		version: version,
		commit:  commit,
		stdout:  stdout,
		stderr:  stderr,
		env:     env,
		viper:   config.NewViper(),
		logger:  zerolog.Nop(),
	}

	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}

	if a.extracted {
		return ExitExtracted
	}
	return ExitOK
}

func (a *app) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "bookmarks [paths...]",
		Short: "Extract bookmarks from browser profiles and link lists",
		Long: `bookmarks prints one line per bookmark found in the given files:

  *.plist      Safari Bookmarks.plist
  *.sqlite     Firefox places.sqlite
  *Bookmarks   Chrome, Chromium and Edge bookmark files
  *Favorites   Internet Explorer favorites directory (Windows only)
  *.txt        plain text, one URL per line
  *.md         markdown, one [title](url) link per line

Without paths, the configured paths are used, then the default browser
locations of this system (see "bookmarks paths").

A successful extraction exits with status 1; errors exit with status 2.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
		RunE:              a.runExtract,
	}

	flags := root.PersistentFlags()
	flags.StringP("format", "f", config.DefaultFormat, "fields to print, in order: t(itle), u(rl), d(escription)")
	flags.BoolP("schemeless", "s", false, "also match URLs without a scheme in plain text files")
	flags.BoolP("verbose", "v", false, "log diagnostics to stderr")
	flags.String("config", "", "path to a YAML config file")

	for key, flag := range map[string]string{
		config.KeyFormat:     "format",
		config.KeySchemeless: "schemeless",
		config.KeyVerbose:    "verbose",
		config.KeyConfigFile: "config",
	} {
		_ = a.viper.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		a.newExtractCommand(),
		a.newServeCommand(),
		a.newPathsCommand(),
		a.newVersionCommand(),
	)

	return root
}

func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewConfig(a.viper)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(a.stderr, cfg.Verbose)
	return nil
}

func (a *app) newExtractCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [paths...]",
		Short: "Print the bookmarks of the given files (default command)",
		Args:  cobra.ArbitraryArgs,
		RunE:  a.runExtract,
	}
}

func (a *app) runExtract(c *cobra.Command, args []string) error {
	cmd := &ExtractCommand{
		Paths:       args,
		Format:      a.cfg.Format,
		Schemeless:  a.cfg.Schemeless,
		ConfigPaths: a.cfg.Paths,
		Env:         a.env,
		Stdout:      a.stdout,
		Logger:      a.logger,
	}
	if err := cmd.Run(c.Context()); err != nil {
		return err
	}
	a.extracted = true
	return nil
}

func (a *app) newServeCommand() *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve [paths...]",
		Short: "Serve the bookmarks over HTTP and refresh them on a schedule",
		Args:  cobra.ArbitraryArgs,
		RunE: func(c *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cmd := &ServeCommand{
				Config:  a.cfg,
				Paths:   args,
				Env:     a.env,
				Version: a.version,
				Logger:  a.logger,
			}
			return cmd.Run(ctx)
		},
	}

	flags := serve.Flags()
	flags.String("host", config.DefaultHTTPHost, "address to listen on")
	flags.Int32("port", config.DefaultHTTPPort, "port to listen on")
	flags.String("schedule", config.DefaultRefreshSchedule, "cron schedule for refreshing the bookmarks")
	_ = a.viper.BindPFlag(config.KeyHTTPHost, flags.Lookup("host"))
	_ = a.viper.BindPFlag(config.KeyHTTPPort, flags.Lookup("port"))
	_ = a.viper.BindPFlag(config.KeyRefreshSchedule, flags.Lookup("schedule"))

	return serve
}

func (a *app) newPathsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "List the default bookmark locations found on this system",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			cmd := &PathsCommand{Env: a.env, Stdout: a.stdout, Logger: a.logger}
			return cmd.Run()
		},
	}
}

func (a *app) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(a.stdout, "bookmarks %s (commit %s)\n", a.version, a.commit)
			return err
		},
	}
}
