package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/dirinv/internal/config"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// flags holds the raw command-line values.
type flags struct {
	configFile string
	strategy   string
	outputDir  string
	format     string
	logLevel   string
	logFormat  string
	logOutput  string
	debug      bool
}

// overrides converts flags to config overrides. --debug is shorthand for --log-level=debug.
func (f flags) overrides(path string) config.Overrides {
	o := config.Overrides{
		Path:      path,
		Strategy:  f.strategy,
		OutputDir: f.outputDir,
		Format:    f.format,
		LogLevel:  f.logLevel,
		LogFormat: f.logFormat,
		LogOutput: f.logOutput,
	}

	if f.debug && o.LogLevel == "" {
		o.LogLevel = "debug"
	}

	return o
}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var opts flags

	cmd := &cobra.Command{
		Use:   "dirinv [flags] [path]",
		Short: "Hierarchical folder inventory for retain/delete/hold reviews",
		Long: heredoc.Doc(`
			dirinv walks a directory tree and reports, for every folder, its total size,
			the number of files and subfolders below it, the year it was created, the
			date it was last modified and its owner.

			The default output is an xlsx workbook with two sheets:
			  Folder_Hierarchy   one column per depth level
			  Folder_Properties  one row per folder, with empty review columns
			                     (scream test, delete, retain, hold, comment, ...)

			Positional Arguments:
			  path   Directory to analyze. Defaults to the current directory.

			Configuration is read from --config (YAML), then DIRINV_* environment
			variables (e.g. DIRINV_OUTPUT_DIR), then flags.
		`),
		Example: heredoc.Doc(`
			dirinv /srv/share
			dirinv --format table --strategy rewalk ~/projects
			dirinv --config dirinv.yaml --output-dir reports
		`),
		Args:          cobra.MaximumNArgs(1),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}

			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}

			cfg.ApplyOverrides(opts.overrides(path))

			if err := cfg.Validate(); err != nil {
				return err
			}

			return logic(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.SortFlags = false
	f.StringVarP(&opts.configFile, "config", "c", "", "Path to YAML configuration file")
	f.StringVarP(&opts.strategy, "strategy", "s", "", fmt.Sprintf("Subtree total strategy %v", config.ValidStrategies))
	f.StringVarP(&opts.outputDir, "output-dir", "O", "", "Directory for the workbook and log file")
	f.StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format %v", config.ValidFormats))
	f.StringVar(&opts.logLevel, "log-level", "", fmt.Sprintf("Override log level %v", config.ValidLogLevels))
	f.StringVar(&opts.logFormat, "log-format", "", fmt.Sprintf("Override log format %v", config.ValidLogFormats))
	f.StringVar(&opts.logOutput, "log-output", "", "Override log output (stdout, stderr, file, or a path)")
	f.BoolVar(&opts.debug, "debug", false, "Enable debug output")

	cmd.AddCommand(c.versionCommand())

	return cmd
}

func (c CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("dirinv version %s\n", c.version)
			cmd.Printf("  Go version: %s\n", runtime.Version())
			cmd.Printf("  OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// Execute runs the CLI with the process arguments. An interrupt stops the walk.
func (c CLI) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return c.Command().ExecuteContext(ctx)
}

var errUnknownFormat = errors.New("unknown output format")
