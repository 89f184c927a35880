// Package cli implements the s2datasets command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/s2datasets/pkg/buildinfo"
	s2errors "github.com/matzehuels/s2datasets/pkg/errors"
	"github.com/matzehuels/s2datasets/pkg/integrations/semanticscholar"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "s2datasets"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	flags  globalFlags
	getenv func(string) string
}

// New creates a new CLI instance with a default logger. Every line the
// logger writes carries a run id unique to this invocation.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level).With("run", newRunID()),
		getenv: os.Getenv,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Verbose reports whether --verbose was given.
func (c *CLI) Verbose() bool {
	return c.flags.verbose
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "s2datasets downloads bulk data from the Semantic Scholar Datasets API",
		Long: `s2datasets lists the releases of the Semantic Scholar Datasets API, resolves
the download URLs of a dataset and fetches its files, either a full release
or the incremental diffs between two releases.

Resolving download URLs requires an API key, passed with --api-key or the
` + envAPIKey + ` environment variable.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.flags.apiKey, "api-key", "", "API key (default $"+envAPIKey+")")
	pf.StringVar(&c.flags.baseURL, "base-url", "", "API base URL (default "+semanticscholar.DefaultBaseURL+")")
	pf.StringVarP(&c.flags.outputDir, "output", "o", "", "directory downloads are written to (default .)")
	pf.StringVar(&c.flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/"+appName+"/config.toml)")

	// Register all subcommands
	root.AddCommand(c.datasetsCommand())
	root.AddCommand(c.releasesCommand())
	root.AddCommand(c.urlsCommand())
	root.AddCommand(c.diffsCommand())
	root.AddCommand(c.downloadCommand())
	root.AddCommand(c.downloadDiffsCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Client Factory
// =============================================================================

// newClient builds an API client from the effective settings. hooks may be
// nil when the command does not report progress.
func (c *CLI) newClient(hooks *transferHooks) (*semanticscholar.Client, error) {
	s, err := resolveSettings(c.flags, c.getenv)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("settings", "config", s.ConfigPath, "base_url", s.BaseURL, "output_dir", s.OutputDir,
		"api_key", s.Sources["api_key"])

	opts := []semanticscholar.Option{
		semanticscholar.WithAPIKey(s.APIKey),
		semanticscholar.WithBaseURL(s.BaseURL),
		semanticscholar.WithOutputDir(s.OutputDir),
		semanticscholar.WithPolicy(s.Policy),
		semanticscholar.WithLogger(c.clientLogger()),
	}
	if hooks != nil {
		opts = append(opts, semanticscholar.WithHooks(hooks))
	}
	return semanticscholar.NewClient(opts...), nil
}

// clientLogger returns the logger handed to the API client. Unless verbose
// output was requested, progress on a terminal is shown by the spinner, so
// the client only reports warnings there.
func (c *CLI) clientLogger() *log.Logger {
	if c.Verbose() || !isatty.IsTerminal(os.Stderr.Fd()) {
		return c.Logger
	}
	l := c.Logger.With()
	l.SetLevel(log.WarnLevel)
	return l
}

// completeDataset offers dataset names for the first positional argument.
func completeDataset(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return semanticscholar.NewClient().ListDatasets(), cobra.ShellCompDirectiveNoFileComp
}

// displayPath shortens path relative to the working directory when possible.
func displayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(wd, abs); err == nil && !filepath.IsAbs(rel) && len(rel) < len(abs) {
		return rel
	}
	return path
}

// missingArgument returns an INVALID_ARGUMENT error for a required
// positional argument that was not given.
func missingArgument(name string) error {
	return s2errors.New(s2errors.ErrCodeInvalidArgument, "missing %s argument", name)
}
