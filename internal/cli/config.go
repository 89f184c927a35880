package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/s2datasets/pkg/httputil"
	"github.com/matzehuels/s2datasets/pkg/integrations/semanticscholar"
)

// Environment variables read by the CLI.
const (
	envAPIKey  = "SEMANTIC_SCHOLAR_API_KEY"
	envBaseURL = "S2_DATASETS_BASE_URL"
	envOutput  = "S2_DATASETS_OUTPUT"
)

// Where a setting came from.
const (
	sourceFlag    = "flag"
	sourceEnv     = "env"
	sourceFile    = "file"
	sourceDefault = "default"
)

// fileConfig is the layout of config.toml.
type fileConfig struct {
	APIKey    string      `toml:"api_key"`
	BaseURL   string      `toml:"base_url"`
	OutputDir string      `toml:"output_dir"`
	Retry     retryConfig `toml:"retry"`
}

type retryConfig struct {
	Attempts  int      `toml:"attempts"`
	BaseDelay duration `toml:"base_delay"`
}

// duration decodes Go duration strings such as "300ms".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("negative duration %q", text)
	}
	d.Duration = v
	return nil
}

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	verbose    bool
	apiKey     string
	baseURL    string
	outputDir  string
	configPath string
}

// settings is the effective configuration after merging flags, environment,
// config file and defaults, in that order of precedence.
type settings struct {
	APIKey     string
	BaseURL    string
	OutputDir  string
	Policy     httputil.Policy
	ConfigPath string

	// Sources maps a setting name to where its value came from.
	Sources map[string]string
}

// defaultConfigPath returns the config file location using XDG standard
// (~/.config/s2datasets/config.toml).
func defaultConfigPath(getenv func(string) string) (string, error) {
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfigFile decodes the TOML file at path. A missing file yields an
// empty config unless required is set. Unknown keys are an error so that
// typos do not silently fall back to defaults.
func loadConfigFile(path string, required bool) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return fileConfig{}, nil
	}
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fileConfig{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Retry.Attempts < 0 {
		return fileConfig{}, fmt.Errorf("config %s: retry.attempts must not be negative", path)
	}
	return cfg, nil
}

// resolveSettings merges flags, environment and the config file.
func resolveSettings(flags globalFlags, getenv func(string) string) (settings, error) {
	path, required := flags.configPath, true
	if path == "" {
		required = false
		p, err := defaultConfigPath(getenv)
		if err == nil {
			path = p
		}
	}
	file, err := loadConfigFile(path, required)
	if err != nil {
		return settings{}, err
	}

	s := settings{
		ConfigPath: path,
		Policy:     httputil.DefaultPolicy(),
		Sources:    make(map[string]string),
	}
	s.APIKey = s.pick("api_key", flags.apiKey, getenv(envAPIKey), file.APIKey, "")
	s.BaseURL = s.pick("base_url", flags.baseURL, getenv(envBaseURL), file.BaseURL, semanticscholar.DefaultBaseURL)
	s.OutputDir = expandHome(s.pick("output_dir", flags.outputDir, getenv(envOutput), file.OutputDir, "."))

	s.Sources["retry.attempts"] = sourceDefault
	if file.Retry.Attempts > 0 {
		s.Policy.Attempts = file.Retry.Attempts
		s.Sources["retry.attempts"] = sourceFile
	}
	s.Sources["retry.base_delay"] = sourceDefault
	if file.Retry.BaseDelay.Duration > 0 {
		s.Policy.BaseDelay = file.Retry.BaseDelay.Duration
		s.Sources["retry.base_delay"] = sourceFile
	}
	return s, nil
}

func (s *settings) pick(name, flag, env, file, def string) string {
	for _, c := range []struct{ value, source string }{
		{strings.TrimSpace(flag), sourceFlag},
		{strings.TrimSpace(env), sourceEnv},
		{strings.TrimSpace(file), sourceFile},
	} {
		if c.value != "" {
			s.Sources[name] = c.source
			return c.value
		}
	}
	s.Sources[name] = sourceDefault
	return def
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

// maskKey hides all but the last four characters of an API key.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", 8) + key[len(key)-4:]
}

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
		Long: `Inspect the configuration.

Settings are taken from, in order of precedence: command-line flags,
environment variables (` + envAPIKey + `, ` + envBaseURL + `,
` + envOutput + `), the config file, and built-in defaults.

Example config.toml:

  api_key    = "..."
  output_dir = "~/data/s2"

  [retry]
  attempts   = 5
  base_delay = "300ms"`,
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.flags.configPath
			if path == "" {
				p, err := defaultConfigPath(c.getenv)
				if err != nil {
					return fmt.Errorf("get config dir: %w", err)
				}
				path = p
			}
			fmt.Fprintln(output, path)
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings and where they come from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(c.flags, c.getenv)
			if err != nil {
				return err
			}

			line := func(key, value string) {
				printKeyValue(key, value+" "+StyleDim.Render("("+s.Sources[key]+")"))
			}
			printKeyValue("config", s.ConfigPath)
			line("api_key", maskKey(s.APIKey))
			line("base_url", s.BaseURL)
			line("output_dir", s.OutputDir)
			line("retry.attempts", fmt.Sprint(s.Policy.Attempts))
			line("retry.base_delay", s.Policy.BaseDelay.String())
			return nil
		},
	}
}
