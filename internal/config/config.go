// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/plugsmith/plugsmith/internal/fsutil"
	"github.com/plugsmith/plugsmith/internal/issue"
	"github.com/plugsmith/plugsmith/pkg/cueutil"
)

const (
	// AppName is the application name.
	AppName = "plugsmith"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// TOMLFileExt is the extension of the alternative TOML config file.
	TOMLFileExt = "toml"
	// EnvPrefix prefixes environment overrides, e.g. PLUGSMITH_LOG_LEVEL.
	EnvPrefix = "PLUGSMITH"
	// StateDirName is the state directory under the config directory.
	StateDirName = "state"
)

//go:embed config_schema.cue
var configSchema []byte

// configDirOverride replaces the platform lookup in ConfigDir when set. Only
// tests set it, through overrideConfigDir.
var configDirOverride string

// ConfigDir returns the plugsmith configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// FindConfigFile returns the file loadWithOptions would read, or "" when no
// config file exists and defaults apply. An explicit ConfigFilePath that does
// not exist is an error.
func FindConfigFile(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				WithSuggestion("Use 'plugsmith config show' to see the default configuration").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
	if err != nil {
		return "", err
	}

	candidates := []string{
		filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt),
		filepath.Join(cfgDir, ConfigFileName+"."+TOMLFileExt),
		ConfigFileName + "." + ConfigFileExt,
	}
	for _, path := range candidates {
		if fileExists(path) {
			return path, nil
		}
	}
	return "", nil
}

// loadWithOptions performs option-driven config loading without mutating
// package-level state.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("state_dir", defaults.StateDir)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("scaffold.control_token", defaults.Scaffold.ControlToken)
	v.SetDefault("scaffold.separator", defaults.Scaffold.Separator)
	v.SetDefault("scaffold.placeholder", defaults.Scaffold.Placeholder)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	v.SetDefault("log.level", defaults.Log.Level)

	resolvedPath, err := FindConfigFile(opts)
	if err != nil {
		return nil, "", err
	}

	if resolvedPath != "" {
		if err := loadFileIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Check that the file contains valid CUE or TOML syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("Run 'plugsmith config init' to write a default configuration").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	// Environment overrides bypass the CUE schema.
	if valid, errs := cfg.IsValid(); !valid {
		ctxErr := issue.NewErrorContext().
			WithOperation("validate configuration").
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Check PLUGSMITH_* environment variables for typos")
		if resolvedPath != "" {
			ctxErr = ctxErr.WithResource(resolvedPath)
		}
		return nil, "", ctxErr.Wrap(errs[0]).BuildError()
	}

	if cfg.StateDir == "" {
		cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
		if err != nil {
			return nil, "", err
		}
		cfg.StateDir = DirPath(filepath.Join(cfgDir, StateDirName))
	}

	return &cfg, resolvedPath, nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// loadFileIntoViper reads a CUE or TOML file, validates it against the
// #Config schema and merges its contents into Viper.
func loadFileIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	opts := []cueutil.Option{cueutil.WithFilename(path), cueutil.WithConcrete(false)}

	var result *cueutil.ParseResult[map[string]any]
	if strings.EqualFold(filepath.Ext(path), "."+TOMLFileExt) {
		if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
			return err
		}
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse TOML: %w", err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
		result, err = cueutil.ValidateAndDecode[map[string]any](configSchema, raw, "#Config", opts...)
	} else {
		result, err = cueutil.ParseAndDecode[map[string]any](configSchema, data, "#Config", opts...)
	}
	if err != nil {
		return err
	}

	// Merge preserves defaults and env overrides.
	if err := v.MergeConfigMap(*result.Value); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes a default config.cue into the config directory
// unless one already exists. It returns the path and whether it was written.
func CreateDefaultConfig() (string, bool, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", false, err
	}

	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath, false, nil
	}

	if err := fsutil.WriteFileAtomic(cfgPath, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfgPath, true, nil
}

// GenerateCUE generates a CUE representation of the configuration.
// An empty StateDir is omitted so the loader keeps resolving the default.
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// plugsmith configuration file\n")
	sb.WriteString("// Every field is optional. Environment variables PLUGSMITH_* override it.\n\n")

	if cfg.StateDir != "" {
		fmt.Fprintf(&sb, "state_dir: %q\n", cfg.StateDir)
	}
	if cfg.OutputDir != "" {
		fmt.Fprintf(&sb, "output_dir: %q\n", cfg.OutputDir)
	}

	sb.WriteString("\nscaffold: {\n")
	if cfg.Scaffold.ControlToken != "" {
		fmt.Fprintf(&sb, "\tcontrol_token: %q\n", cfg.Scaffold.ControlToken)
	}
	fmt.Fprintf(&sb, "\tseparator: %q\n", cfg.Scaffold.Separator)
	fmt.Fprintf(&sb, "\tplaceholder: %q\n", cfg.Scaffold.Placeholder)
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tcolor_scheme: %q\n", cfg.UI.ColorScheme)
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	sb.WriteString("\nlog: {\n")
	fmt.Fprintf(&sb, "\tlevel: %q\n", cfg.Log.Level)
	sb.WriteString("}\n")

	return sb.String()
}
