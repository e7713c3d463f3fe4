// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/plugsmith/plugsmith/pkg/render"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// LogLevelDebug logs everything, including no-op mutations.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is the default level.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs persistence failures and recovered state only.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs errors only.
	LogLevelError LogLevel = "error"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidDirPath is returned when a DirPath value is whitespace-only.
	ErrInvalidDirPath = errors.New("invalid directory path")
	// ErrInvalidScaffoldConfig is the sentinel error wrapped by InvalidScaffoldConfigError.
	ErrInvalidScaffoldConfig = errors.New("invalid scaffold config")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// LogLevel is the minimum level the CLI logger emits.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	// It wraps ErrInvalidLogLevel for errors.Is() compatibility.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// DirPath is a filesystem directory path. The zero value is valid and
	// means "use the default directory"; non-zero values must not be
	// whitespace-only.
	DirPath string

	// InvalidDirPathError is returned when a DirPath value is non-empty but
	// whitespace-only.
	InvalidDirPathError struct {
		Field string
		Value DirPath
	}

	// InvalidScaffoldConfigError is returned when a ScaffoldConfig has invalid fields.
	InvalidScaffoldConfigError struct {
		FieldErrors []error
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// StateDir holds the persisted model document.
		StateDir DirPath `json:"state_dir" mapstructure:"state_dir"`
		// OutputDir is where export writes artifacts when --out is not given.
		OutputDir DirPath `json:"output_dir" mapstructure:"output_dir"`
		// Scaffold tunes the source scaffold renderer.
		Scaffold ScaffoldConfig `json:"scaffold" mapstructure:"scaffold"`
		// UI configures terminal output.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Log configures the logger.
		Log LogConfig `json:"log" mapstructure:"log"`
	}

	// ScaffoldConfig tunes hotkey translation and placeholders in the scaffold.
	ScaffoldConfig struct {
		// ControlToken replaces both "Ctrl" and "Control" in hotkeys.
		ControlToken string `json:"control_token" mapstructure:"control_token"`
		// Separator joins translated hotkey tokens.
		Separator string `json:"separator" mapstructure:"separator"`
		// Placeholder is written for empty parameter lists and hotkeys.
		Placeholder string `json:"placeholder" mapstructure:"placeholder"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// LogConfig configures logging.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
	}
)

// ScaffoldOptions converts the scaffold section into renderer options.
func (c Config) ScaffoldOptions() render.ScaffoldOptions {
	opts := render.DefaultScaffoldOptions()
	if c.Scaffold.ControlToken != "" {
		opts = opts.WithControlToken(c.Scaffold.ControlToken)
	}
	if c.Scaffold.Separator != "" {
		opts.Separator = c.Scaffold.Separator
	}
	if c.Scaffold.Placeholder != "" {
		opts.Placeholder = c.Scaffold.Placeholder
	}
	return opts
}

// IsValid returns whether the ScaffoldConfig has valid fields.
// The control token must not contain the hotkey delimiter.
func (c ScaffoldConfig) IsValid() (bool, []error) {
	if strings.Contains(c.ControlToken, "+") {
		return false, []error{&InvalidScaffoldConfigError{
			FieldErrors: []error{fmt.Errorf("control_token %q must not contain '+'", c.ControlToken)},
		}}
	}
	return true, nil
}

// Error implements the error interface for InvalidScaffoldConfigError.
func (e *InvalidScaffoldConfigError) Error() string {
	return fmt.Sprintf("invalid scaffold config: %v", errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidScaffoldConfig for errors.Is() compatibility.
func (e *InvalidScaffoldConfigError) Unwrap() error { return ErrInvalidScaffoldConfig }

// IsValid returns whether the UIConfig has valid fields.
func (c UIConfig) IsValid() (bool, []error) {
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		return false, []error{&InvalidUIConfigError{FieldErrors: fieldErrs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.StateDir.validate("state_dir"); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.OutputDir.validate("output_dir"); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Scaffold.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Log.Level.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// String returns the string representation of the DirPath.
func (p DirPath) String() string { return string(p) }

// IsValid returns whether the DirPath is empty or has non-whitespace content.
func (p DirPath) IsValid() (bool, []error) {
	return p.validate("")
}

func (p DirPath) validate(field string) (bool, []error) {
	if p != "" && strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidDirPathError{Field: field, Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidDirPathError.
func (e *InvalidDirPathError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid directory path %q: must not be whitespace-only", e.Value)
	}
	return fmt.Sprintf("invalid %s %q: must not be whitespace-only", e.Field, e.Value)
}

// Unwrap returns ErrInvalidDirPath for errors.Is() compatibility.
func (e *InvalidDirPathError) Unwrap() error { return ErrInvalidDirPath }

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidLogLevelError.
func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidLogLevelError) Unwrap() error {
	return ErrInvalidLogLevel
}

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

// Level maps the LogLevel onto a charm log level. Unknown values map to info.
func (l LogLevel) Level() log.Level {
	switch l {
	case LogLevelDebug:
		return log.DebugLevel
	case LogLevelWarn:
		return log.WarnLevel
	case LogLevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// DefaultConfig returns the default configuration. StateDir is left empty;
// the loader resolves it to {ConfigDir}/state.
func DefaultConfig() *Config {
	return &Config{
		StateDir:  "",
		OutputDir: ".",
		Scaffold: ScaffoldConfig{
			ControlToken: render.DefaultControlToken,
			Separator:    render.DefaultSeparator,
			Placeholder:  render.DefaultPlaceholder,
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Log: LogConfig{
			Level: LogLevelInfo,
		},
	}
}
