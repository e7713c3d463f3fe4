// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions selects where configuration is read from.
type LoadOptions struct {
	// ConfigFilePath is the --config flag. When set, only that file is read
	// and a missing file is an error.
	ConfigFilePath string
	// ConfigDirPath replaces ConfigDir() for the config.cue/config.toml lookup.
	ConfigDirPath string
}

// Provider loads the effective configuration. The CLI takes a Provider so
// commands can run against a fixed Config in tests.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

type fileProvider struct{}

// NewProvider returns the Provider that reads files, PLUGSMITH_* variables
// and defaults through viper.
func NewProvider() Provider {
	return &fileProvider{}
}

func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	return cfg, err
}
