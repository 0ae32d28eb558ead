package di

import "github.com/goliatone/gitweb/pkg/config"

// provideConfig creates an empty configuration.
func provideConfig() *config.Config {
	return config.New()
}

// provideConfigWithDefaults creates a configuration with defaults applied.
// Precedence between file, environment and flags is resolved upstream by
// config.Builder; the container only fills what is still unset.
func provideConfigWithDefaults() (*config.Config, error) {
	cfg := provideConfig()
	if err := config.ApplyDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
