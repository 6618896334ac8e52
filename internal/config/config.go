// Package config loads the digest configuration document.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config describes one digest run: where to look for open pull requests and
// how much of what is found may reach the rendered output.
type Config struct {
	Org                     string   `mapstructure:"org"`
	Repos                   []string `mapstructure:"repos"`
	Users                   []string `mapstructure:"users"`
	MaxPRsPerRepo           int      `mapstructure:"max_prs_per_repo"`
	MaxTotalPRs             int      `mapstructure:"max_total_prs"`
	MaxSearchResultsPerUser int      `mapstructure:"max_search_results_per_user"`
}

// Load reads the configuration document at path, applies defaults for the
// caps, and validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is required")
	}

	v := viper.New()
	v.SetConfigFile(path)

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate ensures the document names an organization and at least one source
// of pull requests.
func (c Config) Validate() error {
	if c.Org == "" {
		return errors.New("org is required")
	}
	if len(c.Repos) == 0 && len(c.Users) == 0 {
		return errors.New("at least one of repos or users must be set")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("max_prs_per_repo", 25)
	v.SetDefault("max_total_prs", 200)
	v.SetDefault("max_search_results_per_user", 500)
}
