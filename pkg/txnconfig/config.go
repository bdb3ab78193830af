// Package txnconfig provides a reusable loader for the demo entry point's
// configuration: a mapstructure-tagged struct populated by viper from a
// YAML file plus environment overrides. The transaction family itself
// takes no runtime configuration — its identity (family name, versions,
// namespace) is fixed and exposed as package-level values in the root
// package, not something a deployment should be able to override. This
// package only configures cmd/supply-chain-tp's demo host loop.
package txnconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Version is the semantic version of this configuration package.
const Version = "v0.1.0"

// Config is the unified configuration for the demo entry point.
type Config struct {
	Logging struct {
		Level string `mapstructure:"level" json:"level"`
	} `mapstructure:"logging" json:"logging"`

	Demo struct {
		StatePath string `mapstructure:"state_path" json:"state_path"`
	} `mapstructure:"demo" json:"demo"`
}

// Default returns the configuration used when no config file is present:
// info-level logging, no persisted demo state (in-memory only).
func Default() Config {
	var c Config
	c.Logging.Level = "info"
	return c
}

// Load reads configuration from name (a YAML file), with environment
// variables prefixed SUPPLYCHAINTP_ overriding the values read from it.
// Missing files are not an error; Default() is returned unchanged instead,
// and environment variables are not consulted in that case.
func Load(name string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigFile(name)
	v.SetEnvPrefix("SUPPLYCHAINTP")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", name, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config %s: %w", name, err)
	}
	return cfg, nil
}
