// Package config handles global configuration loading using viper.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"firestige.xyz/forge/internal/core"
	"firestige.xyz/forge/internal/log"
)

// Config is the top-level tool configuration. All of it is optional; a
// missing config file yields the defaults.
type Config struct {
	Log    log.LoggerConfig `mapstructure:"log"`
	Output OutputConfig     `mapstructure:"output"`
}

// OutputConfig contains defaults for the encode command's output sink.
type OutputConfig struct {
	Path    string `mapstructure:"path"`     // default pcap output path
	SnapLen uint32 `mapstructure:"snap_len"` // pcap snapshot length
}

// Load reads the global configuration from path. An empty path falls back
// to forge.yml in the working directory; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pattern", "%time [%level] %msg %field%n")
	v.SetDefault("log.time", "2006-01-02 15:04:05")
	v.SetDefault("output.path", "forge.pcap")
	v.SetDefault("output.snap_len", 65536)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %v", core.ErrConfigInvalid, err)
		}
	} else {
		v.SetConfigName("forge")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/forge")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %v", core.ErrConfigInvalid, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrConfigInvalid, err)
	}
	return &cfg, nil
}
