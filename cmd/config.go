package cmd

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	bnalpha "github.com/leo-web3/bn-alpha-tools"
)

// config is the optional TOML configuration of the CLI.
type config struct {
	DB      string `toml:"db"`      // path to the data file
	Windows []int  `toml:"windows"` // stat card windows, in days
}

// defaultConfig returns the configuration used when no file is present.
func defaultConfig() config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return config{
		DB:      filepath.Join(home, ".bnalpha", "bnalpha.db"),
		Windows: bnalpha.DefaultStatWindows,
	}
}

// loadConfig reads the config file when one exists and fills missing fields
// with defaults. A broken or absent file falls back to defaults entirely:
// configuration is a convenience, never a blocker.
func loadConfig() config {
	path := *configFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return defaultConfig()
		}
		path = filepath.Join(home, ".config", "bnalpha", "config.toml")
	}

	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig()
	}
	if cfg.DB == "" {
		cfg.DB = defaultConfig().DB
	}
	if len(cfg.Windows) == 0 {
		cfg.Windows = bnalpha.DefaultStatWindows
	}
	return cfg
}
