package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Scanner ScannerConfig `toml:"scanner"`
	Checker CheckerConfig `toml:"checker"`
	Logging LoggingConfig `toml:"logging"`
	Report  ReportConfig  `toml:"report"`
}

type ScannerConfig struct {
	Root string `toml:"root"`
	Ext  string `toml:"ext"`
}

type CheckerConfig struct {
	UserAgent string `toml:"user_agent"`
	Timeout   string `toml:"timeout"`
	Workers   int    `toml:"workers"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type ReportConfig struct {
	Strict bool `toml:"strict"`
}

// Default is the configuration a bare invocation runs with:
// scan the working directory for .md files, one sequential checker.
func Default() *Config {
	return &Config{
		Scanner: ScannerConfig{Root: ".", Ext: ".md"},
		Checker: CheckerConfig{UserAgent: "linkrot/0.1", Timeout: "10s", Workers: 1},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads a TOML config file on top of the defaults.
// A missing file is not an error; the tool runs with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *CheckerConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second // Fallback
	}
	return d
}
