// Package config loads user-tunable mirror settings from a YAML file.
// Flags override config values, which override built-in defaults.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultConfigFilename = "jbookdl.yaml"

// Config holds user-tunable settings.
type Config struct {
	// OutputDir is the root directory of the mirrored tree.
	OutputDir string `yaml:"output_dir"`
	// DelayMs is the pause between consecutive requests, in ms.
	DelayMs int `yaml:"delay_ms"`
	// TimeoutS bounds a single request, in seconds.
	TimeoutS int `yaml:"timeout_s"`
	// UserAgent is a short agent name or a literal User-Agent string.
	UserAgent string `yaml:"user_agent"`
	// Services restricts runs to the named services; empty means all.
	Services []string `yaml:"services"`
}

func Default() Config {
	return Config{
		OutputDir: "fy2026_budget",
		DelayMs:   300,
		TimeoutS:  120,
		UserAgent: "chrome",
	}
}

// Load reads the config at path, falling back to DefaultConfigFilename
// when path is empty. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultConfigFilename
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Delay returns DelayMs as a duration.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

// Timeout returns TimeoutS as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutS) * time.Second
}
