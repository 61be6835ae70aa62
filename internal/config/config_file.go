package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML-friendly types. Pointers distinguish
// "unset" from zero values.
type FileConfig struct {
	Method          string   `toml:"method"`
	Format          string   `toml:"format"`
	Sample          string   `toml:"sample"`
	Taper           string   `toml:"taper"`
	TukeyAlpha      *float64 `toml:"tukey_alpha"`
	Normalize       *bool    `toml:"normalize"`
	ShowCorrelation *bool    `toml:"show_correlation"`
	ShowDatasets    *bool    `toml:"show_datasets"`
	Increment       *float64 `toml:"increment"`
	LogLevel        string   `toml:"log_level"`
	LogFormat       string   `toml:"log_format"`
	Watch           *bool    `toml:"watch"`
	Debounce        string   `toml:"debounce"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.xcoffset/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".xcoffset", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("method", fc.Method, &cfg.Method)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("sample", fc.Sample, &cfg.Sample)
	s.setString("taper", fc.Taper, &cfg.Taper)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("log-format", fc.LogFormat, &cfg.LogFormat)

	s.setFloat("tukey-alpha", fc.TukeyAlpha, &cfg.TukeyAlpha)
	s.setFloat("increment", fc.Increment, &cfg.Increment)

	s.setBool("normalize", fc.Normalize, &cfg.Normalize)
	s.setBool("show-correlation", fc.ShowCorrelation, &cfg.ShowCorrelation)
	s.setBool("show-datasets", fc.ShowDatasets, &cfg.ShowDatasets)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
