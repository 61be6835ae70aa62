package config

import "os"

// EnvPrefix prefixes every environment variable read by ApplyEnvConfig.
const EnvPrefix = "XCOFFSET_"

// ApplyEnvConfig applies XCOFFSET_* environment variables to cfg, skipping
// values whose flag was set explicitly.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("method", os.Getenv(EnvPrefix+"METHOD"), &cfg.Method)
	s.setString("format", os.Getenv(EnvPrefix+"FORMAT"), &cfg.Format)
	s.setString("sample", os.Getenv(EnvPrefix+"SAMPLE"), &cfg.Sample)
	s.setString("taper", os.Getenv(EnvPrefix+"TAPER"), &cfg.Taper)
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv(EnvPrefix+"LOG_FORMAT"), &cfg.LogFormat)

	if err := s.setFloatFromString("tukey-alpha", os.Getenv(EnvPrefix+"TUKEY_ALPHA"), &cfg.TukeyAlpha); err != nil {
		return err
	}
	if err := s.setFloatFromString("increment", os.Getenv(EnvPrefix+"INCREMENT"), &cfg.Increment); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv(EnvPrefix+"DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	if err := s.setBoolFromString("normalize", os.Getenv(EnvPrefix+"NORMALIZE"), &cfg.Normalize); err != nil {
		return err
	}
	if err := s.setBoolFromString("show-correlation", os.Getenv(EnvPrefix+"SHOW_CORRELATION"), &cfg.ShowCorrelation); err != nil {
		return err
	}
	if err := s.setBoolFromString("show-datasets", os.Getenv(EnvPrefix+"SHOW_DATASETS"), &cfg.ShowDatasets); err != nil {
		return err
	}
	if err := s.setBoolFromString("watch", os.Getenv(EnvPrefix+"WATCH"), &cfg.Watch); err != nil {
		return err
	}

	return nil
}
