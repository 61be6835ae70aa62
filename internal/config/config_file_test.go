package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestApplyFileConfig(t *testing.T) {
	trueVal := true
	alpha := 0.25
	inc := 0.5

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				Method:     "fft",
				Format:     "json",
				Taper:      "tukey",
				TukeyAlpha: &alpha,
				Increment:  &inc,
				Normalize:  &trueVal,
				Debounce:   "1s",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				Method:     "fft",
				Format:     "json",
				Taper:      "tukey",
				TukeyAlpha: 0.25,
				Increment:  0.5,
				Normalize:  true,
				Debounce:   time.Second,
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				Method: "fft",
				Format: "yaml",
			},
			changed: map[string]bool{"method": true},
			initial: Config{
				Method: "direct",
				Format: "text",
			},
			expected: Config{
				Method: "direct",
				Format: "yaml",
			},
		},
		{
			name: "returns error for invalid duration",
			fileConfig: FileConfig{
				Debounce: "soon",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyFileConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg != tt.expected {
				t.Errorf("ApplyFileConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		`method = "direct"`,
		`format = "markdown"`,
		`taper = "hann"`,
		`show_correlation = true`,
		`increment = 0.25`,
		`debounce = "500ms"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() = %v", err)
	}
	if fc.Method != "direct" || fc.Format != "markdown" || fc.Taper != "hann" {
		t.Errorf("unexpected strings: %+v", fc)
	}
	if fc.ShowCorrelation == nil || !*fc.ShowCorrelation {
		t.Error("show_correlation not parsed")
	}
	if fc.Increment == nil || *fc.Increment != 0.25 {
		t.Error("increment not parsed")
	}
	if fc.Normalize != nil {
		t.Error("absent normalize should stay nil")
	}

	cfg := DefaultConfig()
	if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
		t.Fatal(err)
	}
	if cfg.Debounce != 500*time.Millisecond {
		t.Errorf("Debounce = %v", cfg.Debounce)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadFileConfigErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFileConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("method = [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(bad); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.toml")

	if FileExists(path) {
		t.Error("FileExists() = true before creation")
	}
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("FileExists() = false after creation")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	got := DefaultConfigPath()
	want := filepath.Join("/home/tester", ".xcoffset", "config.toml")
	if got != want {
		t.Errorf("DefaultConfigPath() = %q, want %q", got, want)
	}
}
