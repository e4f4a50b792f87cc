package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"editorbot/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("EDITORBOT_LOG_LEVEL", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantDir := filepath.Join(tempHome, ".local", "share", "editorbot", "plans")
	if cfg.Output.Dir != wantDir {
		t.Fatalf("unexpected output dir: got %q want %q", cfg.Output.Dir, wantDir)
	}
	if cfg.Output.FilenamePrefix != "editorbot" {
		t.Fatalf("unexpected filename prefix: %q", cfg.Output.FilenamePrefix)
	}
	if cfg.Output.Encoding != "json" {
		t.Fatalf("unexpected encoding: %q", cfg.Output.Encoding)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Batch.Workers != 4 {
		t.Fatalf("unexpected workers: %d", cfg.Batch.Workers)
	}
	if got := cfg.LockPath(); got != filepath.Join(wantDir, ".editorbot.lock") {
		t.Fatalf("unexpected lock path: %q", got)
	}
}

func TestLoadCustomConfig(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	configPath := filepath.Join(t.TempDir(), "config.toml")
	payload := `
[output]
filename_prefix = "studio"
dir = "~/renders"
encoding = "YML"

[logging]
format = "JSON"
level = "Debug"

[logging.component_levels]
Builder = "WARN"

[batch]
workers = 2
lock_file = "~/locks/batch.lock"
`
	if err := os.WriteFile(configPath, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Output.FilenamePrefix != "studio" {
		t.Fatalf("unexpected prefix: %q", cfg.Output.FilenamePrefix)
	}
	if cfg.Output.Dir != filepath.Join(tempHome, "renders") {
		t.Fatalf("unexpected output dir: %q", cfg.Output.Dir)
	}
	if cfg.Output.Encoding != "yaml" {
		t.Fatalf("expected yml to normalize to yaml, got %q", cfg.Output.Encoding)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
	if level, ok := cfg.ComponentLevel("builder"); !ok || level != "warn" {
		t.Fatalf("unexpected builder level: %q %v", level, ok)
	}
	if cfg.Batch.Workers != 2 {
		t.Fatalf("unexpected workers: %d", cfg.Batch.Workers)
	}
	if cfg.LockPath() != filepath.Join(tempHome, "locks", "batch.lock") {
		t.Fatalf("unexpected lock path: %q", cfg.LockPath())
	}
}

func TestLoadUsesEnvLogLevelWhenUnset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("EDITORBOT_LOG_LEVEL", "WARN")

	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[logging]\nlevel = \"\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected env log level, got %q", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{
			name:   "encoding",
			mutate: func(c *config.Config) { c.Output.Encoding = "xml" },
			want:   "output.encoding",
		},
		{
			name:   "prefix",
			mutate: func(c *config.Config) { c.Output.FilenamePrefix = "bad/prefix" },
			want:   "output.filename_prefix",
		},
		{
			name:   "level",
			mutate: func(c *config.Config) { c.Logging.Level = "verbose" },
			want:   "logging.level",
		},
		{
			name:   "component level",
			mutate: func(c *config.Config) { c.Logging.ComponentLevels = map[string]string{"builder": "loud"} },
			want:   "logging.component_levels.builder",
		},
		{
			name:   "workers",
			mutate: func(c *config.Config) { c.Batch.Workers = -1 },
			want:   "batch.workers",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Output.Dir = t.TempDir()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[output\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestCreateSampleProducesParseableConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var parsed config.Config
	if err := toml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("sample config is not valid toml: %v", err)
	}
	if parsed.Output.FilenamePrefix == "" {
		t.Fatal("expected sample to set output.filename_prefix")
	}
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Output.Dir = filepath.Join(base, "plans")
	cfg.Logging.Dir = filepath.Join(base, "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories returned error: %v", err)
	}
	for _, dir := range []string{cfg.Output.Dir, cfg.Logging.Dir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("expected directory %q: %v", dir, err)
		}
	}
}
