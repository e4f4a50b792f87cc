package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"editorbot/internal/config"
	"editorbot/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("EDITORBOT_LOG_LEVEL", "")

	cfg := testsupport.NewConfig(t, opts...)
	configPath := filepath.Join(base, "editorbot.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath, baseDir: base}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(
		"[output]\ndir = %q\nencoding = %q\n\n[logging]\nlevel = \"error\"\ndir = %q\n\n[batch]\nworkers = %d\nlock_file = %q\n",
		cfg.Output.Dir,
		cfg.Output.Encoding,
		cfg.Logging.Dir,
		cfg.Batch.Workers,
		cfg.Batch.LockFile,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeInputs stores the two-beat script as JSON and the reel template and
// music strategy as YAML under dir.
func writeInputs(t *testing.T, dir string) (script, template, strategy string) {
	t.Helper()
	script = testsupport.WriteJSON(t, filepath.Join(dir, "script.json"), testsupport.ScriptRecord())
	template = testsupport.WriteYAML(t, filepath.Join(dir, "template.yaml"), testsupport.TemplateRecord())
	strategy = testsupport.WriteYAML(t, filepath.Join(dir, "strategy.yaml"), map[string]any{
		"soundtrack_id":  "track.mp3",
		"visual_prompts": map[string]any{"hook_0": "neon city at night"},
	})
	return script, template, strategy
}

func planFiles(t *testing.T, dir, ext string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	return matches
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
