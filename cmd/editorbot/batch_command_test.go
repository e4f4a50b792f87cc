package main

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"editorbot/internal/pipeline"
	"editorbot/internal/testsupport"
)

func writeManifest(t *testing.T, dir string) string {
	t.Helper()
	writeInputs(t, dir)
	testsupport.WriteJSON(t, filepath.Join(dir, "empty.json"), map[string]any{
		"beats": []any{map[string]any{"role": "hook", "text": "x", "duration": 0}},
	})
	return testsupport.WriteYAML(t, filepath.Join(dir, "jobs.yaml"), map[string]any{
		"jobs": []any{
			map[string]any{"name": "reel", "script": "script.json", "template": "template.yaml", "audio": "a.wav"},
			map[string]any{"name": "music", "script": "script.json", "template": "template.yaml", "strategy": "strategy.yaml", "audio": "b.wav"},
			map[string]any{"script": "empty.json", "audio": "c.wav"},
		},
	})
}

func TestBatchBuildsManifestJobs(t *testing.T) {
	env := setupCLITestEnv(t)
	manifest := writeManifest(t, env.baseDir)

	out, _, err := runCLI(t, []string{"batch", manifest, "--workers", "2"}, env.configPath)
	if err == nil {
		t.Fatal("expected batch error for the zero-duration job")
	}
	requireContains(t, err.Error(), "1 of 3 batch job(s) failed")
	requireContains(t, out, "FAILED")
	requireContains(t, out, "job_3")
	requireContains(t, out, "2 of 3 job(s) succeeded")

	if files := planFiles(t, env.cfg.Output.Dir, ".json"); len(files) != 2 {
		t.Fatalf("expected two plan files, got %v", files)
	}
}

func TestBatchJSONOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	manifest := writeManifest(t, env.baseDir)

	out, _, _ := runCLI(t, []string{"--json", "batch", manifest}, env.configPath)
	var jobs []batchJobOutput
	if err := json.Unmarshal([]byte(out), &jobs); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(jobs) != 3 || jobs[0].Name != "reel" || jobs[0].Path == "" || jobs[2].Error == "" {
		t.Fatalf("unexpected jobs %+v", jobs)
	}
}

func TestBatchRefusesLockedOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	manifest := writeManifest(t, env.baseDir)

	lock, err := pipeline.AcquireOutputLock(env.cfg.LockPath())
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	defer lock.Release()

	_, _, err = runCLI(t, []string{"batch", manifest}, env.configPath)
	if !errors.Is(err, pipeline.ErrOutputLocked) {
		t.Fatalf("expected ErrOutputLocked, got %v", err)
	}
}

func TestBatchManifestErrors(t *testing.T) {
	env := setupCLITestEnv(t)
	manifest := testsupport.WriteJSON(t, filepath.Join(env.baseDir, "bad.json"), map[string]any{
		"jobs": []any{map[string]any{"script": "script.json"}},
	})

	_, _, err := runCLI(t, []string{"batch", manifest}, env.configPath)
	if err == nil {
		t.Fatal("expected manifest error")
	}
	requireContains(t, err.Error(), "jobs[0].audio")
}
