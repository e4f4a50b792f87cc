package main

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"editorbot/internal/builder"
	"editorbot/internal/pipeline"
	"editorbot/internal/serialize"
	"editorbot/internal/testsupport"
)

func writeBrokenPlan(t *testing.T, dir string) string {
	t.Helper()
	p := testsupport.BuildPlan(t, testsupport.TwoBeatScript(), testsupport.ReelTemplate(), builder.VisualStrategy{})
	r := serialize.Serialize(p)
	r["fps"] = 0
	return testsupport.WriteJSON(t, filepath.Join(dir, "broken.json"), r)
}

func TestValidateFailsOnFatalFindings(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeBrokenPlan(t, env.baseDir)

	out, _, err := runCLI(t, []string{"validate", path}, env.configPath)
	if !errors.Is(err, pipeline.ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
	requireContains(t, out, "[ERROR] validation failed: 1 fatal")
	requireContains(t, out, "INVALID_FPS")
	requireContains(t, out, "UNUSUAL_FPS")
}

func TestValidateJSONReport(t *testing.T) {
	env := setupCLITestEnv(t)
	broken := writeBrokenPlan(t, env.baseDir)
	good := testsupport.WriteJSON(t, filepath.Join(env.baseDir, "good.json"),
		serialize.Serialize(testsupport.BuildPlan(t, testsupport.TwoBeatScript(), testsupport.ReelTemplate(), builder.VisualStrategy{})))

	out, _, err := runCLI(t, []string{"validate", "--json", good, broken}, env.configPath)
	if err == nil {
		t.Fatal("expected failure for broken plan")
	}
	var reports []validationReport
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(reports) != 2 || !reports[0].Result.Passed || reports[1].Result.Passed {
		t.Fatalf("unexpected reports %+v", reports)
	}
	if reports[1].Result.Errors[0].Code != "INVALID_FPS" {
		t.Fatalf("unexpected first finding %+v", reports[1].Result.Errors[0])
	}
}

func TestValidateMissingFile(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"validate", filepath.Join(env.baseDir, "absent.json")}, env.configPath)
	if err == nil {
		t.Fatal("expected error for missing plan file")
	}
}

func TestInspectRejectsMalformedPlan(t *testing.T) {
	env := setupCLITestEnv(t)
	path := testsupport.WriteJSON(t, filepath.Join(env.baseDir, "partial.json"), map[string]any{"render_plan_id": "rp-x"})

	_, _, err := runCLI(t, []string{"inspect", path}, env.configPath)
	if !errors.Is(err, serialize.ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}
}
