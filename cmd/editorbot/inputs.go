package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"editorbot/internal/builder"
	"editorbot/internal/pipeline"
	"editorbot/internal/record"
)

// inputFiles names the files behind one build. Template and strategy are
// optional; absent files mean an all-default template and no strategy.
type inputFiles struct {
	Script   string
	Template string
	Strategy string
	Audio    string
}

func loadRequest(files inputFiles) (pipeline.Request, error) {
	if strings.TrimSpace(files.Script) == "" {
		return pipeline.Request{}, errors.New("script file is required")
	}
	if strings.TrimSpace(files.Audio) == "" {
		return pipeline.Request{}, errors.New("audio source is required")
	}

	scriptRecord, err := decodeFile(files.Script)
	if err != nil {
		return pipeline.Request{}, err
	}
	script, err := builder.ScriptFromRecord(scriptRecord)
	if err != nil {
		return pipeline.Request{}, fmt.Errorf("script %s: %w", files.Script, err)
	}

	templateRecord, err := decodeOptionalFile(files.Template)
	if err != nil {
		return pipeline.Request{}, err
	}
	template, err := builder.TemplateFromRecord(templateRecord)
	if err != nil {
		return pipeline.Request{}, fmt.Errorf("template %s: %w", files.Template, err)
	}

	strategyRecord, err := decodeOptionalFile(files.Strategy)
	if err != nil {
		return pipeline.Request{}, err
	}
	strategy, err := builder.StrategyFromRecord(strategyRecord)
	if err != nil {
		return pipeline.Request{}, fmt.Errorf("strategy %s: %w", files.Strategy, err)
	}

	return pipeline.Request{
		Script:      script,
		Template:    template,
		Strategy:    strategy,
		AudioSource: files.Audio,
	}, nil
}

func decodeFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	values, err := record.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return values, nil
}

func decodeOptionalFile(path string) (map[string]any, error) {
	if strings.TrimSpace(path) == "" {
		return map[string]any{}, nil
	}
	return decodeFile(path)
}

// loadManifest reads a batch manifest: a JSON or YAML object with a "jobs"
// list. File paths inside are resolved relative to the manifest.
func loadManifest(path string) ([]pipeline.Job, error) {
	values, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	entries, err := record.Wrap(values).Objects("jobs")
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	base := filepath.Dir(path)
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}

	jobs := make([]pipeline.Job, 0, len(entries))
	for i, entry := range entries {
		script, err := entry.String("script")
		if err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}
		audio, err := entry.String("audio")
		if err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}
		name, _, err := entry.OptionalString("name")
		if err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}
		if name == "" {
			name = fmt.Sprintf("job_%d", i+1)
		}
		template, _, err := entry.OptionalString("template")
		if err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}
		strategy, _, err := entry.OptionalString("strategy")
		if err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}

		req, err := loadRequest(inputFiles{
			Script:   resolve(script),
			Template: resolve(template),
			Strategy: resolve(strategy),
			Audio:    audio,
		})
		if err != nil {
			return nil, fmt.Errorf("job %s: %w", name, err)
		}
		jobs = append(jobs, pipeline.Job{Name: name, Request: req})
	}
	return jobs, nil
}
