package pipeline

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"editorbot/internal/logging"
	"editorbot/internal/serialize"
)

// Job is one named build request in a batch.
type Job struct {
	Name    string
	Request Request
}

// JobResult is the outcome of one Job. Path is set when the plan was written.
type JobResult struct {
	Name   string
	Result Result
	Path   string
	Err    error
}

// BatchOptions controls Batch. An empty OutputDir skips writing plan files.
type BatchOptions struct {
	Workers   int
	OutputDir string
	Encoding  serialize.Encoding
}

// Batch runs jobs with at most opts.Workers builds in flight. Results are
// returned in job order. A failing job is recorded in its JobResult and does
// not stop the others; only cancellation of ctx ends the batch early, in which
// case unstarted jobs report the context error.
func (p *Pipeline) Batch(ctx context.Context, jobs []Job, opts BatchOptions) []JobResult {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	encoding := opts.Encoding
	if encoding == "" {
		encoding = serialize.JSON
	}

	results := make([]JobResult, len(jobs))
	started := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		results[i].Name = job.Name
		g.Go(func() error {
			results[i] = p.runJob(gctx, job, opts.OutputDir, encoding)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	p.logger.Info("batch complete",
		logging.Int("jobs", len(jobs)),
		logging.Int("failed", failed),
		logging.Int("workers", workers),
		logging.Float64("elapsed_seconds", time.Since(started).Seconds()),
	)
	return results
}

func (p *Pipeline) runJob(ctx context.Context, job Job, dir string, enc serialize.Encoding) JobResult {
	jr := JobResult{Name: job.Name}
	jr.Result, jr.Err = p.Run(ctx, job.Request)
	if jr.Err != nil {
		logging.WarnWithContext(p.logger, "batch job failed", "batch_job_failed",
			logging.String(logging.FieldInput, job.Name),
			logging.Error(jr.Err),
		)
		return jr
	}
	if dir == "" {
		return jr
	}
	jr.Path, jr.Err = WritePlan(dir, jr.Result.Plan, enc)
	return jr
}
