package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"editorbot/internal/logging"
	"editorbot/internal/pipeline"
	"editorbot/internal/serialize"
)

type batchJobOutput struct {
	Name         string `json:"name"`
	RenderPlanID string `json:"render_plan_id,omitempty"`
	Path         string `json:"path,omitempty"`
	Error        string `json:"error,omitempty"`
}

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var workers int
	var outDir string
	var encodingFlag string

	cmd := &cobra.Command{
		Use:   "batch <manifest>",
		Short: "Build every job listed in a manifest",
		Long: "Build the jobs listed under \"jobs\" in a JSON or YAML manifest. Each job names a script, " +
			"an audio source and optionally a template and strategy; relative paths resolve against " +
			"the manifest. Jobs run concurrently and the output directory is locked for the duration.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := ctx.newPipeline(cmd)
			if err != nil {
				return err
			}
			encoding, err := serialize.ParseEncoding(firstNonEmpty(encodingFlag, cfg.Output.Encoding))
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = cfg.Batch.Workers
			}
			jobs, err := loadManifest(args[0])
			if err != nil {
				return err
			}

			target := *cfg
			target.Output.Dir = firstNonEmpty(outDir, cfg.Output.Dir)
			lock, err := pipeline.AcquireOutputLock(target.LockPath())
			if err != nil {
				return err
			}
			defer func() {
				if err := lock.Release(); err != nil {
					if logger, lerr := ctx.logger(cmd); lerr == nil {
						logger.Warn("failed to release output lock", logging.String("lock", lock.Path()), logging.Error(err))
					}
				}
			}()

			results := p.Batch(cmd.Context(), jobs, pipeline.BatchOptions{
				Workers:   workers,
				OutputDir: target.Output.Dir,
				Encoding:  encoding,
			})

			outputs := make([]batchJobOutput, 0, len(results))
			failed := 0
			for _, r := range results {
				o := batchJobOutput{Name: r.Name, RenderPlanID: r.Result.Plan.ID(), Path: r.Path}
				if r.Err != nil {
					failed++
					o.Error = r.Err.Error()
				}
				outputs = append(outputs, o)
			}

			if ctx.jsonOutput() {
				if err := writeJSON(cmd, outputs); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, batchTable(outputs))
				fmt.Fprintf(out, "%d of %d job(s) succeeded; plans in %s\n", len(results)-failed, len(results), target.Output.Dir)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d batch job(s) failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent builds (defaults to batch.workers)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (defaults to output.dir)")
	cmd.Flags().StringVar(&encodingFlag, "encoding", "", "Plan file encoding: json or yaml (defaults to output.encoding)")
	return cmd
}
