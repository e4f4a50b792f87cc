package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"editorbot/internal/pipeline"
	"editorbot/internal/serialize"
	"editorbot/internal/validate"
)

type buildOutput struct {
	Path         string           `json:"path,omitempty"`
	RenderPlanID string           `json:"render_plan_id"`
	Warnings     []validate.Error `json:"warnings"`
}

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var files inputFiles
	var outDir string
	var encodingFlag string
	var toStdout bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build, validate and save a render plan",
		Long: "Build a render plan from a script file and optional template and strategy files " +
			"(JSON or YAML). The plan is validated and written to the output directory; " +
			"fatal validation findings abort without writing anything.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := ctx.newPipeline(cmd)
			if err != nil {
				return err
			}
			encoding, err := serialize.ParseEncoding(firstNonEmpty(encodingFlag, cfg.Output.Encoding))
			if err != nil {
				return err
			}
			req, err := loadRequest(files)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			result, err := p.Run(cmd.Context(), req)
			if err != nil {
				var failed *pipeline.FailedValidationError
				if errors.As(err, &failed) {
					if ctx.jsonOutput() {
						_ = writeJSON(cmd, validationReport{
							RenderPlanID: failed.PlanID,
							Summary:      failed.Result.Summary(),
							Result:       failed.Result,
						})
					} else {
						writeValidationReport(out, "Validation", failed.Result, shouldColorize(out))
					}
				}
				return err
			}

			if toStdout {
				data, err := serialize.Marshal(result.Plan, encoding)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			path, err := pipeline.WritePlan(firstNonEmpty(outDir, cfg.Output.Dir), result.Plan, encoding)
			if err != nil {
				return err
			}

			if ctx.jsonOutput() {
				warnings := result.Validation.Warnings()
				if warnings == nil {
					warnings = []validate.Error{}
				}
				return writeJSON(cmd, buildOutput{Path: path, RenderPlanID: result.Plan.ID(), Warnings: warnings})
			}
			fmt.Fprintf(out, "Wrote render plan to %s\n\n", path)
			fmt.Fprintln(out, pipeline.Summary(result.Record))
			if result.Validation.WarningCount > 0 {
				fmt.Fprintln(out)
				writeValidationReport(out, "Validation", result.Validation, shouldColorize(out))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&files.Script, "script", "s", "", "Script file (JSON or YAML)")
	cmd.Flags().StringVarP(&files.Template, "template", "t", "", "Template file (JSON or YAML)")
	cmd.Flags().StringVar(&files.Strategy, "strategy", "", "Visual strategy file (JSON or YAML)")
	cmd.Flags().StringVarP(&files.Audio, "audio", "a", "", "Voice-over audio source referenced by the plan")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (defaults to output.dir)")
	cmd.Flags().StringVar(&encodingFlag, "encoding", "", "Plan file encoding: json or yaml (defaults to output.encoding)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Print the plan instead of writing a file")
	_ = cmd.MarkFlagRequired("script")
	_ = cmd.MarkFlagRequired("audio")
	return cmd
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
