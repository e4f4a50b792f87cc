package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"editorbot/internal/pipeline"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <plan-file>...",
		Short: "Re-validate stored render plans",
		Long:  "Validate one or more render plan files. The command exits non-zero when any plan has fatal findings.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := ctx.newPipeline(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			reports := make([]validationReport, 0, len(args))
			failed := 0
			for _, path := range args {
				loaded, err := pipeline.ReadPlan(path)
				if err != nil {
					return err
				}
				result, checkErr := p.Check(loaded)
				if checkErr != nil {
					failed++
				}
				reports = append(reports, validationReport{
					File:         path,
					RenderPlanID: loaded.ID(),
					Summary:      result.Summary(),
					Result:       result,
				})
				if !ctx.jsonOutput() {
					writeValidationReport(out, filepath.Base(path), result, colorize)
				}
			}

			if ctx.jsonOutput() {
				if err := writeJSON(cmd, reports); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d plan(s)", pipeline.ErrValidationFailed, failed, len(args))
			}
			return nil
		},
	}
}
