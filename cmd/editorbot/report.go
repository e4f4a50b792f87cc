package main

import (
	"fmt"
	"io"

	"editorbot/internal/validate"
)

// writeValidationReport prints one status line and, when there are findings,
// a table of them.
func writeValidationReport(w io.Writer, label string, result validate.Result, colorize bool) {
	fmt.Fprintln(w, renderStatusLine(label, validationStatus(result), result.Summary(), colorize))
	if len(result.Errors) == 0 {
		return
	}
	fmt.Fprintln(w, findingsTable(result.Errors))
}

type validationReport struct {
	File         string          `json:"file,omitempty"`
	RenderPlanID string          `json:"render_plan_id"`
	Summary      string          `json:"summary"`
	Result       validate.Result `json:"result"`
}
