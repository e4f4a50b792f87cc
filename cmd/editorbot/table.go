package main

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"editorbot/internal/pipeline"
	"editorbot/internal/plan"
	"editorbot/internal/validate"
)

const maxCellWidth = 72

type column struct {
	header string
	align  text.Align
}

var (
	findingColumns = []column{
		{header: "Severity"},
		{header: "Code"},
		{header: "Location"},
		{header: "Message"},
	}
	sceneColumns = []column{
		{header: "Scene"},
		{header: "Start", align: text.AlignRight},
		{header: "End", align: text.AlignRight},
		{header: "Duration", align: text.AlignRight},
		{header: "Visual"},
		{header: "Overlays", align: text.AlignRight},
		{header: "Transition"},
	}
	batchColumns = []column{
		{header: "Job"},
		{header: "Status"},
		{header: "Plan ID"},
		{header: "Output"},
	}
)

// findingsTable lists validation findings in the order the rules produced them.
func findingsTable(errs []validate.Error) string {
	rows := make([]table.Row, 0, len(errs))
	for _, e := range errs {
		rows = append(rows, table.Row{e.Severity.String(), string(e.Code), e.Location, e.Message})
	}
	return renderTable(findingColumns, rows)
}

// scenesTable lists a plan's scenes in timeline order.
func scenesTable(p plan.Plan) string {
	scenes := p.Scenes()
	rows := make([]table.Row, 0, len(scenes))
	for _, s := range scenes {
		rows = append(rows, table.Row{
			s.ID(),
			seconds(s.StartTime()),
			seconds(s.EndTime()),
			seconds(s.Duration()),
			visualLabel(s.Visual()),
			len(s.Overlays()),
			s.TransitionIn().Kind().String() + " / " + s.TransitionOut().Kind().String(),
		})
	}
	return renderTable(sceneColumns, rows)
}

// batchTable shows one row per job. Failed jobs show their error in place of
// the output file.
func batchTable(jobs []batchJobOutput) string {
	rows := make([]table.Row, 0, len(jobs))
	for _, j := range jobs {
		status, detail := "OK", filepath.Base(j.Path)
		if j.Error != "" {
			status, detail = "FAILED", j.Error
		}
		rows = append(rows, table.Row{j.Name, status, j.RenderPlanID, detail})
	}
	return renderTable(batchColumns, rows)
}

func renderTable(columns []column, rows []table.Row) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, c := range columns {
		header[i] = c.header
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       c.align,
			AlignHeader: text.AlignLeft,
			WidthMax:    maxCellWidth,
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		for len(row) < len(columns) {
			row = append(row, "")
		}
		tw.AppendRow(row[:len(columns)])
	}
	return tw.Render()
}

func visualLabel(v plan.Visual) string {
	label := pipeline.FormatLabel(v.Kind().String())
	if ref, ok := v.PromptRef(); ok {
		return label + " (" + ref + ")"
	}
	if strings.HasPrefix(v.Source(), "#") {
		return label + " " + v.Source()
	}
	return label
}

func seconds(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "s"
}
