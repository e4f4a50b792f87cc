package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"editorbot/internal/pipeline"
	"editorbot/internal/record"
	"editorbot/internal/serialize"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <plan-file>",
		Short: "Summarize a render plan and its scenes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read plan file: %w", err)
			}
			values, err := record.Decode(data)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			loaded, err := serialize.Deserialize(values)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			normalized := serialize.Serialize(loaded)

			if ctx.jsonOutput() {
				return writeJSON(cmd, normalized)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, pipeline.Summary(normalized))
			fmt.Fprintln(out)
			fmt.Fprintln(out, scenesTable(loaded))
			if subs := loaded.Subtitles(); subs.Enabled() {
				fmt.Fprintf(out, "\nSubtitles: %d segment(s), style %s\n", len(subs.Segments()), subs.Style())
			} else {
				fmt.Fprintln(out, "\nSubtitles: disabled")
			}
			return nil
		},
	}
}
