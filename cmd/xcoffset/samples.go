package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-align/internal/report"
	"github.com/cwbudde/algo-align/internal/samples"
)

func newSamplesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List the embedded sample dataset pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]any
			for _, name := range samples.List() {
				p, err := samples.Load(name)
				if err != nil {
					return err
				}
				rows = append(rows, []any{name, len(p.First.X), len(p.Second.X), p.ExpectedOffset, p.Description})
			}

			format, err := a.cfg.ReportFormat()
			if err != nil {
				return err
			}
			header := []string{"name", "first_points", "second_points", "expected_offset", "description"}
			return report.WriteTable(cmd.OutOrStdout(), format, "Embedded samples", header, rows)
		},
	}
}
