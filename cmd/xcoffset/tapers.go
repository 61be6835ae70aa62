package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-align/dsp/core"
	"github.com/cwbudde/algo-align/dsp/window"
	"github.com/cwbudde/algo-align/internal/report"
)

func newTapersCmd(a *app) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "tapers",
		Short: "List the taper windows accepted by --taper with their properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]any
			for _, name := range window.Names() {
				t, err := window.ParseType(name)
				if err != nil {
					return err
				}
				p := window.Describe(window.Generate(t, size, window.WithAlpha(a.cfg.TukeyAlpha)))
				rows = append(rows, []any{name, size, round4(p.CoherentGain), round4(p.ENBW), round4(p.ScallopLossdB)})
			}

			format, err := a.cfg.ReportFormat()
			if err != nil {
				return err
			}
			header := []string{"window", "size", "coherent_gain", "enbw_bins", "scallop_db"}
			return report.WriteTable(cmd.OutOrStdout(), format, "Taper windows", header, rows)
		},
	}

	cmd.Flags().IntVar(&size, "size", 1024, "window length in samples")
	cmd.Flags().Float64Var(&a.cfg.TukeyAlpha, "tukey-alpha", a.cfg.TukeyAlpha, "tapered fraction of the tukey window")

	return cmd
}

func round4(v float64) float64 {
	return core.RoundDecimals(v, 4)
}
