package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-align/dsp/offset"
	"github.com/cwbudde/algo-align/internal/report"
)

func newScanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [first.csv second.csv]",
		Short: "Estimate the offset by sliding the first dataset and comparing mean differences",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			run := func(ctx context.Context) error {
				return a.runScan(ctx, cmd.OutOrStdout(), args)
			}
			return a.runMaybeWatch(cmd.Context(), args, run)
		},
	}

	cmd.Flags().Float64Var(&a.cfg.Increment, "increment", a.cfg.Increment, "x distance the first dataset slides per step")

	return cmd
}

func (a *app) runScan(ctx context.Context, w io.Writer, args []string) error {
	first, second, err := a.loadInputs(ctx, args)
	if err != nil {
		return err
	}

	res, err := offset.DifferenceScan(first.Dataset, second.Dataset, a.cfg.Increment)
	if err != nil {
		return fmt.Errorf("scan %s and %s: %w", first.Name, second.Name, err)
	}

	a.log.Info().
		Int("slides", len(res.Values)).
		Int("best_index", res.BestIndex).
		Float64("offset", res.Offset()).
		Msg("difference scan complete")

	format, err := a.cfg.ReportFormat()
	if err != nil {
		return err
	}

	return report.WriteScan(w, format, report.Scan{
		Dataset1: first.Name,
		Dataset2: second.Name,
		Result:   res,
	})
}
