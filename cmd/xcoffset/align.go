package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-align/dsp/offset"
	"github.com/cwbudde/algo-align/dsp/series"
	"github.com/cwbudde/algo-align/internal/dataset"
	"github.com/cwbudde/algo-align/internal/report"
)

func newAlignCmd(a *app) *cobra.Command {
	var adjusted string

	cmd := &cobra.Command{
		Use:   "align [first.csv second.csv]",
		Short: "Estimate the offset from the peak of the cross-correlation",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			run := func(ctx context.Context) error {
				return a.runAlign(ctx, cmd.OutOrStdout(), args, adjusted)
			}
			return a.runMaybeWatch(cmd.Context(), args, run)
		},
	}

	f := cmd.Flags()
	f.StringVar(&a.cfg.Method, "method", a.cfg.Method, "correlation method: auto, direct or fft")
	f.StringVar(&a.cfg.Taper, "taper", a.cfg.Taper, "taper window applied before correlating")
	f.Float64Var(&a.cfg.TukeyAlpha, "tukey-alpha", a.cfg.TukeyAlpha, "tapered fraction of the tukey window")
	f.BoolVar(&a.cfg.Normalize, "normalize", a.cfg.Normalize, "scale the correlation by the sample norms")
	f.BoolVar(&a.cfg.ShowCorrelation, "show-correlation", a.cfg.ShowCorrelation, "include the correlation array in the output")
	f.BoolVar(&a.cfg.ShowDatasets, "show-datasets", a.cfg.ShowDatasets, "list coordinate ranges and sample statistics of both datasets")
	f.StringVar(&adjusted, "adjusted", "", "write the second dataset shifted onto the first as CSV")

	return cmd
}

func (a *app) runAlign(ctx context.Context, w io.Writer, args []string, adjustedPath string) error {
	first, second, err := a.loadInputs(ctx, args)
	if err != nil {
		return err
	}

	sums := []series.Summary{series.Summarize(first.Dataset), series.Summarize(second.Dataset)}
	for _, s := range sums {
		if !s.Steady() {
			a.log.Warn().Str("dataset", s.Name).Float64("step", s.Step).
				Msg("x axis is not evenly spaced; the offset assumes the first step throughout")
		}
	}

	opts, err := a.cfg.AlignOptions()
	if err != nil {
		return err
	}

	res, err := offset.Align(first.Dataset, second.Dataset, opts...)
	if err != nil {
		return fmt.Errorf("align %s and %s: %w", first.Name, second.Name, err)
	}

	a.log.Info().
		Str("strategy", res.Strategy.String()).
		Int("max_index", res.MaxIndex).
		Float64("offset", res.Offset).
		Msg("alignment complete")

	if adjustedPath != "" {
		shifted := dataset.Table{
			Dataset: res.Adjusted(second.Dataset),
			XLabel:  second.XLabel,
			YLabel:  second.YLabel,
		}
		if err := dataset.WriteFile(adjustedPath, shifted); err != nil {
			return err
		}
		a.log.Info().Str("path", adjustedPath).Msg("adjusted dataset written")
	}

	format, err := a.cfg.ReportFormat()
	if err != nil {
		return err
	}

	out := report.Alignment{
		Dataset1:        first.Name,
		Dataset2:        second.Name,
		XLabel:          first.XLabel,
		Len2:            second.Len(),
		Result:          res,
		ShowCorrelation: a.cfg.ShowCorrelation,
	}
	if a.cfg.ShowDatasets {
		out.Datasets = sums
	}

	return report.WriteAlignment(w, format, out)
}
