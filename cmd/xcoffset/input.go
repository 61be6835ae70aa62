package main

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-align/internal/dataset"
	"github.com/cwbudde/algo-align/internal/samples"
)

// loadInputs reads both CSV files concurrently, or the configured embedded
// sample when no files are given.
func (a *app) loadInputs(ctx context.Context, args []string) (dataset.Table, dataset.Table, error) {
	switch len(args) {
	case 0:
		p, err := samples.Load(a.cfg.Sample)
		if err != nil {
			return dataset.Table{}, dataset.Table{}, err
		}
		a.log.Debug().Str("sample", p.Name).Msg("using embedded sample")
		return p.Tables()
	case 2:
	default:
		return dataset.Table{}, dataset.Table{}, fmt.Errorf("expected two CSV files, got %d", len(args))
	}

	var first, second dataset.Table
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		first, err = readTable(gctx, args[0])
		return err
	})
	g.Go(func() error {
		var err error
		second, err = readTable(gctx, args[1])
		return err
	})
	if err := g.Wait(); err != nil {
		return dataset.Table{}, dataset.Table{}, err
	}

	a.log.Debug().
		Str("first", args[0]).Int("first_points", first.Len()).
		Str("second", args[1]).Int("second_points", second.Len()).
		Msg("datasets loaded")

	return first, second, nil
}

func readTable(ctx context.Context, path string) (dataset.Table, error) {
	if err := ctx.Err(); err != nil {
		return dataset.Table{}, err
	}
	return dataset.ReadFile(path)
}
