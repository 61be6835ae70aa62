package main

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-align/internal/watch"
)

// runMaybeWatch runs fn once and, in watch mode, again after every change
// to the input files until ctx is cancelled. Errors from re-runs are logged
// so that a half-saved file does not end the session.
func (a *app) runMaybeWatch(ctx context.Context, args []string, fn func(context.Context) error) error {
	if !a.cfg.Watch {
		return fn(ctx)
	}
	if len(args) != 2 {
		return fmt.Errorf("--watch needs two CSV files")
	}

	w, err := watch.New(args, a.cfg.Debounce, a.log)
	if err != nil {
		return err
	}

	if err := fn(ctx); err != nil {
		a.log.Error().Err(err).Msg("initial run failed")
	}

	a.log.Info().Strs("files", args).Msg("watching for changes")

	return w.Run(ctx, func(ctx context.Context) {
		if err := fn(ctx); err != nil {
			a.log.Error().Err(err).Msg("re-run failed")
		}
	})
}
