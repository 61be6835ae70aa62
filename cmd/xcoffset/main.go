// Command xcoffset estimates the x-axis offset between two sampled datasets
// by cross-correlating their y-values.
//
// Usage:
//
//	xcoffset align [flags] [first.csv second.csv]
//	xcoffset scan [flags] [first.csv second.csv]
//	xcoffset samples
//	xcoffset tapers
//
// Without CSV files the embedded sample selected by --sample is used.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/cwbudde/algo-align/internal/config"
	"github.com/cwbudde/algo-align/internal/logging"
)

var exampleUsage = strings.TrimSpace(`
  xcoffset align
  xcoffset align --method fft --show-correlation first.csv second.csv
  xcoffset align --taper tukey --tukey-alpha 0.25 --adjusted shifted.csv a.csv b.csv
  xcoffset align --watch a.csv b.csv
  xcoffset scan --increment 0.5 a.csv b.csv
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries the resolved configuration and logger between the root
// command and its subcommands.
type app struct {
	cfg     config.Config
	cfgPath string
	log     zerolog.Logger
	stderr  io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: config.DefaultConfig(), log: zerolog.Nop(), stderr: stderr}

	root := &cobra.Command{
		Use:           "xcoffset",
		Short:         "Estimate the x offset between two datasets by cross-correlation",
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.xcoffset/config.toml)")
	pf.StringVar(&a.cfg.Format, "format", a.cfg.Format, "output format: text, markdown, json or yaml")
	pf.StringVar(&a.cfg.Sample, "sample", a.cfg.Sample, "embedded sample used when no CSV files are given")
	pf.StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn or error")
	pf.StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "log encoding: console or json")
	pf.BoolVar(&a.cfg.Watch, "watch", a.cfg.Watch, "re-run when either CSV file changes")
	pf.DurationVar(&a.cfg.Debounce, "debounce", a.cfg.Debounce, "quiet period before re-running in watch mode")

	root.AddCommand(
		newAlignCmd(a),
		newScanCmd(a),
		newSamplesCmd(a),
		newTapersCmd(a),
	)

	return root
}

// resolve merges config file, environment and flags (highest precedence)
// into a.cfg and builds the logger.
func (a *app) resolve(cmd *cobra.Command) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = config.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && config.FileExists(cfgFile) {
		fc, err := config.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := config.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := config.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(a.stderr, a.cfg.LogLevel, logging.Format(a.cfg.LogFormat))
	if err != nil {
		return err
	}
	a.log = log
	a.log.Debug().Interface("config", a.cfg).Str("config_file", cfgFile).Msg("configuration")

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		log, _ := logging.New(os.Stderr, "error", logging.FormatConsole)
		log.Error().Err(err).Msg("xcoffset")
		os.Exit(1)
	}
}
