package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/iwfg/adapter"
	"github.com/katalvlaran/iwfg/bottomk"
	"github.com/katalvlaran/iwfg/config"
	"github.com/katalvlaran/iwfg/metrics"
)

const (
	flagConfig      = "config"
	flagLogLevel    = "log-level"
	flagLogFormat   = "log-format"
	flagMetricsFile = "metrics-file"
	flagK           = "k"
	flagSense       = "sense"
	flagReference   = "ref"
	flagOneBased    = "one-based"
	flagWorkers     = "workers"
)

// app is the state shared by every sub-command of one invocation.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	registry *prometheus.Registry
	recorder *metrics.Prometheus
}

// New returns the root command.
func New() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "iwfg [sub-command]",
		Short: "Rank Pareto front points by exclusive hypervolume contribution",
		Long: `iwfg reads objective matrices (CSV: one front; YAML: a list of fronts)
and reports the points that add the least hypervolume, or every point's
exact contribution. Settings come from --config, then IWFG_* environment
variables, then flags.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.flush,
		DisableAutoGenTag:  true,
		SilenceUsage:       true,
	}

	pf := cmd.PersistentFlags()
	pf.String(flagConfig, "", "YAML configuration file")
	pf.String(flagLogLevel, "info", "log level: debug, info, warn or error")
	pf.String(flagLogFormat, "text", "log format: text or json")
	pf.String(flagMetricsFile, "", "write Prometheus metrics to this file after the run")

	cmd.AddCommand(newBottomKCmd(a))
	cmd.AddCommand(newContribCmd(a))
	return cmd
}

// addFrontFlags registers the flags that shape how a front is read.
func addFrontFlags(fs *pflag.FlagSet) {
	fs.String(flagSense, "max", "optimisation sense: max or min")
	fs.String(flagReference, "", "reference point, comma separated (default origin)")
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	fs := cmd.Flags()
	path, err := fs.GetString(flagConfig)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := applyFlags(fs, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = newLogger(cmd.ErrOrStderr(), cfg.Logging)
	if err != nil {
		return err
	}
	a.registry = prometheus.NewRegistry()
	a.recorder = metrics.NewPrometheus(a.registry, "iwfg")
	return nil
}

func (a *app) flush(_ *cobra.Command, _ []string) error {
	if a.cfg == nil || a.cfg.MetricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.MetricsFile, a.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.log.Debug("metrics written", "file", a.cfg.MetricsFile)
	return nil
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(fs *pflag.FlagSet, cfg *config.Config) error {
	var err error
	changed := func(name string) bool {
		f := fs.Lookup(name)
		return f != nil && f.Changed
	}

	if changed(flagK) {
		if cfg.K, err = fs.GetInt(flagK); err != nil {
			return err
		}
	}
	if changed(flagSense) {
		if cfg.Sense, err = fs.GetString(flagSense); err != nil {
			return err
		}
	}
	if changed(flagReference) {
		s, err := fs.GetString(flagReference)
		if err != nil {
			return err
		}
		if cfg.Reference, err = config.ParseReference(s); err != nil {
			return err
		}
	}
	if changed(flagOneBased) {
		if cfg.OneBased, err = fs.GetBool(flagOneBased); err != nil {
			return err
		}
	}
	if changed(flagWorkers) {
		if cfg.Workers, err = fs.GetInt(flagWorkers); err != nil {
			return err
		}
	}
	if changed(flagMetricsFile) {
		if cfg.MetricsFile, err = fs.GetString(flagMetricsFile); err != nil {
			return err
		}
	}
	if changed(flagLogLevel) {
		if cfg.Logging.Level, err = fs.GetString(flagLogLevel); err != nil {
			return err
		}
	}
	if changed(flagLogFormat) {
		if cfg.Logging.Format, err = fs.GetString(flagLogFormat); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(w io.Writer, lc config.LoggingConfig) (*slog.Logger, error) {
	level, err := lc.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// adapterOptions turns the configuration into adapter and core options.
func (a *app) adapterOptions() ([]adapter.Option, error) {
	sense, err := adapter.ParseSense(a.cfg.Sense)
	if err != nil {
		return nil, err
	}
	opts := []adapter.Option{
		adapter.WithSense(sense),
		adapter.WithCoreOptions(
			bottomk.WithLogger(a.log),
			bottomk.WithRecorder(a.recorder),
			bottomk.WithWorkers(a.cfg.Workers),
		),
	}
	if a.cfg.Reference != nil {
		opts = append(opts, adapter.WithReference(a.cfg.Reference))
	}
	if a.cfg.OneBased {
		opts = append(opts, adapter.WithOneBased())
	}
	return opts, nil
}
