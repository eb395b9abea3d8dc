// Command algorithms runs the demo scenarios: sorting, heap, queue, stack,
// union-find, graph traversal and the weighted network, and prints a report.
//
// Usage:
//
//	algorithms [-config demo.yaml] [-format text|json] [-log-level debug] [-timings] [-metrics]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/Naxaes/Algorithms/config"
	"github.com/Naxaes/Algorithms/demo"
	"github.com/Naxaes/Algorithms/timing"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

type options struct {
	configPath string
	format     string
	logLevel   string
	timings    bool
	metrics    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("algorithms", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML scenario file (built-in scenarios when empty)")
	fs.StringVar(&opts.format, "format", formatText, "report format: text or json")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level override: debug, info, warn or error")
	fs.BoolVar(&opts.timings, "timings", false, "report per-section timings")
	fs.BoolVar(&opts.metrics, "metrics", false, "print Prometheus metrics after the report")
	if err := fs.Parse(args); err != nil {
		return opts, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	if opts.format != formatText && opts.format != formatJSON {
		return opts, fmt.Errorf("%w: unknown format %q", errUsage, opts.format)
	}

	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		logger.Error("invalid arguments", "error", err)
		return exitUsage
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		logger.Error("load config", "path", opts.configPath, "error", err)
		return exitError
	}
	lvl, err := cfg.Level()
	if err != nil {
		logger.Error("log level", "error", err)
		return exitError
	}
	level.Set(lvl)

	reg := prometheus.NewRegistry()
	timer, err := timing.New(timing.WithRegisterer(reg))
	if err != nil {
		logger.Error("create timer", "error", err)
		return exitError
	}
	runner, err := demo.NewRunner(cfg, logger, timer)
	if err != nil {
		logger.Error("create runner", "error", err)
		return exitError
	}

	rep, err := runner.Run(ctx)
	if err != nil {
		logger.Error("run", "error", err)
		return exitError
	}

	if err = writeReport(stdout, opts.format, rep, timer, cfg.Timings); err != nil {
		logger.Error("write report", "error", err)
		return exitError
	}
	if opts.metrics {
		if err = writeMetrics(stdout, reg); err != nil {
			logger.Error("write metrics", "error", err)
			return exitError
		}
	}

	return exitOK
}

// loadConfig reads the scenario file, if any, and applies flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath == "" {
		cfg = config.Default()
		if err = cfg.ApplyEnv(os.LookupEnv); err != nil {
			return nil, err
		}
	} else if cfg, err = config.Load(opts.configPath); err != nil {
		return nil, err
	}

	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.timings {
		cfg.Timings = true
	}

	return cfg, cfg.Validate()
}

func writeReport(w io.Writer, format string, rep *demo.Report, timer *timing.Timer, timings bool) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return nil
	}

	if err := rep.WriteText(w); err != nil {
		return err
	}
	if timings {
		return timer.Report(w)
	}

	return nil
}

// writeMetrics prints every gathered family in the text exposition format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
