// SPDX-License-Identifier: MIT

// Command agroshift reallocates crop area across regions.
//
// In single mode it maximizes national net profit (or, with -weights, minimizes
// one weighted sum of sustainability indicators) and writes the per-variable and
// per-constraint report. In sweep mode it solves all 128 sustainability weight
// vectors and writes one row per vector.
//
//	agroshift -data crops.xlsx -sheet Sheet1 -mode single
//	agroshift -config run.yaml -out sweep.xlsx -workers 8
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/agroshift/allocation"
	"github.com/katalvlaran/agroshift/baseline"
	"github.com/katalvlaran/agroshift/config"
	"github.com/katalvlaran/agroshift/dataset"
	"github.com/katalvlaran/agroshift/indicator"
	"github.com/katalvlaran/agroshift/report"
	"github.com/katalvlaran/agroshift/simplex"
	"github.com/katalvlaran/agroshift/sweep"
)

// topScenarios is the number of ranked sweep scenarios logged on completion.
const topScenarios = 5

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("agroshift failed", "error", err)
		os.Exit(1)
	}
}

// run parses args, executes the selected mode and writes the result table to
// the configured output (stdout when none).
func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}

	ds, err := dataset.Load(cfg.Dataset, cfg.Sheet)
	if err != nil {
		return err
	}
	idx, err := indicator.Build(ds)
	if err != nil {
		return err
	}
	base, err := baseline.Compute(ds)
	if err != nil {
		return err
	}
	b, err := allocation.NewBuilder(idx, base)
	if err != nil {
		return err
	}
	slog.Info("dataset loaded", "path", cfg.Dataset, "rows", len(ds.Rows),
		"regions", len(idx.Regions()), "crops", len(idx.Crops()))

	var table report.Table
	switch cfg.Mode {
	case config.ModeSingle:
		table, err = runSingle(ctx, cfg, b)
	default:
		table, err = runSweep(ctx, cfg, b)
	}
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		return report.WriteCSV(stdout, table)
	}
	if err = report.WriteFile(cfg.Output, table); err != nil {
		return err
	}
	slog.Info("results written", "path", cfg.Output, "rows", len(table.Rows))

	return nil
}

func runSingle(ctx context.Context, cfg config.Config, b *allocation.Builder) (report.Table, error) {
	obj := allocation.MaxProfit()
	w, _ := config.ParseWeights(cfg.Weights) // validated by parseConfig
	if w != nil {
		obj = allocation.MinWeighted(*w)
	}

	solver := simplex.New(simplex.WithTolerance(cfg.Tolerance), simplex.WithTimeout(cfg.SolveTimeout))
	out, err := allocation.Solve(ctx, solver, b, obj)
	if err != nil {
		return report.Table{}, err
	}
	slog.Info("solved", "model", obj.Name(), "status", out.Status.String(), "objective", out.Objective)
	if !out.Optimal() {
		slog.Warn("no optimum", "reason", out.Reason)

		return out.Table(), nil
	}
	for _, c := range out.Violations() {
		slog.Warn("constraint violated", "name", c.Name, "lhs", c.LHS, "rhs", c.RHS)
	}

	return out.Table(), nil
}

func runSweep(ctx context.Context, cfg config.Config, b *allocation.Builder) (report.Table, error) {
	rep, err := sweep.Run(ctx, simplex.New(simplex.WithTolerance(cfg.Tolerance)), b,
		sweep.WithWorkers(cfg.Workers),
		sweep.WithSolveTimeout(cfg.SolveTimeout),
		sweep.WithLogger(slog.Default()),
	)
	if err != nil {
		return report.Table{}, err
	}
	rep.LogSummary(slog.Default(), topScenarios)

	return rep.Table(), nil
}

// parseConfig layers explicitly set flags over the YAML file (if any) over
// config.Default.
func parseConfig(args []string) (config.Config, error) {
	fs := flag.NewFlagSet("agroshift", flag.ContinueOnError)
	var (
		cfgPath = fs.String("config", "", "YAML run configuration")
		data    = fs.String("data", "", "dataset path (.csv, .xlsx)")
		sheet   = fs.String("sheet", "", "worksheet name (workbooks only)")
		mode    = fs.String("mode", "", "single | sweep")
		weights = fs.String("weights", "", "single mode: 7-flag weight string; empty maximizes profit")
		out     = fs.String("out", "", "output path (.csv, .xlsx); empty writes CSV to stdout")
		workers = fs.Int("workers", 0, "concurrent solves in sweep mode")
		timeout = fs.Duration("timeout", 0, "per-solve time budget (0 disables)")
	)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return config.Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Dataset = *data
		case "sheet":
			cfg.Sheet = *sheet
		case "mode":
			cfg.Mode = *mode
		case "weights":
			cfg.Weights = *weights
		case "out":
			cfg.Output = *out
		case "workers":
			cfg.Workers = *workers
		case "timeout":
			cfg.SolveTimeout = *timeout
		}
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("agroshift: %w", err)
	}

	return cfg, nil
}
