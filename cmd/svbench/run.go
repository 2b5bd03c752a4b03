package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/webbmaffian/go-smallvec/internal/config"
	"github.com/webbmaffian/go-smallvec/internal/logging"
)

func cmdRun(args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(errOut)
	config.AddFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	path, _ := fs.GetString("config")
	cfg, err := config.Load(path, fs)

	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	logger, err := logging.New(cfg.Log)

	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
		return 1
	}

	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err = runWorkload(ctx, cfg, logger, out); err != nil {
		logger.Error("workload failed", zap.Error(err))
		return 1
	}

	return 0
}

func runWorkload(ctx context.Context, cfg config.Config, logger *zap.Logger, out io.Writer) (err error) {
	w, err := newWorkload(cfg, logger)

	if err != nil {
		return
	}

	defer func() {
		if e := w.close(); e != nil && err == nil {
			err = e
		}
	}()

	logger.Info("starting workload",
		zap.Int("workers", cfg.Workers),
		zap.Int("ops", cfg.Ops),
		zap.String("allocator", cfg.Allocator),
		zap.Int64("budget", cfg.Budget),
		zap.Float64("rate", cfg.Rate),
	)

	var stopLive func()

	if cfg.Live {
		stopLive = w.live(out)
	}

	report, err := w.run(ctx)

	if stopLive != nil {
		stopLive()
	}

	if err != nil {
		return
	}

	logger.Info("workload done",
		zap.Int64("ops", report.Ops),
		zap.Float64("seconds", report.Seconds),
		zap.Float64("opsPerSec", report.OpsPerSec),
		zap.Int64("spills", report.Spills),
		zap.Int64("returns", report.Returns),
		zap.Int64("allocFailures", report.AllocFailures),
		zap.Bool("interrupted", report.Interrupted),
	)

	if cfg.Report == "" {
		return
	}

	if err = writeReport(cfg.Report, report); err != nil {
		return
	}

	logger.Info("report written", zap.String("path", cfg.Report))
	return
}
