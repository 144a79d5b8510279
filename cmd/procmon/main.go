//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/srodi/procmon/pkg/collector/process"
	"github.com/srodi/procmon/pkg/config"
	"github.com/srodi/procmon/pkg/logging"
	"github.com/srodi/procmon/pkg/metrics"
	"github.com/srodi/procmon/pkg/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "procmon: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder, err := metrics.NewRecorder(nil)
	if err != nil {
		return fmt.Errorf("initializing metrics: %w", err)
	}
	if cfg.MetricsAddr != "" {
		shutdown := serveMetrics(cfg.MetricsAddr, recorder, logger)
		defer shutdown()
	}

	collector := process.NewCollector(process.Options{ProcRoot: cfg.ProcRoot, Capacity: cfg.Capacity})
	logger.Info("procmon starting",
		"interval", cfg.Interval,
		"capacity", cfg.Capacity,
		"proc_root", cfg.ProcRoot,
		"metrics_addr", cfg.MetricsAddr,
	)

	view := enableSingleView(logger)
	defer view.restore()

	keys := readKeys(os.Stdin)
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	if err := refresh(collector, recorder, view, logger); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			logger.Info("procmon stopping", "reason", ctx.Err())
			return nil
		case key, ok := <-keys:
			if !ok {
				// stdin closed; only signals can stop us now.
				keys = nil
				continue
			}
			if ui.IsQuitKey(key) {
				logger.Info("procmon stopping", "reason", "quit key")
				return nil
			}
		case <-ticker.C:
			if err := refresh(collector, recorder, view, logger); err != nil {
				return err
			}
		}
	}
}

// refresh collects one snapshot and draws it. Only a listing failure is returned.
func refresh(c process.Collector, rec *metrics.Recorder, view *screen, logger *slog.Logger) error {
	start := time.Now()
	snap, err := c.Collect()
	if err != nil {
		rec.ObserveError()
		logger.Error("process listing unavailable", "err", err)
		return err
	}
	elapsed := time.Since(start)
	rec.ObserveSnapshot(snap, elapsed)
	logger.Debug("snapshot collected",
		"entries", snap.Len(),
		"scanned", snap.Stats.Scanned,
		"excluded", snap.Stats.Excluded,
		"truncated", snap.Stats.Truncated,
		"duration", elapsed,
	)

	var buf bytes.Buffer
	if err := ui.Render(&buf, snap, view.height(), view.interactive); err != nil {
		return fmt.Errorf("rendering snapshot: %w", err)
	}
	view.draw(buf.Bytes())
	return nil
}

func serveMetrics(addr string, rec *metrics.Recorder, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "addr", addr, "err", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("metrics server shutdown", "err", err)
		}
	}
}
