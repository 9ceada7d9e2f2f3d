// Command ryjsh serves a JSON document over HTTP and evaluates JSH sent to
// it.
//
// Usage:
//
//	ryjsh [-config file] [-log-level level] [jsonPath|-] [port]
//
// With "-" (the default) the document lives in memory only. Otherwise it is
// loaded from jsonPath at startup, created as {} when missing, and written
// back after every mutating request.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/sandrolain/gojsh/pkg/config"
	"github.com/sandrolain/gojsh/pkg/evaluator"
	"github.com/sandrolain/gojsh/pkg/ext"
	"github.com/sandrolain/gojsh/pkg/server"
	"github.com/sandrolain/gojsh/pkg/store"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "ryjsh:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("ryjsh", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML or TOML configuration file")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn or error")
	logFormat := fs.String("log-format", "", "log format: auto, text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if err := cfg.ApplyArgs(fs.Args()); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	opts, err := evaluatorOptions(cfg, logger)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.StoreBackend(), cfg.Document, cfg.Bucket)
	if err != nil {
		return err
	}
	defer st.Close()

	srv := server.New(evaluator.New(opts...), server.WithStore(st), server.WithLogger(logger))
	if err := srv.LoadDocument(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Start(cfg.Addr)
	}()
	where := "running in memory"
	if cfg.StoreBackend() != store.BackendMemory {
		where = "for " + cfg.StoreBackend() + " " + cfg.Document
	}
	logger.Info("server started", "addr", cfg.Addr, "document", where)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

func evaluatorOptions(cfg config.Config, logger *slog.Logger) ([]evaluator.EvalOption, error) {
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	opts := []evaluator.EvalOption{
		evaluator.WithSystemName(cfg.System),
		evaluator.WithMaxDepth(cfg.MaxDepth),
		evaluator.WithMaxScopeDepth(cfg.MaxScopeDepth),
		evaluator.WithTimeout(timeout),
		evaluator.WithLogger(logger),
		evaluator.WithDebug(cfg.Log.Level == "debug"),
	}
	if cfg.CacheSize > 0 {
		opts = append(opts, evaluator.WithCaching(true), evaluator.WithCacheSize(cfg.CacheSize))
	}
	for _, name := range cfg.Extensions {
		opt := ext.Enabled(name)
		if opt == nil {
			return nil, fmt.Errorf("unknown extension category %q", name)
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

func newLogger(cfg config.Log) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	hopts := &slog.HandlerOptions{Level: level}

	text := cfg.Format == "text"
	if cfg.Format == "auto" {
		text = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	}
	if text {
		return slog.New(slog.NewTextHandler(os.Stderr, hopts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, hopts))
}
