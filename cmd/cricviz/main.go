package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/cricviz/internal/app"
	"github.com/riskibarqy/cricviz/internal/config"
	"github.com/riskibarqy/cricviz/internal/observability"
	"github.com/riskibarqy/cricviz/internal/platform/logging"
	"github.com/riskibarqy/cricviz/internal/platform/tracing"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return exitFailure
	}

	logger := logging.NewConsole(stderr, cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() {
		_ = logger.Sync()
	}()

	shutdownTelemetry, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace failed", "error", err)
		return exitFailure
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			logger.Warn("shutdown uptrace failed", "error", err)
		}
	}()

	command := ""
	if len(args) > 0 {
		command = args[0]
	}
	ctx, span := tracing.StartCommand(ctx, command)
	defer span.End()

	c := newCLI(func(ctx context.Context) (*app.App, error) {
		return app.New(ctx, cfg, logger)
	}, logger)
	defer func() {
		if err := c.close(); err != nil {
			logger.Warn("close app failed", "error", err)
		}
	}()

	root := c.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		tracing.Fail(span, err)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}
