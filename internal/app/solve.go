package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/eulerbatch/internal/cli"
	apperrors "github.com/agbru/eulerbatch/internal/errors"
	"github.com/agbru/eulerbatch/internal/euler"
	"github.com/agbru/eulerbatch/internal/server"
	"github.com/agbru/eulerbatch/internal/tui"
)

// lifecycleContext derives the execution context shared by all solve modes:
// the configured timeout plus SIGINT/SIGTERM cancellation.
func (a *Application) lifecycleContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)

	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// runServer starts the HTTP API server and blocks until shutdown.
func (a *Application) runServer() int {
	srv := server.NewServer(a.Config,
		server.WithLogger(a.logger),
		server.WithService(a.service),
	)
	if err := srv.Start(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive TUI dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancel := a.lifecycleContext(ctx)
	defer cancel()

	return tui.Run(ctx, a.service, a.Config, Version)
}

// runREPL starts the interactive REPL session.
func (a *Application) runREPL(in io.Reader, out io.Writer) int {
	filter, err := euler.ParseFilter(a.Config.Filter)
	if err != nil {
		filter = euler.FilterEven
	}

	repl := cli.NewREPL(a.service, cli.REPLConfig{
		Timeout:  a.Config.Timeout,
		FibLimit: a.Config.FibLimit,
		Filter:   filter,
	})
	repl.SetInput(in)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runFib runs a Fibonacci analysis and prints the result.
func (a *Application) runFib(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.lifecycleContext(ctx)
	defer cancel()

	filter, err := euler.ParseFilter(a.Config.Filter)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Invalid filter: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	limit := a.Config.FibLimit
	if limit == 0 {
		limit = euler.DefaultFibLimit
	}

	start := time.Now()
	analysis, err := a.service.EvenFibonacci(ctx, limit, filter)
	duration := time.Since(start)

	if err != nil {
		return apperrors.HandleSolveError(err, duration, a.ErrWriter, cli.CLIColorProvider{})
	}

	if err := cli.DisplayFibResult(out, limit, analysis, duration, a.outputConfig()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error writing result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runSum solves the single configured bound and prints the result.
func (a *Application) runSum(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.lifecycleContext(ctx)
	defer cancel()

	start := time.Now()
	sum, err := a.service.Sum(ctx, a.Config.N)
	duration := time.Since(start)

	if err != nil {
		return apperrors.HandleSolveError(err, duration, a.ErrWriter, cli.CLIColorProvider{})
	}

	if err := cli.DisplaySumResult(out, a.Config.N, sum, duration, a.outputConfig()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error writing result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runBatch reads a batch from the input source, solves it, and writes the
// results.
func (a *Application) runBatch(ctx context.Context, in io.Reader, out io.Writer) int {
	ctx, cancel := a.lifecycleContext(ctx)
	defer cancel()

	start := time.Now()
	err := cli.RunBatch(ctx, a.Config, a.service, in, out)
	duration := time.Since(start)

	if err != nil {
		return apperrors.HandleSolveError(err, duration, a.ErrWriter, cli.CLIColorProvider{})
	}
	return apperrors.ExitSuccess
}

// outputConfig maps the application configuration to the CLI output options.
func (a *Application) outputConfig() cli.OutputConfig {
	return cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		JSON:       a.Config.JSONOutput,
	}
}
