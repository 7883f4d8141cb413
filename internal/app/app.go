package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agbru/eulerbatch/internal/batch"
	"github.com/agbru/eulerbatch/internal/cli"
	"github.com/agbru/eulerbatch/internal/config"
	apperrors "github.com/agbru/eulerbatch/internal/errors"
	"github.com/agbru/eulerbatch/internal/logging"
	"github.com/agbru/eulerbatch/internal/metrics"
	"github.com/agbru/eulerbatch/internal/service"
	"github.com/agbru/eulerbatch/internal/ui"
)

// Application represents the eulerbatch application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer

	service service.Service
	logger  logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithService sets a custom solver service for the application.
func WithService(svc service.Service) AppOption {
	return func(a *Application) { a.service = svc }
}

// WithLogger sets a custom logger for the application.
func WithLogger(logger logging.Logger) AppOption {
	return func(a *Application) { a.logger = logger }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "eulerbatch"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, in io.Reader, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if a.Config.Quiet {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	if a.logger == nil {
		a.logger = logging.NewLogger(os.Stderr, "eulerbatch")
	}
	if a.service == nil {
		solver := batch.NewSolver(nil,
			batch.WithLogger(a.logger),
			batch.WithMetrics(metrics.NewSolverMetrics()),
		)
		a.service = service.NewSolverService(solver, a.Config.MaxQueries)
	}

	switch {
	case a.Config.ServerMode:
		return a.runServer()
	case a.Config.TUI:
		return a.runTUI(ctx)
	case a.Config.Interactive:
		return a.runREPL(in, out)
	case a.Config.FibMode:
		return a.runFib(ctx, out)
	case a.Config.N > 0:
		return a.runSum(ctx, out)
	default:
		return a.runBatch(ctx, in, out)
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
