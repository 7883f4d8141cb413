// Package config provides the configuration management for the eulerbatch
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments and environment overrides, and
// performs validation on the configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/eulerbatch/internal/errors"
	"github.com/agbru/eulerbatch/internal/euler"
)

const (
	// EnvPrefix is the prefix for all environment variables used by eulerbatch.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "EULERBATCH_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultTimeout is the default solve timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultPort is the default server port.
	DefaultPort = "8080"
	// DefaultMaxQueries is the default maximum batch size.
	DefaultMaxQueries = 100_000
	// DefaultFilter is the default Fibonacci term filter.
	DefaultFilter = "even"
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It encapsulates all settings that control the
// execution, from the batch input source to server and display options.
type AppConfig struct {
	// N, when non-zero, solves this single bound instead of reading a batch.
	N uint64
	// InputFile is the batch input path. Empty means stdin.
	InputFile string
	// OutputFile, if specified, writes results to this file path.
	OutputFile string
	// MaxQueries caps the accepted batch size.
	MaxQueries int
	// Timeout sets the maximum duration for solving a batch.
	Timeout time.Duration
	// JSONOutput, if true, outputs results in JSON format.
	JSONOutput bool
	// Verbose, if true, logs per-query detail while solving.
	Verbose bool
	// Quiet mode - minimal output for scripting purposes.
	// Suppresses spinners, banners, and informational messages.
	Quiet bool
	// ServerMode, if true, starts the application as an HTTP server.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
	// FibMode, if true, runs a Fibonacci analysis instead of a batch.
	FibMode bool
	// FibLimit is the inclusive bound for Fibonacci analyses.
	FibLimit uint64
	// Filter selects which Fibonacci terms an analysis considers
	// ("all", "even", or "odd").
	Filter string
	// Interactive, if true, starts the application in REPL mode.
	Interactive bool
	// TUI, if true, starts the interactive terminal dashboard.
	TUI bool
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// Completion, if set, generates a shell completion script for the
	// specified shell. Valid values are: "bash", "zsh".
	Completion string
}

// Validate checks the semantic consistency of the configuration parameters.
// It ensures that numerical values are within valid ranges and that the
// chosen filter and completion shell are supported.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate() error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.MaxQueries < 0 {
		return apperrors.NewConfigError("max-queries cannot be negative: %d", c.MaxQueries)
	}
	if _, err := euler.ParseFilter(c.Filter); err != nil {
		return apperrors.NewConfigError("unrecognized filter: '%s'. Valid filters are: all, even, odd", c.Filter)
	}
	if c.Completion != "" && c.Completion != "bash" && c.Completion != "zsh" {
		return apperrors.NewConfigError("unsupported completion shell: '%s'. Valid shells are: bash, zsh", c.Completion)
	}
	if c.ServerMode && c.Port == "" {
		return apperrors.NewConfigError("server mode requires a port")
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// applies environment overrides, and validates the result.
//
// The function is designed to be testable by allowing the input arguments and
// output writer to be specified.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage information
//     will be printed.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.Uint64Var(&config.N, "n", 0, "Solve a single bound instead of reading a batch.")
	fs.StringVar(&config.InputFile, "input", "", "Batch input file path (default: stdin).")
	fs.StringVar(&config.InputFile, "i", "", "Batch input file path (shorthand).")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the results.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.IntVar(&config.MaxQueries, "max-queries", DefaultMaxQueries, "Maximum number of queries accepted per batch (0 for no limit).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for solving a batch.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.Verbose, "v", false, "Log per-query detail while solving.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.BoolVar(&config.FibMode, "fib", false, "Run a Fibonacci analysis instead of a batch.")
	fs.Uint64Var(&config.FibLimit, "fib-limit", euler.DefaultFibLimit, "Inclusive bound for the Fibonacci analysis.")
	fs.StringVar(&config.Filter, "filter", DefaultFilter, "Fibonacci term filter: all, even, or odd.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start in interactive REPL mode.")
	fs.BoolVar(&config.TUI, "tui", false, "Start the interactive terminal dashboard.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.Completion, "completion", "", "Generate shell completion script (bash, zsh).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	config.Filter = strings.ToLower(config.Filter)
	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
