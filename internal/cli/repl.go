package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/eulerbatch/internal/euler"
	"github.com/agbru/eulerbatch/internal/format"
	"github.com/agbru/eulerbatch/internal/protocol"
	"github.com/agbru/eulerbatch/internal/service"
	"github.com/agbru/eulerbatch/internal/sysmon"
	"github.com/agbru/eulerbatch/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Timeout is the maximum duration for each solve.
	Timeout time.Duration
	// FibLimit is the default Fibonacci term bound.
	FibLimit uint64
	// Filter is the default Fibonacci term filter.
	Filter euler.Filter
}

// REPL represents an interactive solver session.
type REPL struct {
	config  REPLConfig
	service service.Service
	in      io.Reader
	out     io.Writer
}

// NewREPL creates a new REPL instance.
//
// Parameters:
//   - svc: The solver service backing the session.
//   - config: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(svc service.Service, config REPLConfig) *REPL {
	if config.FibLimit == 0 {
		config.FibLimit = euler.DefaultFibLimit
	}
	if config.Filter == "" {
		config.Filter = euler.FilterEven
	}

	return &REPL{
		config:  config,
		service: svc,
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"euler> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(reader, input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sΣ Euler Batch Solver - Interactive Mode%s              %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %ssum <n>%s            - Sum of multiples of 3 or 5 below n\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sfib [limit] [filter]%s - Fibonacci analysis (filters: all, even, odd)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sbatch [file]%s       - Solve a batch from a file, or enter one inline\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sfilter <name>%s      - Set the default Fibonacci filter (all, even, odd)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %stheme <name>%s       - Change color theme (dark, light, none)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s             - Display session and resource status\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s               - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s        - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "\nA bare number is treated as %ssum <n>%s.\n", ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(reader *bufio.Reader, input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "sum", "s":
		r.cmdSum(args)
	case "fib", "f":
		r.cmdFib(args)
	case "batch", "b":
		r.cmdBatch(reader, args)
	case "filter":
		r.cmdFilter(args)
	case "theme":
		r.cmdTheme(args)
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// Try to interpret as a number for quick solving
		if n, err := strconv.ParseUint(cmd, 10, 64); err == nil {
			r.solve(n)
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}

	return true
}

// cmdSum handles the "sum" command.
func (r *REPL) cmdSum(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: sum <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}

	r.solve(n)
}

// solve computes a single bound and prints the result.
func (r *REPL) solve(n uint64) {
	ctx, cancel := r.solveContext()
	defer cancel()

	start := time.Now()
	sum, err := r.service.Sum(ctx, n)
	duration := time.Since(start)

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	fmt.Fprintf(r.out, "S(%s%s%s) = %s%s%s  (%s)\n",
		ui.ColorMagenta(), format.GroupDigits(n), ui.ColorReset(),
		ui.ColorGreen(), format.GroupDigits(sum), ui.ColorReset(),
		format.FormatExecutionDuration(duration))
}

// cmdFib handles the "fib" command.
func (r *REPL) cmdFib(args []string) {
	limit := r.config.FibLimit
	filter := r.config.Filter

	if len(args) > 0 {
		n, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			fmt.Fprintf(r.out, "%sInvalid limit: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
			return
		}
		limit = n
	}
	if len(args) > 1 {
		f, err := euler.ParseFilter(args[1])
		if err != nil {
			fmt.Fprintf(r.out, "%sUnknown filter: %s%s (valid: all, even, odd)\n",
				ui.ColorRed(), args[1], ui.ColorReset())
			return
		}
		filter = f
	}

	ctx, cancel := r.solveContext()
	defer cancel()

	start := time.Now()
	analysis, err := r.service.EvenFibonacci(ctx, limit, filter)
	duration := time.Since(start)

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	_ = DisplayFibResult(r.out, limit, analysis, duration, OutputConfig{})
}

// cmdBatch solves a protocol-formatted batch, read either from the named
// file or inline from the session input.
func (r *REPL) cmdBatch(reader *bufio.Reader, args []string) {
	queries, err := r.readBatch(reader, args)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	ctx, cancel := r.solveContext()
	defer cancel()

	start := time.Now()
	results, err := r.service.SolveBatch(ctx, queries)
	duration := time.Since(start)

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	if err := protocol.WriteResults(r.out, results); err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	PrintBatchSummary(r.out, queries, duration)
}

// readBatch resolves the batch source for cmdBatch. A file argument wins;
// otherwise the batch is typed inline. Inline input is collected line by
// line so the session reader keeps its position for the next command.
func (r *REPL) readBatch(reader *bufio.Reader, args []string) ([]uint64, error) {
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return protocol.ParseBatch(f)
	}

	fmt.Fprintf(r.out, "Enter the query count, then one bound per line:\n")
	raw, err := readBatchLines(reader)
	if err != nil {
		return nil, err
	}
	return protocol.ParseBatch(strings.NewReader(raw))
}

// cmdFilter sets the session's default Fibonacci filter.
func (r *REPL) cmdFilter(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "Current filter: %s%s%s\n", ui.ColorCyan(), r.config.Filter, ui.ColorReset())
		return
	}

	f, err := euler.ParseFilter(strings.ToLower(args[0]))
	if err != nil {
		fmt.Fprintf(r.out, "%sUnknown filter: %s%s (valid: all, even, odd)\n",
			ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	r.config.Filter = f
	fmt.Fprintf(r.out, "Filter changed to: %s%s%s\n", ui.ColorGreen(), f, ui.ColorReset())
}

// readBatchLines reads a count line and that many query lines from the
// session input, returning them as a single protocol-formatted string.
func readBatchLines(reader *bufio.Reader) (string, error) {
	countLine, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	count, err := strconv.Atoi(strings.TrimSpace(countLine))
	if err != nil {
		return "", fmt.Errorf("invalid query count %q", strings.TrimSpace(countLine))
	}
	if count < 0 || count > protocol.MaxQueries {
		return "", fmt.Errorf("query count %d out of range [0, %d]", count, protocol.MaxQueries)
	}

	var b strings.Builder
	b.WriteString(countLine)
	for i := 0; i < count; i++ {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		b.WriteString(line)
		if err != nil {
			break
		}
	}
	return b.String(), nil
}

// cmdTheme handles the "theme" command.
func (r *REPL) cmdTheme(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: theme <dark|light|none>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	name := strings.ToLower(args[0])
	switch name {
	case "dark", "light", "none":
		ui.SetTheme(name)
		fmt.Fprintf(r.out, "Theme changed to: %s%s%s\n", ui.ColorGreen(), name, ui.ColorReset())
	default:
		fmt.Fprintf(r.out, "%sUnknown theme: %s%s (valid: dark, light, none)\n",
			ui.ColorRed(), name, ui.ColorReset())
	}
}

// cmdStatus displays current REPL configuration and resource usage.
func (r *REPL) cmdStatus() {
	stats := sysmon.Sample()

	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:     %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintf(r.out, "  Fib limit:   %s%s%s\n", ui.ColorCyan(), format.GroupDigits(r.config.FibLimit), ui.ColorReset())
	fmt.Fprintf(r.out, "  Fib filter:  %s%s%s\n", ui.ColorCyan(), r.config.Filter, ui.ColorReset())
	fmt.Fprintf(r.out, "\n%sResources:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  CPU:         %s%.1f%%%s\n", ui.ColorCyan(), stats.CPUPercent, ui.ColorReset())
	fmt.Fprintf(r.out, "  Memory:      %s%.1f%%%s\n", ui.ColorCyan(), stats.MemPercent, ui.ColorReset())
	fmt.Fprintf(r.out, "  Goroutines:  %s%d%s\n", ui.ColorCyan(), stats.Goroutines, ui.ColorReset())
	fmt.Fprintf(r.out, "  Uptime:      %s%s%s\n", ui.ColorCyan(), stats.Uptime.Round(time.Second), ui.ColorReset())
	fmt.Fprintln(r.out)
}

// solveContext derives a per-command context from the configured timeout.
func (r *REPL) solveContext() (context.Context, context.CancelFunc) {
	if r.config.Timeout <= 0 {
		return context.Background(), func() {}
	}
	return context.WithTimeout(context.Background(), r.config.Timeout)
}
