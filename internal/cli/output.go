// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplaySumResult], [DisplayFibResult].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietSum].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteSumToFile].

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/agbru/eulerbatch/internal/euler"
	"github.com/agbru/eulerbatch/internal/format"
	"github.com/agbru/eulerbatch/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// JSON emits the result as a JSON object.
	JSON bool
}

// FormatQuietSum formats a sum for quiet mode output.
// Returns a single-line result suitable for scripting.
func FormatQuietSum(sum uint64) string {
	return strconv.FormatUint(sum, 10)
}

// DisplaySumResult displays a single-bound result with the given output
// configuration. This is a unified function that handles all output modes.
//
// Parameters:
//   - out: The output writer.
//   - n: The query bound.
//   - sum: The computed sum.
//   - duration: The solve duration.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if file output fails.
func DisplaySumResult(out io.Writer, n, sum uint64, duration time.Duration, config OutputConfig) error {
	switch {
	case config.JSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{
			"n":        n,
			"sum":      sum,
			"duration": duration.String(),
		}); err != nil {
			return err
		}
	case config.Quiet:
		fmt.Fprintln(out, FormatQuietSum(sum))
	default:
		fmt.Fprintf(out, "Sum of multiples of 3 or 5 below %s%s%s: %s%s%s\n",
			ui.ColorMagenta(), format.GroupDigits(n), ui.ColorReset(),
			ui.ColorGreen(), format.GroupDigits(sum), ui.ColorReset())
		fmt.Fprintf(out, "Time: %s%s%s\n",
			ui.ColorCyan(), format.FormatExecutionDuration(duration), ui.ColorReset())
	}

	if config.OutputFile != "" {
		if err := WriteSumToFile(n, sum, duration, config); err != nil {
			return err
		}
		if !config.Quiet && !config.JSON {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}

// DisplayFibResult displays a Fibonacci analysis result.
//
// Parameters:
//   - out: The output writer.
//   - limit: The inclusive term bound used for the analysis.
//   - analysis: The analysis to display.
//   - duration: The analysis duration.
//   - config: Output configuration.
func DisplayFibResult(out io.Writer, limit uint64, analysis *euler.Analysis, duration time.Duration, config OutputConfig) error {
	switch {
	case config.JSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"limit":    limit,
			"filter":   string(analysis.Filter),
			"sum":      analysis.Sum.String(),
			"count":    analysis.Count,
			"glb":      analysis.GLB.String(),
			"lub":      analysis.LUB.String(),
			"duration": duration.String(),
		})
	case config.Quiet:
		fmt.Fprintln(out, analysis.Sum.String())
		return nil
	}

	fmt.Fprintf(out, "Fibonacci terms (%s%s%s) up to %s%s%s:\n",
		ui.ColorCyan(), analysis.Filter, ui.ColorReset(),
		ui.ColorMagenta(), format.GroupDigits(limit), ui.ColorReset())
	fmt.Fprintf(out, "  Sum:   %s%s%s\n",
		ui.ColorGreen(), format.GroupDigitString(analysis.Sum.String()), ui.ColorReset())
	fmt.Fprintf(out, "  Count: %s%d%s\n", ui.ColorCyan(), analysis.Count, ui.ColorReset())
	fmt.Fprintf(out, "  Last:  %s%s%s\n",
		ui.ColorCyan(), format.GroupDigitString(analysis.GLB.String()), ui.ColorReset())
	fmt.Fprintf(out, "  Next:  %s%s%s\n",
		ui.ColorCyan(), format.GroupDigitString(analysis.LUB.String()), ui.ColorReset())
	fmt.Fprintf(out, "Time: %s%s%s\n",
		ui.ColorCyan(), format.FormatExecutionDuration(duration), ui.ColorReset())
	return nil
}

// WriteSumToFile writes a single-bound result to a file.
//
// Parameters:
//   - n: The query bound.
//   - sum: The computed sum.
//   - duration: The solve duration.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteSumToFile(n, sum uint64, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Multiples of 3 or 5 Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# N: %d\n", n)
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "S(%d) = %d\n", n, sum)

	return nil
}
