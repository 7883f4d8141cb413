// Package cli provides the command-line front end: the batch runner,
// result presentation, the interactive REPL, and shell completion.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/agbru/eulerbatch/internal/batch"
	"github.com/agbru/eulerbatch/internal/config"
	"github.com/agbru/eulerbatch/internal/format"
	"github.com/agbru/eulerbatch/internal/protocol"
	"github.com/agbru/eulerbatch/internal/service"
	"github.com/agbru/eulerbatch/internal/ui"
)

// batchJSONResult is the JSON shape emitted with the -json flag.
type batchJSONResult struct {
	Queries []uint64 `json:"queries"`
	Results []uint64 `json:"results"`
	Count   int      `json:"count"`
}

// RunBatch reads a query batch, solves it, and writes the results.
//
// Input comes from cfg.InputFile when set, otherwise from in. Output goes to
// cfg.OutputFile when set, otherwise to out. The wire format is the
// line-based count-then-queries protocol unless cfg.JSONOutput selects JSON.
//
// Parameters:
//   - ctx: The context governing the solve, typically carrying a timeout.
//   - cfg: The application configuration.
//   - svc: The solver service.
//   - in: The default input reader (usually stdin).
//   - out: The default output writer (usually stdout).
//
// Returns:
//   - error: An error if reading, solving, or writing fails.
func RunBatch(ctx context.Context, cfg config.AppConfig, svc service.Service, in io.Reader, out io.Writer) error {
	reader, closeIn, err := openInput(cfg, in)
	if err != nil {
		return err
	}
	defer closeIn()

	queries, err := protocol.ParseBatch(reader)
	if err != nil {
		return err
	}

	sp := batchSpinner(cfg)
	sp.UpdateSuffix(fmt.Sprintf(" Solving %d queries...", len(queries)))
	sp.Start()
	start := time.Now()
	results, err := svc.SolveBatch(ctx, queries)
	elapsed := time.Since(start)
	sp.Stop()
	if err != nil {
		return err
	}

	writer, closeOut, err := openOutput(cfg, out)
	if err != nil {
		return err
	}
	defer closeOut()

	if cfg.JSONOutput {
		enc := json.NewEncoder(writer)
		enc.SetIndent("", "  ")
		return enc.Encode(batchJSONResult{
			Queries: queries,
			Results: results,
			Count:   len(results),
		})
	}
	if err := protocol.WriteResults(writer, results); err != nil {
		return err
	}
	if !cfg.Quiet {
		PrintBatchSummary(os.Stderr, queries, elapsed)
	}
	return nil
}

// batchSpinner returns a live spinner when interactive feedback is wanted,
// or a no-op spinner in quiet and machine-readable modes.
func batchSpinner(cfg config.AppConfig) Spinner {
	if cfg.Quiet || cfg.JSONOutput || cfg.OutputFile == "" {
		// Results going to stdout: a spinner would corrupt piped output.
		return noopSpinner{}
	}
	return newSpinner()
}

// openInput resolves the batch input source.
func openInput(cfg config.AppConfig, fallback io.Reader) (io.Reader, func(), error) {
	if cfg.InputFile == "" {
		return fallback, func() {}, nil
	}
	f, err := os.Open(cfg.InputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// openOutput resolves the batch output destination.
func openOutput(cfg config.AppConfig, fallback io.Writer) (io.Writer, func(), error) {
	if cfg.OutputFile == "" {
		return fallback, func() {}, nil
	}
	f, err := os.Create(cfg.OutputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// PrintBatchSummary reports batch statistics after a solve on the given
// stream, keeping the result stream clean for piping. The cache hit ratio is
// the share of queries answered from already-computed duplicates.
func PrintBatchSummary(errOut io.Writer, queries []uint64, elapsed time.Duration) {
	total := len(queries)
	unique := len(batch.Deduplicate(queries))

	hitRatio := 0.0
	if total > 0 {
		hitRatio = float64(total-unique) / float64(total) * 100
	}

	fmt.Fprintf(errOut, "%sSolved %s%d%s queries (%d unique, %.0f%% cache hits) in %s%s%s.\n",
		ui.ColorBold(), ui.ColorPrimary(), total, ui.ColorReset(),
		unique, hitRatio,
		ui.ColorGreen(), format.FormatExecutionDuration(elapsed), ui.ColorReset())
}
