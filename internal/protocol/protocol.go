// Package protocol implements the line-oriented text format for batch
// queries: a count line T followed by T query lines, answered by one result
// line per query in input order.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agbru/eulerbatch/internal/batch"
	apperrors "github.com/agbru/eulerbatch/internal/errors"
)

// MaxQueries is the largest batch size the protocol accepts.
const MaxQueries = 100_000

// ParseBatch reads a batch from r.
//
// The expected format is a first line holding the query count T
// (0 <= T <= MaxQueries) followed by exactly T lines each holding one bound N
// (1 <= N <= batch.MaxBound). Leading and trailing whitespace on each line is
// ignored; anything else is an error.
//
// Parameters:
//   - r: The input stream.
//
// Returns:
//   - []uint64: The parsed bounds in input order. Empty (non-nil) when T is 0.
//   - error: An InvalidArgumentError describing the offending line, or a
//     wrapped read error.
func ParseBatch(r io.Reader) ([]uint64, error) {
	scanner := bufio.NewScanner(r)

	count, err := readCount(scanner)
	if err != nil {
		return nil, err
	}

	queries := make([]uint64, 0, count)
	for i := 0; i < count; i++ {
		n, err := readQuery(scanner, i+1)
		if err != nil {
			return nil, err
		}
		queries = append(queries, n)
	}
	return queries, nil
}

// WriteResults writes one result per line to w, in slice order.
func WriteResults(w io.Writer, results []uint64) error {
	bw := bufio.NewWriter(w)
	for _, sum := range results {
		if _, err := fmt.Fprintln(bw, sum); err != nil {
			return apperrors.WrapError(err, "writing result")
		}
	}
	if err := bw.Flush(); err != nil {
		return apperrors.WrapError(err, "flushing results")
	}
	return nil
}

func readCount(scanner *bufio.Scanner) (int, error) {
	line, err := readLine(scanner)
	if err != nil {
		return 0, apperrors.WrapError(err, "reading query count")
	}

	count, perr := strconv.ParseUint(line, 10, 64)
	if perr != nil {
		return 0, apperrors.NewInvalidArgument("t", 0, fmt.Sprintf("query count %q is not a non-negative integer", line))
	}
	if count > MaxQueries {
		return 0, apperrors.NewInvalidArgument("t", count, fmt.Sprintf("query count exceeds the maximum of %d", MaxQueries))
	}
	return int(count), nil
}

func readQuery(scanner *bufio.Scanner, lineNo int) (uint64, error) {
	line, err := readLine(scanner)
	if err != nil {
		return 0, apperrors.WrapError(err, "reading query %d", lineNo)
	}

	n, perr := strconv.ParseUint(line, 10, 64)
	if perr != nil {
		return 0, apperrors.NewInvalidArgument("n", 0, fmt.Sprintf("query %d: %q is not a positive integer", lineNo, line))
	}
	if n < 1 {
		return 0, apperrors.NewInvalidArgument("n", n, fmt.Sprintf("query %d: must be at least 1", lineNo))
	}
	if n > batch.MaxBound {
		return 0, apperrors.NewInvalidArgument("n", n, fmt.Sprintf("query %d: exceeds the maximum bound of %d", lineNo, batch.MaxBound))
	}
	return n, nil
}

// readLine returns the next line with surrounding whitespace trimmed, or
// io.ErrUnexpectedEOF when the input ends early.
func readLine(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(scanner.Text()), nil
}
