package protocol

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	apperrors "github.com/agbru/eulerbatch/internal/errors"
)

func TestParseBatch(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []uint64
	}{
		{"canonical batch", "2\n10\n100\n", []uint64{10, 100}},
		{"duplicates preserved", "4\n10\n100\n10\n100\n", []uint64{10, 100, 10, 100}},
		{"empty batch", "0\n", []uint64{}},
		{"no trailing newline", "1\n1000", []uint64{1000}},
		{"windows line endings", "2\r\n10\r\n100\r\n", []uint64{10, 100}},
		{"surrounding whitespace", "  2  \n 10\n100 \n", []uint64{10, 100}},
		{"maximum bound accepted", "1\n1000000000\n", []uint64{1_000_000_000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBatch(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ParseBatch returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseBatch = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseBatch_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non-numeric count", "two\n"},
		{"negative count", "-1\n"},
		{"count above maximum", "100001\n"},
		{"non-numeric query", "1\nten\n"},
		{"zero query", "1\n0\n"},
		{"negative query", "1\n-5\n"},
		{"query above maximum bound", "1\n1000000001\n"},
		{"float query", "1\n10.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBatch(strings.NewReader(tt.input))
			if !apperrors.IsInvalidArgument(err) {
				t.Errorf("ParseBatch(%q) error = %v, want an InvalidArgumentError", tt.input, err)
			}
		})
	}
}

func TestParseBatch_TruncatedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"count without queries", "3\n10\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBatch(strings.NewReader(tt.input))
			if !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Errorf("ParseBatch(%q) error = %v, want io.ErrUnexpectedEOF", tt.input, err)
			}
		})
	}
}

func TestWriteResults(t *testing.T) {
	tests := []struct {
		name    string
		results []uint64
		want    string
	}{
		{"canonical results", []uint64{23, 2318, 23, 2318}, "23\n2318\n23\n2318\n"},
		{"empty results", []uint64{}, ""},
		{"large sum", []uint64{233333333166666668}, "233333333166666668\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteResults(&buf, tt.results); err != nil {
				t.Fatalf("WriteResults returned error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("WriteResults wrote %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWriteResults_PropagatesWriteError(t *testing.T) {
	err := WriteResults(failingWriter{}, make([]uint64, 10_000))
	if err == nil {
		t.Fatal("WriteResults should propagate the write error")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("pipe closed")
}
