package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/eulerbatch/internal/euler"
)

func TestFormatQuietSum(t *testing.T) {
	if got := FormatQuietSum(233168); got != "233168" {
		t.Errorf("FormatQuietSum = %q, want %q", got, "233168")
	}
}

func TestDisplaySumResult_Quiet(t *testing.T) {
	var out bytes.Buffer
	err := DisplaySumResult(&out, 1000, 233168, time.Millisecond, OutputConfig{Quiet: true})
	if err != nil {
		t.Fatalf("DisplaySumResult returned error: %v", err)
	}
	if out.String() != "233168\n" {
		t.Errorf("output = %q, want %q", out.String(), "233168\n")
	}
}

func TestDisplaySumResult_JSON(t *testing.T) {
	var out bytes.Buffer
	err := DisplaySumResult(&out, 1000, 233168, time.Millisecond, OutputConfig{JSON: true})
	if err != nil {
		t.Fatalf("DisplaySumResult returned error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["sum"] != float64(233168) {
		t.Errorf("sum = %v, want 233168", decoded["sum"])
	}
}

func TestDisplaySumResult_Standard(t *testing.T) {
	withoutColors(t)
	var out bytes.Buffer
	err := DisplaySumResult(&out, 1000, 233168, time.Millisecond, OutputConfig{})
	if err != nil {
		t.Fatalf("DisplaySumResult returned error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "below 1,000") {
		t.Errorf("output missing grouped bound, got %q", got)
	}
	if !strings.Contains(got, "233,168") {
		t.Errorf("output missing grouped sum, got %q", got)
	}
}

func TestDisplaySumResult_FileOutput(t *testing.T) {
	withoutColors(t)
	outPath := filepath.Join(t.TempDir(), "sub", "result.txt")
	var out bytes.Buffer

	err := DisplaySumResult(&out, 10, 23, time.Millisecond, OutputConfig{OutputFile: outPath})
	if err != nil {
		t.Fatalf("DisplaySumResult returned error: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if !strings.Contains(string(data), "S(10) = 23") {
		t.Errorf("file contents missing result, got %q", string(data))
	}
	if !strings.Contains(out.String(), "Result saved to") {
		t.Errorf("confirmation missing, got %q", out.String())
	}
}

func TestDisplayFibResult(t *testing.T) {
	withoutColors(t)

	analysis, err := newTestService(0).EvenFibonacci(context.Background(), 100, euler.FilterEven)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("standard", func(t *testing.T) {
		var out bytes.Buffer
		if err := DisplayFibResult(&out, 100, analysis, time.Millisecond, OutputConfig{}); err != nil {
			t.Fatal(err)
		}
		got := out.String()
		for _, want := range []string{"Sum:   44", "Count: 3", "Last:  34", "Next:  144"} {
			if !strings.Contains(got, want) {
				t.Errorf("output missing %q, got:\n%s", want, got)
			}
		}
	})

	t.Run("quiet", func(t *testing.T) {
		var out bytes.Buffer
		if err := DisplayFibResult(&out, 100, analysis, time.Millisecond, OutputConfig{Quiet: true}); err != nil {
			t.Fatal(err)
		}
		if out.String() != "44\n" {
			t.Errorf("output = %q, want %q", out.String(), "44\n")
		}
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		if err := DisplayFibResult(&out, 100, analysis, time.Millisecond, OutputConfig{JSON: true}); err != nil {
			t.Fatal(err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if decoded["sum"] != "44" {
			t.Errorf("sum = %v, want %q", decoded["sum"], "44")
		}
	})
}
