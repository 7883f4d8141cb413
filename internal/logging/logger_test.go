package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue any
	}{
		{"String", String("algo", "closed-form"), "algo", "closed-form"},
		{"Int", Int("count", 42), "count", 42},
		{"Uint64", Uint64("n", 1_000_000_000), "n", uint64(1_000_000_000)},
		{"Dur", Dur("elapsed", time.Second), "elapsed", time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.wantKey)
			}
			if tt.field.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.wantValue)
			}
		})
	}

	t.Run("Err", func(t *testing.T) {
		testErr := errors.New("test error")
		f := Err(testErr)
		if f.Key != "error" || f.Value != testErr {
			t.Errorf("Err() = %+v, want key %q and the error value", f, "error")
		}
	})
}

func TestNewLogger_ComponentField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "solver")

	logger.Info("batch solved")
	output := buf.String()

	if !strings.Contains(output, "solver") {
		t.Errorf("output should include the component field, got: %s", output)
	}
	if !strings.Contains(output, "batch solved") {
		t.Errorf("output should include the message, got: %s", output)
	}
}

func TestZerologAdapter_Levels(t *testing.T) {
	t.Run("Info with fields", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "test")
		logger.Info("queries read", Uint64("count", 4), String("source", "stdin"))

		output := buf.String()
		for _, want := range []string{"queries read", "4", "stdin", "info"} {
			if !strings.Contains(output, want) {
				t.Errorf("output should contain %q, got: %s", want, output)
			}
		}
	})

	t.Run("Error includes cause", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "test")
		logger.Error("solve failed", errors.New("invalid argument n=0"), Int("line", 3))

		output := buf.String()
		for _, want := range []string{"solve failed", "invalid argument n=0", "3"} {
			if !strings.Contains(output, want) {
				t.Errorf("output should contain %q, got: %s", want, output)
			}
		}
	})

	t.Run("Debug honors level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))
		logger.Debug("cache populated", Int("unique", 2))

		if !strings.Contains(buf.String(), "cache populated") {
			t.Errorf("Debug output missing message, got: %s", buf.String())
		}
	})
}

func TestZerologAdapter_FieldTypes(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string", Field{Key: "s", Value: "hello"}, "hello"},
		{"int64", Field{Key: "i", Value: int64(-12)}, "-12"},
		{"uint64", Field{Key: "u", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64", Field{Key: "f", Value: 2.5}, "2.5"},
		{"bool", Field{Key: "b", Value: true}, "true"},
		{"error", Field{Key: "e", Value: errors.New("oops")}, "oops"},
		{"interface", Field{Key: "x", Value: struct{ N int }{N: 7}}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "test")
			logger.Info("m", tt.field)
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("applyFields should handle %s values, got: %s", tt.name, buf.String())
			}
		})
	}
}

func TestZerologAdapter_PrintfCompat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Printf("solved %d queries", 100)
	if !strings.Contains(buf.String(), "solved 100 queries") {
		t.Errorf("Printf should format the message, got: %s", buf.String())
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewStdLoggerAdapter(log.New(&buf, "", 0))

	adapter.Info("up")
	adapter.Error("down", errors.New("boom"))
	adapter.Debug("trace", Int("line", 9))

	output := buf.String()
	for _, want := range []string{"[INFO]", "up", "[ERROR]", "boom", "[DEBUG]", "9"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got: %s", want, output)
		}
	}
}

func TestLoggerInterfaceCompliance(t *testing.T) {
	var buf bytes.Buffer
	var _ Logger = NewLogger(&buf, "test")
	var _ Logger = NewStdLoggerAdapter(log.New(&buf, "", 0))
	var _ Logger = NewDefaultLogger()
}
