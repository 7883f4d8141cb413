package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion_Bash(t *testing.T) {
	var out bytes.Buffer
	if err := GenerateCompletion(&out, "bash"); err != nil {
		t.Fatalf("GenerateCompletion returned error: %v", err)
	}

	script := out.String()
	wants := []string{
		"_eulerbatch_completions",
		"complete -F _eulerbatch_completions eulerbatch",
		"--filter",
		"--completion",
		"compgen -f",
		"all even odd",
	}
	for _, want := range wants {
		if !strings.Contains(script, want) {
			t.Errorf("bash script missing %q", want)
		}
	}
}

func TestGenerateCompletion_Zsh(t *testing.T) {
	var out bytes.Buffer
	if err := GenerateCompletion(&out, "zsh"); err != nil {
		t.Fatalf("GenerateCompletion returned error: %v", err)
	}

	script := out.String()
	wants := []string{
		"#compdef eulerbatch",
		"_arguments -s",
		"'(-i --input)'{-i,--input}",
		":shell:(bash zsh)",
		"_files",
	}
	for _, want := range wants {
		if !strings.Contains(script, want) {
			t.Errorf("zsh script missing %q", want)
		}
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	var out bytes.Buffer
	err := GenerateCompletion(&out, "fish")
	if err == nil {
		t.Fatal("expected an error for unsupported shell")
	}
	if !strings.Contains(err.Error(), "unsupported shell") {
		t.Errorf("error = %v, want unsupported shell message", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be written for unsupported shells, got %q", out.String())
	}
}

// TestFlagRegistry_CoversConfigFlags guards against completion drift when
// flags are added to the configuration layer.
func TestFlagRegistry_CoversConfigFlags(t *testing.T) {
	long := map[string]bool{}
	for _, f := range flagRegistry {
		if f.Long != "" {
			long[f.Long] = true
		}
	}

	for _, want := range []string{"input", "output", "max-queries", "timeout", "json",
		"quiet", "server", "port", "fib", "fib-limit", "filter", "interactive",
		"tui", "no-color", "completion"} {
		if !long[want] {
			t.Errorf("flagRegistry missing long flag %q", want)
		}
	}
}
