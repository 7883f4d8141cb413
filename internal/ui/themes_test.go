package ui

import (
	"os"
	"testing"
)

func TestSetTheme(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	tests := []struct {
		name     string
		wantName string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"unknown", "dark"},
		{"", "dark"},
	}

	for _, tt := range tests {
		t.Run("name "+tt.name, func(t *testing.T) {
			SetTheme(tt.name)
			if got := GetCurrentTheme().Name; got != tt.wantName {
				t.Errorf("SetTheme(%q) activated %q, want %q", tt.name, got, tt.wantName)
			}
		})
	}
}

func TestInitTheme(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	t.Run("noColor flag wins", func(t *testing.T) {
		InitTheme(true)
		if GetCurrentTheme().Name != "none" {
			t.Error("InitTheme(true) should activate the no-color theme")
		}
	})

	t.Run("NO_COLOR env respected", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Error("InitTheme should respect NO_COLOR")
		}
	})

	t.Run("defaults to dark", func(t *testing.T) {
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			t.Skip("NO_COLOR set in the environment")
		}
		InitTheme(false)
		if GetCurrentTheme().Name != "dark" {
			t.Error("InitTheme(false) should default to the dark theme")
		}
	})
}

func TestGetCurrentTUITheme(t *testing.T) {
	defer SetCurrentTheme(DarkTheme)

	SetTheme("none")
	if GetCurrentTUITheme() != NoColorTUITheme {
		t.Error("no-color theme should map to NoColorTUITheme")
	}

	SetTheme("dark")
	if GetCurrentTUITheme() != DarkTUITheme {
		t.Error("dark theme should map to DarkTUITheme")
	}
}

func TestNoColorThemeIsEmpty(t *testing.T) {
	if NoColorTheme.Primary != "" || NoColorTheme.Bold != "" || NoColorTheme.Reset != "" {
		t.Error("NoColorTheme must not emit any escape codes")
	}
}
