package cli

import (
	apperrors "github.com/agbru/eulerbatch/internal/errors"
	"github.com/agbru/eulerbatch/internal/ui"
)

// CLIColorProvider implements apperrors.ColorProvider using the active theme.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

// Yellow returns the warning color from the current theme.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the reset code from the current theme.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }
