package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/eulerbatch/internal/ui"
)

// Style variables for the TUI dashboard.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle         lipgloss.Style
	headerStyle        lipgloss.Style
	titleStyle         lipgloss.Style
	versionStyle       lipgloss.Style
	inputStyle         lipgloss.Style
	inputFocusedStyle  lipgloss.Style
	historyQueryStyle  lipgloss.Style
	historyResultStyle lipgloss.Style
	historyTimeStyle   lipgloss.Style
	historyErrorStyle  lipgloss.Style
	metricLabelStyle   lipgloss.Style
	metricValueStyle   lipgloss.Style
	footerKeyStyle     lipgloss.Style
	footerDescStyle    lipgloss.Style
	modeActiveStyle    lipgloss.Style
	modeInactiveStyle  lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	inputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Dim).
		Padding(0, 1)

	inputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)

	historyQueryStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	historyResultStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	historyTimeStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	historyErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	metricLabelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	metricValueStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	modeActiveStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	modeInactiveStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
