// Package tui implements the interactive terminal dashboard. It offers the
// same solve operations as the REPL with live resource metrics, backed by
// bubbletea.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/eulerbatch/internal/config"
	apperrors "github.com/agbru/eulerbatch/internal/errors"
	"github.com/agbru/eulerbatch/internal/euler"
	"github.com/agbru/eulerbatch/internal/format"
	"github.com/agbru/eulerbatch/internal/service"
	"github.com/agbru/eulerbatch/internal/sysmon"
)

// Mode selects the operation applied to submitted queries.
type Mode int

const (
	// ModeSum solves sums of multiples of 3 or 5 below the query bound.
	ModeSum Mode = iota
	// ModeFib runs a Fibonacci term analysis up to the query bound.
	ModeFib
)

// String returns the display name of the mode.
func (m Mode) String() string {
	if m == ModeFib {
		return "fibonacci"
	}
	return "sum 3|5"
}

// historyEntry is a solved query shown in the history panel.
type historyEntry struct {
	mode     Mode
	query    uint64
	result   string
	duration time.Duration
	err      error
}

// SolveDoneMsg reports a finished solve back to the update loop.
type SolveDoneMsg struct {
	Mode     Mode
	Query    uint64
	Result   string
	Duration time.Duration
	Err      error
}

// TickMsg drives periodic resource sampling.
type TickMsg time.Time

// SysStatsMsg carries a system resource sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
	Goroutines int
}

// Layout constants for the TUI dashboard.
const (
	historyPanelLines = 12
	tickInterval      = time.Second
)

// Model is the root bubbletea model for the TUI dashboard.
type Model struct {
	svc     service.Service
	cfg     config.AppConfig
	keymap  KeyMap
	version string

	ctx    context.Context
	cancel context.CancelFunc

	input     string
	cursorPos int
	mode      Mode
	solving   bool

	history []historyEntry
	scroll  int
	solved  int
	failed  int

	cpuPercent float64
	memPercent float64
	goroutines int

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(parentCtx context.Context, svc service.Service, cfg config.AppConfig, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	return Model{
		svc:     svc,
		cfg:     cfg,
		keymap:  DefaultKeyMap(),
		version: version,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), sampleSysStatsCmd())
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.cpuPercent = msg.CPUPercent
		m.memPercent = msg.MemPercent
		m.goroutines = msg.Goroutines
		return m, nil

	case SolveDoneMsg:
		m.solving = false
		m.history = append(m.history, historyEntry{
			mode:     msg.Mode,
			query:    msg.Query,
			result:   msg.Result,
			duration: msg.Duration,
			err:      msg.Err,
		})
		if msg.Err != nil {
			m.failed++
		} else {
			m.solved++
		}
		m.scroll = 0
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Submit):
		return m.submit()

	case key.Matches(msg, m.keymap.Mode):
		if m.mode == ModeSum {
			m.mode = ModeFib
		} else {
			m.mode = ModeSum
		}
		return m, nil

	case key.Matches(msg, m.keymap.Clear):
		m.history = nil
		m.scroll = 0
		return m, nil

	case key.Matches(msg, m.keymap.Up):
		if m.scroll < len(m.history)-1 {
			m.scroll++
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		if m.scroll > 0 {
			m.scroll--
		}
		return m, nil
	}

	// Text editing on the query field
	switch msg.Type {
	case tea.KeyBackspace:
		if len(m.input) > 0 && m.cursorPos > 0 {
			m.input = m.input[:m.cursorPos-1] + m.input[m.cursorPos:]
			m.cursorPos--
		}
	case tea.KeyLeft:
		if m.cursorPos > 0 {
			m.cursorPos--
		}
	case tea.KeyRight:
		if m.cursorPos < len(m.input) {
			m.cursorPos++
		}
	case tea.KeyHome:
		m.cursorPos = 0
	case tea.KeyEnd:
		m.cursorPos = len(m.input)
	case tea.KeyRunes:
		// Only accept digits
		for _, r := range msg.Runes {
			if unicode.IsDigit(r) {
				m.input = m.input[:m.cursorPos] + string(r) + m.input[m.cursorPos:]
				m.cursorPos++
			}
		}
	}

	return m, nil
}

// submit parses the input field and launches a solve.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.solving || m.input == "" {
		return m, nil
	}

	n, err := strconv.ParseUint(m.input, 10, 64)
	if err != nil {
		m.history = append(m.history, historyEntry{
			mode:  m.mode,
			err:   fmt.Errorf("invalid query: %s", m.input),
			query: 0,
		})
		m.failed++
		m.input = ""
		m.cursorPos = 0
		return m, nil
	}

	m.solving = true
	m.input = ""
	m.cursorPos = 0
	return m, solveCmd(m.ctx, m.svc, m.mode, n)
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header := m.renderHeader()
	history := m.renderHistory()
	stats := m.renderStats()
	input := m.renderInput()
	footer := m.renderFooter()

	body := lipgloss.JoinHorizontal(lipgloss.Top, history, stats)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, input, footer)
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("Σ eulerbatch")
	version := versionStyle.Render(m.version)

	sumTab := modeInactiveStyle.Render(" " + ModeSum.String() + " ")
	fibTab := modeInactiveStyle.Render(" " + ModeFib.String() + " ")
	if m.mode == ModeSum {
		sumTab = modeActiveStyle.Render("[" + ModeSum.String() + "]")
	} else {
		fibTab = modeActiveStyle.Render("[" + ModeFib.String() + "]")
	}

	return headerStyle.Width(m.width).Render(
		title + " " + version + "  " + sumTab + " " + fibTab)
}

func (m Model) renderHistory() string {
	width := m.width * 2 / 3
	var b strings.Builder
	b.WriteString(titleStyle.Render("HISTORY"))
	b.WriteString("\n")

	if len(m.history) == 0 {
		b.WriteString(historyTimeStyle.Render("No queries yet. Type a bound and press enter."))
	}

	// Newest first, offset by the scroll position.
	shown := 0
	for i := len(m.history) - 1 - m.scroll; i >= 0 && shown < historyPanelLines; i-- {
		e := m.history[i]
		if e.err != nil {
			b.WriteString(fmt.Sprintf("%s %s\n",
				historyQueryStyle.Render(fmt.Sprintf("%s(%s)", modeLabel(e.mode), format.GroupDigits(e.query))),
				historyErrorStyle.Render(e.err.Error())))
		} else {
			b.WriteString(fmt.Sprintf("%s = %s %s\n",
				historyQueryStyle.Render(fmt.Sprintf("%s(%s)", modeLabel(e.mode), format.GroupDigits(e.query))),
				historyResultStyle.Render(e.result),
				historyTimeStyle.Render("("+format.FormatExecutionDuration(e.duration)+")")))
		}
		shown++
	}

	return panelStyle.Width(width).Render(b.String())
}

func modeLabel(m Mode) string {
	if m == ModeFib {
		return "Fib"
	}
	return "S"
}

func (m Model) renderStats() string {
	width := m.width - m.width*2/3 - 4
	if width < 16 {
		width = 16
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("STATS"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", metricLabelStyle.Render("Solved:"), metricValueStyle.Render(strconv.Itoa(m.solved))))
	b.WriteString(fmt.Sprintf("%s %s\n", metricLabelStyle.Render("Failed:"), metricValueStyle.Render(strconv.Itoa(m.failed))))
	b.WriteString(fmt.Sprintf("%s %s\n", metricLabelStyle.Render("CPU:"), metricValueStyle.Render(fmt.Sprintf("%.1f%%", m.cpuPercent))))
	b.WriteString(fmt.Sprintf("%s %s\n", metricLabelStyle.Render("Mem:"), metricValueStyle.Render(fmt.Sprintf("%.1f%%", m.memPercent))))
	b.WriteString(fmt.Sprintf("%s %s\n", metricLabelStyle.Render("Goroutines:"), metricValueStyle.Render(strconv.Itoa(m.goroutines))))

	return panelStyle.Width(width).Render(b.String())
}

func (m Model) renderInput() string {
	display := m.input
	if m.cursorPos >= len(display) {
		display += "|"
	} else {
		display = display[:m.cursorPos] + "|" + display[m.cursorPos:]
	}

	style := inputFocusedStyle
	label := "bound"
	if m.solving {
		style = inputStyle
		label = "solving..."
	}

	return style.Render(fmt.Sprintf("%s> %s", label, display))
}

func (m Model) renderFooter() string {
	parts := []string{
		footerKeyStyle.Render("enter") + footerDescStyle.Render(" solve"),
		footerKeyStyle.Render("tab") + footerDescStyle.Render(" mode"),
		footerKeyStyle.Render("ctrl+l") + footerDescStyle.Render(" clear"),
		footerKeyStyle.Render("q") + footerDescStyle.Render(" quit"),
	}
	return footerDescStyle.Render(strings.Join(parts, "  "))
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, svc service.Service, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, svc, cfg, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// solveCmd returns a tea.Cmd that runs the selected operation and reports
// the outcome as a SolveDoneMsg.
func solveCmd(ctx context.Context, svc service.Service, mode Mode, n uint64) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()

		var result string
		var err error
		switch mode {
		case ModeFib:
			var analysis *euler.Analysis
			analysis, err = svc.EvenFibonacci(ctx, n, euler.FilterEven)
			if err == nil {
				result = format.GroupDigitString(analysis.Sum.String())
			}
		default:
			var sum uint64
			sum, err = svc.Sum(ctx, n)
			if err == nil {
				result = format.GroupDigits(sum)
			}
		}

		return SolveDoneMsg{
			Mode:     mode,
			Query:    n,
			Result:   result,
			Duration: time.Since(start),
			Err:      err,
		}
	}
}

// tickCmd returns a command that sends a TickMsg after the tick interval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleSysStatsCmd reads system-wide resource stats and returns a SysStatsMsg.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{
			CPUPercent: s.CPUPercent,
			MemPercent: s.MemPercent,
			Goroutines: s.Goroutines,
		}
	}
}
