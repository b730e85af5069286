// Package tui provides a Bubble Tea terminal user interface for mzk-ostrich-remover.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/handiism/mzk-ostrich-remover/internal/config"
	"github.com/handiism/mzk-ostrich-remover/internal/console"
	"github.com/handiism/mzk-ostrich-remover/internal/runner"
)

var (
	theme = console.NewTheme(lipgloss.DefaultRenderer())

	titleStyle = theme.Title.MarginBottom(1)
	boxStyle   = theme.Box.Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateRunning
	StateComplete
	StateError
)

// maxLogs is the number of progress lines kept on screen.
const maxLogs = 10

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   runner.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logger    *zap.Logger
	version   string
	logs      []LogEntry
	err       error

	runner *runner.Runner
	events chan runner.ProgressEvent
	stats  *runner.Stats

	// Run progress
	processed int64
	total     int64
	errors    int64

	// Options
	mode    runner.Mode
	dump    bool
	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings, logger *zap.Logger, version string) Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/music/"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Title.UnsetBold()

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logger:    logger,
		version:   version,
		logs:      make([]LogEntry, 0),
		mode:      runner.ModeScan,
		dump:      settings.DumpReport,
		verbose:   settings.Verbose,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent when the runner reports progress.
	ProgressMsg struct {
		Event runner.ProgressEvent
	}

	// RunDoneMsg is sent when the run completes.
	RunDoneMsg struct {
		Stats *runner.Stats
		Err   error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// nextMode cycles scan, fill and clean.
func nextMode(mode runner.Mode) runner.Mode {
	switch mode {
	case runner.ModeScan:
		return runner.ModeFill
	case runner.ModeFill:
		return runner.ModeClean
	default:
		return runner.ModeScan
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state != StateRunning {
				return m, tea.Quit
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				root := m.textInput.Value()
				if err := runner.ValidateRoot(root); err != nil {
					m.state = StateError
					m.err = err
					return m, nil
				}
				m.state = StateRunning
				m.startRunner()
				return m, tea.Batch(m.run(root), m.waitForEvent(), m.tickProgress(), m.spinner.Tick)
			}

		case "tab":
			if m.state == StateInput {
				m.mode = nextMode(m.mode)
				return m, nil
			}

		case "ctrl+d":
			if m.state == StateInput {
				m.dump = !m.dump
				return m, nil
			}

		case "ctrl+v":
			if m.state == StateInput {
				m.verbose = !m.verbose
				return m, nil
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new run
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.stats = nil
				m.processed, m.total, m.errors = 0, 0, 0
				m.runner = nil
				m.textInput.Focus()
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		cmds = append(cmds, m.waitForEvent())
		// Filter verbose messages if not in verbose mode
		if msg.Event.Level == runner.LevelVerbose && !m.verbose {
			break
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}

	case RunDoneMsg:
		m.stats = msg.Stats
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
			m.processed = int64(msg.Stats.Tracks)
			m.total = int64(msg.Stats.TotalTracks)
			m.errors = int64(msg.Stats.Errors)
		}

	case TickMsg:
		// Update progress from the runner
		if m.runner != nil && m.state == StateRunning {
			m.processed, m.total, m.errors = m.runner.Progress()

			var percent float64
			if m.total > 0 {
				percent = float64(m.processed) / float64(m.total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// startRunner creates the runner and the channel its events are sent on.
func (m *Model) startRunner() {
	settings := *m.settings
	settings.DumpReport = m.dump
	settings.Verbose = m.verbose

	events := make(chan runner.ProgressEvent, 64)
	m.events = events
	m.runner = runner.New(&settings, m.logger, m.version, func(e runner.ProgressEvent) {
		select {
		case events <- e:
		default:
			// The UI only shows the latest lines; drop when it lags.
		}
	})
}

// waitForEvent returns a command delivering the next runner event.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		e, ok := <-events
		if !ok {
			return nil
		}
		return ProgressMsg{Event: e}
	}
}

// run executes the runner in the background.
func (m Model) run(root string) tea.Cmd {
	r, mode, events := m.runner, m.mode, m.events
	return func() tea.Msg {
		stats, err := r.Run(mode, root)
		close(events)
		return RunDoneMsg{Stats: stats, Err: err}
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("MzkOstrichRemover " + m.version))
	b.WriteString("\n")
	b.WriteString(theme.Dim.Render("Scan, fill and clean music tags from file names"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateRunning:
		b.WriteString(m.viewRunning())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(theme.Dim.Render(m.getHelpText()))

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[×]"
	}
	return "[ ]"
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(theme.Subtitle.Render("Enter the library folder (with a trailing separator):"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Info.Render("Mode: "))
	b.WriteString(theme.Artist.Render(m.mode.String()))
	b.WriteString(theme.Dim.Render(" (tab)"))
	b.WriteString("\n\n")

	b.WriteString(theme.Info.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Dump JSON report (ctrl+d)\n", checkbox(m.dump)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+v)\n", checkbox(m.verbose)))
	b.WriteString("\n")
	b.WriteString(theme.Dim.Render(fmt.Sprintf("Report directory: %s", m.settings.ReportDir)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewRunning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Running %s...", m.mode)))
	b.WriteString("\n\n")

	var percent float64
	if m.total > 0 {
		percent = float64(m.processed) / float64(m.total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(theme.Info.Render(fmt.Sprintf(
		"Tracks: %d/%d | Errors: %d | Purity: %.2f%%",
		m.processed,
		m.total,
		m.errors,
		runner.Purity(int(m.errors), int(m.processed))*100,
	)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	s := m.stats
	lines := []string{
		fmt.Sprintf("%s complete!", strings.ToUpper(s.Mode.String()[:1])+s.Mode.String()[1:]),
		"",
		fmt.Sprintf("Albums: %d", s.Albums),
		fmt.Sprintf("Tracks: %d/%d", s.Tracks, s.TotalTracks),
		fmt.Sprintf("Size: %s", humanize.Bytes(uint64(s.Info.Bytes))),
		fmt.Sprintf("Errors: %d", s.Errors),
	}
	if s.Mode == runner.ModeScan {
		lines = append(lines,
			fmt.Sprintf("Warnings: %d", s.Warnings),
			fmt.Sprintf("Purity: %.2f%%", s.Purity*100))
	}
	if s.ReportPath != "" {
		lines = append(lines, fmt.Sprintf("Report: %s", s.ReportPath))
	}
	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(theme.Error.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		b.WriteString(theme.Event(log.Level, log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • tab: mode • ctrl+d: dump • ctrl+v: verbose • esc: quit"
	case StateRunning:
		return "ctrl+c: quit"
	case StateComplete, StateError:
		return "r: new run • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings, logger *zap.Logger, version string) error {
	p := tea.NewProgram(NewModel(settings, logger, version), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
