package console

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/mzk-ostrich-remover/internal/runner"
)

// Palette shared by the command line and the TUI.
var (
	ColorTitle   = lipgloss.Color("#FF6B6B")
	ColorAccent  = lipgloss.Color("#4ECDC4")
	ColorDim     = lipgloss.Color("#6C757D")
	ColorInfo    = lipgloss.Color("#A8DADC")
	ColorSuccess = lipgloss.Color("#95E1A3")
	ColorWarning = lipgloss.Color("#FFE66D")
	ColorError   = lipgloss.Color("#FF6B6B")
	ColorArtist  = lipgloss.Color("#F8B500")
)

// Theme holds the palette styles bound to one renderer, so colors follow
// the capabilities of the output they are written to.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Dim      lipgloss.Style
	Info     lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Artist   lipgloss.Style
	Box      lipgloss.Style
}

// NewTheme creates the styles of the palette for r.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Title:    r.NewStyle().Bold(true).Foreground(ColorTitle),
		Subtitle: r.NewStyle().Foreground(ColorAccent),
		Dim:      r.NewStyle().Foreground(ColorDim),
		Info:     r.NewStyle().Foreground(ColorInfo),
		Success:  r.NewStyle().Foreground(ColorSuccess),
		Warning:  r.NewStyle().Foreground(ColorWarning),
		Error:    r.NewStyle().Foreground(ColorError),
		Artist:   r.NewStyle().Foreground(ColorArtist),
		Box:      r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorAccent).Padding(0, 2),
	}
}

// Event renders one progress message with the marker and color of its level.
func (t Theme) Event(level runner.ProgressLevel, message string) string {
	switch level {
	case runner.LevelError:
		return t.Error.Render("✗ " + message)
	case runner.LevelWarning:
		return t.Warning.Render("! " + message)
	case runner.LevelSuccess:
		return t.Success.Render("✓ " + message)
	case runner.LevelInfo:
		return t.Info.Render("› " + message)
	default:
		return t.Dim.Render("• " + message)
	}
}
