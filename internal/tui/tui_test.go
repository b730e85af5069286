package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/mzk-ostrich-remover/internal/config"
	"github.com/handiism/mzk-ostrich-remover/internal/runner"
)

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestNextMode(t *testing.T) {
	assert.Equal(t, runner.ModeFill, nextMode(runner.ModeScan))
	assert.Equal(t, runner.ModeClean, nextMode(runner.ModeFill))
	assert.Equal(t, runner.ModeScan, nextMode(runner.ModeClean))
}

func TestModel_Options(t *testing.T) {
	m := NewModel(config.DefaultSettings(), nil, "1.1.3")
	assert.Equal(t, runner.ModeScan, m.mode)
	assert.False(t, m.dump)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, runner.ModeFill, m.mode)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	assert.True(t, m.dump)
	assert.Contains(t, m.View(), "fill")
}

func TestModel_InvalidRoot(t *testing.T) {
	m := NewModel(config.DefaultSettings(), nil, "1.1.3")
	m.textInput.SetValue("/definitely/not/a/folder")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, StateError, m.state)
	assert.ErrorIs(t, m.err, runner.ErrInvalidRoot)
	assert.Contains(t, m.View(), "Error occurred")
}

func TestModel_ProgressLogsAreCapped(t *testing.T) {
	m := NewModel(config.DefaultSettings(), nil, "1.1.3")
	m.state = StateRunning

	for i := 0; i < maxLogs+5; i++ {
		m = update(t, m, ProgressMsg{Event: runner.ProgressEvent{Message: "line", Level: runner.LevelInfo}})
	}
	assert.Len(t, m.logs, maxLogs)

	m = update(t, m, ProgressMsg{Event: runner.ProgressEvent{Message: "hidden", Level: runner.LevelVerbose}})
	assert.NotContains(t, m.renderLogs(), "hidden")
}
