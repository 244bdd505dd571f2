package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/troubleshooter/internal/catalog"
	"github.com/muurk/troubleshooter/internal/selection"
)

var (
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m AppModel, msgs ...tea.Msg) AppModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(AppModel)
		require.True(t, ok, "Update must return AppModel")
	}
	return m
}

func newTestModel() AppModel {
	return NewAppModel(Options{SessionID: "test-session", ShowProgress: true})
}

func TestNewAppModel(t *testing.T) {
	m := newTestModel()

	assert.Equal(t, selection.StageDevice, m.Focus)
	assert.Equal(t, "test-session", m.SessionID)
	assert.True(t, m.Selection.State().IsEmpty())
	assert.Equal(t, []selection.Stage{selection.StageDevice}, m.Selection.VisibleStages())
	assert.Nil(t, m.Init())
}

func TestNewAppModel_GeneratesSessionID(t *testing.T) {
	m := NewAppModel(Options{})
	assert.NotEmpty(t, m.SessionID)
}

func TestAppModel_CompleteWalkthrough(t *testing.T) {
	m := newTestModel()

	// mobile, ios, network
	m = send(t, m, keyDown, keyEnter)
	assert.Equal(t, catalog.DeviceMobile, m.Selection.Device())
	assert.Equal(t, selection.StageOperatingSystem, m.Focus)

	m = send(t, m, keyDown, keyEnter)
	assert.Equal(t, catalog.OSIOS, m.Selection.OperatingSystem())
	assert.Equal(t, selection.StageProblem, m.Focus)

	m = send(t, m, keyDown, keyDown, keyEnter)
	assert.Equal(t, catalog.ProblemNetwork, m.Selection.Problem())
	assert.Equal(t, selection.StageResult, m.Focus)
	assert.True(t, m.IsComplete())
	assert.Len(t, m.Selection.VisibleStages(), 4)
}

func TestAppModel_CursorClamps(t *testing.T) {
	m := newTestModel()

	m = send(t, m, keyUp)
	assert.Equal(t, 0, m.Cursors[selection.StageDevice])

	m = send(t, m, keyDown, keyDown, keyDown)
	assert.Equal(t, len(catalog.Devices())-1, m.Cursors[selection.StageDevice])
}

func TestAppModel_ReselectDeviceClearsLaterStages(t *testing.T) {
	m := newTestModel()
	m = send(t, m, keyEnter, keyEnter, keyEnter)
	require.True(t, m.IsComplete())

	// Focus the device panel and pick mobile
	m = send(t, m, keyTab)
	require.Equal(t, selection.StageDevice, m.Focus)
	m = send(t, m, keyDown, keyEnter)

	assert.Equal(t, catalog.DeviceMobile, m.Selection.Device())
	assert.False(t, m.Selection.OperatingSystem().IsSet())
	assert.False(t, m.Selection.Problem().IsSet())
	assert.Equal(t, selection.StageOperatingSystem, m.Focus)
	assert.Equal(t, 0, m.Cursors[selection.StageOperatingSystem])
	assert.Equal(t, 0, m.Cursors[selection.StageProblem])
}

func TestAppModel_ReselectOperatingSystemClearsProblem(t *testing.T) {
	m := newTestModel()
	m = send(t, m, keyEnter, keyEnter, keyEnter)
	require.True(t, m.IsComplete())

	m = send(t, m, keyShiftTab, keyShiftTab)
	require.Equal(t, selection.StageOperatingSystem, m.Focus)
	m = send(t, m, keyDown, keyEnter)

	assert.Equal(t, catalog.OSLinux, m.Selection.OperatingSystem())
	assert.False(t, m.Selection.Problem().IsSet())
	assert.Equal(t, selection.StageProblem, m.Focus)
}

func TestAppModel_FocusCyclesVisibleStagesOnly(t *testing.T) {
	m := newTestModel()
	m = send(t, m, keyEnter)
	require.Equal(t, []selection.Stage{selection.StageDevice, selection.StageOperatingSystem}, m.Selection.VisibleStages())

	m = send(t, m, keyTab)
	assert.Equal(t, selection.StageDevice, m.Focus)
	m = send(t, m, keyTab)
	assert.Equal(t, selection.StageOperatingSystem, m.Focus)
	m = send(t, m, keyShiftTab)
	assert.Equal(t, selection.StageDevice, m.Focus)
}

func TestAppModel_Restart(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
	}{
		{"restart key", []tea.Msg{runes("r")}},
		{"restart action", []tea.Msg{keyEnter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel()
			m = send(t, m, keyDown, keyEnter, keyEnter, keyEnter)
			require.True(t, m.IsComplete())

			m = send(t, m, tt.keys...)

			assert.True(t, m.Selection.State().IsEmpty())
			assert.Equal(t, selection.StageDevice, m.Focus)
			assert.Equal(t, [4]int{}, m.Cursors)
			assert.False(t, m.ShowSupport)
		})
	}
}

func TestAppModel_Support(t *testing.T) {
	m := newTestModel()

	m = send(t, m, runes("s"))
	assert.False(t, m.ShowSupport, "support is only offered on the result panel")

	m = send(t, m, keyEnter, keyEnter, keyEnter, keyDown, keyEnter)
	assert.True(t, m.ShowSupport)
	assert.Contains(t, m.View(), textSupportMessage)
}

func TestAppModel_RejectedPickShowsError(t *testing.T) {
	m := newTestModel()
	m = send(t, m, keyEnter)

	// Problem panel picked before an operating system
	m.Focus = selection.StageProblem
	m = send(t, m, keyEnter)

	require.Error(t, m.LastError)
	assert.True(t, selection.IsOutOfOrder(m.LastError))
	assert.False(t, m.Selection.Problem().IsSet())
	assert.Equal(t, catalog.DeviceComputer, m.Selection.Device(), "rejected pick leaves the selection untouched")

	m.Focus = selection.StageOperatingSystem
	m = send(t, m, keyEnter)
	assert.NoError(t, m.LastError)
	assert.Equal(t, catalog.OSWindows, m.Selection.OperatingSystem())
}

func TestAppModel_Quit(t *testing.T) {
	m := newTestModel()
	next, cmd := m.Update(runes("q"))
	m = next.(AppModel)

	assert.True(t, m.Quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Empty(t, m.View())
}

func TestAppModel_HelpToggle(t *testing.T) {
	m := newTestModel()
	m = send(t, m, runes("?"))
	assert.True(t, m.Help.ShowAll)
	m = send(t, m, runes("?"))
	assert.False(t, m.Help.ShowAll)
}

func TestAppModel_WindowSize(t *testing.T) {
	m := newTestModel()
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.Width)
	assert.Equal(t, 40, m.Height)
	assert.Equal(t, 60, m.Progress.Width)
}

func TestAppModel_ViewShowsVisiblePanels(t *testing.T) {
	m := newTestModel()
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	assert.Contains(t, view, textDeviceQuestion)
	assert.Contains(t, view, catalog.Caption(catalog.DeviceComputer))
	assert.NotContains(t, view, textOSQuestion)
	assert.Contains(t, view, textProgressPercent(25))

	m = send(t, m, keyDown, keyEnter, keyEnter, keyEnter)
	view = m.View()
	for _, want := range []string{
		textOSQuestion,
		textProblemQuestion,
		textResultTitle,
		catalog.DeviceMobile.Label(),
		catalog.OSAndroid.Label(),
		catalog.ProblemBattery.Label(),
		textProgressPercent(100),
		textActionRestart,
	} {
		assert.True(t, strings.Contains(view, want), "view should contain %q", want)
	}
}

func TestAppModel_ProgressHidden(t *testing.T) {
	m := NewAppModel(Options{SessionID: "x"})
	assert.NotContains(t, m.View(), textProgressStart)
}
