package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/troubleshooter/internal/catalog"
	"github.com/muurk/troubleshooter/internal/logging"
	"github.com/muurk/troubleshooter/internal/selection"
)

// resultAction is one of the buttons on the result panel
type resultAction int

const (
	actionRestart resultAction = iota
	actionSupport
)

var resultActions = []resultAction{actionRestart, actionSupport}

// option is one selectable row in a stage panel
type option struct {
	code  string
	label string
}

// Options configures a new AppModel
type Options struct {
	SessionID    string // Correlates log lines; generated when empty
	ShowProgress bool   // Render the progress bar above the panels
}

// AppModel is the wizard's top-level model.
//
// Which panels are shown is derived from the selection on every render;
// the model stores only which visible panel has keyboard focus.
type AppModel struct {
	Selection selection.Selection
	Focus     selection.Stage
	Cursors   [4]int // Cursor per stage, indexed by selection.Stage

	SessionID    string
	LastError    error
	ShowSupport  bool
	ShowProgress bool
	Quitting     bool

	// UI state
	Width    int
	Height   int
	Help     help.Model
	Keys     keyMap
	Progress progress.Model
}

// NewAppModel creates a wizard at the device stage with an empty selection
func NewAppModel(opts Options) AppModel {
	sessionID := opts.SessionID
	if sessionID == "" {
		sessionID = logging.NewSessionID()
	}

	bar := progress.New(
		progress.WithGradient(string(PrimaryColor), string(AccentColor)),
		progress.WithWidth(40),
	)
	bar.ShowPercentage = false

	return AppModel{
		Selection:    selection.New(selection.WithObserver(transitionLogger(sessionID))),
		Focus:        selection.StageDevice,
		SessionID:    sessionID,
		ShowProgress: opts.ShowProgress,
		Help:         help.New(),
		Keys:         newKeyMap(),
		Progress:     bar,
	}
}

// transitionLogger reports every selection operation to the structured log
func transitionLogger(sessionID string) selection.Observer {
	return func(t selection.Transition) {
		if t.Err != nil {
			logging.LogRejected(sessionID, string(t.Op), t.Code, t.Err)
			return
		}
		logging.LogTransition(sessionID, string(t.Op), t.Code, t.Before.String(), t.After.String())
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		barWidth := msg.Width - 12
		if barWidth > 60 {
			barWidth = 60
		}
		if barWidth < 20 {
			barWidth = 20
		}
		m.Progress.Width = barWidth
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a key press to the focused panel
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll

	case key.Matches(msg, m.Keys.Restart):
		m.restart()

	case key.Matches(msg, m.Keys.Support):
		if m.Selection.IsComplete() {
			m.ShowSupport = true
		}

	case key.Matches(msg, m.Keys.NextStage):
		m.moveFocus(1)

	case key.Matches(msg, m.Keys.PrevStage):
		m.moveFocus(-1)

	case key.Matches(msg, m.Keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.Keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.Keys.Select):
		m.activate()
	}

	return m, nil
}

// activate applies the option under the cursor of the focused panel
func (m *AppModel) activate() {
	if m.Focus == selection.StageResult {
		switch resultActions[m.Cursors[selection.StageResult]] {
		case actionRestart:
			m.restart()
		case actionSupport:
			m.ShowSupport = true
		}
		return
	}

	opts := m.options(m.Focus)
	idx := m.Cursors[m.Focus]
	if idx < 0 || idx >= len(opts) {
		return
	}
	code := opts[idx].code

	var err error
	switch m.Focus {
	case selection.StageDevice:
		err = m.Selection.SelectDevice(catalog.DeviceType(code))
	case selection.StageOperatingSystem:
		err = m.Selection.SelectOperatingSystem(catalog.OperatingSystem(code))
	case selection.StageProblem:
		err = m.Selection.SelectProblem(catalog.Problem(code))
	}
	if err != nil {
		m.LastError = err
		return
	}

	m.LastError = nil
	m.ShowSupport = false
	// Later panels start fresh because their options were reset
	for stage := m.Focus + 1; stage <= selection.StageResult; stage++ {
		m.Cursors[stage] = 0
	}
	m.Focus = m.Selection.State().CurrentStage()
}

// restart clears the selection and returns focus to the device panel
func (m *AppModel) restart() {
	m.Selection.Restart()
	m.Focus = selection.StageDevice
	m.Cursors = [4]int{}
	m.LastError = nil
	m.ShowSupport = false
}

// moveFocus cycles focus through the visible panels
func (m *AppModel) moveFocus(delta int) {
	visible := m.Selection.VisibleStages()
	pos := 0
	for i, stage := range visible {
		if stage == m.Focus {
			pos = i
		}
	}
	pos = (pos + delta + len(visible)) % len(visible)
	m.Focus = visible[pos]
	m.LastError = nil
}

// moveCursor moves the cursor of the focused panel, clamped to its options
func (m *AppModel) moveCursor(delta int) {
	count := len(m.options(m.Focus))
	if m.Focus == selection.StageResult {
		count = len(resultActions)
	}
	if count == 0 {
		return
	}
	next := m.Cursors[m.Focus] + delta
	if next < 0 {
		next = 0
	}
	if next >= count {
		next = count - 1
	}
	m.Cursors[m.Focus] = next
}

// options returns the rows offered by a stage panel for the current selection
func (m AppModel) options(stage selection.Stage) []option {
	var opts []option
	switch stage {
	case selection.StageDevice:
		for _, d := range catalog.Devices() {
			opts = append(opts, option{code: string(d), label: catalog.Caption(d)})
		}
	case selection.StageOperatingSystem:
		for _, os := range catalog.ValidOperatingSystems(m.Selection.Device()) {
			opts = append(opts, option{code: string(os), label: os.Label()})
		}
	case selection.StageProblem:
		for _, p := range catalog.ValidProblems(m.Selection.Device()) {
			opts = append(opts, option{code: string(p), label: p.Label()})
		}
	}
	return opts
}

// chosen returns the code the selection currently holds for a stage
func (m AppModel) chosen(stage selection.Stage) string {
	switch stage {
	case selection.StageDevice:
		return string(m.Selection.Device())
	case selection.StageOperatingSystem:
		return string(m.Selection.OperatingSystem())
	case selection.StageProblem:
		return string(m.Selection.Problem())
	default:
		return ""
	}
}

// IsComplete reports whether the wizard reached the result panel
func (m AppModel) IsComplete() bool {
	return m.Selection.IsComplete()
}
