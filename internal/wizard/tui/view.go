package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/troubleshooter/internal/selection"
	"github.com/muurk/troubleshooter/internal/urls"
)

// View renders the UI
func (m AppModel) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(RenderTitle(textTitle))
	b.WriteString("\n")
	b.WriteString(RenderSubtitle(textSubtitle))
	b.WriteString("\n\n")

	if m.ShowProgress {
		b.WriteString(m.renderProgress())
		b.WriteString("\n\n")
	}

	for _, stage := range m.Selection.VisibleStages() {
		b.WriteString(m.renderPanel(stage))
		b.WriteString("\n")
	}

	if m.ShowSupport {
		b.WriteString(RenderInfo(textSupportMessage + "\n" + urls.Support))
		b.WriteString("\n")
	}

	if m.LastError != nil {
		b.WriteString(RenderError(m.LastError.Error()))
		b.WriteString("\n")
	}

	return RenderApplicationContainer(b.String(), m.helpView(), m.Width, m.Height)
}

// helpView renders the footer help for the focused panel
func (m AppModel) helpView() string {
	if m.Focus == selection.StageResult {
		return m.Help.View(resultKeyMap{m.Keys})
	}
	return m.Help.View(m.Keys)
}

// renderProgress renders the bar with start, percentage, and end captions
func (m AppModel) renderProgress() string {
	ratio := m.Selection.State().Progress()
	percent := int(math.Round(ratio * 100))

	captions := lipgloss.JoinHorizontal(lipgloss.Top,
		ProgressCaptionStyle.Render(textProgressStart),
		"   ",
		ProgressCaptionStyle.Render(textProgressPercent(percent)),
		"   ",
		ProgressCaptionStyle.Render(textProgressEnd),
	)

	return lipgloss.JoinVertical(lipgloss.Left, " "+m.Progress.ViewAs(ratio), " "+captions)
}

// renderPanel renders one visible stage
func (m AppModel) renderPanel(stage selection.Stage) string {
	if stage == selection.StageResult {
		return m.renderResultPanel()
	}

	var b strings.Builder
	question, hint := m.panelText(stage)
	b.WriteString(ResultValueStyle.Render(question))
	b.WriteString("\n")
	b.WriteString(RenderSubtitle(hint))
	b.WriteString("\n\n")

	focused := stage == m.Focus
	chosen := m.chosen(stage)
	for i, opt := range m.options(stage) {
		label := opt.label
		if opt.code == chosen {
			label += " " + ChosenMarkerStyle.Render("✓")
		}
		b.WriteString(RenderMenuItem(label, focused && i == m.Cursors[stage]))
		b.WriteString("\n")
	}

	return m.panelStyle(stage).Render(strings.TrimRight(b.String(), "\n"))
}

// panelText returns the question and hint shown above a stage's options
func (m AppModel) panelText(stage selection.Stage) (string, string) {
	deviceLabel := m.Selection.Device().Label()
	switch stage {
	case selection.StageOperatingSystem:
		return textOSQuestion, textOSHint(deviceLabel)
	case selection.StageProblem:
		return textProblemQuestion, textProblemHint(deviceLabel)
	default:
		return textDeviceQuestion, textDeviceHint
	}
}

func (m AppModel) panelStyle(stage selection.Stage) lipgloss.Style {
	width := m.panelWidth()
	if stage == m.Focus {
		return FocusedPanelStyle.Width(width)
	}
	return PanelStyle.Width(width)
}

// panelWidth fits panels inside the application container
func (m AppModel) panelWidth() int {
	width := m.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	return width - 10
}

// renderResultPanel restates the selection and offers the result actions
func (m AppModel) renderResultPanel() string {
	summary := m.Selection.State().Summary()

	var b strings.Builder
	b.WriteString(ChosenMarkerStyle.Render("✓ " + textResultTitle))
	b.WriteString("\n\n")
	b.WriteString(ResultValueStyle.Render(textResultHeading))
	b.WriteString("\n")
	for _, row := range []struct{ key, value string }{
		{textResultDevice, summary.Device.Label},
		{textResultOS, summary.OperatingSystem.Label},
		{textResultProblem, summary.Problem.Label},
	} {
		b.WriteString("  ")
		b.WriteString(ResultKeyStyle.Render(row.key + ":"))
		b.WriteString(" ")
		b.WriteString(ResultValueStyle.Render(row.value))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(summaryWrap(textResultSummary, m.panelWidth()-6))
	b.WriteString("\n\n")

	focused := m.Focus == selection.StageResult
	for i, action := range resultActions {
		b.WriteString(RenderMenuItem(actionLabel(action), focused && i == m.Cursors[selection.StageResult]))
		b.WriteString("\n")
	}

	style := ResultPanelStyle.Width(m.panelWidth())
	if !focused {
		style = style.BorderForeground(SubtleColor)
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func actionLabel(action resultAction) string {
	if action == actionSupport {
		return textActionSupport
	}
	return textActionRestart
}

func summaryWrap(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(text)
}
