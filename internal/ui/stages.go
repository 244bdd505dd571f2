package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/muurk/troubleshooter/internal/selection"
)

// StageStatus is the display state of one wizard stage
type StageStatus int

const (
	StagePending  StageStatus = iota // Not visible yet
	StageCurrent                     // Visible and awaiting input
	StageComplete                    // Answered (or Result reached)
)

// StageStatuses derives the status of every stage from a selection state
func StageStatuses(state selection.State) map[selection.Stage]StageStatus {
	statuses := make(map[selection.Stage]StageStatus, 4)
	current := state.CurrentStage()
	for _, stage := range selection.Stages() {
		switch {
		case !state.IsVisible(stage):
			statuses[stage] = StagePending
		case stage == current && stage != selection.StageResult:
			statuses[stage] = StageCurrent
		default:
			statuses[stage] = StageComplete
		}
	}
	return statuses
}

// RenderStages renders a progress bar followed by one line per stage
func RenderStages(state selection.State, width int) string {
	width = clampWidth(width)

	barWidth := width - 20
	if barWidth > 50 {
		barWidth = 50
	}
	bar := progress.New(
		progress.WithGradient(string(PrimaryColor), string(AccentColor)),
		progress.WithWidth(barWidth),
	)

	var b strings.Builder
	b.WriteString("  ")
	b.WriteString(bar.ViewAs(state.Progress()))
	b.WriteString("\n\n")

	statuses := StageStatuses(state)
	for _, stage := range selection.Stages() {
		b.WriteString(renderStageLine(stage, statuses[stage], stageValue(state, stage)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderStageLine(stage selection.Stage, status StageStatus, value string) string {
	name := fmt.Sprintf("%-18s", stage.String())
	switch status {
	case StageComplete:
		line := StepCompleteStyle.Render("  " + StepMarkerComplete + " " + name)
		if value != "" {
			line += " " + ResultValueStyle.Render(value)
		}
		return line
	case StageCurrent:
		return StepCurrentStyle.Render("  " + StepMarkerCurrent + " " + name + " (awaiting selection)")
	default:
		return StepPendingStyle.Render("  " + StepMarkerPending + " " + name)
	}
}

func stageValue(state selection.State, stage selection.Stage) string {
	switch stage {
	case selection.StageDevice:
		return state.Device.Label()
	case selection.StageOperatingSystem:
		return state.OperatingSystem.Label()
	case selection.StageProblem:
		return state.Problem.Label()
	default:
		return ""
	}
}
