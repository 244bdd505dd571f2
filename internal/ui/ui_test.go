package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/muurk/troubleshooter/internal/catalog"
	"github.com/muurk/troubleshooter/internal/selection"
)

func TestStageStatuses(t *testing.T) {
	tests := []struct {
		name  string
		state selection.State
		want  map[selection.Stage]StageStatus
	}{
		{
			name:  "initial",
			state: selection.State{},
			want: map[selection.Stage]StageStatus{
				selection.StageDevice:          StageCurrent,
				selection.StageOperatingSystem: StagePending,
				selection.StageProblem:         StagePending,
				selection.StageResult:          StagePending,
			},
		},
		{
			name:  "operating system chosen",
			state: selection.State{Device: catalog.DeviceComputer, OperatingSystem: catalog.OSLinux},
			want: map[selection.Stage]StageStatus{
				selection.StageDevice:          StageComplete,
				selection.StageOperatingSystem: StageComplete,
				selection.StageProblem:         StageCurrent,
				selection.StageResult:          StagePending,
			},
		},
		{
			name: "complete",
			state: selection.State{
				Device:          catalog.DeviceComputer,
				OperatingSystem: catalog.OSLinux,
				Problem:         catalog.ProblemNotWorking,
			},
			want: map[selection.Stage]StageStatus{
				selection.StageDevice:          StageComplete,
				selection.StageOperatingSystem: StageComplete,
				selection.StageProblem:         StageComplete,
				selection.StageResult:          StageComplete,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StageStatuses(tt.state))
		})
	}
}

func TestRenderStagesShowsLabels(t *testing.T) {
	state := selection.State{Device: catalog.DeviceMobile, OperatingSystem: catalog.OSIOS}

	out := RenderStages(state, 80)

	assert.Contains(t, out, "الهاتف المحمول")
	assert.Contains(t, out, "آي أو إس")
	assert.Contains(t, out, "awaiting selection")
	assert.Contains(t, out, "75%")
}

func TestResultRenderOrderAndSections(t *testing.T) {
	r := NewSuccessResult("Solution found",
		Detail{Key: "Device", Value: "computer"},
		Detail{Key: "Operating System", Value: "windows"},
	).AddDetail("Problem", "not_working").
		SetMessage("Static summary").
		AddHints("restart").
		SetWidth(80)

	out := r.String()

	assert.Contains(t, out, "SUCCESS")
	assert.Contains(t, out, "Static summary")
	assert.Contains(t, out, "restart")
	device := strings.Index(out, "Device:")
	os := strings.Index(out, "Operating System:")
	problem := strings.Index(out, "Problem:")
	assert.True(t, device < os && os < problem, "details should keep insertion order")
}

func TestFailureAndWarningResults(t *testing.T) {
	failure := NewFailureResult("Selection rejected", errors.New("Invalid Code: bad"), "pick again").SetWidth(70).Render()
	assert.Contains(t, failure, "FAILED")
	assert.Contains(t, failure, "Error: Invalid Code: bad")
	assert.Contains(t, failure, "pick again")

	warning := NewWarningResult("Selection incomplete", Detail{Key: "Next", Value: "problem"}).SetWidth(70).Render()
	assert.Contains(t, warning, "INCOMPLETE")
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).WithWidth(10)

	assert.Equal(t, MinTerminalWidth, p.Width(), "width is clamped to the minimum")

	p.PrintHeader(NewHeader("Catalog", "troubleshooter catalog", Detail{Key: "Devices", Value: "2"}))
	p.Newline()
	p.Print("plain")

	out := buf.String()
	assert.Contains(t, out, "CATALOG")
	assert.Contains(t, out, "troubleshooter catalog")
	assert.Contains(t, out, "Devices:")
	assert.True(t, strings.HasSuffix(out, "plain"))
}

func TestClampWidth(t *testing.T) {
	assert.Equal(t, MinTerminalWidth, clampWidth(0))
	assert.Equal(t, 80, clampWidth(80))
	assert.Equal(t, MaxContentWidth, clampWidth(500))
}
