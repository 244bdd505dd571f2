package selection

import (
	"fmt"

	"github.com/muurk/troubleshooter/internal/catalog"
)

// State is an immutable snapshot of a Selection.
// Visibility, completion, and progress are pure functions of a State.
type State struct {
	Device          catalog.DeviceType      `json:"device" yaml:"device"`
	OperatingSystem catalog.OperatingSystem `json:"operating_system" yaml:"operating_system"`
	Problem         catalog.Problem         `json:"problem" yaml:"problem"`
}

// IsComplete reports whether all three fields are set
func (s State) IsComplete() bool {
	return s.Device.IsSet() && s.OperatingSystem.IsSet() && s.Problem.IsSet()
}

// IsEmpty reports whether nothing has been selected
func (s State) IsEmpty() bool {
	return !s.Device.IsSet() && !s.OperatingSystem.IsSet() && !s.Problem.IsSet()
}

// VisibleStages returns the stages a presentation layer should show, in order
func (s State) VisibleStages() []Stage {
	stages := []Stage{StageDevice}
	if s.Device.IsSet() {
		stages = append(stages, StageOperatingSystem)
	}
	if s.OperatingSystem.IsSet() {
		stages = append(stages, StageProblem)
	}
	if s.IsComplete() {
		stages = append(stages, StageResult)
	}
	return stages
}

// IsVisible reports whether stage is among VisibleStages
func (s State) IsVisible(stage Stage) bool {
	for _, visible := range s.VisibleStages() {
		if visible == stage {
			return true
		}
	}
	return false
}

// CurrentStage returns the deepest visible stage
func (s State) CurrentStage() Stage {
	stages := s.VisibleStages()
	return stages[len(stages)-1]
}

// Progress returns the fraction of stages reached, from 0.25 (device stage
// only) to 1.0 (result visible).
func (s State) Progress() float64 {
	return float64(len(s.VisibleStages())) / stageCount
}

// Validate checks the state against the catalog.
// Returns nil when the state is one the state machine could have produced.
func (s State) Validate() error {
	if !s.Device.IsSet() {
		if s.OperatingSystem.IsSet() {
			return newOutOfOrderError(StageOperatingSystem, string(s.OperatingSystem),
				"operating system set without a device")
		}
		if s.Problem.IsSet() {
			return newOutOfOrderError(StageProblem, string(s.Problem),
				"problem set without a device")
		}
		return nil
	}

	if !s.Device.IsKnown() {
		return newInvalidCodeError(StageDevice, string(s.Device),
			fmt.Sprintf("unknown device %q", s.Device))
	}

	if s.OperatingSystem.IsSet() && !catalog.HasOperatingSystem(s.Device, s.OperatingSystem) {
		return newInvalidCodeError(StageOperatingSystem, string(s.OperatingSystem),
			fmt.Sprintf("operating system %q is not offered for %s", s.OperatingSystem, s.Device))
	}

	if s.Problem.IsSet() {
		if !s.OperatingSystem.IsSet() {
			return newOutOfOrderError(StageProblem, string(s.Problem),
				"problem set without an operating system")
		}
		if !catalog.HasProblem(s.Device, s.Problem) {
			return newInvalidCodeError(StageProblem, string(s.Problem),
				fmt.Sprintf("problem %q is not offered for %s", s.Problem, s.Device))
		}
	}

	return nil
}

// Item is one labelled field of a Summary
type Item struct {
	Code  string `json:"code" yaml:"code"`
	Label string `json:"label" yaml:"label"`
}

// Summary is the labelled restatement of a selection shown on the result panel
type Summary struct {
	Device          Item `json:"device" yaml:"device"`
	OperatingSystem Item `json:"operating_system" yaml:"operating_system"`
	Problem         Item `json:"problem" yaml:"problem"`
	Complete        bool `json:"complete" yaml:"complete"`
}

// Summary returns the labelled form of the state. Unset fields have empty
// codes and labels.
func (s State) Summary() Summary {
	return Summary{
		Device:          item(string(s.Device)),
		OperatingSystem: item(string(s.OperatingSystem)),
		Problem:         item(string(s.Problem)),
		Complete:        s.IsComplete(),
	}
}

func item(code string) Item {
	if code == "" {
		return Item{}
	}
	return Item{Code: code, Label: catalog.Label(code)}
}

// String formats the state as device/os/problem with "-" for unset fields
func (s State) String() string {
	return fmt.Sprintf("%s/%s/%s", orDash(string(s.Device)), orDash(string(s.OperatingSystem)), orDash(string(s.Problem)))
}

func orDash(code string) string {
	if code == "" {
		return "-"
	}
	return code
}
