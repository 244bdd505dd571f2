package selection

import (
	"fmt"

	"github.com/muurk/troubleshooter/internal/catalog"
)

// Operation names a mutating call on a Selection
type Operation string

const (
	OpSelectDevice          Operation = "select_device"
	OpSelectOperatingSystem Operation = "select_operating_system"
	OpSelectProblem         Operation = "select_problem"
	OpRestart               Operation = "restart"
)

// Transition records one attempted operation. Before and After are equal
// when Err is non-nil.
type Transition struct {
	Op     Operation
	Code   string
	Before State
	After  State
	Err    error
}

// Observer is notified after every attempted operation
type Observer func(Transition)

// Option configures a Selection
type Option func(*Selection)

// WithObserver registers a function called after every operation
func WithObserver(observer Observer) Option {
	return func(s *Selection) {
		s.observer = observer
	}
}

// Selection is the wizard's mutable state. The zero value is an empty
// selection with no observer.
type Selection struct {
	state    State
	observer Observer
}

// New creates an empty selection
func New(opts ...Option) Selection {
	var s Selection
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// State returns a snapshot of the current selection
func (s *Selection) State() State { return s.state }

// Device returns the selected device, or DeviceUnset
func (s *Selection) Device() catalog.DeviceType { return s.state.Device }

// OperatingSystem returns the selected operating system, or OSUnset
func (s *Selection) OperatingSystem() catalog.OperatingSystem { return s.state.OperatingSystem }

// Problem returns the selected problem, or ProblemUnset
func (s *Selection) Problem() catalog.Problem { return s.state.Problem }

// IsComplete reports whether device, operating system, and problem are all set
func (s *Selection) IsComplete() bool { return s.state.IsComplete() }

// VisibleStages returns the stages to render for the current selection
func (s *Selection) VisibleStages() []Stage { return s.state.VisibleStages() }

// SelectDevice sets the device and clears the operating system and problem.
// Unknown devices are rejected.
func (s *Selection) SelectDevice(device catalog.DeviceType) error {
	if !device.IsKnown() {
		return s.reject(OpSelectDevice, string(device),
			newInvalidCodeError(StageDevice, string(device), fmt.Sprintf("unknown device %q", device)))
	}

	return s.apply(OpSelectDevice, string(device), State{Device: device})
}

// SelectOperatingSystem sets the operating system and clears the problem.
// Requires a device and an operating system the catalog offers for it.
func (s *Selection) SelectOperatingSystem(os catalog.OperatingSystem) error {
	if !s.state.Device.IsSet() {
		return s.reject(OpSelectOperatingSystem, string(os),
			newOutOfOrderError(StageOperatingSystem, string(os), "select a device before an operating system"))
	}
	if !catalog.HasOperatingSystem(s.state.Device, os) {
		return s.reject(OpSelectOperatingSystem, string(os),
			newInvalidCodeError(StageOperatingSystem, string(os),
				fmt.Sprintf("operating system %q is not offered for %s", os, s.state.Device)))
	}

	return s.apply(OpSelectOperatingSystem, string(os), State{
		Device:          s.state.Device,
		OperatingSystem: os,
	})
}

// SelectProblem sets the problem.
// Requires an operating system and a problem the catalog offers for the device.
func (s *Selection) SelectProblem(problem catalog.Problem) error {
	if !s.state.OperatingSystem.IsSet() {
		return s.reject(OpSelectProblem, string(problem),
			newOutOfOrderError(StageProblem, string(problem), "select an operating system before a problem"))
	}
	if !catalog.HasProblem(s.state.Device, problem) {
		return s.reject(OpSelectProblem, string(problem),
			newInvalidCodeError(StageProblem, string(problem),
				fmt.Sprintf("problem %q is not offered for %s", problem, s.state.Device)))
	}

	return s.apply(OpSelectProblem, string(problem), State{
		Device:          s.state.Device,
		OperatingSystem: s.state.OperatingSystem,
		Problem:         problem,
	})
}

// Restart clears every field. It always succeeds.
func (s *Selection) Restart() {
	_ = s.apply(OpRestart, "", State{})
}

// apply replaces the whole state in one assignment
func (s *Selection) apply(op Operation, code string, next State) error {
	before := s.state
	s.state = next
	s.notify(Transition{Op: op, Code: code, Before: before, After: next})
	return nil
}

func (s *Selection) reject(op Operation, code string, err *Error) error {
	s.notify(Transition{Op: op, Code: code, Before: s.state, After: s.state, Err: err})
	return err
}

func (s *Selection) notify(t Transition) {
	if s.observer != nil {
		s.observer(t)
	}
}
