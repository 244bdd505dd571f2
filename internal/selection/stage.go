package selection

import "fmt"

// Stage identifies one panel of the wizard
type Stage int

const (
	StageDevice Stage = iota
	StageOperatingSystem
	StageProblem
	StageResult
)

// stageCount is the number of stages including Result
const stageCount = 4

// String returns a human-readable name for the stage
func (s Stage) String() string {
	switch s {
	case StageDevice:
		return "Device"
	case StageOperatingSystem:
		return "Operating System"
	case StageProblem:
		return "Problem"
	case StageResult:
		return "Result"
	default:
		return fmt.Sprintf("Stage(%d)", s)
	}
}

// Code returns the stable machine-readable name of the stage
func (s Stage) Code() string {
	switch s {
	case StageDevice:
		return "device"
	case StageOperatingSystem:
		return "operating_system"
	case StageProblem:
		return "problem"
	case StageResult:
		return "result"
	default:
		return fmt.Sprintf("stage_%d", int(s))
	}
}

// Stages returns all stages in wizard order
func Stages() []Stage {
	return []Stage{StageDevice, StageOperatingSystem, StageProblem, StageResult}
}
