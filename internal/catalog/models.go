package catalog

// DeviceType is the top-level hardware category chosen in the first stage.
type DeviceType string

const (
	DeviceUnset    DeviceType = ""
	DeviceComputer DeviceType = "computer"
	DeviceMobile   DeviceType = "mobile"
)

// OperatingSystem is the operating system chosen in the second stage.
type OperatingSystem string

const (
	OSUnset   OperatingSystem = ""
	OSWindows OperatingSystem = "windows"
	OSLinux   OperatingSystem = "linux"
	OSAndroid OperatingSystem = "android"
	OSIOS     OperatingSystem = "ios"
)

// Problem is the symptom chosen in the third stage.
type Problem string

const (
	ProblemUnset           Problem = ""
	ProblemSlowPerformance Problem = "slow_performance"
	ProblemScreenIssue     Problem = "screen_issue"
	ProblemNotWorking      Problem = "not_working"
	ProblemBattery         Problem = "battery"
	ProblemScreen          Problem = "screen"
	ProblemNetwork         Problem = "network"
)

// IsSet reports whether a device has been chosen
func (d DeviceType) IsSet() bool { return d != DeviceUnset }

// IsKnown reports whether d is a device category present in the catalog
func (d DeviceType) IsKnown() bool {
	_, ok := options[d]
	return ok
}

// Label returns the display label for the device
func (d DeviceType) Label() string { return Label(string(d)) }

// String returns the raw code
func (d DeviceType) String() string { return string(d) }

// IsSet reports whether an operating system has been chosen
func (o OperatingSystem) IsSet() bool { return o != OSUnset }

// Label returns the display label for the operating system
func (o OperatingSystem) Label() string { return Label(string(o)) }

// String returns the raw code
func (o OperatingSystem) String() string { return string(o) }

// IsSet reports whether a problem has been chosen
func (p Problem) IsSet() bool { return p != ProblemUnset }

// Label returns the display label for the problem
func (p Problem) Label() string { return Label(string(p)) }

// String returns the raw code
func (p Problem) String() string { return string(p) }

// Entry describes one device category and the options it offers.
type Entry struct {
	Device           DeviceType
	OperatingSystems []OperatingSystem
	Problems         []Problem
}
