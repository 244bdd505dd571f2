package catalog

// deviceOptions lists the legal follow-up choices for one device category.
type deviceOptions struct {
	operatingSystems []OperatingSystem
	problems         []Problem
}

// devices is the display order of device categories
var devices = []DeviceType{DeviceComputer, DeviceMobile}

var options = map[DeviceType]deviceOptions{
	DeviceComputer: {
		operatingSystems: []OperatingSystem{OSWindows, OSLinux},
		problems:         []Problem{ProblemSlowPerformance, ProblemScreenIssue, ProblemNotWorking},
	},
	DeviceMobile: {
		operatingSystems: []OperatingSystem{OSAndroid, OSIOS},
		problems:         []Problem{ProblemBattery, ProblemScreen, ProblemNetwork},
	},
}

// labels maps every known code to its display label.
// Device, operating system, and problem codes share one namespace.
var labels = map[string]string{
	// Devices
	string(DeviceComputer): "الكمبيوتر",
	string(DeviceMobile):   "الهاتف المحمول",

	// Operating systems
	string(OSWindows): "ويندوز",
	string(OSLinux):   "لينكس",
	string(OSAndroid): "أندرويد",
	string(OSIOS):     "آي أو إس",

	// Problems
	string(ProblemSlowPerformance): "أداء بطيء",
	string(ProblemScreenIssue):     "مشكلة في الشاشة",
	string(ProblemNotWorking):      "لا يعمل",
	string(ProblemBattery):         "البطارية",
	string(ProblemScreen):          "الشاشة",
	string(ProblemNetwork):         "الشبكة",
}

// captions are the shorter device names shown on the selection buttons.
var captions = map[DeviceType]string{
	DeviceComputer: "كمبيوتر",
	DeviceMobile:   "هاتف محمول",
}

// Devices returns the device categories in display order
func Devices() []DeviceType {
	out := make([]DeviceType, len(devices))
	copy(out, devices)
	return out
}

// ValidOperatingSystems returns the ordered operating systems offered for a device.
// Returns an empty slice for an unset or unknown device.
func ValidOperatingSystems(device DeviceType) []OperatingSystem {
	opts, ok := options[device]
	if !ok {
		return []OperatingSystem{}
	}
	out := make([]OperatingSystem, len(opts.operatingSystems))
	copy(out, opts.operatingSystems)
	return out
}

// ValidProblems returns the ordered problem symptoms offered for a device.
// Returns an empty slice for an unset or unknown device.
func ValidProblems(device DeviceType) []Problem {
	opts, ok := options[device]
	if !ok {
		return []Problem{}
	}
	out := make([]Problem, len(opts.problems))
	copy(out, opts.problems)
	return out
}

// HasOperatingSystem reports whether os is offered for device
func HasOperatingSystem(device DeviceType, os OperatingSystem) bool {
	for _, candidate := range options[device].operatingSystems {
		if candidate == os {
			return true
		}
	}
	return false
}

// HasProblem reports whether problem is offered for device
func HasProblem(device DeviceType, problem Problem) bool {
	for _, candidate := range options[device].problems {
		if candidate == problem {
			return true
		}
	}
	return false
}

// Label returns the display label for any catalog code.
// Unknown codes are returned unchanged.
func Label(code string) string {
	if label, ok := labels[code]; ok {
		return label
	}
	return code
}

// Caption returns the button caption for a device, falling back to its label
func Caption(device DeviceType) string {
	if caption, ok := captions[device]; ok {
		return caption
	}
	return device.Label()
}

// Entries returns the whole catalog in display order
func Entries() []Entry {
	entries := make([]Entry, 0, len(devices))
	for _, device := range devices {
		entries = append(entries, Entry{
			Device:           device,
			OperatingSystems: ValidOperatingSystems(device),
			Problems:         ValidProblems(device),
		})
	}
	return entries
}
