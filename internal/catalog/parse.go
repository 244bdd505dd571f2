package catalog

import (
	"fmt"
	"strings"
)

// ParseError reports a code that is not present in the catalog.
type ParseError struct {
	Kind string // "device", "operating system" or "problem"
	Code string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Code)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseDevice converts user input into a DeviceType.
// An empty string parses to DeviceUnset.
func ParseDevice(s string) (DeviceType, error) {
	code := normalize(s)
	if code == "" {
		return DeviceUnset, nil
	}
	device := DeviceType(code)
	if !device.IsKnown() {
		return DeviceUnset, &ParseError{Kind: "device", Code: s}
	}
	return device, nil
}

// ParseOperatingSystem converts user input into an OperatingSystem known to
// at least one device. Whether it fits the chosen device is the state
// machine's decision, not the parser's.
func ParseOperatingSystem(s string) (OperatingSystem, error) {
	code := normalize(s)
	if code == "" {
		return OSUnset, nil
	}
	os := OperatingSystem(code)
	for _, device := range devices {
		if HasOperatingSystem(device, os) {
			return os, nil
		}
	}
	return OSUnset, &ParseError{Kind: "operating system", Code: s}
}

// ParseProblem converts user input into a Problem known to at least one device
func ParseProblem(s string) (Problem, error) {
	code := normalize(s)
	if code == "" {
		return ProblemUnset, nil
	}
	problem := Problem(code)
	for _, device := range devices {
		if HasProblem(device, problem) {
			return problem, nil
		}
	}
	return ProblemUnset, &ParseError{Kind: "problem", Code: s}
}
