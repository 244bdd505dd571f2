// Package selection implements the troubleshooting wizard's selection state machine.
//
// A Selection holds the user's current (device, operating system, problem)
// triple. Every mutating operation is a single synchronous transition that
// either applies completely or is rejected with an *Error and leaves the
// Selection untouched.
//
// # Invariants
//
// After every operation the following hold:
//
//  1. An unset device implies an unset operating system and problem.
//  2. A set operating system is offered by the catalog for the device.
//  3. A set problem is offered by the catalog for the device.
//  4. Selecting a device (even the same one) clears the operating system and problem.
//  5. Selecting an operating system clears the problem.
//
// Dependent fields are cleared inside the operation that changes their
// ancestor, so no caller ever observes an intermediate inconsistent state.
//
// # Stages
//
// The wizard has four stages: Device, OperatingSystem, Problem, and Result.
// Which stages are visible is derived from the populated fields:
//
//	Device           always
//	OperatingSystem  device set
//	Problem          operating system set
//	Result           all three set
//
// There is no step counter. Going back to an earlier stage means selecting a
// new value there, which cascades the resets above.
//
// # Usage Example
//
//	sel := selection.New()
//	_ = sel.SelectDevice(catalog.DeviceComputer)
//	_ = sel.SelectOperatingSystem(catalog.OSWindows)
//	if err := sel.SelectProblem(catalog.ProblemBattery); err != nil {
//	    // battery is a mobile problem: rejected, selection unchanged
//	}
//	_ = sel.SelectProblem(catalog.ProblemSlowPerformance)
//	sel.IsComplete() // true
//
// # Thread Safety
//
// A Selection belongs to a single session and is not safe for concurrent
// mutation. The Bubble Tea runtime serialises all updates on one goroutine.
package selection
