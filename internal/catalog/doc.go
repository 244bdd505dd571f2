// Package catalog holds the static option tables for the troubleshooting wizard.
//
// The catalog answers three questions for the rest of the application:
//   - which operating systems are valid for a device category
//   - which problem symptoms are valid for a device category
//   - how a device, operating system, or problem code is labelled on screen
//
// # Tables
//
//	device    operating systems   problems
//	computer  windows, linux      slow_performance, screen_issue, not_working
//	mobile    android, ios        battery, screen, network
//
// Order matters: option lists are returned in the order above and the wizard
// renders them in that order.
//
// # Codes and Labels
//
// Device categories, operating systems, and problems are closed enumerations
// (DeviceType, OperatingSystem, Problem). The zero value of each type means
// "unset". Label falls back to the code itself for anything it does not know,
// so rendering never fails.
//
// # Thread Safety
//
// All tables are read-only after package initialisation. Lookups return fresh
// slices, so callers may modify results freely.
package catalog
