// Package ui renders styled, non-interactive output for troubleshooter commands.
//
// Unlike the interactive wizard in internal/wizard/tui, these components are
// printed once and never read input. The resolve and catalog commands use them.
//
// # Components
//
//   - Header: command banner with title, command line, and ordered parameters
//   - Result: success, failure, or incomplete box with ordered detail rows
//   - RenderStages: progress bar plus a per-stage checklist for a selection
//   - Printer: writes the above to an io.Writer at a fixed width
//
// # Example
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader(ui.NewHeader("Troubleshooting Summary", "troubleshooter resolve"))
//	p.Print(ui.RenderStages(state, p.Width()))
//	p.PrintResult(ui.NewSuccessResult("Solution found",
//	    ui.Detail{Key: "Device", Value: "الكمبيوتر"},
//	))
//
// Detail rows are slices rather than maps so output order is stable.
//
// # Logging
//
// Zap logging is silent unless TROUBLESHOOTER_LOG_LEVEL is set, so this
// output is not interleaved with log lines by default.
package ui
