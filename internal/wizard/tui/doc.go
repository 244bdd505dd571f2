// Package tui implements the interactive troubleshooting wizard.
//
// The wizard is a single Bubble Tea model (AppModel) that owns one
// selection.Selection. Every stage the selection makes visible is rendered
// as a panel, top to bottom: device, operating system, problem, and finally
// the result. Which panels exist is recomputed from the selection on every
// render; the model only remembers which panel has keyboard focus and where
// each panel's cursor sits.
//
// # Navigation
//
//   - ↑/↓ (k/j) move the cursor inside the focused panel
//   - Enter picks the option under the cursor
//   - Tab and Shift+Tab move focus between visible panels
//   - r restarts, s shows the support message, ? toggles help, q quits
//
// Going back is done by focusing an earlier panel and picking again. The
// selection clears everything that depended on the old answer, so the
// later panels disappear until they are answered again.
//
// # Usage Example
//
//	app := tui.NewAppModel(tui.Options{ShowProgress: true})
//	program := tea.NewProgram(app, tea.WithAltScreen())
//
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Rejected picks never end the session; the error is shown below the
// panels until the next successful pick or focus change.
package tui
