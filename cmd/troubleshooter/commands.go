package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/troubleshooter/internal/catalog"
	"github.com/muurk/troubleshooter/internal/config"
	"github.com/muurk/troubleshooter/internal/logging"
	"github.com/muurk/troubleshooter/internal/selection"
	"github.com/muurk/troubleshooter/internal/ui"
	"github.com/muurk/troubleshooter/internal/urls"
	"github.com/muurk/troubleshooter/internal/wizard/tui"
)

// Resolve command flags
var (
	deviceCode  string
	osCode      string
	problemCode string
)

// errIncomplete is returned by resolve when the flags stop short of a result
var errIncomplete = errors.New("selection incomplete")

func init() {
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(catalogCmd)
}

// wizardCmd launches the interactive TUI wizard
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch interactive troubleshooting wizard",
	Long: `Launch an interactive TUI wizard that walks through each question.

Each answer reveals the next question below it. Move back to an earlier
question with shift+tab and pick a different answer; later answers are
cleared automatically.`,
	Example: `  # Launch wizard
  troubleshooter wizard
  # Or simply (wizard is default):
  troubleshooter

  # Keep the wizard in the normal screen buffer and log transitions
  troubleshooter wizard --log-level debug --log-file wizard.log`,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	sessionID := logging.NewSessionID()
	logging.LogSessionStart(sessionID, "wizard")

	model := tui.NewAppModel(tui.Options{
		SessionID:    sessionID,
		ShowProgress: cfg.Preferences.ShowProgress,
	})

	var opts []tea.ProgramOption
	if cfg.Preferences.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, opts...)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("wizard error: %w", err)
	}

	complete := false
	if m, ok := final.(tui.AppModel); ok {
		complete = m.IsComplete()
	}
	logging.LogSessionEnd(sessionID, complete)

	return nil
}

// resolveCmd applies a selection without the interactive wizard
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a selection non-interactively",
	Long: `Apply --device, --os, and --problem in order and print the resolution summary.

The same rules as the wizard apply: an operating system needs a device,
a problem needs an operating system, and every code must be offered for
the chosen device. When the selection is incomplete the options for the
next question are printed and the command exits with an error.`,
	Example: `  # Full selection
  troubleshooter resolve --device mobile --os ios --problem network

  # Machine-readable output
  troubleshooter resolve --device computer --os linux --problem not_working --format json

  # List the operating systems offered for a device
  troubleshooter resolve --device mobile`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&deviceCode, "device", "", "Device category (computer, mobile)")
	resolveCmd.Flags().StringVar(&osCode, "os", "", "Operating system code")
	resolveCmd.Flags().StringVar(&problemCode, "problem", "", "Problem code")
}

func runResolve(cmd *cobra.Command, args []string) error {
	// Suppress usage on execution errors (we're past argument parsing)
	cmd.SilenceUsage = true

	sessionID := logging.NewSessionID()
	logging.LogSessionStart(sessionID, "resolve")

	state, err := resolveSelection(sessionID, deviceCode, osCode, problemCode)
	logging.LogSessionEnd(sessionID, err == nil && state.IsComplete())

	out := cmd.OutOrStdout()
	if err != nil {
		if werr := writeRejection(out, err, outputFormat); werr != nil {
			return werr
		}
		return err
	}

	if !state.IsComplete() {
		if err := writeIncomplete(out, state, outputFormat); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s is required", errIncomplete, state.CurrentStage())
	}

	return writeResolution(out, sessionID, state, outputFormat)
}

// resolveSelection parses the codes and applies them through a Selection.
// Empty codes stop the sequence; a later code after an empty one is out of order.
func resolveSelection(sessionID, device, os, problem string) (selection.State, error) {
	sel := selection.New(selection.WithObserver(func(t selection.Transition) {
		if t.Err != nil {
			logging.LogRejected(sessionID, string(t.Op), t.Code, t.Err)
			return
		}
		logging.LogTransition(sessionID, string(t.Op), t.Code, t.Before.String(), t.After.String())
	}))

	d, err := catalog.ParseDevice(device)
	if err != nil {
		return sel.State(), err
	}
	o, err := catalog.ParseOperatingSystem(os)
	if err != nil {
		return sel.State(), err
	}
	p, err := catalog.ParseProblem(problem)
	if err != nil {
		return sel.State(), err
	}

	if d.IsSet() {
		if err := sel.SelectDevice(d); err != nil {
			return sel.State(), err
		}
	}
	if o.IsSet() {
		if err := sel.SelectOperatingSystem(o); err != nil {
			return sel.State(), err
		}
	}
	if p.IsSet() {
		if err := sel.SelectProblem(p); err != nil {
			return sel.State(), err
		}
	}

	return sel.State(), sel.State().Validate()
}

// rejectionHints suggests how to fix a rejected selection
func rejectionHints(err error) []string {
	var parseErr *catalog.ParseError
	var selErr *selection.Error
	switch {
	case errors.As(err, &parseErr):
		return []string{"Run 'troubleshooter catalog' to list every valid code", "Code reference: " + urls.CatalogReference}
	case errors.As(err, &selErr) && selErr.Type == selection.ErrTypeOutOfOrder:
		return []string{"Pass --device before --os, and --os before --problem"}
	case errors.As(err, &selErr):
		return []string{"Codes must be offered for the chosen device; see 'troubleshooter catalog'"}
	default:
		return nil
	}
}

// rejection is the machine-readable form of a refused selection
type rejection struct {
	Error string `json:"error" yaml:"error"`
	Type  string `json:"type" yaml:"type"`
	Stage string `json:"stage,omitempty" yaml:"stage,omitempty"`
	Code  string `json:"code,omitempty" yaml:"code,omitempty"`
}

// newRejection classifies err by the stage and code it refers to
func newRejection(err error) rejection {
	r := rejection{Error: err.Error(), Type: "error"}

	var parseErr *catalog.ParseError
	var selErr *selection.Error
	switch {
	case errors.As(err, &parseErr):
		r.Type = "unknown_code"
		r.Code = parseErr.Code
		switch parseErr.Kind {
		case "device":
			r.Stage = selection.StageDevice.Code()
		case "problem":
			r.Stage = selection.StageProblem.Code()
		default:
			r.Stage = selection.StageOperatingSystem.Code()
		}
	case errors.As(err, &selErr):
		r.Stage = selErr.Stage.Code()
		r.Code = selErr.Code
		if selErr.Type == selection.ErrTypeOutOfOrder {
			r.Type = "out_of_order"
		} else {
			r.Type = "invalid_code"
		}
	}
	return r
}

// writeRejection reports a refused selection in the requested format
func writeRejection(out io.Writer, err error, format string) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(out, newRejection(err))
	case config.FormatYAML:
		return writeYAML(out, newRejection(err))
	case config.FormatCompact:
		r := newRejection(err)
		fmt.Fprintf(out, "rejected %s: %s\n", r.Type, r.Error)
		return nil
	default:
		printer := ui.NewPrinter(out)
		printer.PrintResult(ui.NewFailureResult("Selection rejected", err, rejectionHints(err)...))
		return nil
	}
}

// resolution is the machine-readable form of a completed selection
type resolution struct {
	SessionID string            `json:"session_id" yaml:"session_id"`
	Summary   selection.Summary `json:"summary" yaml:"summary"`
}

func writeResolution(out io.Writer, sessionID string, state selection.State, format string) error {
	summary := state.Summary()

	switch format {
	case config.FormatCompact:
		fmt.Fprintf(out, "%s / %s / %s\n", summary.Device.Label, summary.OperatingSystem.Label, summary.Problem.Label)
		return nil
	case config.FormatJSON:
		return writeJSON(out, resolution{SessionID: sessionID, Summary: summary})
	case config.FormatYAML:
		return writeYAML(out, resolution{SessionID: sessionID, Summary: summary})
	default:
		printer := ui.NewPrinter(out)
		printer.PrintHeader(ui.NewHeader("Troubleshooting summary", "troubleshooter resolve",
			ui.Detail{Key: "Session", Value: sessionID},
		))
		result := ui.NewSuccessResult("Solution found",
			ui.Detail{Key: "Device", Value: summary.Device.Label},
			ui.Detail{Key: "Operating system", Value: summary.OperatingSystem.Label},
			ui.Detail{Key: "Problem", Value: summary.Problem.Label},
		)
		result.SetMessage("Based on your selections, the troubleshooting steps for this problem have been identified.")
		result.AddHints("Need more help? " + urls.Support)
		printer.PrintResult(result)
		printer.Println(ui.RenderStages(state, printer.Width()))
		return nil
	}
}

// nextOptions is the machine-readable form of an incomplete selection
type nextOptions struct {
	Summary selection.Summary `json:"summary" yaml:"summary"`
	Next    string            `json:"next" yaml:"next"`
	Options []selection.Item  `json:"options" yaml:"options"`
}

func writeIncomplete(out io.Writer, state selection.State, format string) error {
	next := state.CurrentStage()
	opts := stageOptions(state, next)

	switch format {
	case config.FormatJSON:
		return writeJSON(out, nextOptions{Summary: state.Summary(), Next: next.Code(), Options: opts})
	case config.FormatYAML:
		return writeYAML(out, nextOptions{Summary: state.Summary(), Next: next.Code(), Options: opts})
	case config.FormatCompact:
		codes := make([]string, 0, len(opts))
		for _, o := range opts {
			codes = append(codes, o.Code)
		}
		fmt.Fprintf(out, "%s: %s\n", next.Code(), strings.Join(codes, ", "))
		return nil
	default:
		printer := ui.NewPrinter(out)
		result := ui.NewWarningResult("Choose " + next.String())
		for _, o := range opts {
			result.AddDetail(o.Code, o.Label)
		}
		result.AddHints(fmt.Sprintf("Pass the code with --%s", flagForStage(next)))
		printer.PrintResult(result)
		printer.Println(ui.RenderStages(state, printer.Width()))
		return nil
	}
}

// stageOptions lists the codes offered at a stage for the current state
func stageOptions(state selection.State, stage selection.Stage) []selection.Item {
	var items []selection.Item
	switch stage {
	case selection.StageDevice:
		for _, d := range catalog.Devices() {
			items = append(items, selection.Item{Code: string(d), Label: d.Label()})
		}
	case selection.StageOperatingSystem:
		for _, o := range catalog.ValidOperatingSystems(state.Device) {
			items = append(items, selection.Item{Code: string(o), Label: o.Label()})
		}
	case selection.StageProblem:
		for _, p := range catalog.ValidProblems(state.Device) {
			items = append(items, selection.Item{Code: string(p), Label: p.Label()})
		}
	}
	return items
}

func flagForStage(stage selection.Stage) string {
	switch stage {
	case selection.StageOperatingSystem:
		return "os"
	case selection.StageProblem:
		return "problem"
	default:
		return "device"
	}
}

// catalogCmd lists every option the wizard offers
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List devices, operating systems, and problems",
	Long: `List every device category with the operating systems and problems it offers.

Codes are listed in the order the wizard shows them.`,
	Example: `  troubleshooter catalog
  troubleshooter catalog --format yaml`,
	RunE: runCatalog,
}

// catalogEntry is the labelled form of catalog.Entry
type catalogEntry struct {
	Device           selection.Item   `json:"device" yaml:"device"`
	OperatingSystems []selection.Item `json:"operating_systems" yaml:"operating_systems"`
	Problems         []selection.Item `json:"problems" yaml:"problems"`
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	return writeCatalog(cmd.OutOrStdout(), outputFormat)
}

func writeCatalog(out io.Writer, format string) error {
	var entries []catalogEntry
	for _, e := range catalog.Entries() {
		entry := catalogEntry{Device: selection.Item{Code: string(e.Device), Label: e.Device.Label()}}
		for _, o := range e.OperatingSystems {
			entry.OperatingSystems = append(entry.OperatingSystems, selection.Item{Code: string(o), Label: o.Label()})
		}
		for _, p := range e.Problems {
			entry.Problems = append(entry.Problems, selection.Item{Code: string(p), Label: p.Label()})
		}
		entries = append(entries, entry)
	}

	switch format {
	case config.FormatJSON:
		return writeJSON(out, entries)
	case config.FormatYAML:
		return writeYAML(out, entries)
	case config.FormatCompact:
		for _, e := range entries {
			fmt.Fprintf(out, "%s: os=%s problems=%s\n", e.Device.Code, joinCodes(e.OperatingSystems), joinCodes(e.Problems))
		}
		return nil
	default:
		printer := ui.NewPrinter(out)
		for _, e := range entries {
			result := ui.NewSuccessResult(e.Device.Code + " (" + e.Device.Label + ")")
			for _, o := range e.OperatingSystems {
				result.AddDetail("os "+o.Code, o.Label)
			}
			for _, p := range e.Problems {
				result.AddDetail("problem "+p.Code, p.Label)
			}
			printer.PrintResult(result)
		}
		return nil
	}
}

func joinCodes(items []selection.Item) string {
	codes := make([]string, 0, len(items))
	for _, item := range items {
		codes = append(codes, item.Code)
	}
	return strings.Join(codes, ",")
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func writeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}
