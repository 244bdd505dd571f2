package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success, failure, or warning
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Detail is one key/value row. Rows render in slice order.
type Detail struct {
	Key   string
	Value string
}

// Result represents a result box
type Result struct {
	Type    ResultType
	Title   string   // e.g., "Solution found"
	Details []Detail // Key-value rows
	Message string   // Free text below the details
	Error   error    // Error (for failure results)
	Hints   []string // Bullet list below everything else
	Width   int
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Detail) *Result {
	return &Result{Type: ResultSuccess, Title: title, Details: details, Width: GetTerminalWidth()}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, hints ...string) *Result {
	return &Result{Type: ResultFailure, Title: title, Error: err, Hints: hints, Width: GetTerminalWidth()}
}

// NewWarningResult creates a warning result box
func NewWarningResult(title string, details ...Detail) *Result {
	return &Result{Type: ResultWarning, Title: title, Details: details, Width: GetTerminalWidth()}
}

// SetWidth sets the width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail row
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Detail{Key: key, Value: value})
	return r
}

// SetMessage sets the free text paragraph
func (r *Result) SetMessage(message string) *Result {
	r.Message = message
	return r
}

// AddHints appends bullet hints
func (r *Result) AddHints(hints ...string) *Result {
	r.Hints = append(r.Hints, hints...)
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := clampWidth(r.Width)

	var (
		marker, word string
		titleStyle   lipgloss.Style
		color        lipgloss.Color
	)
	switch r.Type {
	case ResultFailure:
		marker, word, titleStyle, color = FailureMarker, "FAILED", ErrorTitleStyle, ErrorColor
	case ResultWarning:
		marker, word, titleStyle, color = WarningMarker, "INCOMPLETE", WarningTitleStyle, WarningColor
	default:
		marker, word, titleStyle, color = SuccessMarker, "SUCCESS", SuccessTitleStyle, SuccessColor
	}

	lines := []string{
		"",
		titleStyle.Render(fmt.Sprintf("   %s  %s  ─  %s", marker, word, r.Title)),
		"",
	}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Error.Error()), "")
	}

	if len(r.Details) > 0 {
		for _, d := range r.Details {
			lines = append(lines, ResultKeyStyle.Render("   "+d.Key+":")+" "+ResultValueStyle.Render(d.Value))
		}
		lines = append(lines, "")
	}

	if r.Message != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(TextColor).
			Width(width-12).
			PaddingLeft(3).
			Render(r.Message), "")
	}

	if len(r.Hints) > 0 {
		lines = append(lines, HintTitleStyle.Render("   Next:"))
		for _, hint := range r.Hints {
			lines = append(lines, HintItemStyle.Render("     • "+hint))
		}
		lines = append(lines, "")
	}

	return boxStyle(color, width).Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
