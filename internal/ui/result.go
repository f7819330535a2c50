package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Result represents a success or failure box shown at the end of a command
type Result struct {
	Success         bool
	Title           string            // e.g., "Layout written"
	Details         map[string]string // Key-value details to display
	Error           error             // Error (for failure results)
	Troubleshooting []string          // Troubleshooting tips (for failure results)
	Width           int               // Terminal width
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details map[string]string) *Result {
	return &Result{
		Success: true,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var lines []string
	lines = append(lines, "")

	if r.Success {
		lines = append(lines, SuccessTitleStyle.Render(
			fmt.Sprintf("   %s  SUCCESS  ─  %s", SuccessMarker, r.Title)))
	} else {
		lines = append(lines, ErrorTitleStyle.Render(
			fmt.Sprintf("   %s  FAILED  ─  %s", FailureMarker, r.Title)))
	}
	lines = append(lines, "")

	for key, value := range r.Details {
		keyStyled := ResultKeyStyle.Render(fmt.Sprintf("   %s:", key))
		lines = append(lines, keyStyled+" "+ResultValueStyle.Render(value))
	}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   Error: "+r.Error.Error()))
		lines = append(lines, "")
	}

	if len(r.Troubleshooting) > 0 {
		lines = append(lines, r.renderHints(width))
		lines = append(lines, "")
	}

	if r.Success {
		lines = append(lines, "")
	}

	borderColor := SuccessColor
	if !r.Success {
		borderColor = ErrorColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(borderColor).
		Width(width - 2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// renderHints renders the inner troubleshooting box
func (r *Result) renderHints(width int) string {
	var lines []string
	lines = append(lines, HintTitleStyle.Render("Troubleshooting:"))
	lines = append(lines, "")
	for _, tip := range r.Troubleshooting {
		lines = append(lines, HintItemStyle.Render("  • "+tip))
	}

	innerWidth := width - 12
	if innerWidth < 40 {
		innerWidth = 40
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(innerWidth).
		Padding(0, 1).
		MarginLeft(3).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
