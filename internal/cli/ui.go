package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/freshdeps/pkg/report"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
)

// categoryStyles colors the status column of the report table.
var categoryStyles = map[report.Category]lipgloss.Style{
	report.Current:    lipgloss.NewStyle().Foreground(colorGreen),
	report.Outdated:   lipgloss.NewStyle().Foreground(colorYellow).Bold(true),
	report.Exceeded:   lipgloss.NewStyle().Foreground(colorCyan),
	report.Undeclared: lipgloss.NewStyle().Foreground(colorGray),
	report.Unresolved: lipgloss.NewStyle().Foreground(colorRed),
}

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Reports
// =============================================================================

// renderReport writes r as a table followed by failure reasons and a
// one-line summary.
func renderReport(w io.Writer, r *report.Report) error {
	var b strings.Builder

	title := r.Project
	if r.Configuration != "" {
		title += " " + StyleDim.Render("("+r.Configuration+")")
	}
	b.WriteString(StyleTitle.Render(title) + "\n")

	if len(r.Entries) == 0 {
		b.WriteString(StyleDim.Render("No dependencies found.") + "\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	rows := make([][]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		available := e.Available
		if e.Category == report.Unresolved {
			available = "-"
		}
		current := e.Version
		if e.Resolved != "" {
			current += " (resolved " + e.Resolved + ")"
		}
		rows = append(rows, []string{e.Group + ":" + e.Artifact, current, available, string(e.Category)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Dependency", "Current", "Available", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if col == 3 && row >= 0 && row < len(r.Entries) {
				return categoryStyles[r.Entries[row].Category].Padding(0, 1)
			}
			return cell
		})

	b.WriteString(t.Render() + "\n")

	for _, e := range r.Category(report.Unresolved) {
		b.WriteString(styleIconError.Render(iconError) + " " + e.Group + ":" + e.Artifact + "\n")
		b.WriteString("  " + StyleDim.Render(e.Reason) + "\n")
	}
	b.WriteString(StyleDim.Render(summary(r)) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// summary counts the non-empty categories, e.g. "2 outdated · 5 current".
func summary(r *report.Report) string {
	var parts []string
	for _, c := range report.Categories {
		if n := r.Count(c); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, c))
		}
	}
	if len(parts) == 0 {
		return "no dependencies"
	}
	return strings.Join(parts, " · ")
}
