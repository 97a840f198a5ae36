package output

import "github.com/charmbracelet/lipgloss"

// Color palette — named constants for the ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, tokens.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" file status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" file status and warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Styles groups the semantic styles used across commands.
type Styles struct {
	// Noun styles identifiable nouns (project names, paths, placeholder tokens).
	Noun lipgloss.Style

	// Bold styles headings and the file-tree root.
	Bold lipgloss.Style

	// Muted styles structural chrome (descriptions, separators).
	Muted lipgloss.Style

	// Summary styles completion and summary lines.
	Summary lipgloss.Style

	// Success styles success markers.
	Success lipgloss.Style

	// Failure styles failure markers.
	Failure lipgloss.Style
}

// GetStyles returns the semantic style set.
func GetStyles() Styles {
	return Styles{
		Noun:    lipgloss.NewStyle().Foreground(ColorCyan),
		Bold:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
		Summary: lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(ColorGreenCheck),
		Failure: lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed),
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	styles := GetStyles()
	return styles.Success.Render("✔") + " " + msg
}
