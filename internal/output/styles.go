package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Marks persisted after each kind of step completes.
const (
	MarkCreated    = "⚡"
	MarkInstalled  = "✅"
	MarkConfigured = "⚙️ "
	MarkFailed     = "✘"
)

var (
	// ColorBoldRed is used for failed steps.
	ColorBoldRed = lipgloss.Color("204")

	// ColorCyan is used for identifiable nouns: project and package names.
	ColorCyan = lipgloss.Color("14")
)

var (
	// StyleNoun styles project and package names.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles in-progress lines when no spinner is shown.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	styleFailed = lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
)

// FormatMark renders a completion mark followed by msg.
func FormatMark(mark, msg string) string {
	if mark == "" {
		return msg
	}
	return mark + " " + msg
}

// FormatFailure renders a failed step title.
func FormatFailure(title string) string {
	return styleFailed.Render(MarkFailed) + " " + title
}
