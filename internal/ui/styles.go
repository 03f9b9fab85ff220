package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ------- styling + themes (Lip Gloss) -------

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	borderStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	boxChecked   = "☑"
	boxUnchecked = "☐"
)

// SetTheme swaps the palette. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201"))
		successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("48"))
		pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
		accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
		mutedStyle = lipgloss.NewStyle().Faint(true)
		errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("197")).Bold(true)
		selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
		doneStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
		helpStyle = lipgloss.NewStyle().Faint(true)
		borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("201")).
			Padding(0, 1)
		boxChecked, boxUnchecked = "◼", "◻"
	case "mono":
		titleStyle = lipgloss.NewStyle()
		successStyle = lipgloss.NewStyle()
		pendingStyle = lipgloss.NewStyle()
		accentStyle = lipgloss.NewStyle()
		mutedStyle = lipgloss.NewStyle()
		errorStyle = lipgloss.NewStyle()
		selectedStyle = lipgloss.NewStyle().Reverse(true)
		doneStyle = lipgloss.NewStyle().Strikethrough(true)
		helpStyle = lipgloss.NewStyle()
		borderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)
		boxChecked, boxUnchecked = "[x]", "[ ]"
	default:
		titleStyle = lipgloss.NewStyle().Bold(true)
		successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
		pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
		accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
		mutedStyle = lipgloss.NewStyle().Faint(true)
		errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
		doneStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
		helpStyle = lipgloss.NewStyle().Faint(true)
		borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
		boxChecked, boxUnchecked = "☑", "☐"
	}
}

// Muted renders s in the muted style, for callers outside this package.
func Muted(s string) string { return mutedStyle.Render(s) }

// Accent renders s in the accent style.
func Accent(s string) string { return accentStyle.Render(s) }

// OK prints a success line to stdout.
func OK(msg string) {
	fmt.Println(successStyle.Render("✔ " + msg))
}

// Fail prints an error line to stderr.
func Fail(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✖ "+msg))
}
