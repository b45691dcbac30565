package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleNodeHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	styleChoice = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	styleListing = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))
)

// lineKind identifies the type of an output line for styling.
type lineKind int

const (
	kindText lineKind = iota
	kindNodeHeader
	kindChoice
	kindListing
	kindSystem
	kindError
)

// classifyLine determines what kind of output line this is.
func classifyLine(line string) lineKind {
	trimmed := strings.TrimLeft(line, " ")
	switch {
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return kindSystem
	case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
		return kindNodeHeader
	case isNumberedChoice(trimmed):
		return kindChoice
	case strings.HasPrefix(line, "tree "), strings.HasPrefix(line, "track:"),
		strings.HasPrefix(line, "ambience:"), strings.HasPrefix(line, "cue:"):
		return kindListing
	case strings.HasPrefix(trimmed, "Unknown "), strings.HasPrefix(trimmed, "Bad "),
		strings.HasPrefix(trimmed, "No dialogue"), strings.HasPrefix(trimmed, "Usage:"):
		return kindError
	default:
		return kindText
	}
}

// isNumberedChoice matches "1. Heard any news? -> ..." choice lines.
func isNumberedChoice(line string) bool {
	if len(line) < 3 {
		return false
	}
	return line[0] >= '1' && line[0] <= '9' && line[1] == '.' && line[2] == ' '
}

// renderLineKind applies the style for a given lineKind.
func renderLineKind(line string, kind lineKind) string {
	switch kind {
	case kindNodeHeader:
		return styleNodeHeader.Render(line)
	case kindChoice:
		return styleChoice.Render(line)
	case kindListing:
		return styleListing.Render(line)
	case kindSystem:
		return styleSystem.Render(line)
	case kindError:
		return styleError.Render(line)
	default:
		return styleText.Render(line)
	}
}

// styledSystemMsg renders a system message in gray with brackets.
func styledSystemMsg(text string) string {
	return styleSystem.Render("[" + text + "]")
}
