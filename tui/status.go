package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// locationDisplayName derives a human-readable name from a location ID.
// "dusty_gulch" -> "Dusty Gulch", "silver_spur_saloon" -> "Silver Spur Saloon".
func locationDisplayName(id string) string {
	if id == "" {
		return "Nowhere"
	}
	words := strings.Split(id, "_")
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// renderStatusBar produces a full-width inverted status line showing
// the simulated location, clock, territory, and generation seed.
func (m Model) renderStatusBar() string {
	s := m.session.State()

	left := fmt.Sprintf(" %s | %02d:00 %s", locationDisplayName(s.Location), m.session.Hour(), s.TimeOfDay)
	if s.FactionTerritory != "" {
		left += " | " + s.FactionTerritory + " territory"
	}
	right := fmt.Sprintf("seed %d ", m.session.Seed)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
