package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// life-timer theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconWork    = "🛠️"
	IconPlay    = "🎮"
	IconIdle    = "😴"
	IconQuest   = "🗺️"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconBox     = "📦"
	IconClock   = "⏱️"
	IconCoin    = "🪙"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel      = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// ModeText renders a mode name in its signature color.
func ModeText(mode string) string {
	switch strings.ToUpper(strings.TrimSpace(mode)) {
	case "WORK":
		return H2.Render(IconWork + " WORK")
	case "PLAY":
		return Good.Render(IconPlay + " PLAY")
	default:
		return Muted.Render(IconIdle + " NOTHING")
	}
}

// FormatSeconds renders a second count as h:mm:ss, truncating fractions.
func FormatSeconds(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int64(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
