package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/vital/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ScoreColor returns the style for a 0-100 wellbeing score.
func ScoreColor(score float64) lipgloss.Style {
	switch {
	case score < 30:
		return StyleRed
	case score < 70:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// EnergyLevelPill returns a colored indicator for an energy level.
func EnergyLevelPill(level domain.EnergyLevel) string {
	label := strings.ToUpper(strings.ReplaceAll(string(level), "_", " "))
	switch level {
	case domain.EnergyExcellent, domain.EnergyGood:
		return StyleGreen.Render("● " + label)
	case domain.EnergyModerate:
		return StyleYellow.Render("● " + label)
	case domain.EnergyLow, domain.EnergyVeryLow:
		return StyleRed.Render("● " + label)
	default:
		return StyleDim.Render("● " + label)
	}
}

// MoodPill returns a colored indicator for a logged mood value.
func MoodPill(mood domain.MoodValue) string {
	label := strings.ToUpper(string(mood))
	switch mood {
	case domain.MoodGreat, domain.MoodGood:
		return StyleGreen.Render("● " + label)
	case domain.MoodOkay:
		return StyleYellow.Render("● " + label)
	case domain.MoodLow, domain.MoodBad:
		return StyleRed.Render("● " + label)
	default:
		return StyleDim.Render("● " + label)
	}
}

// TrendIndicator returns a colored arrow for a trend direction.
func TrendIndicator(trend domain.Trend) string {
	switch trend {
	case domain.TrendImproving:
		return StyleGreen.Render("▲ improving")
	case domain.TrendDeclining:
		return StyleRed.Render("▼ declining")
	default:
		return StyleDim.Render("─ stable")
	}
}

// ConfidenceBadge returns a colored confidence grade.
func ConfidenceBadge(c domain.Confidence) string {
	switch c {
	case domain.ConfidenceHigh:
		return StyleGreen.Render("HIGH")
	case domain.ConfidenceMedium:
		return StyleYellow.Render("MEDIUM")
	default:
		return StyleRed.Render("LOW")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
