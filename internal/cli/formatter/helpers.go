package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/vital/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// HumanDate turns a canonical YYYY-MM-DD date into a friendlier label
// relative to today. Unparseable input is returned unchanged.
func HumanDate(date string) string {
	return HumanDateFrom(date, time.Now())
}

// HumanDateFrom is HumanDate against an explicit reference day.
func HumanDateFrom(date string, now time.Time) string {
	t, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return date
	}
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Mon, Jan 2")
}

// parseDay parses a canonical YYYY-MM-DD date.
func parseDay(date string) (time.Time, error) {
	return time.Parse(domain.DateFormat, date)
}

// FormatScore renders a 0-100 score with one decimal and score coloring.
func FormatScore(score float64) string {
	return ScoreColor(score).Render(fmt.Sprintf("%.1f", score))
}

// FormatSleep renders sleep hours compactly: 7h, 7.5h.
func FormatSleep(hours float64) string {
	if hours == float64(int(hours)) {
		return fmt.Sprintf("%dh", int(hours))
	}
	return fmt.Sprintf("%.1fh", hours)
}

// FormatSteps groups step counts for readability: 12,400.
func FormatSteps(steps int) string {
	s := strconv.Itoa(steps)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
