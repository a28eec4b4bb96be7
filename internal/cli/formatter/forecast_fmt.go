package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/vital/internal/contract"
	"github.com/alexanderramin/vital/internal/forecast"
)

// avatarFaces maps avatar states to their display glyphs.
var avatarFaces = map[forecast.AvatarState]string{
	forecast.AvatarHappy:  "(◕‿◕)",
	forecast.AvatarSleepy: "(-_-) zZ",
	forecast.AvatarSad:    "(◞‸◟)",
}

// FormatSimulation renders a habit simulation result: the projected energy
// curve, milestone rows, feasibility warnings and the confidence grades.
func FormatSimulation(resp *contract.SimulateResponse) string {
	var b strings.Builder

	energies := make([]int, len(resp.Points))
	for i, p := range resp.Points {
		energies[i] = p.PredictedEnergy
	}

	b.WriteString(Header("Projection") + "\n")
	b.WriteString(StyleBlue.Render(Sparkline(energies)) + "\n")
	b.WriteString(renderMilestones(resp.Points) + "\n")

	b.WriteString(Header("Feasibility") + "\n")
	b.WriteString(fmt.Sprintf("Confidence  %s", ConfidenceBadge(resp.Feasibility.Confidence)))
	if resp.Feasibility.IsUnrealistic {
		b.WriteString("  " + StyleRed.Render("UNREALISTIC"))
	}
	b.WriteString("\n")
	for _, w := range resp.Feasibility.Warnings {
		b.WriteString(StyleYellow.Render("⚠ ") + w.Message + "\n")
	}
	b.WriteString("\n")

	b.WriteString(Header("Data") + "\n")
	b.WriteString(fmt.Sprintf("Confidence  %s  %s\n",
		ConfidenceBadge(resp.DataConfidence.Confidence),
		Dim(resp.DataConfidence.Note),
	))
	b.WriteString("\n")

	b.WriteString(AvatarFace(resp.Avatar) + "\n")
	b.WriteString(Bold(resp.Insight))

	return RenderBox("Habit Simulation", b.String())
}

// renderMilestones shows a handful of representative days from the series.
func renderMilestones(points []forecast.ForecastPoint) string {
	if len(points) == 0 {
		return ""
	}

	picks := milestoneIndexes(len(points))
	headers := []string{"DAY", "DATE", "ENERGY", "MOOD"}
	rows := make([][]string, 0, len(picks))
	for _, i := range picks {
		p := points[i]
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.Day),
			p.Date,
			ScoreBar(float64(p.PredictedEnergy), 12),
			string(p.PredictedMood),
		})
	}
	return RenderTable(headers, rows)
}

// milestoneIndexes picks the first day, last day and a few evenly spaced
// days in between.
func milestoneIndexes(n int) []int {
	if n <= 5 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	return []int{0, n / 4, n / 2, 3 * n / 4, n - 1}
}

// AvatarFace renders the avatar glyph for a decision alongside its
// explanation.
func AvatarFace(a forecast.AvatarDecision) string {
	face, ok := avatarFaces[a.State]
	if !ok {
		face = "(·_·)"
	}
	var style = StyleGreen
	switch a.State {
	case forecast.AvatarSleepy:
		style = StyleYellow
	case forecast.AvatarSad:
		style = StyleRed
	}
	return style.Render(face) + "  " + Dim(a.Explanation)
}
