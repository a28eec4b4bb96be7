package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/vital/internal/analytics"
)

// FormatEnergy renders a single day's energy score card.
func FormatEnergy(date string, score analytics.EnergyScore) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(HumanDate(date)), EnergyLevelPill(score.Level)))
	b.WriteString(ScoreBar(score.Score, 20) + "\n")
	b.WriteString(fmt.Sprintf("Sleep %s  Steps %s\n",
		FormatScore(score.SleepContribution),
		FormatScore(score.StepsContribution),
	))
	b.WriteString(Dim(score.Feedback))
	return RenderBox("Energy", b.String())
}

// FormatEmotion renders a single day's emotion score card.
func FormatEmotion(date string, score analytics.EmotionScore) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n", Bold(HumanDate(date))))
	b.WriteString(ScoreBar(score.Score, 20) + "\n")
	if score.TextAdjustment != 0 {
		b.WriteString(fmt.Sprintf("Diary shifted the day by %+.1f points\n", score.TextAdjustment))
	}
	b.WriteString(Dim(score.Feedback))
	return RenderBox("Mood", b.String())
}

// FormatEntries renders a range of day entries as a table. Days with nothing
// logged render as dimmed gaps.
func FormatEntries(entries []analytics.DayEntry) string {
	headers := []string{"DATE", "SLEEP", "STEPS", "MOOD", "ENERGY"}
	rows := make([][]string, 0, len(entries))

	for _, e := range entries {
		if e.Health == nil && e.Mood == nil {
			rows = append(rows, []string{HumanDate(e.Date), Dim("—"), Dim("—"), Dim("—"), Dim("not logged")})
			continue
		}

		sleep, steps, energy := Dim("—"), Dim("—"), Dim("—")
		if e.Health != nil {
			sleep = FormatSleep(e.Health.SleepHours)
			steps = FormatSteps(e.Health.Steps)
			score := analytics.ComputeEnergyScore(e.Health.SleepHours, e.Health.Steps)
			energy = ScoreBar(score.Score, 10)
		}
		mood := Dim("—")
		if e.Mood != nil {
			mood = MoodPill(e.Mood.Value)
		}
		rows = append(rows, []string{HumanDate(e.Date), sleep, steps, mood, energy})
	}

	return RenderBox("Entries", RenderTable(headers, rows))
}
