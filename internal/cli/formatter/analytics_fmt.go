package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/vital/internal/contract"
)

// FormatWeekly renders the weekly analytics dashboard.
func FormatWeekly(resp *contract.WeeklyResponse) string {
	a := resp.Analytics
	var b strings.Builder

	noun := "days"
	if a.TotalEntries == 1 {
		noun = "day"
	}
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		Bold(HumanWeekRange(a.WeekStart, a.WeekEnd)),
		Dim("·"),
		Dim(fmt.Sprintf("%d logged %s", a.TotalEntries, noun)),
	))
	b.WriteString("\n")

	if a.TotalEntries == 0 {
		b.WriteString(Dim("Nothing logged this week yet. Use 'vital log' and 'vital mood' to get started.") + "\n")
		return RenderBox("Weekly Report", strings.TrimRight(b.String(), "\n"))
	}

	b.WriteString(Header("Energy") + "\n")
	b.WriteString(fmt.Sprintf("Average   %s  %s\n", ScoreBar(a.AvgEnergyScore, 20), TrendIndicator(a.EnergyTrend.Trend)))
	if a.BestEnergyDay != nil {
		b.WriteString(fmt.Sprintf("Best      %s (%s)\n", HumanDate(a.BestEnergyDay.Date), FormatScore(a.BestEnergyDay.Score)))
	}
	if a.WorstEnergyDay != nil {
		b.WriteString(fmt.Sprintf("Worst     %s (%s)\n", HumanDate(a.WorstEnergyDay.Date), FormatScore(a.WorstEnergyDay.Score)))
	}
	b.WriteString(Dim(a.EnergyTrend.Description) + "\n\n")

	b.WriteString(Header("Mood") + "\n")
	b.WriteString(fmt.Sprintf("Average   %s  %s\n", ScoreBar(a.AvgEmotionScore, 20), TrendIndicator(a.EmotionTrend.Trend)))
	if a.MostCommonMood != "" {
		b.WriteString(fmt.Sprintf("Typical   %s\n", MoodPill(a.MostCommonMood)))
	}
	b.WriteString("\n")

	b.WriteString(Header("Habits") + "\n")
	b.WriteString(fmt.Sprintf("Steps     %s per day\n", FormatSteps(a.AvgSteps)))
	b.WriteString(fmt.Sprintf("Sleep     %s per night\n", FormatSleep(a.AvgSleep)))
	b.WriteString(fmt.Sprintf("Sleep/mood link: %s\n", Dim(a.SleepMoodCorrelation.Description)))

	for _, h := range resp.Highlights {
		b.WriteString(StyleYellow.Render("✦ ") + h + "\n")
	}

	return RenderBox("Weekly Report", strings.TrimRight(b.String(), "\n"))
}

// HumanWeekRange renders an inclusive date range like "Jun 2 – Jun 8".
func HumanWeekRange(start, end string) string {
	return fmt.Sprintf("%s to %s", shortDate(start), shortDate(end))
}

func shortDate(date string) string {
	if len(date) != 10 {
		return date
	}
	t, err := parseDay(date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}
