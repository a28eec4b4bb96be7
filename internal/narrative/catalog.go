package narrative

import (
	"fmt"

	"github.com/alexanderramin/vital/internal/analytics"
	"github.com/alexanderramin/vital/internal/domain"
)

// Catalog returns the static template catalog. It is built once at engine
// construction and never mutated afterwards; order matters because the
// weighted draw walks candidates in catalog order.
func Catalog() []Template {
	return []Template{
		// ── summary ──────────────────────────────────────────────────
		{
			ID: "summary_strong_week", Category: CategorySummary, SubCategory: "celebration",
			Weight: 1.5,
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.TotalEntries >= 4 && a.AvgEnergyScore >= 70 && a.AvgEmotionScore >= 70
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("What a week, %s. Energy averaged %.1f and mood %.1f, both firmly in good territory.",
					userName, a.AvgEnergyScore, a.AvgEmotionScore)
			},
		},
		{
			ID: "summary_tough_week", Category: CategorySummary, SubCategory: "support",
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.TotalEntries >= 4 && a.AvgEnergyScore < 40 && a.AvgEmotionScore < 50
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("This was a demanding week, %s. Energy averaged just %.1f, so the most useful goal now is recovery, not performance.",
					userName, a.AvgEnergyScore)
			},
		},
		{
			ID: "summary_general", Category: CategorySummary, SubCategory: "overview",
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.TotalEntries > 0
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("Here's your week from %s to %s, %s: %d days logged, energy averaging %.1f and mood %.1f.",
					a.WeekStart, a.WeekEnd, userName, a.TotalEntries, a.AvgEnergyScore, a.AvgEmotionScore)
			},
		},
		{
			ID: "summary_sparse_data", Category: CategorySummary, SubCategory: "nudge",
			Weight: 2,
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.TotalEntries > 0 && a.TotalEntries <= 2
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("Only %d days were logged this week, %s, so take these numbers as a sketch rather than a portrait.",
					a.TotalEntries, userName)
			},
		},

		// ── correlation ──────────────────────────────────────────────
		{
			ID: "correlation_positive", Category: CategoryCorrelation, SubCategory: "sleep_mood_link",
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				s := a.SleepMoodCorrelation.Strength
				return s == domain.CorrelationStrongPositive || s == domain.CorrelationModeratePositive
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return a.SleepMoodCorrelation.Description + " Protecting your bedtime is the single highest-leverage habit you have."
			},
		},
		{
			ID: "correlation_negative", Category: CategoryCorrelation, SubCategory: "sleep_mood_link",
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				s := a.SleepMoodCorrelation.Strength
				return s == domain.CorrelationStrongNegative || s == domain.CorrelationModerateNegative
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return a.SleepMoodCorrelation.Description + " Something besides sleep is driving how your days feel."
			},
		},
		{
			ID: "correlation_weak", Category: CategoryCorrelation, SubCategory: "sleep_mood_link",
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.TotalEntries >= 3 && a.SleepMoodCorrelation.Strength == domain.CorrelationWeak
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return a.SleepMoodCorrelation.Description
			},
		},

		// ── energy ───────────────────────────────────────────────────
		{
			ID: "energy_improving", Category: CategoryEnergy, SubCategory: "trend",
			Weight: 1.5,
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.EnergyTrend.Trend == domain.TrendImproving
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("Your energy climbed %.1f points over the week. Whatever changed midweek, it's working.",
					a.EnergyTrend.Change)
			},
		},
		{
			ID: "energy_declining", Category: CategoryEnergy, SubCategory: "trend",
			Weight: 1.5,
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.EnergyTrend.Trend == domain.TrendDeclining
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("Energy slid %.1f points as the week went on. A deliberately quiet weekend could reset the slide.",
					-a.EnergyTrend.Change)
			},
		},
		{
			ID: "energy_best_day", Category: CategoryEnergy, SubCategory: "highlight",
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.BestEnergyDay != nil && a.BestEnergyDay.Score >= 70
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("%s was your standout day at %.1f energy. Days like that are worth reverse-engineering.",
					a.BestEnergyDay.Date, a.BestEnergyDay.Score)
			},
		},
		{
			ID: "energy_stable_high", Category: CategoryEnergy, SubCategory: "steady",
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.EnergyTrend.Trend == domain.TrendStable && a.AvgEnergyScore >= 65
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("Energy held steady around %.1f all week. Consistency at this level is exactly what you want.",
					a.AvgEnergyScore)
			},
		},
		{
			ID: "energy_stable_low", Category: CategoryEnergy, SubCategory: "steady",
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.EnergyTrend.Trend == domain.TrendStable && a.AvgEnergyScore > 0 && a.AvgEnergyScore < 45
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("Energy sat flat around %.1f, which suggests a routine that isn't feeding you. One earlier night could be the wedge.",
					a.AvgEnergyScore)
			},
		},

		// ── emotion ──────────────────────────────────────────────────
		{
			ID: "emotion_improving", Category: CategoryEmotion, SubCategory: "trend",
			Weight: 1.5,
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.EmotionTrend.Trend == domain.TrendImproving
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("Your mood brightened by %.1f points across the week, finishing stronger than it started.",
					a.EmotionTrend.Change)
			},
		},
		{
			ID: "emotion_declining", Category: CategoryEmotion, SubCategory: "trend",
			Weight: 1.5,
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.EmotionTrend.Trend == domain.TrendDeclining
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("Mood drifted down %.1f points over the week, %s. Worth asking what accumulated.",
					-a.EmotionTrend.Change, userName)
			},
		},
		{
			ID: "emotion_common_mood_positive", Category: CategoryEmotion, SubCategory: "dominant_mood",
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.MostCommonMood == domain.MoodGreat || a.MostCommonMood == domain.MoodGood
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("\"%s\" was your most common mood this week. That baseline is an asset.",
					a.MostCommonMood)
			},
		},
		{
			ID: "emotion_common_mood_negative", Category: CategoryEmotion, SubCategory: "dominant_mood",
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.MostCommonMood == domain.MoodLow || a.MostCommonMood == domain.MoodBad
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("\"%s\" dominated your week, %s. When one mood repeats like that, it usually has one cause worth naming.",
					a.MostCommonMood, userName)
			},
		},
		{
			ID: "emotion_steady_neutral", Category: CategoryEmotion, SubCategory: "steady",
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.EmotionTrend.Trend == domain.TrendStable && a.MostCommonMood == domain.MoodOkay
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return "Mood-wise this was a flat, okay week. Nothing wrong with cruising altitude."
			},
		},

		// ── sleep (served via Section for the dashboard highlight) ───
		{
			ID: "sleep_generous", Category: CategorySleep, SubCategory: "habit",
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.AvgSleep >= 7.5
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("Averaging %.1f hours of sleep, you're giving your body what it asks for.", a.AvgSleep)
			},
		},
		{
			ID: "sleep_short", Category: CategorySleep, SubCategory: "habit",
			Weight: 1.5,
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.AvgSleep > 0 && a.AvgSleep < 6
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("An average of %.1f hours of sleep is a debt that compounds, %s. This is the number to move first.",
					a.AvgSleep, userName)
			},
		},
		{
			ID: "sleep_adequate", Category: CategorySleep, SubCategory: "habit",
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.AvgSleep >= 6 && a.AvgSleep < 7.5
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("Sleep averaged %.1f hours: workable, with room to spare for a better version of you.", a.AvgSleep)
			},
		},

		// ── activity (served via Section for the dashboard highlight) ─
		{
			ID: "activity_high", Category: CategoryActivity, SubCategory: "habit",
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.AvgSteps >= 10000
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("%d steps a day on average puts you well past the classic target. Strong week of movement.", a.AvgSteps)
			},
		},
		{
			ID: "activity_low", Category: CategoryActivity, SubCategory: "habit",
			Weight: 1.5,
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.AvgSteps > 0 && a.AvgSteps < 3000
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("Movement averaged %d steps a day. Even one short daily walk would double it.", a.AvgSteps)
			},
		},
		{
			ID: "activity_moderate", Category: CategoryActivity, SubCategory: "habit",
			Condition: func(a *analytics.WeeklyAnalytics) bool {
				return a.AvgSteps >= 3000 && a.AvgSteps < 10000
			},
			Render: func(a *analytics.WeeklyAnalytics, userName string) string {
				return fmt.Sprintf("You averaged %d steps a day: a sturdy middle ground worth nudging upward.", a.AvgSteps)
			},
		},
	}
}
