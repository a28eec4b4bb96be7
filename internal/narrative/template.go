package narrative

import "github.com/alexanderramin/vital/internal/analytics"

// Category groups templates by the part of the story they can tell.
type Category string

const (
	CategoryEnergy      Category = "energy"
	CategoryEmotion     Category = "emotion"
	CategorySleep       Category = "sleep"
	CategoryActivity    Category = "activity"
	CategoryCorrelation Category = "correlation"
	CategorySummary     Category = "summary"
)

// storyCategories is the fixed section order of a weekly story.
var storyCategories = []Category{
	CategorySummary, CategoryCorrelation, CategoryEnergy, CategoryEmotion,
}

// Template is one conditionally-applicable narrative unit. Condition decides
// whether the template can speak about the given week; Render interpolates
// live values into its sentence. Render must stay pure interpolation, no
// control flow, so every template reads the same shape.
type Template struct {
	ID          string
	Category    Category
	SubCategory string
	// Weight biases the random draw within a category. Zero means the
	// default weight of 1.
	Weight    float64
	Condition func(a *analytics.WeeklyAnalytics) bool
	Render    func(a *analytics.WeeklyAnalytics, userName string) string
}

func (t Template) effectiveWeight() float64 {
	if t.Weight <= 0 {
		return 1.0
	}
	return t.Weight
}
