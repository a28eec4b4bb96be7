package contract

import (
	"time"

	"github.com/alexanderramin/vital/internal/analytics"
)

// WeeklyRequest asks for analytics over a 7-day window. A nil Start means
// the window is the 7 days ending today.
type WeeklyRequest struct {
	Start    *time.Time
	Now      *time.Time
	UserName string
}

func NewWeeklyRequest() WeeklyRequest {
	return WeeklyRequest{}
}

// WeeklyResponse pairs the computed analytics with narrative habit
// highlights (sleep, activity) for the dashboard.
type WeeklyResponse struct {
	Analytics  *analytics.WeeklyAnalytics
	Highlights []string
}

// StoryResponse carries the rendered narrative together with the analytics
// it was built from, so a caller can show the numbers beside the prose.
type StoryResponse struct {
	Story     string
	Analytics *analytics.WeeklyAnalytics
}

type WeeklyErrorCode string

const (
	WeeklyErrInvalidRange  WeeklyErrorCode = "INVALID_RANGE"
	WeeklyErrDataIntegrity WeeklyErrorCode = "DATA_INTEGRITY"
)

type WeeklyError struct {
	Code    WeeklyErrorCode
	Message string
}

func (e *WeeklyError) Error() string {
	return string(e.Code) + ": " + e.Message
}
