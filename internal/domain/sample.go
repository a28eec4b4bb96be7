package domain

import (
	"fmt"
	"time"
)

// DateFormat is the canonical calendar-day format used everywhere a sample
// date crosses a boundary. All callers feeding one analytics window must
// resolve "today" against the same local-day boundary.
const DateFormat = "2006-01-02"

// HealthSample is one day's logged health data. At most one row exists per
// date; logging the same date again replaces the previous values.
type HealthSample struct {
	ID          string
	Date        string
	Steps       int
	SleepHours  float64
	HeartRate   *int
	WaterLitres *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Normalize clamps malformed numeric input to zero rather than letting
// negative values propagate into score contributions.
func (h *HealthSample) Normalize() {
	if h.Steps < 0 {
		h.Steps = 0
	}
	if h.SleepHours < 0 {
		h.SleepHours = 0
	}
}

// Validate checks the sample is storable.
func (h *HealthSample) Validate() error {
	if err := ValidateDate(h.Date); err != nil {
		return err
	}
	if h.SleepHours > 24 {
		return fmt.Errorf("sleep hours %.1f exceeds 24", h.SleepHours)
	}
	return nil
}

// MoodSample is one logged mood entry. Multiple entries may exist per date;
// the day's effective mood is the most recently created one.
type MoodSample struct {
	ID          string
	Date        string
	Value       MoodValue
	DiaryText   string
	StressLevel *int
	CreatedAt   time.Time
}

func (m *MoodSample) Validate() error {
	if err := ValidateDate(m.Date); err != nil {
		return err
	}
	if _, err := ParseMoodValue(string(m.Value)); err != nil {
		return err
	}
	return nil
}

// ValidateDate checks that s is a calendar day in the canonical format.
func ValidateDate(s string) error {
	if s == "" {
		return fmt.Errorf("date is required")
	}
	if _, err := time.Parse(DateFormat, s); err != nil {
		return fmt.Errorf("date %q must be in YYYY-MM-DD format", s)
	}
	return nil
}

// UserProfile holds the display name used to personalize narrative output.
type UserProfile struct {
	Name      string
	UpdatedAt time.Time
}
