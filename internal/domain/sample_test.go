package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoodValue(t *testing.T) {
	for _, s := range []string{"great", "good", "okay", "low", "bad"} {
		m, err := ParseMoodValue(s)
		require.NoError(t, err)
		assert.Equal(t, MoodValue(s), m)
	}

	_, err := ParseMoodValue("meh")
	assert.Error(t, err)
	_, err = ParseMoodValue("")
	assert.Error(t, err)
}

func TestMoodBaseScores(t *testing.T) {
	assert.Equal(t, 90.0, MoodGreat.BaseScore())
	assert.Equal(t, 75.0, MoodGood.BaseScore())
	assert.Equal(t, 50.0, MoodOkay.BaseScore())
	assert.Equal(t, 30.0, MoodLow.BaseScore())
	assert.Equal(t, 15.0, MoodBad.BaseScore())

	// Unknown labels degrade to the neutral base rather than failing.
	assert.Equal(t, 50.0, MoodValue("mystery").BaseScore())
}

func TestHealthSampleNormalize(t *testing.T) {
	h := &HealthSample{Date: "2025-06-01", Steps: -200, SleepHours: -1.5}
	h.Normalize()
	assert.Equal(t, 0, h.Steps)
	assert.Equal(t, 0.0, h.SleepHours)
}

func TestHealthSampleValidate(t *testing.T) {
	h := &HealthSample{Date: "2025-06-01", Steps: 5000, SleepHours: 7}
	assert.NoError(t, h.Validate())

	h.Date = "06/01/2025"
	assert.Error(t, h.Validate())

	h.Date = "2025-06-01"
	h.SleepHours = 30
	assert.Error(t, h.Validate())
}

func TestMoodSampleValidate(t *testing.T) {
	m := &MoodSample{Date: "2025-06-01", Value: MoodGood}
	assert.NoError(t, m.Validate())

	m.Value = "fantastic"
	assert.Error(t, m.Validate())

	m.Value = MoodGood
	m.Date = ""
	assert.Error(t, m.Validate())
}
