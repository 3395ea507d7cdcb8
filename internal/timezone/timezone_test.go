package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat_InvalidDateSentinel(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, InvalidDate, Format(time.Time{}, DisplayLayout))
	})
	assert.Equal(t, "", FormatInput(time.Time{}))
}

func TestFormat_Display(t *testing.T) {
	d := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "01/05/2024 às 10:00", Format(d, DisplayLayout))
	assert.Equal(t, "2024-05-01T10:00", FormatInput(d))
}

func TestParseInput(t *testing.T) {
	got, ok := ParseInput("2024-05-01T10:00", time.UTC)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), got)

	got, ok = ParseInput("2024-05-01T13:00:00Z", time.UTC)
	assert.True(t, ok)
	assert.Equal(t, 13, got.Hour())

	_, ok = ParseInput("", time.UTC)
	assert.False(t, ok)

	_, ok = ParseInput("01/05/2024", time.UTC)
	assert.False(t, ok)
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
	assert.NotNil(t, Location("Mars/Olympus"))
}
