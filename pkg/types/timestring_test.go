package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	for _, invalid := range []string{"", "9:30:00", "25:00", "10:60", "abc"} {
		_, err := NewTimeStringFromString(invalid)
		assert.Error(t, err, "input %q", invalid)
	}
}

func TestNewTimeString_DropsDateAndSeconds(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 1, 18, 45, 59, 0, time.UTC))
	assert.Equal(t, TimeString("18:45"), ts)
}

func TestMinutes(t *testing.T) {
	minutes, err := TimeString("10:15").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 615, minutes)
}

func TestAddMinutes(t *testing.T) {
	ts, err := TimeString("23:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:15"), ts)

	ts, err = TimeString("10:00").AddMinutes(-90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:30"), ts)
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("18:00"))
	assert.False(t, TimeString("18:00").IsBefore("09:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestIsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("00:00").IsZero())
}
