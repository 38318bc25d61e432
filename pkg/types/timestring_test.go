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

	_, err = NewTimeStringFromString("9:30")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("10:00:00")
	assert.Error(t, err)
}

func TestNewTimeString_DropsSeconds(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 1, 26, 14, 50, 37, 0, time.UTC))
	assert.Equal(t, "14:50", ts.String())
}

func TestMinutes(t *testing.T) {
	ts := TimeString("10:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	_, err = TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("10:30")

	shifted, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "11:15", shifted.String())

	// Рабочий день не пересекает полночь
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)

	_, err = TimeString("23:30").AddMinutes(30)
	assert.Error(t, err, "ровно полночь тоже за границей")
}

func TestIsBefore(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("11:00").IsBefore("10:00"))
}

func TestIsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("00:00").IsZero())
}

func TestScan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, "10:00", ts.String())

	require.NoError(t, ts.Scan([]byte("18:45")))
	assert.Equal(t, "18:45", ts.String())

	require.NoError(t, ts.Scan(time.Date(2026, 1, 26, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, "09:15", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestValue(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
