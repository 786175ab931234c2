package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2022, 9, 14, 9, 0, 0, 0, time.FixedZone("", 2*60*60))

	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"no fraction", "2022-09-14T09:00:00+02:00", want, true},
		{"microseconds", "2022-09-14T09:00:00.123456+02:00", want.Add(123456 * time.Microsecond), true},
		{"nanoseconds truncated not rounded", "2022-09-14T09:00:00.123456789+02:00", want.Add(123456 * time.Microsecond), true},
		{"eight digit fraction", "2022-09-14T09:00:00.12345678+02:00", want.Add(123456 * time.Microsecond), true},
		{"short fraction", "2022-09-14T09:00:00.5+02:00", want.Add(500 * time.Millisecond), true},
		{"negative offset", "2022-09-14T09:00:00-05:00", time.Date(2022, 9, 14, 9, 0, 0, 0, time.FixedZone("", -5*60*60)), true},
		{"malformed", "not-a-date", time.Time{}, false},
		{"date only", "2022-09-14", time.Time{}, false},
		{"zulu not accepted here", "2022-09-14T09:00:00Z", time.Time{}, false},
		{"empty", "", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
			}
		})
	}
}

func TestParseTimestampIdempotentTruncation(t *testing.T) {
	a, ok := ParseTimestamp("2022-09-14T09:00:00.123456789+02:00")
	require.True(t, ok)
	b, ok := ParseTimestamp("2022-09-14T09:00:00.123456+02:00")
	require.True(t, ok)
	assert.True(t, a.Equal(b))
}

func TestParseISO8601(t *testing.T) {
	got, ok := ParseISO8601("2022-09-14T09:00:00Z")
	require.True(t, ok)
	assert.Equal(t, int64(1663146000), got.Unix())

	got, ok = ParseISO8601("2022-09-14T09:00:00+02:00")
	require.True(t, ok)
	assert.Equal(t, int64(1663138800), got.Unix())

	_, ok = ParseISO8601("garbage")
	assert.False(t, ok)
}

func TestFloorDuration(t *testing.T) {
	start, _ := ParseISO8601("2022-09-14T09:00:00Z")
	end, _ := ParseISO8601("2022-09-14T09:00:34Z")

	d, ok := FloorDuration(start, end)
	require.True(t, ok)
	assert.Equal(t, int64(34), d)

	// fractional leftovers floor down
	d, ok = FloorDuration(start, end.Add(900*time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, int64(34), d)

	_, ok = FloorDuration(time.Time{}, end)
	assert.False(t, ok)
	_, ok = FloorDuration(end, start)
	assert.False(t, ok)
}

func TestParseClockDuration(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"34", 34},
		{"00:34", 34},
		{"00:00:34", 34},
		{"01:02:03", 3723},
		{"", 0},
		{"abc", 0},
		{"1:2:3:4", 0},
		{"-5", 0},
		{"00:-05", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseClockDuration(tt.input), "input=%q", tt.input)
	}
}

func TestParseUploadDate(t *testing.T) {
	want := time.Date(2015, 8, 11, 0, 0, 0, 0, time.UTC)
	for _, s := range []string{"11/08/2015", "2015-08-11", "20150811"} {
		assert.True(t, ParseUploadDate(s).Equal(want), "input=%q", s)
	}
	assert.True(t, ParseUploadDate("not a date").IsZero())
}
