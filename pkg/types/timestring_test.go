package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "out of range hour", input: "24:00", wantErr: true},
		{name: "out of range minute", input: "10:60", wantErr: true},
		{name: "with seconds", input: "10:00:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abcde", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 6, 2, 14, 30, 45, 0, time.UTC))
	assert.Equal(t, TimeString("14:30"), ts)
}

func TestTimeString_MinutesFromMidnight(t *testing.T) {
	tests := []struct {
		input TimeString
		want  int
	}{
		{input: "00:00", want: 0},
		{input: "00:30", want: 30},
		{input: "09:00", want: 540},
		{input: "23:59", want: 1439},
	}

	for _, tt := range tests {
		got, err := tt.input.MinutesFromMidnight()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input=%s", tt.input)
	}

	_, err := TimeString("bad").MinutesFromMidnight()
	assert.Error(t, err)
}

func TestFromMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    TimeString
		wantErr error
	}{
		{minutes: 0, want: "00:00"},
		{minutes: 30, want: "00:30"},
		{minutes: 540, want: "09:00"},
		{minutes: 1439, want: "23:59"},
		{minutes: 1440, wantErr: ErrTimeOverflow},
		{minutes: -1, wantErr: ErrTimeOverflow},
	}

	for _, tt := range tests {
		got, err := FromMinutes(tt.minutes)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, "minutes=%d", tt.minutes)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "minutes=%d", tt.minutes)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	// Переход через час
	got, err = TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	// Выход за границы суток
	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)

	_, err = TimeString("09:00").AddMinutes(-15)
	assert.ErrorIs(t, err, ErrNegativeMinutes)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("18:00"))
	assert.False(t, TimeString("18:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("18:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}
