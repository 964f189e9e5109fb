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
		want    string
		wantErr bool
	}{
		{name: "full format", input: "09:30:00", want: "09:30:00"},
		{name: "short format normalized", input: "09:30", want: "09:30:00"},
		{name: "midnight", input: "00:00", want: "00:00:00"},
		{name: "end of day", input: "23:59:59", want: "23:59:59"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minutes out of range", input: "09:60", wantErr: true},
		{name: "garbage", input: "9 am", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTimeString_IsBeforeIsAfter(t *testing.T) {
	a, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	b, err := NewTimeStringFromString("11:30")
	require.NoError(t, err)

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)

	got, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "10:30:00", got.String())

	late, err := NewTimeStringFromString("23:00")
	require.NoError(t, err)
	got, err = late.AddMinutes(59)
	require.NoError(t, err)
	assert.Equal(t, "23:59:00", got.String())

	// 24:00 не является валидным временем суток
	_, err = late.AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfDay)

	// Результат всегда проходит собственную валидацию
	assert.NoError(t, got.Validate())

	_, err = ts.AddMinutes(-10*60 - 1)
	assert.ErrorIs(t, err, ErrTimeOutOfDay)
}

func TestTimeString_AtDate(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30:15")
	require.NoError(t, err)

	date := time.Date(2025, time.October, 13, 17, 45, 0, 0, time.UTC)
	got := ts.AtDate(date)

	assert.Equal(t, time.Date(2025, time.October, 13, 9, 30, 15, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestTimeString_ScanValue(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan([]byte("10:00:00")))
	assert.Equal(t, "10:00:00", ts.String())

	require.NoError(t, ts.Scan(time.Date(2025, time.January, 1, 8, 15, 0, 0, time.UTC)))
	assert.Equal(t, "08:15:00", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))

	v, err := TimeString("10:00:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("not a time").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
