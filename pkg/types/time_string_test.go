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
		{name: "valid time", input: "09:00", want: "09:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeStringMinutes(t *testing.T) {
	m, err := TimeString("13:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 13*60+30, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeStringAddMinutes(t *testing.T) {
	got, err := TimeString("09:00").AddMinutes(120)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:00"), got)

	// Cruce de medianoche
	got, err = TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:30"), got)
}

func TestTimeStringComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("11:00"))
	assert.False(t, TimeString("11:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("17:00").IsAfter("15:00"))
	assert.False(t, TimeString("15:00").IsAfter("17:00"))

	// Valores inválidos nunca comparan como verdadero
	assert.False(t, TimeString("bad").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("bad"))
}

func TestTimeStringAt(t *testing.T) {
	loc := time.FixedZone("America/Bogota", -5*60*60)
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("13:00").At(date, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 14, 13, 0, 0, 0, loc), got)

	_, err = TimeString("").At(date, loc)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
