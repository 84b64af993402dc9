package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"09:00", false},
		{"23:59", false},
		{"00:00", false},
		{"9:00", true}, // без ведущего нуля
		{"24:00", true},
		{"12:60", true},
		{"abc", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:30")

	result, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:15"), result)

	result, err = ts.AddMinutes(-60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), result)
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("11:00"))
	assert.True(t, TimeString("13:00").IsAfter("11:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 11, 10, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, TimeString("09:05"), NewTimeString(moment))
}

func TestTimeString_IsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}
