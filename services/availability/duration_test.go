package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eraflix/services/apperr"
)

func TestDurationHours(t *testing.T) {
	tests := []struct {
		start string
		end   string
		want  float64
	}{
		{"10:00", "11:30", 1.5},
		{"23:00", "23:30", 0.5},
		{"00:00", "23:59", 23.98},
		{"09:00", "09:20", 0.33},
		{"10:00", "12:00", 2},
	}
	for _, tt := range tests {
		got, err := DurationHours(tt.start, tt.end)
		require.NoError(t, err, "%s-%s", tt.start, tt.end)
		assert.Equal(t, tt.want, got, "%s-%s", tt.start, tt.end)
	}
}

func TestDurationHours_RejectsNonPositiveWindows(t *testing.T) {
	var validationErr *apperr.ValidationError

	_, err := DurationHours("11:00", "11:00")
	require.Error(t, err)
	assert.ErrorAs(t, err, &validationErr)

	_, err = DurationHours("11:00", "09:00")
	require.Error(t, err)
	assert.ErrorAs(t, err, &validationErr)
}

func TestDurationHours_RejectsMalformedTimes(t *testing.T) {
	var validationErr *apperr.ValidationError

	for _, bad := range []string{"9:00", "24:00", "10:60", "1000", "ab:cd", ""} {
		_, err := DurationHours(bad, "11:00")
		require.Error(t, err, "start=%q", bad)
		assert.ErrorAs(t, err, &validationErr)
	}
}
