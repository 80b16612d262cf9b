package availability

import (
	"math"

	"eraflix/services/apperr"
	"eraflix/utils"
)

// DurationHours returns the length of the window in hours, rounded to two
// decimal places. A window whose end does not come after its start is an
// error, never a negative number.
func DurationHours(start, end string) (float64, error) {
	startMin, err := utils.ParseClock(start)
	if err != nil {
		return 0, apperr.NewValidationError("start", err.Error())
	}
	endMin, err := utils.ParseClock(end)
	if err != nil {
		return 0, apperr.NewValidationError("end", err.Error())
	}
	if endMin <= startMin {
		return 0, apperr.NewValidationError("end", "end time must come after start time")
	}
	hours := float64(endMin-startMin) / 60
	return math.Round(hours*100) / 100, nil
}
