package catalog

import (
	"time"

	"eraflix/services/apperr"
	"eraflix/utils"
)

// ValidateWindow checks that start and end are well-formed 24-hour "HH:MM"
// strings and that start precedes end (same-day, no overnight wraparound).
func ValidateWindow(start, end string) error {
	startMin, err := utils.ParseClock(start)
	if err != nil {
		return apperr.NewValidationError("start", err.Error())
	}
	endMin, err := utils.ParseClock(end)
	if err != nil {
		return apperr.NewValidationError("end", err.Error())
	}
	if startMin >= endMin {
		return apperr.NewValidationError("start", "start time must precede end time")
	}
	return nil
}

// ValidateScreenID checks that the identifier is a non-empty opaque string.
func ValidateScreenID(screenID string) error {
	if screenID == "" {
		return apperr.NewValidationError("screenId", "screen id must not be empty")
	}
	return nil
}

// ValidateDate checks that the value parses as an ISO calendar date and
// returns the parsed day.
func ValidateDate(date string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, apperr.NewValidationError("date", "expected YYYY-MM-DD calendar date")
	}
	return day, nil
}
