package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/timesheet_app/internal/apperrors"
)

// HoursBetween returns the elapsed time between start and end in fractional hours.
// Ranges where end is not strictly after start fail with apperrors.ErrInvalidRange.
func HoursBetween(start, end time.Time) (float64, error) {
	if !end.After(start) {
		return 0, fmt.Errorf("%w: start %s, end %s", apperrors.ErrInvalidRange,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return end.Sub(start).Hours(), nil
}
