package scheduling

import "github.com/nikmy/meowslots/pkg/errors"

var (
	ErrInterviewerNotFound = errors.Error("interviewer not found")
	ErrSlotNotFound        = errors.Error("slot not found")

	ErrSlotAlreadyBooked   = errors.Error("slot is already booked")
	ErrWeeklyLimitExceeded = errors.Error("weekly interviews limit reached")
	ErrStaleSlotVersion    = errors.Error("slot was modified concurrently")

	ErrInvalidWindow    = errors.Error("availability window must end after it starts")
	ErrInvalidTimeRange = errors.Error("endTime must be after startTime")
	ErrNegativeQuota    = errors.Error("maxInterviewsPerWeek must be non-negative")
	ErrUnknownStatus    = errors.Error("unknown slot status")
)

// IsValidation reports whether err is a bad-request class failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidWindow) ||
		errors.Is(err, ErrInvalidTimeRange) ||
		errors.Is(err, ErrNegativeQuota) ||
		errors.Is(err, ErrUnknownStatus)
}
