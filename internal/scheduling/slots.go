package scheduling

import (
	"time"

	"github.com/nikmy/meowslots/internal/models"
)

// slotDuration is the fixed length of every bookable slot.
const slotDuration = time.Hour

// tile slices every window into contiguous slotDuration slots starting at the
// window's start. A sub-duration remainder at the window's end produces no
// slot. Windows are processed independently in input order; overlapping input
// windows yield overlapping slots.
func tile(interviewerID string, windows []models.Window) []models.Slot {
	step := slotDuration.Milliseconds()

	var slots []models.Slot
	for _, w := range windows {
		for start := w.Start; start+step <= w.End; start += step {
			slots = append(slots, models.Slot{
				InterviewerID: interviewerID,
				Start:         start,
				End:           start + step,
				Status:        models.SlotAvailable,
			})
		}
	}

	return slots
}

func validateWindows(windows []models.Window) error {
	for _, w := range windows {
		if w.Start >= w.End {
			return ErrInvalidWindow
		}
	}
	return nil
}
