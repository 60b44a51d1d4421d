package events

import (
	"context"

	"github.com/nikmy/meowslots/internal/models"
)

// Producer broadcasts committed bookings to downstream consumers
// (notifications, analytics). Publishing is best-effort: a failure
// must never roll back the booking itself.
type Producer interface {
	BookingConfirmed(ctx context.Context, slot models.Slot) error
	Close() error
}
