package events

import (
	"context"

	"github.com/nikmy/meowslots/internal/models"
)

// NewNop returns a producer that drops every event. Used when no
// brokers are configured.
func NewNop() nopProducer {
	return nopProducer{}
}

type nopProducer struct{}

func (nopProducer) BookingConfirmed(context.Context, models.Slot) error {
	return nil
}

func (nopProducer) Close() error {
	return nil
}
