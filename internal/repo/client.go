package repo

import (
	"context"

	"github.com/nikmy/meowslots/internal/models"
)

// Client is the durable store the scheduling core runs against.
type Client interface {
	Interviewers() models.InterviewersRepo
	Slots() models.SlotsRepo

	// Txn runs do inside a single store transaction when the deployment
	// supports one, and as plain sequential writes otherwise.
	Txn(ctx context.Context, do func(ctx context.Context) error) error

	Close(ctx context.Context) error
}
