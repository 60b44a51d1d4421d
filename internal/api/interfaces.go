package api

import (
	"context"

	"github.com/nikmy/meowslots/internal/models"
	"github.com/nikmy/meowslots/internal/scheduling"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type Scheduler interface {
	CreateInterviewer(ctx context.Context, interviewer models.Interviewer) (*models.Interviewer, error)
	SetAvailability(ctx context.Context, interviewerID string, windows []models.Window) (int, error)
	SlotsWithin(ctx context.Context, from, to int64) ([]models.Slot, error)
	Book(ctx context.Context, slotID string, candidateName string) (*models.Slot, error)
	PatchSlot(ctx context.Context, slotID string, patch scheduling.SlotPatch) (*models.Slot, error)
}
