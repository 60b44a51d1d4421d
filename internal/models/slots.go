package models

import "context"

type SlotsRepo interface {
	// InsertMany persists generated slots as a single batch.
	InsertMany(ctx context.Context, slots []Slot) error

	// Get returns nil without error if there is no slot with such id.
	Get(ctx context.Context, id string) (*Slot, error)

	// FindByStartRange returns every slot whose start lies in [from, to),
	// regardless of status, in store order.
	FindByStartRange(ctx context.Context, from, to int64) ([]Slot, error)

	// FindByInterviewerAndStartRange is FindByStartRange narrowed
	// to one interviewer.
	FindByInterviewerAndStartRange(ctx context.Context, interviewerID string, from, to int64) ([]Slot, error)

	// Book atomically flips the slot to BOOKED and sets the candidate name,
	// only if the stored status is still AVAILABLE at the moment of mutation.
	// Returns the post-update slot, or nil if the condition did not match.
	Book(ctx context.Context, id string, candidate string) (*Slot, error)

	// Update overwrites the slot conditioned on its version token and bumps
	// the token. Returns nil if the stored version no longer matches.
	Update(ctx context.Context, slot Slot) (*Slot, error)
}

type SlotStatus string

const (
	SlotAvailable SlotStatus = "AVAILABLE"
	SlotBooked    SlotStatus = "BOOKED"
)

type Slot struct {
	ID            string `json:"id"            bson:"_id,omitempty"`
	InterviewerID string `json:"interviewerId" bson:"interviewer_id"`

	Start int64 `json:"startTime" bson:"start"`
	End   int64 `json:"endTime"   bson:"end"`

	Status        SlotStatus `json:"status"                  bson:"status"`
	CandidateName string     `json:"candidateName,omitempty" bson:"candidate_name,omitempty"`

	// Version grows by one on every committed write and guards
	// concurrent non-booking updates.
	Version int64 `json:"version" bson:"version"`
}

const (
	SlotFieldInterviewerID = "interviewer_id"
	SlotFieldStart         = "start"
	SlotFieldEnd           = "end"
	SlotFieldStatus        = "status"
	SlotFieldCandidate     = "candidate_name"
	SlotFieldVersion       = "version"
)
