package models

import "context"

type InterviewersRepo interface {
	// Create inserts a new interviewer and returns the assigned id.
	Create(ctx context.Context, interviewer Interviewer) (id string, err error)

	// Get returns nil without error if there is no interviewer with such id.
	Get(ctx context.Context, id string) (*Interviewer, error)

	// SetAvailability replaces the whole availability list. The old list is
	// discarded, not merged. Returns false if the interviewer does not exist.
	SetAvailability(ctx context.Context, id string, windows []Window) (bool, error)
}

type Interviewer struct {
	ID    string `json:"id"    bson:"_id,omitempty"`
	Name  string `json:"name"  bson:"name"`
	Email string `json:"email" bson:"email"`

	MaxInterviewsPerWeek int `json:"maxInterviewsPerWeek" bson:"max_interviews_per_week"`

	Availability []Window `json:"availability" bson:"availability"`
}

// Window is a half-open [Start, End) interval in unix milliseconds
// from which bookable slots are tiled.
type Window struct {
	Start int64 `json:"startTime" bson:"start"`
	End   int64 `json:"endTime"   bson:"end"`
}

const (
	InterviewerFieldName         = "name"
	InterviewerFieldEmail        = "email"
	InterviewerFieldMaxPerWeek   = "max_interviews_per_week"
	InterviewerFieldAvailability = "availability"
)
