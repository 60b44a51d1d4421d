package scheduling

import (
	"context"
	"time"

	"github.com/nikmy/meowslots/internal/events"
	"github.com/nikmy/meowslots/internal/models"
	"github.com/nikmy/meowslots/internal/repo"
	"github.com/nikmy/meowslots/pkg/errors"
	"github.com/nikmy/meowslots/pkg/logger"
)

func New(log logger.Logger, client repo.Client, producer events.Producer, cfg Config) (*Service, error) {
	loc := time.UTC
	if cfg.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, errors.WrapFail(err, "load quota week timezone")
		}
	}

	return &Service{
		repo:   client,
		events: producer,
		loc:    loc,
		log:    log.With("scheduling"),
	}, nil
}

type Service struct {
	repo   repo.Client
	events events.Producer
	loc    *time.Location
	log    logger.Logger
}

func (s *Service) CreateInterviewer(ctx context.Context, interviewer models.Interviewer) (*models.Interviewer, error) {
	if interviewer.MaxInterviewsPerWeek < 0 {
		return nil, ErrNegativeQuota
	}

	err := validateWindows(interviewer.Availability)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Interviewers().Create(ctx, interviewer)
	if err != nil {
		return nil, errors.WrapFail(err, "create interviewer")
	}

	interviewer.ID = id
	return &interviewer, nil
}

// SetAvailability replaces the interviewer's availability wholesale and tiles
// one-hour slots from every window. Resubmission does not deduplicate: the new
// batch is inserted next to any previously generated slots.
func (s *Service) SetAvailability(ctx context.Context, interviewerID string, windows []models.Window) (int, error) {
	err := validateWindows(windows)
	if err != nil {
		return 0, err
	}

	interviewer, err := s.repo.Interviewers().Get(ctx, interviewerID)
	if err != nil {
		return 0, errors.WrapFail(err, "get interviewer")
	}
	if interviewer == nil {
		return 0, ErrInterviewerNotFound
	}

	slots := tile(interviewerID, windows)

	err = s.repo.Txn(ctx, func(ctx context.Context) error {
		found, err := s.repo.Interviewers().SetAvailability(ctx, interviewerID, windows)
		if err != nil {
			return errors.WrapFail(err, "replace availability")
		}
		if !found {
			return ErrInterviewerNotFound
		}

		return errors.WrapFail(s.repo.Slots().InsertMany(ctx, slots), "insert generated slots")
	})
	if err != nil {
		return 0, err
	}

	s.log.Infof("generated %d slots for interviewer %s", len(slots), interviewerID)
	return len(slots), nil
}

// SlotsWithin returns every slot starting in [from, to), booked ones included.
func (s *Service) SlotsWithin(ctx context.Context, from, to int64) ([]models.Slot, error) {
	slots, err := s.repo.Slots().FindByStartRange(ctx, from, to)
	return slots, errors.WrapFail(err, "find slots by start range")
}

// Book performs the Available -> Booked transition. The weekly quota check is
// advisory: it reads a count that may be stale by the time the conditional
// update runs. The update itself is atomic, so two candidates racing for one
// slot cannot both win.
func (s *Service) Book(ctx context.Context, slotID string, candidateName string) (*models.Slot, error) {
	slot, err := s.repo.Slots().Get(ctx, slotID)
	if err != nil {
		return nil, errors.WrapFail(err, "get slot")
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	interviewer, err := s.repo.Interviewers().Get(ctx, slot.InterviewerID)
	if err != nil {
		return nil, errors.WrapFail(err, "get slot owner")
	}
	if interviewer == nil {
		// orphaned slot, data integrity fault rather than a user error
		return nil, ErrInterviewerNotFound
	}

	booked, err := s.countBookedInWeek(ctx, interviewer.ID, slot.Start)
	if err != nil {
		return nil, err
	}

	// the slot being booked is not BOOKED yet and is not counted,
	// so the quota-th booking passes and the next one is rejected
	if booked >= interviewer.MaxInterviewsPerWeek {
		return nil, ErrWeeklyLimitExceeded
	}

	updated, err := s.repo.Slots().Book(ctx, slotID, candidateName)
	if err != nil {
		return nil, errors.WrapFail(err, "book slot")
	}
	if updated == nil {
		return nil, ErrSlotAlreadyBooked
	}

	s.broadcastBooking(ctx, *updated)

	return updated, nil
}

// countBookedInWeek counts the interviewer's BOOKED slots within the quota
// week containing at. The result is a point-in-time snapshot.
func (s *Service) countBookedInWeek(ctx context.Context, interviewerID string, at int64) (int, error) {
	weekStart, weekEnd := weekBounds(at, s.loc)

	weekSlots, err := s.repo.Slots().FindByInterviewerAndStartRange(ctx, interviewerID, weekStart, weekEnd)
	if err != nil {
		return 0, errors.WrapFail(err, "find interviewer slots in quota week")
	}

	booked := 0
	for _, ws := range weekSlots {
		if ws.Status == models.SlotBooked {
			booked++
		}
	}

	return booked, nil
}

func (s *Service) broadcastBooking(ctx context.Context, slot models.Slot) {
	err := s.events.BookingConfirmed(ctx, slot)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "broadcast booking event"))
	}
}

// SlotPatch carries a partial slot update. Zero start/end and nil status and
// candidate mean "leave unchanged", so this path cannot set an instant to zero.
type SlotPatch struct {
	Start int64 `json:"startTime"`
	End   int64 `json:"endTime"`

	Status        *models.SlotStatus `json:"status"`
	CandidateName *string            `json:"candidateName"`
}

// PatchSlot overwrites the supplied fields of an existing slot. It bypasses
// the quota and booking checks entirely and is meant for administrative
// correction. The write is conditioned on the slot's version token, so a
// concurrent patch of the same slot surfaces as ErrStaleSlotVersion instead
// of being silently lost.
func (s *Service) PatchSlot(ctx context.Context, slotID string, patch SlotPatch) (*models.Slot, error) {
	slot, err := s.repo.Slots().Get(ctx, slotID)
	if err != nil {
		return nil, errors.WrapFail(err, "get slot")
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	if patch.Start != 0 {
		slot.Start = patch.Start
	}
	if patch.End != 0 {
		slot.End = patch.End
	}
	if patch.Status != nil {
		if *patch.Status != models.SlotAvailable && *patch.Status != models.SlotBooked {
			return nil, ErrUnknownStatus
		}
		slot.Status = *patch.Status
	}
	if patch.CandidateName != nil {
		slot.CandidateName = *patch.CandidateName
	}

	if slot.End <= slot.Start {
		return nil, ErrInvalidTimeRange
	}

	updated, err := s.repo.Slots().Update(ctx, *slot)
	if err != nil {
		return nil, errors.WrapFail(err, "update slot")
	}
	if updated == nil {
		return nil, ErrStaleSlotVersion
	}

	return updated, nil
}
