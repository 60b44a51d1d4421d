package repo

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/meowslots/internal/models"
	"github.com/nikmy/meowslots/pkg/errors"
	mng "github.com/nikmy/meowslots/pkg/mongotools"
)

type mongoSlots struct {
	coll *mongo.Collection
}

func (m mongoSlots) InsertMany(ctx context.Context, slots []models.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	docs := make([]any, 0, len(slots))
	for _, s := range slots {
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		docs = append(docs, s)
	}

	_, err := m.coll.InsertMany(ctx, docs)
	return errors.WrapFail(err, "insert slots batch")
}

func (m mongoSlots) Get(ctx context.Context, id string) (*models.Slot, error) {
	r := m.coll.FindOne(ctx, mng.FilterByID(id))
	err := r.Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(err, "find slot by id")
	}

	var parsed models.Slot
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode slot")
	}

	return &parsed, nil
}

func (m mongoSlots) FindByStartRange(ctx context.Context, from, to int64) ([]models.Slot, error) {
	c, err := m.coll.Find(ctx, startRange(from, to))
	if err != nil {
		return nil, errors.WrapFail(err, "find slots by start range")
	}

	parsed, err := mng.FilterFunc[models.Slot](ctx, c, nil)
	return parsed, errors.WrapFail(err, "parse slots")
}

func (m mongoSlots) FindByInterviewerAndStartRange(
	ctx context.Context,
	interviewerID string,
	from, to int64,
) ([]models.Slot, error) {
	filter := startRange(from, to)
	filter[models.SlotFieldInterviewerID] = interviewerID

	c, err := m.coll.Find(ctx, filter)
	if err != nil {
		return nil, errors.WrapFail(err, "find interviewer slots by start range")
	}

	parsed, err := mng.FilterFunc[models.Slot](ctx, c, nil)
	return parsed, errors.WrapFail(err, "parse slots")
}

// Book is the single indivisible operation of the booking flow: the update
// applies only if the stored status is still AVAILABLE, so of any number of
// concurrent callers exactly one observes a non-nil result.
func (m mongoSlots) Book(ctx context.Context, id string, candidate string) (*models.Slot, error) {
	r := m.coll.FindOneAndUpdate(
		ctx,
		bson.M{
			"_id":                  id,
			models.SlotFieldStatus: models.SlotAvailable,
		},
		bson.M{
			"$set": bson.M{
				models.SlotFieldStatus:    models.SlotBooked,
				models.SlotFieldCandidate: candidate,
			},
			"$inc": bson.M{models.SlotFieldVersion: 1},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	err := r.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(err, "book slot")
	}

	var parsed models.Slot
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode booked slot")
	}

	return &parsed, nil
}

func (m mongoSlots) Update(ctx context.Context, slot models.Slot) (*models.Slot, error) {
	r := m.coll.FindOneAndUpdate(
		ctx,
		bson.M{
			"_id":                   slot.ID,
			models.SlotFieldVersion: slot.Version,
		},
		bson.M{
			"$set": bson.M{
				models.SlotFieldStart:     slot.Start,
				models.SlotFieldEnd:       slot.End,
				models.SlotFieldStatus:    slot.Status,
				models.SlotFieldCandidate: slot.CandidateName,
			},
			"$inc": bson.M{models.SlotFieldVersion: 1},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	err := r.Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(err, "update slot")
	}

	var parsed models.Slot
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode updated slot")
	}

	return &parsed, nil
}

func startRange(from, to int64) bson.M {
	return bson.M{models.SlotFieldStart: bson.M{"$gte": from, "$lt": to}}
}
