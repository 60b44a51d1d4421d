package repo

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/meowslots/internal/models"
	"github.com/nikmy/meowslots/pkg/errors"
	mng "github.com/nikmy/meowslots/pkg/mongotools"
)

type mongoInterviewers struct {
	coll *mongo.Collection
}

func (m mongoInterviewers) Create(ctx context.Context, interviewer models.Interviewer) (string, error) {
	interviewer.ID = uuid.NewString()

	_, err := m.coll.InsertOne(ctx, interviewer)
	if err != nil {
		return "", errors.WrapFail(err, "insert interviewer")
	}

	return interviewer.ID, nil
}

func (m mongoInterviewers) Get(ctx context.Context, id string) (*models.Interviewer, error) {
	r := m.coll.FindOne(ctx, mng.FilterByID(id))
	err := r.Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(err, "find interviewer by id")
	}

	var parsed models.Interviewer
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode interviewer")
	}

	return &parsed, nil
}

func (m mongoInterviewers) SetAvailability(ctx context.Context, id string, windows []models.Window) (bool, error) {
	r, err := m.coll.UpdateOne(
		ctx,
		mng.FilterByID(id),
		mng.SetAll(mng.Field(models.InterviewerFieldAvailability, &windows)),
	)
	if err != nil {
		return false, errors.WrapFail(err, "update interviewer availability")
	}

	return r.MatchedCount == 1, nil
}
