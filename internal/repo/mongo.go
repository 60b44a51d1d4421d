package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/meowslots/internal/models"
	"github.com/nikmy/meowslots/pkg/errors"
	"github.com/nikmy/meowslots/pkg/logger"
)

var slotsIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "interviewer_id", Value: 1}, {Key: "start", Value: 1}},
		Options: options.Index().SetName("interviewer_start"),
	},
	{
		Keys:    bson.D{{Key: "start", Value: 1}},
		Options: options.Index().SetName("start_time"),
	},
}

func NewMongoClient(ctx context.Context, cfg Config, log logger.Logger) (*mongoClient, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts = opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	db := client.Database(cfg.Database)
	slots := db.Collection(cfg.Collections.Slots)

	_, err = slots.Indexes().CreateMany(ctx, slotsIndexes)
	if err != nil {
		return nil, errors.WrapFail(err, "create slots indexes")
	}

	return &mongoClient{
		c:            client,
		useTxn:       cfg.Transactions,
		interviewers: mongoInterviewers{db.Collection(cfg.Collections.Interviewers)},
		slots:        mongoSlots{slots},
		log:          log.With("mongo_client"),
	}, nil
}

type mongoClient struct {
	c      *mongo.Client
	useTxn bool

	interviewers mongoInterviewers
	slots        mongoSlots

	log logger.Logger
}

func (m *mongoClient) Interviewers() models.InterviewersRepo {
	return m.interviewers
}

func (m *mongoClient) Slots() models.SlotsRepo {
	return m.slots
}

func (m *mongoClient) Txn(ctx context.Context, do func(ctx context.Context) error) error {
	if !m.useTxn {
		m.log.Debugf("transactions disabled, falling back to sequential writes")
		return do(ctx)
	}

	session, err := m.c.StartSession()
	if err != nil {
		return errors.WrapFail(err, "start mongo session")
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, do(sc)
	})
	return errors.WrapFail(err, "run mongo transaction")
}

func (m *mongoClient) Close(ctx context.Context) error {
	err := m.c.Disconnect(ctx)
	return errors.WrapFail(err, "close mongo db connection")
}
