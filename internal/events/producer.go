package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/nikmy/meowslots/internal/models"
	"github.com/nikmy/meowslots/pkg/errors"
	"github.com/nikmy/meowslots/pkg/logger"
)

type bookingEvent struct {
	SlotID        string `json:"slotId"`
	InterviewerID string `json:"interviewerId"`
	CandidateName string `json:"candidateName"`
	StartTime     int64  `json:"startTime"`
	EndTime       int64  `json:"endTime"`
}

func NewKafkaProducer(cfg Config, log logger.Logger) *kafkaProducer {
	c := &kafka.Client{
		Addr:    kafka.TCP(cfg.Brokers...),
		Timeout: time.Second * 5,
	}

	return &kafkaProducer{
		client: c,
		topic:  cfg.Topic,
		log:    log.With("kafka_producer"),
	}
}

type kafkaProducer struct {
	client *kafka.Client
	topic  string
	log    logger.Logger
}

func (p *kafkaProducer) BookingConfirmed(ctx context.Context, slot models.Slot) error {
	payload, err := json.Marshal(bookingEvent{
		SlotID:        slot.ID,
		InterviewerID: slot.InterviewerID,
		CandidateName: slot.CandidateName,
		StartTime:     slot.Start,
		EndTime:       slot.End,
	})
	if err != nil {
		return errors.WrapFail(err, "marshal booking event")
	}

	record := kafka.Record{
		Key:   kafka.NewBytes([]byte(slot.ID)),
		Value: kafka.NewBytes(payload),
	}

	resp, err := p.client.Produce(ctx, &kafka.ProduceRequest{
		Topic:        p.topic,
		RequiredAcks: 1,
		Records:      kafka.NewRecordReader(record),
	})
	if err != nil {
		return errors.WrapFail(err, "produce booking event")
	}

	return errors.WrapFail(resp.Error, "produce booking event")
}

func (p *kafkaProducer) Close() error {
	return nil
}
