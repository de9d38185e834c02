package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"studentloan-backend/internal/logging"
	"studentloan-backend/internal/usecase/review"

	"github.com/segmentio/kafka-go"
)

var (
	_ review.Notifier = (*KafkaNotifier)(nil)
	_ review.Notifier = LogNotifier{}
)

// messageWriter is the part of *kafka.Writer the notifier needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes phase approvals as JSON, keyed by user id so one
// student's events stay ordered on a partition.
type KafkaNotifier struct {
	w     messageWriter
	topic string
}

func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            3,
		WriteBackoffMin:        100 * time.Millisecond,
		WriteBackoffMax:        time.Second,
	}
	logging.Info(context.Background(), "kafka notifier created", "brokers", brokers, "topic", topic)
	return &KafkaNotifier{w: w, topic: topic}
}

func (n *KafkaNotifier) PhaseApproved(ctx context.Context, ev review.PhaseApprovedEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(ev.UserID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("phase_approved")},
			{Key: "event_id", Value: []byte(ev.EventID)},
		},
	}
	if err := n.w.WriteMessages(ctx, msg); err != nil {
		logging.Error(ctx, "kafka write failed", "topic", n.topic, "key", ev.UserID, "err", err)
		return err
	}
	logging.Debug(ctx, "kafka message sent", "topic", n.topic, "key", ev.UserID)
	return nil
}

func (n *KafkaNotifier) Close() error { return n.w.Close() }

// LogNotifier is used when no broker is configured.
type LogNotifier struct{}

func (LogNotifier) PhaseApproved(ctx context.Context, ev review.PhaseApprovedEvent) error {
	logging.Info(ctx, "phase approved",
		"event_id", ev.EventID, "user_id", ev.UserID, "phase", string(ev.Phase),
		"academic_year", ev.AcademicYear, "term", ev.Term)
	return nil
}
