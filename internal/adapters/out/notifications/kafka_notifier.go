// Package notifications provides outbound notification senders. Messages
// are fire-and-forget: a failed send is logged and reported to the caller
// as a boolean, never as an error that could abort the triggering
// operation.
package notifications

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// message is the wire format published to the notifications topic. A
// downstream mailer consumes the topic and does the actual delivery.
type message struct {
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sent_at"`
}

// KafkaNotifier publishes notifications to a Kafka topic, keyed by
// recipient so one customer's messages stay ordered.
type KafkaNotifier struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaNotifier creates a notifier publishing to the given brokers and
// topic.
func NewKafkaNotifier(brokers []string, topic string, logger *slog.Logger) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
		logger: logger,
	}
}

// Send publishes the notification and reports whether the hand-off
// succeeded. Failures are logged, not returned.
func (n *KafkaNotifier) Send(ctx context.Context, to, subject, body string) bool {
	payload, err := json.Marshal(message{
		To:      to,
		Subject: subject,
		Body:    body,
		SentAt:  time.Now(),
	})
	if err != nil {
		n.logger.Error("marshal notification", "to", to, "error", err)
		return false
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(to),
		Value: payload,
	})
	if err != nil {
		n.logger.Warn("publish notification", "to", to, "subject", subject, "error", err)
		return false
	}

	n.logger.Info("notification published", "to", to, "subject", subject)
	return true
}

// Close flushes and closes the underlying writer.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
