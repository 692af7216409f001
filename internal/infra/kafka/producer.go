package infra_kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/humanbelnik/movienight/internal/service/notification"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Send is synchronous per message, so batches flush almost immediately.
const batchTimeout = 10 * time.Millisecond

// MailProducer publishes outbound mail to the outbox topic; a mailer service delivers it.
type MailProducer struct {
	writer messageWriter
}

func NewMailProducer(brokers []string, topic string) *MailProducer {
	return &MailProducer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			BatchTimeout:           batchTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *MailProducer) Send(ctx context.Context, msg notification.Message) error {
	const op = "infra_kafka.MailProducer.Send"

	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// Keyed by recipient so mails to one address keep their order.
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strings.Join(msg.To, ",")),
		Value: value,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(msg.Kind)},
		},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (p *MailProducer) Close() error {
	return p.writer.Close()
}
