package events

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookaloo/pkg/circuit_breaker"
	"github.com/Astemirdum/bookaloo/pkg/kafka"
)

type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger
}

func NewPublisher(producer sarama.SyncProducer, topic string, cb circuit_breaker.CircuitBreaker, log *zap.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		cb:       cb,
		log:      log.Named("publisher"),
	}
}

// Publish sends the event keyed by copy identifier, so events of one copy stay ordered.
func (p *Publisher) Publish(ctx context.Context, event kafka.LoanEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal loan event")
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.BookCopyIdentifier),
		Value: sarama.ByteEncoder(data),
	}
	err = p.cb.Call(func() error {
		partition, offset, err := p.producer.SendMessage(msg)
		if err != nil {
			return err
		}
		p.log.Debug("loan event sent",
			zap.String("event_id", event.EventID),
			zap.Int32("partition", partition),
			zap.Int64("offset", offset))
		return nil
	})
	return errors.Wrap(err, "send loan event")
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}

// Nop is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, kafka.LoanEvent) error { return nil }

func (Nop) Close() error { return nil }
