package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookaloo/pkg/kafka"
	"github.com/Astemirdum/bookaloo/stats/internal/errs"
)

type stats func(ctx context.Context, event kafka.LoanEvent) error

const (
	defaultAttempts = 3
	defaultBackoff  = 500 * time.Millisecond
)

type Consumer struct {
	statsHandler stats
	log          *zap.Logger
	attempts     int
	backoff      time.Duration
}

type ConsumerOption func(c *Consumer)

// WithRetry sets how many times a failed event is handled before the claim is given up
// and the pause between tries, growing linearly.
func WithRetry(attempts int, backoff time.Duration) ConsumerOption {
	return func(c *Consumer) {
		if attempts > 0 {
			c.attempts = attempts
		}
		c.backoff = backoff
	}
}

func NewConsumer(stats stats, log *zap.Logger, opts ...ConsumerOption) *Consumer {
	c := &Consumer{
		statsHandler: stats,
		log:          log.Named("consumer"),
		attempts:     defaultAttempts,
		backoff:      defaultBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks malformed and invalid messages as consumed. When an event still
// fails after the retries the claim returns without marking it: the session ends and
// the group resumes from that offset.
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Debug("message channel was closed")
				return nil
			}
			var event kafka.LoanEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("unmarshal loan event", zap.Error(err), zap.Int64("offset", message.Offset))
				session.MarkMessage(message, "")
				continue
			}

			err := consumer.handle(session.Context(), event)
			switch {
			case errors.Is(err, errs.ErrInvalidEvent):
				consumer.log.Warn("skip loan event", zap.Error(err))
			case err != nil:
				consumer.log.Error("consumer.statsHandler", zap.Error(err), zap.Int64("offset", message.Offset))
				return errors.Wrapf(err, "handle offset %d", message.Offset)
			default:
				consumer.log.Debug("Message claimed:",
					zap.String("event_id", event.EventID),
					zap.Time("timestamp", message.Timestamp),
					zap.String("topic", message.Topic))
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (consumer *Consumer) handle(ctx context.Context, event kafka.LoanEvent) error {
	var err error
	for attempt := 1; attempt <= consumer.attempts; attempt++ {
		err = consumer.statsHandler(ctx, event)
		if err == nil || errors.Is(err, errs.ErrInvalidEvent) {
			return err
		}
		if attempt == consumer.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt) * consumer.backoff):
		}
	}
	return err
}
