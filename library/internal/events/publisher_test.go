package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookaloo/library/internal/events"
	"github.com/Astemirdum/bookaloo/pkg/circuit_breaker"
	"github.com/Astemirdum/bookaloo/pkg/kafka"
)

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	event := kafka.LoanEvent{
		EventID:            "2f1b8a4e-7d35-4c1e-9d0f-8f1f5e5b0a11",
		EventType:          kafka.EventLoanCreated,
		LoanID:             7,
		BookCopyIdentifier: "C00001",
		VisitorIdentifier:  "V00001",
		OccurredAt:         time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		DueDate:            time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "C00001" {
			return errors.New("unexpected key " + string(key))
		}
		if msg.Topic != kafka.LoanEventsTopic {
			return errors.New("unexpected topic " + msg.Topic)
		}
		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var got kafka.LoanEvent
		if err = json.Unmarshal(value, &got); err != nil {
			return err
		}
		if got.LoanID != 7 || got.EventType != kafka.EventLoanCreated {
			return errors.New("unexpected payload")
		}
		return nil
	})

	p := events.NewPublisher(producer, kafka.LoanEventsTopic, circuit_breaker.New(4, time.Minute, 0.5, 1), zap.NewNop())
	require.NoError(t, p.Publish(context.Background(), event))
	require.NoError(t, p.Close())
}

func TestPublisher_BreakerOpens(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	cb := circuit_breaker.New(2, time.Minute, 1, 1)
	p := events.NewPublisher(producer, kafka.LoanEventsTopic, cb, zap.NewNop())
	ctx := context.Background()

	require.ErrorIs(t, p.Publish(ctx, kafka.LoanEvent{LoanID: 1}), sarama.ErrOutOfBrokers)
	require.ErrorIs(t, p.Publish(ctx, kafka.LoanEvent{LoanID: 2}), sarama.ErrOutOfBrokers)
	require.Equal(t, circuit_breaker.Open, cb.State())

	// no third expectation: an open breaker must not reach the producer
	require.ErrorIs(t, p.Publish(ctx, kafka.LoanEvent{LoanID: 3}), circuit_breaker.ErrOpenCB)
	require.NoError(t, p.Close())
}
