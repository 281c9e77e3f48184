package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookaloo/pkg/kafka"
	"github.com/Astemirdum/bookaloo/stats/internal/errs"
	"github.com/Astemirdum/bookaloo/stats/internal/model"
)

type memRepo struct {
	events map[string]kafka.LoanEvent
	err    error
}

func (r *memRepo) SaveEvent(_ context.Context, event kafka.LoanEvent) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.events[event.EventID]; ok {
		return errs.ErrDuplicate
	}
	r.events[event.EventID] = event
	return nil
}

func (r *memRepo) ListStats(_ context.Context, visitorIdentifier string) ([]model.VisitorStats, error) {
	st := model.VisitorStats{VisitorIdentifier: visitorIdentifier}
	for _, e := range r.events {
		if e.VisitorIdentifier != visitorIdentifier {
			continue
		}
		switch e.EventType {
		case kafka.EventLoanCreated:
			st.Loans++
		case kafka.EventLoanReturned:
			st.Returns++
		}
	}
	st.OpenLoans = st.Loans - st.Returns
	return []model.VisitorStats{st}, nil
}

func newEvent(typ kafka.EventType) kafka.LoanEvent {
	return kafka.LoanEvent{
		EventID:            uuid.NewString(),
		EventType:          typ,
		LoanID:             1,
		BookCopyIdentifier: "C00001",
		VisitorIdentifier:  "V00001",
		OccurredAt:         time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestService_Stats(t *testing.T) {
	t.Parallel()
	repo := &memRepo{events: map[string]kafka.LoanEvent{}}
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()

	created := newEvent(kafka.EventLoanCreated)
	require.NoError(t, svc.Stats(ctx, created))
	require.NoError(t, svc.Stats(ctx, created), "redelivery is ignored")
	require.NoError(t, svc.Stats(ctx, newEvent(kafka.EventLoanReturned)))
	require.NoError(t, svc.Stats(ctx, newEvent(kafka.EventLoanCreated)))

	got, err := svc.GetStats(ctx, "V00001")
	require.NoError(t, err)
	require.Equal(t, []model.VisitorStats{{VisitorIdentifier: "V00001", Loans: 2, Returns: 1, OpenLoans: 1}}, got)
}

func TestService_Stats_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		modify func(e *kafka.LoanEvent)
	}{
		{name: "bad event id", modify: func(e *kafka.LoanEvent) { e.EventID = "42" }},
		{name: "unknown type", modify: func(e *kafka.LoanEvent) { e.EventType = "LOAN_LOST" }},
		{name: "no visitor", modify: func(e *kafka.LoanEvent) { e.VisitorIdentifier = "" }},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &memRepo{events: map[string]kafka.LoanEvent{}}
			event := newEvent(kafka.EventLoanCreated)
			tt.modify(&event)

			err := NewService(repo, zap.NewNop()).Stats(context.Background(), event)
			require.ErrorIs(t, err, errs.ErrInvalidEvent)
			require.Empty(t, repo.events)
		})
	}
}

func TestService_Stats_RepoError(t *testing.T) {
	t.Parallel()
	repo := &memRepo{err: errors.New("db down")}
	err := NewService(repo, zap.NewNop()).Stats(context.Background(), newEvent(kafka.EventLoanReturned))
	require.EqualError(t, err, "db down")
	require.NotErrorIs(t, err, errs.ErrInvalidEvent)
}
