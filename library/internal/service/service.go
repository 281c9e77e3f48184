package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Astemirdum/bookaloo/library/internal/repository"
	"github.com/Astemirdum/bookaloo/pkg/kafka"
)

const (
	DefaultLoanPeriod  = 14 * 24 * time.Hour
	DefaultMinDueAhead = 24 * time.Hour
)

// Publisher delivers loan events once the ledger change is committed.
type Publisher interface {
	Publish(ctx context.Context, event kafka.LoanEvent) error
}

type Service struct {
	log         *zap.Logger
	repo        repository.Repository
	publisher   Publisher
	now         func() time.Time
	loanPeriod  time.Duration
	minDueAhead time.Duration
}

type Option func(s *Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithLoanPeriod(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.loanPeriod = d
		}
	}
}

func WithMinDueAhead(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.minDueAhead = d
		}
	}
}

func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		if p != nil {
			s.publisher = p
		}
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:         log.Named("service"),
		repo:        repo,
		publisher:   nopPublisher{},
		now:         time.Now,
		loanPeriod:  DefaultLoanPeriod,
		minDueAhead: DefaultMinDueAhead,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, kafka.LoanEvent) error { return nil }

func (s *Service) publish(ctx context.Context, event kafka.LoanEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.log.Warn("publish loan event",
			zap.String("event_id", event.EventID),
			zap.String("event_type", string(event.EventType)),
			zap.Int64("loan_id", event.LoanID),
			zap.Error(err))
	}
}
