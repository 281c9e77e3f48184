package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookaloo/pkg/kafka"
	"github.com/Astemirdum/bookaloo/stats/internal/errs"
	"github.com/Astemirdum/bookaloo/stats/internal/model"
	statsRepo "github.com/Astemirdum/bookaloo/stats/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo statsRepo.Repository
}

func NewService(repo statsRepo.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log.Named("service"),
		repo: repo,
	}
}

// Stats records a loan event. Redelivered events are ignored.
func (s *Service) Stats(ctx context.Context, event kafka.LoanEvent) error {
	if _, err := uuid.Parse(event.EventID); err != nil {
		return errors.Wrapf(errs.ErrInvalidEvent, "event_id %q", event.EventID)
	}
	switch event.EventType {
	case kafka.EventLoanCreated, kafka.EventLoanReturned:
	default:
		return errors.Wrapf(errs.ErrInvalidEvent, "event_type %q", event.EventType)
	}
	if event.VisitorIdentifier == "" {
		return errors.Wrap(errs.ErrInvalidEvent, "empty visitor_identifier")
	}

	err := s.repo.SaveEvent(ctx, event)
	if errors.Is(err, errs.ErrDuplicate) {
		s.log.Debug("duplicate loan event", zap.String("event_id", event.EventID))
		return nil
	}
	return err
}

func (s *Service) GetStats(ctx context.Context, visitorIdentifier string) ([]model.VisitorStats, error) {
	return s.repo.ListStats(ctx, visitorIdentifier)
}
