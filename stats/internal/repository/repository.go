package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookaloo/pkg/kafka"
	"github.com/Astemirdum/bookaloo/stats/internal/errs"
	"github.com/Astemirdum/bookaloo/stats/internal/model"
)

type Repository interface {
	SaveEvent(ctx context.Context, event kafka.LoanEvent) error
	ListStats(ctx context.Context, visitorIdentifier string) ([]model.VisitorStats, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const loanEventsTableName = `loan_events`

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// SaveEvent stores the event once; a redelivered event returns errs.ErrDuplicate.
func (r *repository) SaveEvent(ctx context.Context, event kafka.LoanEvent) error {
	query, args, err := qb.Insert(loanEventsTableName).
		Columns("event_id", "event_type", "loan_id", "book_copy_identifier", "visitor_identifier",
			"occurred_at", "due_date", "return_date", "condition").
		Values(event.EventID, string(event.EventType), event.LoanID, event.BookCopyIdentifier, event.VisitorIdentifier,
			event.OccurredAt, event.DueDate, event.ReturnDate, event.Condition).
		Suffix("on conflict (event_id) do nothing").
		ToSql()
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "insert loan event")
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrDuplicate
	}
	return nil
}

func (r *repository) ListStats(ctx context.Context, visitorIdentifier string) ([]model.VisitorStats, error) {
	q := qb.Select(
		"visitor_identifier",
		"count(*) filter (where event_type = 'LOAN_CREATED') as loans",
		"count(*) filter (where event_type = 'LOAN_RETURNED') as returns",
		"count(*) filter (where event_type = 'LOAN_CREATED') - count(*) filter (where event_type = 'LOAN_RETURNED') as open_loans",
		"max(occurred_at) as last_activity",
	).
		From(loanEventsTableName).
		GroupBy("visitor_identifier").
		OrderBy("visitor_identifier")
	if visitorIdentifier != "" {
		q = q.Where(sq.Eq{"visitor_identifier": visitorIdentifier})
	}
	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "list stats")
	}
	stats, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.VisitorStats])
	if err != nil {
		return nil, errors.Wrap(err, "collect stats")
	}
	for i := range stats {
		stats[i].LastActivity = stats[i].LastActivity.UTC()
	}
	return stats, nil
}
