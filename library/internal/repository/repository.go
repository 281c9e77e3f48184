package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/bookaloo/library/internal/errs"
	"github.com/Astemirdum/bookaloo/library/internal/model"
)

type Repository interface {
	LedgerRepository
	CatalogRepository
}

// LedgerRepository gives access to the loan history. Every state change of a copy
// goes through InTx so the loan row and the availability flag commit together.
type LedgerRepository interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
	GetLoan(ctx context.Context, id int64) (model.Loan, error)
	ListLoans(ctx context.Context, filter model.LoanFilter, page model.PageRequest) (model.Page[model.Loan], error)
}

// Tx is the set of ledger operations available inside one transaction.
type Tx interface {
	// GetCopyForUpdate locks the copy row until the transaction ends.
	GetCopyForUpdate(ctx context.Context, identifier string) (model.BookCopy, error)
	GetVisitor(ctx context.Context, identifier string) (model.Visitor, error)
	// GetOpenLoan returns errs.ErrNotFound when the copy has no loan with a null return date.
	GetOpenLoan(ctx context.Context, copyID int64) (model.BookLoan, error)
	CreateLoan(ctx context.Context, loan model.BookLoan) (int64, error)
	CloseLoan(ctx context.Context, loanID int64, returnedAt time.Time) error
	UpdateCopyState(ctx context.Context, copyID int64, available bool, condition model.Condition) error
	GetLoan(ctx context.Context, id int64) (model.Loan, error)
}

type CatalogRepository interface {
	CreateAuthor(ctx context.Context, req model.CreateAuthorRequest) (model.Author, error)
	GetAuthor(ctx context.Context, id int64) (model.Author, error)
	ListAuthors(ctx context.Context, search string, page model.PageRequest) (model.Page[model.Author], error)
	UpdateAuthor(ctx context.Context, id int64, req model.UpdateAuthorRequest) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error

	CreatePublisher(ctx context.Context, req model.CreatePublisherRequest) (model.Publisher, error)
	GetPublisher(ctx context.Context, id int64) (model.Publisher, error)
	ListPublishers(ctx context.Context, search string, page model.PageRequest) (model.Page[model.Publisher], error)
	UpdatePublisher(ctx context.Context, id int64, req model.UpdatePublisherRequest) (model.Publisher, error)
	DeletePublisher(ctx context.Context, id int64) error

	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListBooks(ctx context.Context, search string, page model.PageRequest) (model.Page[model.Book], error)
	UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int64) error

	CreateEdition(ctx context.Context, bookID int64, req model.CreateEditionRequest) (model.BookEdition, error)
	GetEdition(ctx context.Context, bookID, editionID int64) (model.BookEdition, error)
	ListEditions(ctx context.Context, bookID int64, search string, page model.PageRequest) (model.Page[model.BookEdition], error)
	UpdateEdition(ctx context.Context, bookID, editionID int64, req model.UpdateEditionRequest) (model.BookEdition, error)
	DeleteEdition(ctx context.Context, bookID, editionID int64) error

	CreateCopy(ctx context.Context, editionID int64, identifier string, condition model.Condition) (model.BookCopy, error)
	GetCopy(ctx context.Context, editionID, copyID int64) (model.BookCopy, error)
	ListCopies(ctx context.Context, editionID int64, search string, page model.PageRequest) (model.Page[model.BookCopy], error)
	DeleteCopy(ctx context.Context, editionID, copyID int64) error

	CreateVisitor(ctx context.Context, req model.CreateVisitorRequest) (model.Visitor, error)
	GetVisitor(ctx context.Context, identifier string) (model.Visitor, error)
	ListVisitors(ctx context.Context, search string, page model.PageRequest) (model.Page[model.Visitor], error)
	SetVisitorActive(ctx context.Context, identifier string, active bool) (model.Visitor, error)
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

const (
	authorsTableName    = `authors`
	publishersTableName = `publishers`
	booksTableName      = `books`
	editionsTableName   = `book_editions`
	copiesTableName     = `book_copies`
	visitorsTableName   = `visitors`
	loansTableName      = `book_loans`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// querier is implemented by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *repository) InTx(ctx context.Context, fn func(tx Tx) error) error {
	pgTx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() {
		if rbErr := pgTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.log.Warn("rollback", zap.Error(rbErr))
		}
	}()

	if err = fn(&txRepository{tx: pgTx, log: r.log}); err != nil {
		return err
	}
	if err = pgTx.Commit(ctx); err != nil {
		return translate(errors.Wrap(err, "commit"))
	}
	return nil
}

// translate maps driver errors onto the errs taxonomy.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation, pgerrcode.ForeignKeyViolation, pgerrcode.CheckViolation:
			return &errs.ConstraintError{Code: pgErr.Code, Constraint: pgErr.ConstraintName, Err: err}
		}
	}
	return err
}

func translateDelete(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return errors.Wrap(errs.ErrProtected, pgErr.ConstraintName)
	}
	return err
}

func execDelete(ctx context.Context, db querier, q sq.DeleteBuilder) error {
	query, args, err := q.ToSql()
	if err != nil {
		return err
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return translateDelete(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func execUpdate(ctx context.Context, db querier, q sq.UpdateBuilder) error {
	query, args, err := q.ToSql()
	if err != nil {
		return err
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// setIf adds column to a partial update only when the request carried a value.
func setIf[T any](set map[string]interface{}, column string, v *T) {
	if v != nil {
		set[column] = *v
	}
}

func getOne[T any](ctx context.Context, db querier, q sq.Sqlizer) (T, error) {
	var zero T
	query, args, err := q.ToSql()
	if err != nil {
		return zero, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return zero, translate(err)
	}
	v, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return zero, translate(err)
	}
	return v, nil
}

// listPage runs the page query and the count query concurrently on the pool.
func listPage[R, T any](ctx context.Context, db *pgxpool.Pool, items, count sq.SelectBuilder, page model.PageRequest, convert func(R) T) (model.Page[T], error) {
	page = page.Normalize()
	var (
		total int
		rows  []R
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		query, args, err := count.ToSql()
		if err != nil {
			return err
		}
		return db.QueryRow(gctx, query, args...).Scan(&total)
	})
	g.Go(func() error {
		query, args, err := items.
			Limit(uint64(page.Size)).
			Offset(uint64(page.Offset())).
			ToSql()
		if err != nil {
			return err
		}
		res, err := db.Query(gctx, query, args...)
		if err != nil {
			return err
		}
		rows, err = pgx.CollectRows(res, pgx.RowToStructByName[R])
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Page[T]{}, errors.Wrap(err, "list")
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, convert(row))
	}
	return model.NewPage(out, total, page), nil
}

func same[T any](v T) T { return v }

// qualified prefixes columns with a table alias.
func qualified(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func likePattern(search string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(search)) + "%"
}
