package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookaloo/library/internal/errs"
	"github.com/Astemirdum/bookaloo/library/internal/model"
)

type loanRow struct {
	ID                 int64      `db:"id"`
	LoanDate           time.Time  `db:"loan_date"`
	DueDate            time.Time  `db:"due_date"`
	ReturnDate         *time.Time `db:"return_date"`
	BookCopyIdentifier string     `db:"book_copy_identifier"`
	ISBN               string     `db:"isbn"`
	AuthorID           int64      `db:"author_id"`
	AuthorFullName     string     `db:"author_full_name"`
	AuthorBirthYear    *int       `db:"author_birth_year"`
	VisitorIdentifier  string     `db:"visitor_identifier"`
	VisitorFullName    string     `db:"visitor_full_name"`
	VisitorEmail       string     `db:"visitor_email"`
	VisitorPhoneNumber string     `db:"visitor_phone_number"`
}

func (r loanRow) toModel() model.Loan {
	loan := model.Loan{
		ID: r.ID,
		Book: model.LoanBook{
			BookCopyIdentifier: r.BookCopyIdentifier,
			ISBN:               r.ISBN,
			Author: model.LoanAuthor{
				ID:        r.AuthorID,
				FullName:  r.AuthorFullName,
				BirthYear: r.AuthorBirthYear,
			},
		},
		Visitor: model.LoanVisitor{
			Identifier:  r.VisitorIdentifier,
			FullName:    r.VisitorFullName,
			Email:       r.VisitorEmail,
			PhoneNumber: r.VisitorPhoneNumber,
		},
		LoanDate: r.LoanDate.UTC(),
		DueDate:  r.DueDate.UTC(),
	}
	if r.ReturnDate != nil {
		rd := r.ReturnDate.UTC()
		loan.ReturnDate = &rd
	}
	return loan
}

func loanSelect(columns ...string) sq.SelectBuilder {
	return qb.Select(columns...).
		From(loansTableName + " l").
		Join(copiesTableName + " c on c.id = l.book_copy_id").
		Join(editionsTableName + " e on e.id = c.book_edition_id").
		Join(booksTableName + " b on b.id = e.book_id").
		Join(authorsTableName + " a on a.id = b.author_id").
		Join(visitorsTableName + " v on v.id = l.visitor_id")
}

var loanColumns = []string{
	"l.id", "l.loan_date", "l.due_date", "l.return_date",
	"c.identifier as book_copy_identifier", "e.isbn",
	"a.id as author_id", "a.full_name as author_full_name", "a.birth_year as author_birth_year",
	"v.identifier as visitor_identifier", "v.full_name as visitor_full_name",
	"v.email as visitor_email", "v.phone_number as visitor_phone_number",
}

func getLoan(ctx context.Context, db querier, id int64) (model.Loan, error) {
	row, err := getOne[loanRow](ctx, db, loanSelect(loanColumns...).Where(sq.Eq{"l.id": id}))
	if err != nil {
		return model.Loan{}, err
	}
	return row.toModel(), nil
}

func (r *repository) GetLoan(ctx context.Context, id int64) (model.Loan, error) {
	return getLoan(ctx, r.db, id)
}

func applyLoanFilter(q sq.SelectBuilder, f model.LoanFilter) sq.SelectBuilder {
	if f.VisitorIdentifier != "" {
		q = q.Where(sq.Eq{"v.identifier": f.VisitorIdentifier})
	}
	if f.BookCopyIdentifier != "" {
		q = q.Where(sq.Eq{"c.identifier": f.BookCopyIdentifier})
	}
	if f.Open != nil {
		if *f.Open {
			q = q.Where(sq.Eq{"l.return_date": nil})
		} else {
			q = q.Where(sq.NotEq{"l.return_date": nil})
		}
	}
	return q
}

func (r *repository) ListLoans(ctx context.Context, filter model.LoanFilter, page model.PageRequest) (model.Page[model.Loan], error) {
	items := applyLoanFilter(loanSelect(loanColumns...), filter).OrderBy("l.loan_date desc", "l.id desc")
	count := applyLoanFilter(loanSelect("count(*)"), filter)
	return listPage(ctx, r.db, items, count, page, loanRow.toModel)
}

type txRepository struct {
	tx  pgx.Tx
	log *zap.Logger
}

var copyColumns = []string{"id", "identifier", "book_edition_id", "condition", "is_available"}

func (t *txRepository) GetCopyForUpdate(ctx context.Context, identifier string) (model.BookCopy, error) {
	return getOne[model.BookCopy](ctx, t.tx, qb.Select(copyColumns...).
		From(copiesTableName).
		Where(sq.Eq{"identifier": identifier}).
		Suffix("for update"))
}

var visitorColumns = []string{"id", "identifier", "full_name", "email", "phone_number", "is_active"}

func (t *txRepository) GetVisitor(ctx context.Context, identifier string) (model.Visitor, error) {
	return getVisitor(ctx, t.tx, identifier)
}

func getVisitor(ctx context.Context, db querier, identifier string) (model.Visitor, error) {
	return getOne[model.Visitor](ctx, db, qb.Select(visitorColumns...).
		From(visitorsTableName).
		Where(sq.Eq{"identifier": identifier}))
}

func (t *txRepository) GetOpenLoan(ctx context.Context, copyID int64) (model.BookLoan, error) {
	return getOne[model.BookLoan](ctx, t.tx, qb.Select("id", "visitor_id", "book_copy_id", "loan_date", "due_date", "return_date").
		From(loansTableName).
		Where(sq.Eq{"book_copy_id": copyID, "return_date": nil}).
		Limit(1))
}

func (t *txRepository) CreateLoan(ctx context.Context, loan model.BookLoan) (int64, error) {
	query, args, err := qb.Insert(loansTableName).
		Columns("visitor_id", "book_copy_id", "loan_date", "due_date").
		Values(loan.VisitorID, loan.BookCopyID, loan.LoanDate, loan.DueDate).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err = t.tx.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, translate(err)
	}
	return id, nil
}

func (t *txRepository) CloseLoan(ctx context.Context, loanID int64, returnedAt time.Time) error {
	q := `
update book_loans
	set return_date = @return_date
where id = @id and return_date is null`
	tag, err := t.tx.Exec(ctx, q, pgx.NamedArgs{
		"id":          loanID,
		"return_date": returnedAt,
	})
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (t *txRepository) UpdateCopyState(ctx context.Context, copyID int64, available bool, condition model.Condition) error {
	q := `
update book_copies
	set is_available = @available, condition = @condition
where id = @id`
	tag, err := t.tx.Exec(ctx, q, pgx.NamedArgs{
		"id":        copyID,
		"available": available,
		"condition": string(condition),
	})
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (t *txRepository) GetLoan(ctx context.Context, id int64) (model.Loan, error) {
	return getLoan(ctx, t.tx, id)
}
