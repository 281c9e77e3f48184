package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/bookaloo/library/internal/model"
)

var authorColumns = []string{"id", "full_name", "birth_year", "description"}

func (r *repository) CreateAuthor(ctx context.Context, req model.CreateAuthorRequest) (model.Author, error) {
	return getOne[model.Author](ctx, r.db, qb.Insert(authorsTableName).
		Columns("full_name", "birth_year", "description").
		Values(req.FullName, req.BirthYear, req.Description).
		Suffix("returning id, full_name, birth_year, description"))
}

func (r *repository) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	return getOne[model.Author](ctx, r.db, qb.Select(authorColumns...).
		From(authorsTableName).
		Where(sq.Eq{"id": id}))
}

func (r *repository) ListAuthors(ctx context.Context, search string, page model.PageRequest) (model.Page[model.Author], error) {
	items := qb.Select(authorColumns...).From(authorsTableName).OrderBy("id")
	count := qb.Select("count(*)").From(authorsTableName)
	if search != "" {
		cond := sq.ILike{"full_name": likePattern(search)}
		items, count = items.Where(cond), count.Where(cond)
	}
	return listPage(ctx, r.db, items, count, page, same[model.Author])
}

func (r *repository) UpdateAuthor(ctx context.Context, id int64, req model.UpdateAuthorRequest) (model.Author, error) {
	set := map[string]interface{}{}
	setIf(set, "full_name", req.FullName)
	setIf(set, "birth_year", req.BirthYear)
	setIf(set, "description", req.Description)
	if len(set) == 0 {
		return r.GetAuthor(ctx, id)
	}
	return getOne[model.Author](ctx, r.db, qb.Update(authorsTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("returning id, full_name, birth_year, description"))
}

func (r *repository) DeleteAuthor(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, qb.Delete(authorsTableName).Where(sq.Eq{"id": id}))
}

var publisherColumns = []string{"id", "name", "address"}

func (r *repository) CreatePublisher(ctx context.Context, req model.CreatePublisherRequest) (model.Publisher, error) {
	return getOne[model.Publisher](ctx, r.db, qb.Insert(publishersTableName).
		Columns("name", "address").
		Values(req.Name, req.Address).
		Suffix("returning id, name, address"))
}

func (r *repository) GetPublisher(ctx context.Context, id int64) (model.Publisher, error) {
	return getOne[model.Publisher](ctx, r.db, qb.Select(publisherColumns...).
		From(publishersTableName).
		Where(sq.Eq{"id": id}))
}

func (r *repository) ListPublishers(ctx context.Context, search string, page model.PageRequest) (model.Page[model.Publisher], error) {
	items := qb.Select(publisherColumns...).From(publishersTableName).OrderBy("id")
	count := qb.Select("count(*)").From(publishersTableName)
	if search != "" {
		p := likePattern(search)
		cond := sq.Or{sq.ILike{"name": p}, sq.ILike{"address": p}}
		items, count = items.Where(cond), count.Where(cond)
	}
	return listPage(ctx, r.db, items, count, page, same[model.Publisher])
}

func (r *repository) UpdatePublisher(ctx context.Context, id int64, req model.UpdatePublisherRequest) (model.Publisher, error) {
	set := map[string]interface{}{}
	setIf(set, "name", req.Name)
	setIf(set, "address", req.Address)
	if len(set) == 0 {
		return r.GetPublisher(ctx, id)
	}
	return getOne[model.Publisher](ctx, r.db, qb.Update(publishersTableName).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Suffix("returning id, name, address"))
}

func (r *repository) DeletePublisher(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, qb.Delete(publishersTableName).Where(sq.Eq{"id": id}))
}

type bookRow struct {
	ID                int64  `db:"id"`
	Title             string `db:"title"`
	AuthorID          int64  `db:"author_id"`
	AuthorFullName    string `db:"author_full_name"`
	AuthorBirthYear   *int   `db:"author_birth_year"`
	AuthorDescription string `db:"author_description"`
	CopiesTotal       int    `db:"copies_total"`
	CopiesAvailable   int    `db:"copies_available"`
}

func (r bookRow) toModel() model.Book {
	return model.Book{
		ID:    r.ID,
		Title: r.Title,
		Author: model.Author{
			ID:          r.AuthorID,
			FullName:    r.AuthorFullName,
			BirthYear:   r.AuthorBirthYear,
			Description: r.AuthorDescription,
		},
		CopiesCount: model.CopiesCount{
			Total:     r.CopiesTotal,
			Available: r.CopiesAvailable,
		},
	}
}

// bookSelect counts copies through editions; availability is read from the copy flag.
func bookSelect() sq.SelectBuilder {
	return qb.Select(
		"b.id", "b.title",
		"a.id as author_id", "a.full_name as author_full_name",
		"a.birth_year as author_birth_year", "a.description as author_description",
		"count(c.id) as copies_total",
		"count(c.id) filter (where c.is_available) as copies_available",
	).
		From(booksTableName + " b").
		Join(authorsTableName + " a on a.id = b.author_id").
		LeftJoin(editionsTableName + " e on e.book_id = b.id").
		LeftJoin(copiesTableName + " c on c.book_edition_id = e.id").
		GroupBy("b.id", "a.id")
}

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("title", "author_id").
		Values(req.Title, req.AuthorID).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var id int64
	if err = r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return model.Book{}, translate(err)
	}
	return r.GetBook(ctx, id)
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	row, err := getOne[bookRow](ctx, r.db, bookSelect().Where(sq.Eq{"b.id": id}))
	if err != nil {
		return model.Book{}, err
	}
	return row.toModel(), nil
}

func (r *repository) ListBooks(ctx context.Context, search string, page model.PageRequest) (model.Page[model.Book], error) {
	items := bookSelect().OrderBy("b.id")
	count := qb.Select("count(*)").
		From(booksTableName + " b").
		Join(authorsTableName + " a on a.id = b.author_id")
	if search != "" {
		p := likePattern(search)
		cond := sq.Or{sq.ILike{"b.title": p}, sq.ILike{"a.full_name": p}}
		items, count = items.Where(cond), count.Where(cond)
	}
	return listPage(ctx, r.db, items, count, page, bookRow.toModel)
}

func (r *repository) UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (model.Book, error) {
	set := map[string]interface{}{}
	setIf(set, "title", req.Title)
	setIf(set, "author_id", req.AuthorID)
	if len(set) > 0 {
		if err := execUpdate(ctx, r.db, qb.Update(booksTableName).SetMap(set).Where(sq.Eq{"id": id})); err != nil {
			return model.Book{}, err
		}
	}
	return r.GetBook(ctx, id)
}

func (r *repository) DeleteBook(ctx context.Context, id int64) error {
	return execDelete(ctx, r.db, qb.Delete(booksTableName).Where(sq.Eq{"id": id}))
}

type editionRow struct {
	ID              int64     `db:"id"`
	BookID          int64     `db:"book_id"`
	PublisherID     int64     `db:"publisher_id"`
	PublicationDate time.Time `db:"publication_date"`
	ISBN            string    `db:"isbn"`
}

func (r editionRow) toModel() model.BookEdition {
	return model.BookEdition{
		ID:              r.ID,
		BookID:          r.BookID,
		PublisherID:     r.PublisherID,
		PublicationDate: model.NewDate(r.PublicationDate),
		ISBN:            r.ISBN,
	}
}

var editionColumns = []string{"id", "book_id", "publisher_id", "publication_date", "isbn"}

func (r *repository) CreateEdition(ctx context.Context, bookID int64, req model.CreateEditionRequest) (model.BookEdition, error) {
	row, err := getOne[editionRow](ctx, r.db, qb.Insert(editionsTableName).
		Columns("book_id", "publisher_id", "publication_date", "isbn").
		Values(bookID, req.PublisherID, req.PublicationDate.Time, req.ISBN).
		Suffix("returning id, book_id, publisher_id, publication_date, isbn"))
	if err != nil {
		return model.BookEdition{}, err
	}
	return row.toModel(), nil
}

func (r *repository) GetEdition(ctx context.Context, bookID, editionID int64) (model.BookEdition, error) {
	row, err := getOne[editionRow](ctx, r.db, qb.Select(editionColumns...).
		From(editionsTableName).
		Where(sq.Eq{"id": editionID, "book_id": bookID}))
	if err != nil {
		return model.BookEdition{}, err
	}
	return row.toModel(), nil
}

// editionSearch matches the ISBN, the book title, the publisher name or the author name.
func editionSearch(search string) sq.Sqlizer {
	p := likePattern(search)
	return sq.Or{
		sq.ILike{"e.isbn": p},
		sq.ILike{"b.title": p},
		sq.ILike{"p.name": p},
		sq.ILike{"a.full_name": p},
	}
}

// joinEditionParents joins the book, its author and the publisher of the edition aliased e.
func joinEditionParents(q sq.SelectBuilder) sq.SelectBuilder {
	return q.
		Join(booksTableName + " b on b.id = e.book_id").
		Join(authorsTableName + " a on a.id = b.author_id").
		Join(publishersTableName + " p on p.id = e.publisher_id")
}

func (r *repository) ListEditions(ctx context.Context, bookID int64, search string, page model.PageRequest) (model.Page[model.BookEdition], error) {
	items := qb.Select(qualified("e", editionColumns)...).From(editionsTableName + " e").Where(sq.Eq{"e.book_id": bookID}).OrderBy("e.id")
	count := qb.Select("count(*)").From(editionsTableName + " e").Where(sq.Eq{"e.book_id": bookID})
	if search != "" {
		cond := editionSearch(search)
		items, count = joinEditionParents(items).Where(cond), joinEditionParents(count).Where(cond)
	}
	return listPage(ctx, r.db, items, count, page, editionRow.toModel)
}

func (r *repository) UpdateEdition(ctx context.Context, bookID, editionID int64, req model.UpdateEditionRequest) (model.BookEdition, error) {
	set := map[string]interface{}{}
	setIf(set, "publisher_id", req.PublisherID)
	setIf(set, "isbn", req.ISBN)
	if req.PublicationDate != nil {
		set["publication_date"] = req.PublicationDate.Time
	}
	if len(set) == 0 {
		return r.GetEdition(ctx, bookID, editionID)
	}
	row, err := getOne[editionRow](ctx, r.db, qb.Update(editionsTableName).
		SetMap(set).
		Where(sq.Eq{"id": editionID, "book_id": bookID}).
		Suffix("returning id, book_id, publisher_id, publication_date, isbn"))
	if err != nil {
		return model.BookEdition{}, err
	}
	return row.toModel(), nil
}

func (r *repository) DeleteEdition(ctx context.Context, bookID, editionID int64) error {
	return execDelete(ctx, r.db, qb.Delete(editionsTableName).Where(sq.Eq{"id": editionID, "book_id": bookID}))
}

func (r *repository) CreateCopy(ctx context.Context, editionID int64, identifier string, condition model.Condition) (model.BookCopy, error) {
	return getOne[model.BookCopy](ctx, r.db, qb.Insert(copiesTableName).
		Columns("identifier", "book_edition_id", "condition").
		Values(identifier, editionID, string(condition)).
		Suffix("returning id, identifier, book_edition_id, condition, is_available"))
}

func (r *repository) GetCopy(ctx context.Context, editionID, copyID int64) (model.BookCopy, error) {
	return getOne[model.BookCopy](ctx, r.db, qb.Select(copyColumns...).
		From(copiesTableName).
		Where(sq.Eq{"id": copyID, "book_edition_id": editionID}))
}

func (r *repository) ListCopies(ctx context.Context, editionID int64, search string, page model.PageRequest) (model.Page[model.BookCopy], error) {
	items := qb.Select(qualified("c", copyColumns)...).From(copiesTableName + " c").Where(sq.Eq{"c.book_edition_id": editionID}).OrderBy("c.id")
	count := qb.Select("count(*)").From(copiesTableName + " c").Where(sq.Eq{"c.book_edition_id": editionID})
	if search != "" {
		cond := sq.Or{sq.ILike{"c.identifier": likePattern(search)}, editionSearch(search)}
		join := func(q sq.SelectBuilder) sq.SelectBuilder {
			return joinEditionParents(q.Join(editionsTableName + " e on e.id = c.book_edition_id"))
		}
		items, count = join(items).Where(cond), join(count).Where(cond)
	}
	return listPage(ctx, r.db, items, count, page, same[model.BookCopy])
}

func (r *repository) DeleteCopy(ctx context.Context, editionID, copyID int64) error {
	return execDelete(ctx, r.db, qb.Delete(copiesTableName).Where(sq.Eq{"id": copyID, "book_edition_id": editionID}))
}

func (r *repository) CreateVisitor(ctx context.Context, req model.CreateVisitorRequest) (model.Visitor, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return getOne[model.Visitor](ctx, r.db, qb.Insert(visitorsTableName).
		Columns("identifier", "full_name", "email", "phone_number", "is_active").
		Values(req.Identifier, req.FullName, req.Email, req.PhoneNumber, active).
		Suffix("returning id, identifier, full_name, email, phone_number, is_active"))
}

func (r *repository) GetVisitor(ctx context.Context, identifier string) (model.Visitor, error) {
	return getVisitor(ctx, r.db, identifier)
}

func (r *repository) ListVisitors(ctx context.Context, search string, page model.PageRequest) (model.Page[model.Visitor], error) {
	items := qb.Select(visitorColumns...).From(visitorsTableName).OrderBy("id")
	count := qb.Select("count(*)").From(visitorsTableName)
	if search != "" {
		p := likePattern(search)
		cond := sq.Or{sq.ILike{"identifier": p}, sq.ILike{"full_name": p}, sq.ILike{"email": p}}
		items, count = items.Where(cond), count.Where(cond)
	}
	return listPage(ctx, r.db, items, count, page, same[model.Visitor])
}

func (r *repository) SetVisitorActive(ctx context.Context, identifier string, active bool) (model.Visitor, error) {
	return getOne[model.Visitor](ctx, r.db, qb.Update(visitorsTableName).
		Set("is_active", active).
		Where(sq.Eq{"identifier": identifier}).
		Suffix("returning id, identifier, full_name, email, phone_number, is_active"))
}
