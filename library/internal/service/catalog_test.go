package service_test

import (
	"context"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/bookaloo/library/internal/errs"
	"github.com/Astemirdum/bookaloo/library/internal/model"
	"github.com/Astemirdum/bookaloo/library/internal/repository"
)

// stubCatalog fails every create with err and reports unknown editions.
type stubCatalog struct {
	repository.CatalogRepository
	err error
}

func (s stubCatalog) CreateBook(context.Context, model.CreateBookRequest) (model.Book, error) {
	return model.Book{}, s.err
}

func (s stubCatalog) CreateEdition(context.Context, int64, model.CreateEditionRequest) (model.BookEdition, error) {
	return model.BookEdition{}, s.err
}

func (s stubCatalog) CreateVisitor(context.Context, model.CreateVisitorRequest) (model.Visitor, error) {
	return model.Visitor{}, s.err
}

func (s stubCatalog) GetEdition(_ context.Context, bookID, editionID int64) (model.BookEdition, error) {
	if editionID != 1 {
		return model.BookEdition{}, errs.ErrNotFound
	}
	return model.BookEdition{ID: editionID, BookID: bookID}, nil
}

func (s stubCatalog) CreateCopy(_ context.Context, editionID int64, identifier string, condition model.Condition) (model.BookCopy, error) {
	if s.err != nil {
		return model.BookCopy{}, s.err
	}
	return model.BookCopy{ID: 1, Identifier: identifier, BookEditionID: editionID, Condition: condition, IsAvailable: true}, nil
}

func (s stubCatalog) UpdateBook(_ context.Context, id int64, req model.UpdateBookRequest) (model.Book, error) {
	if s.err != nil {
		return model.Book{}, s.err
	}
	return model.Book{ID: id, Title: *req.Title}, nil
}

func (s stubCatalog) UpdateEdition(_ context.Context, bookID, editionID int64, req model.UpdateEditionRequest) (model.BookEdition, error) {
	if s.err != nil {
		return model.BookEdition{}, s.err
	}
	return model.BookEdition{ID: editionID, BookID: bookID}, nil
}

func constraint(code, name string) error {
	return &errs.ConstraintError{Code: code, Constraint: name, Err: errors.New("pg error")}
}

func newCatalogService(err error) *fakeLedger {
	f := newFakeLedger()
	f.CatalogRepository = stubCatalog{err: err}
	return f
}

func TestService_CreateBook_UnknownAuthor(t *testing.T) {
	t.Parallel()
	svc := newTestService(newCatalogService(constraint(pgerrcode.ForeignKeyViolation, "books_author_id_fkey")))

	_, err := svc.CreateBook(context.Background(), model.CreateBookRequest{Title: "War and Peace", AuthorID: 42})
	require.Equal(t, map[string][]string{
		"author": {`Invalid pk "42" - object does not exist.`},
	}, fieldErrors(t, err))
}

func TestService_CreateEdition(t *testing.T) {
	t.Parallel()
	req := model.CreateEditionRequest{PublisherID: 7, ISBN: "9780140447934", PublicationDate: model.NewDate(testNow)}

	t.Run("duplicate isbn", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newCatalogService(constraint(pgerrcode.UniqueViolation, "book_editions_isbn_key")))
		_, err := svc.CreateEdition(context.Background(), 1, req)
		require.Equal(t, map[string][]string{
			"isbn": {"Book edition with this isbn already exists."},
		}, fieldErrors(t, err))
	})

	t.Run("unknown publisher", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newCatalogService(constraint(pgerrcode.ForeignKeyViolation, "book_editions_publisher_id_fkey")))
		_, err := svc.CreateEdition(context.Background(), 1, req)
		require.Equal(t, map[string][]string{
			"publisher": {`Invalid pk "7" - object does not exist.`},
		}, fieldErrors(t, err))
	})

	t.Run("unknown book", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newCatalogService(constraint(pgerrcode.ForeignKeyViolation, "book_editions_book_id_fkey")))
		_, err := svc.CreateEdition(context.Background(), 1, req)
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NotErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("missing publication date", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newCatalogService(nil))
		_, err := svc.CreateEdition(context.Background(), 1, model.CreateEditionRequest{PublisherID: 7, ISBN: "1"})
		require.Equal(t, map[string][]string{
			"publication_date": {errs.MsgRequired},
		}, fieldErrors(t, err))
	})
}

func TestService_CreateCopy(t *testing.T) {
	t.Parallel()

	t.Run("defaults to very good and available", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newCatalogService(nil))
		c, err := svc.CreateCopy(context.Background(), 1, 1, model.CreateCopyRequest{Identifier: "C00001"})
		require.NoError(t, err)
		require.Equal(t, model.ConditionVeryGood, c.Condition)
		require.True(t, c.IsAvailable)
	})

	t.Run("unknown edition", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newCatalogService(nil))
		_, err := svc.CreateCopy(context.Background(), 1, 2, model.CreateCopyRequest{Identifier: "C00001"})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("duplicate identifier", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newCatalogService(constraint(pgerrcode.UniqueViolation, "book_copies_identifier_key")))
		_, err := svc.CreateCopy(context.Background(), 1, 1, model.CreateCopyRequest{Identifier: "C00001"})
		require.Equal(t, map[string][]string{
			"identifier": {"Book copy with this identifier already exists."},
		}, fieldErrors(t, err))
	})

	t.Run("invalid condition", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newCatalogService(nil))
		_, err := svc.CreateCopy(context.Background(), 1, 1, model.CreateCopyRequest{Identifier: "C00001", Condition: ptr(model.Condition("Mint"))})
		require.Equal(t, map[string][]string{
			"condition": {`"Mint" is not a valid choice.`},
		}, fieldErrors(t, err))
	})
}

func TestService_CreateVisitor_Duplicate(t *testing.T) {
	t.Parallel()
	svc := newTestService(newCatalogService(constraint(pgerrcode.UniqueViolation, "visitors_identifier_key")))

	_, err := svc.CreateVisitor(context.Background(), model.CreateVisitorRequest{Identifier: "V00001"})
	require.Equal(t, map[string][]string{
		"identifier": {"Visitor with this identifier already exists."},
	}, fieldErrors(t, err))
}

func TestService_UpdateVisitor_Required(t *testing.T) {
	t.Parallel()
	svc := newTestService(newCatalogService(nil))

	_, err := svc.UpdateVisitor(context.Background(), "V00001", model.UpdateVisitorRequest{})
	require.Equal(t, map[string][]string{
		"is_active": {errs.MsgRequired},
	}, fieldErrors(t, err))
}

func TestService_UpdateBook(t *testing.T) {
	t.Parallel()

	t.Run("unknown author", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newCatalogService(constraint(pgerrcode.ForeignKeyViolation, "books_author_id_fkey")))
		_, err := svc.UpdateBook(context.Background(), 1, model.UpdateBookRequest{AuthorID: ptr(int64(42))})
		require.Equal(t, map[string][]string{
			"author": {`Invalid pk "42" - object does not exist.`},
		}, fieldErrors(t, err))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newCatalogService(errs.ErrNotFound))
		_, err := svc.UpdateBook(context.Background(), 1, model.UpdateBookRequest{Title: ptr("Anna Karenina")})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newCatalogService(nil))
		book, err := svc.UpdateBook(context.Background(), 3, model.UpdateBookRequest{Title: ptr("Anna Karenina")})
		require.NoError(t, err)
		require.Equal(t, model.Book{ID: 3, Title: "Anna Karenina"}, book)
	})
}

func TestService_UpdateEdition(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		req  model.UpdateEditionRequest
		want map[string][]string
	}{
		{
			name: "duplicate isbn",
			err:  constraint(pgerrcode.UniqueViolation, "book_editions_isbn_key"),
			req:  model.UpdateEditionRequest{ISBN: ptr("9780140447934")},
			want: map[string][]string{"isbn": {"Book edition with this isbn already exists."}},
		},
		{
			name: "unknown publisher",
			err:  constraint(pgerrcode.ForeignKeyViolation, "book_editions_publisher_id_fkey"),
			req:  model.UpdateEditionRequest{PublisherID: ptr(int64(9))},
			want: map[string][]string{"publisher": {`Invalid pk "9" - object does not exist.`}},
		},
		{
			name: "empty publication date",
			req:  model.UpdateEditionRequest{PublicationDate: &model.Date{}},
			want: map[string][]string{"publication_date": {errs.MsgRequired}},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newTestService(newCatalogService(tt.err))
			_, err := svc.UpdateEdition(context.Background(), 1, 1, tt.req)
			require.Equal(t, tt.want, fieldErrors(t, err))
		})
	}
}
