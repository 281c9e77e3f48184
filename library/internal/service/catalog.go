package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/Astemirdum/bookaloo/library/internal/errs"
	"github.com/Astemirdum/bookaloo/library/internal/model"
)

// constraintField describes how a violated storage constraint is reported back.
type constraintField struct {
	field  string
	entity string // set for unique constraints
}

var constraintFields = map[string]constraintField{
	"books_author_id_fkey":            {field: "author"},
	"book_editions_publisher_id_fkey": {field: "publisher"},
	"book_editions_isbn_key":          {field: "isbn", entity: "Book edition"},
	"book_copies_identifier_key":      {field: "identifier", entity: "Book copy"},
	"visitors_identifier_key":         {field: "identifier", entity: "Visitor"},
}

// parentConstraints reference the row addressed by the URL; violating them means the
// parent does not exist.
var parentConstraints = map[string]struct{}{
	"book_editions_book_id_fkey":       {},
	"book_copies_book_edition_id_fkey": {},
}

// constraintError converts a constraint violation into a field error. pk is the
// referenced id reported for foreign keys.
func constraintError(err error, pk int64) error {
	name, ok := errs.Constraint(err)
	if !ok {
		return err
	}
	if _, ok = parentConstraints[name]; ok {
		return errors.Wrap(errs.ErrNotFound, name)
	}
	cf, ok := constraintFields[name]
	if !ok {
		return err
	}
	if cf.entity != "" {
		return errs.NewFieldErrors().Add(cf.field, fmt.Sprintf(errs.MsgAlreadyExists, cf.entity, cf.field))
	}
	return errs.NewFieldErrors().Add(cf.field, fmt.Sprintf(errs.MsgInvalidPK, pk))
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

func (s *Service) CreateAuthor(ctx context.Context, req model.CreateAuthorRequest) (model.Author, error) {
	return s.repo.CreateAuthor(ctx, req)
}

func (s *Service) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	return s.repo.GetAuthor(ctx, id)
}

func (s *Service) ListAuthors(ctx context.Context, search string, page model.PageRequest) (model.Page[model.Author], error) {
	return s.repo.ListAuthors(ctx, search, page)
}

func (s *Service) UpdateAuthor(ctx context.Context, id int64, req model.UpdateAuthorRequest) (model.Author, error) {
	return s.repo.UpdateAuthor(ctx, id, req)
}

func (s *Service) DeleteAuthor(ctx context.Context, id int64) error {
	return s.repo.DeleteAuthor(ctx, id)
}

func (s *Service) CreatePublisher(ctx context.Context, req model.CreatePublisherRequest) (model.Publisher, error) {
	return s.repo.CreatePublisher(ctx, req)
}

func (s *Service) GetPublisher(ctx context.Context, id int64) (model.Publisher, error) {
	return s.repo.GetPublisher(ctx, id)
}

func (s *Service) ListPublishers(ctx context.Context, search string, page model.PageRequest) (model.Page[model.Publisher], error) {
	return s.repo.ListPublishers(ctx, search, page)
}

func (s *Service) UpdatePublisher(ctx context.Context, id int64, req model.UpdatePublisherRequest) (model.Publisher, error) {
	return s.repo.UpdatePublisher(ctx, id, req)
}

func (s *Service) DeletePublisher(ctx context.Context, id int64) error {
	return s.repo.DeletePublisher(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	book, err := s.repo.CreateBook(ctx, req)
	if err != nil {
		return model.Book{}, constraintError(err, req.AuthorID)
	}
	return book, nil
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context, search string, page model.PageRequest) (model.Page[model.Book], error) {
	return s.repo.ListBooks(ctx, search, page)
}

func (s *Service) UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (model.Book, error) {
	book, err := s.repo.UpdateBook(ctx, id, req)
	if err != nil {
		return model.Book{}, constraintError(err, deref(req.AuthorID))
	}
	return book, nil
}

func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *Service) CreateEdition(ctx context.Context, bookID int64, req model.CreateEditionRequest) (model.BookEdition, error) {
	if req.PublicationDate.IsZero() {
		return model.BookEdition{}, errs.NewFieldErrors().Required("publication_date")
	}
	edition, err := s.repo.CreateEdition(ctx, bookID, req)
	if err != nil {
		return model.BookEdition{}, constraintError(err, req.PublisherID)
	}
	return edition, nil
}

func (s *Service) GetEdition(ctx context.Context, bookID, editionID int64) (model.BookEdition, error) {
	return s.repo.GetEdition(ctx, bookID, editionID)
}

func (s *Service) ListEditions(ctx context.Context, bookID int64, search string, page model.PageRequest) (model.Page[model.BookEdition], error) {
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return model.Page[model.BookEdition]{}, err
	}
	return s.repo.ListEditions(ctx, bookID, search, page)
}

func (s *Service) UpdateEdition(ctx context.Context, bookID, editionID int64, req model.UpdateEditionRequest) (model.BookEdition, error) {
	if req.PublicationDate != nil && req.PublicationDate.IsZero() {
		return model.BookEdition{}, errs.NewFieldErrors().Required("publication_date")
	}
	edition, err := s.repo.UpdateEdition(ctx, bookID, editionID, req)
	if err != nil {
		return model.BookEdition{}, constraintError(err, deref(req.PublisherID))
	}
	return edition, nil
}

func (s *Service) DeleteEdition(ctx context.Context, bookID, editionID int64) error {
	return s.repo.DeleteEdition(ctx, bookID, editionID)
}

// CreateCopy adds an available copy; the availability flag is never taken from the request.
func (s *Service) CreateCopy(ctx context.Context, bookID, editionID int64, req model.CreateCopyRequest) (model.BookCopy, error) {
	if _, err := s.repo.GetEdition(ctx, bookID, editionID); err != nil {
		return model.BookCopy{}, err
	}
	condition := model.ConditionVeryGood
	if req.Condition != nil {
		if !req.Condition.Valid() {
			return model.BookCopy{}, errs.NewFieldErrors().
				Add("condition", fmt.Sprintf(errs.MsgInvalidChoice, *req.Condition))
		}
		condition = *req.Condition
	}
	bookCopy, err := s.repo.CreateCopy(ctx, editionID, req.Identifier, condition)
	if err != nil {
		return model.BookCopy{}, constraintError(err, editionID)
	}
	return bookCopy, nil
}

func (s *Service) GetCopy(ctx context.Context, bookID, editionID, copyID int64) (model.BookCopy, error) {
	if _, err := s.repo.GetEdition(ctx, bookID, editionID); err != nil {
		return model.BookCopy{}, err
	}
	return s.repo.GetCopy(ctx, editionID, copyID)
}

func (s *Service) ListCopies(ctx context.Context, bookID, editionID int64, search string, page model.PageRequest) (model.Page[model.BookCopy], error) {
	if _, err := s.repo.GetEdition(ctx, bookID, editionID); err != nil {
		return model.Page[model.BookCopy]{}, err
	}
	return s.repo.ListCopies(ctx, editionID, search, page)
}

func (s *Service) DeleteCopy(ctx context.Context, bookID, editionID, copyID int64) error {
	if _, err := s.repo.GetEdition(ctx, bookID, editionID); err != nil {
		return err
	}
	return s.repo.DeleteCopy(ctx, editionID, copyID)
}

func (s *Service) CreateVisitor(ctx context.Context, req model.CreateVisitorRequest) (model.Visitor, error) {
	visitor, err := s.repo.CreateVisitor(ctx, req)
	if err != nil {
		return model.Visitor{}, constraintError(err, 0)
	}
	return visitor, nil
}

func (s *Service) GetVisitor(ctx context.Context, identifier string) (model.Visitor, error) {
	return s.repo.GetVisitor(ctx, identifier)
}

func (s *Service) ListVisitors(ctx context.Context, search string, page model.PageRequest) (model.Page[model.Visitor], error) {
	return s.repo.ListVisitors(ctx, search, page)
}

func (s *Service) UpdateVisitor(ctx context.Context, identifier string, req model.UpdateVisitorRequest) (model.Visitor, error) {
	if req.IsActive == nil {
		return model.Visitor{}, errs.NewFieldErrors().Required("is_active")
	}
	return s.repo.SetVisitorActive(ctx, identifier, *req.IsActive)
}
