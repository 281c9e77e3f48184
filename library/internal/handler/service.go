package handler

import (
	"context"

	"github.com/Astemirdum/bookaloo/library/internal/model"
	"github.com/Astemirdum/bookaloo/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LibraryService interface {
	LoanService
	CatalogService
}

type LoanService interface {
	Lend(ctx context.Context, req model.LendRequest) (model.Loan, error)
	Return(ctx context.Context, req model.ReturnRequest) (model.Loan, error)
	GetLoan(ctx context.Context, id int64) (model.Loan, error)
	ListLoans(ctx context.Context, filter model.LoanFilter, page model.PageRequest) (model.Page[model.Loan], error)
}

type CatalogService interface {
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

	CreateCopy(ctx context.Context, bookID, editionID int64, req model.CreateCopyRequest) (model.BookCopy, error)
	GetCopy(ctx context.Context, bookID, editionID, copyID int64) (model.BookCopy, error)
	ListCopies(ctx context.Context, bookID, editionID int64, search string, page model.PageRequest) (model.Page[model.BookCopy], error)
	DeleteCopy(ctx context.Context, bookID, editionID, copyID int64) error

	CreateVisitor(ctx context.Context, req model.CreateVisitorRequest) (model.Visitor, error)
	GetVisitor(ctx context.Context, identifier string) (model.Visitor, error)
	ListVisitors(ctx context.Context, search string, page model.PageRequest) (model.Page[model.Visitor], error)
	UpdateVisitor(ctx context.Context, identifier string, req model.UpdateVisitorRequest) (model.Visitor, error)
}

var _ LibraryService = (*service.Service)(nil)
