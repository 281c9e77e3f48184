package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/bookaloo/library/internal/model"
)

func create[Req, Res any](h *Handler, c echo.Context, fn func(ctx context.Context, req Req) (Res, error)) error {
	return save(h, c, http.StatusCreated, fn)
}

// update applies a partial update: only the fields present in the body change.
func update[Req, Res any](h *Handler, c echo.Context, fn func(ctx context.Context, req Req) (Res, error)) error {
	return save(h, c, http.StatusOK, fn)
}

func save[Req, Res any](h *Handler, c echo.Context, status int, fn func(ctx context.Context, req Req) (Res, error)) error {
	var req Req
	if err := h.bindAndValidate(c, &req); err != nil {
		return h.fail(c, err)
	}
	res, err := fn(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(status, res)
}

func list[T any](h *Handler, c echo.Context, fn func(ctx context.Context, search string, page model.PageRequest) (model.Page[T], error)) error {
	page, err := pageRequest(c)
	if err != nil {
		return err
	}
	res, err := fn(c.Request().Context(), c.QueryParam("search"), page)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func get[T any](h *Handler, c echo.Context, fn func(ctx context.Context) (T, error)) error {
	res, err := fn(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) remove(c echo.Context, fn func(ctx context.Context) error) error {
	if err := fn(c.Request().Context()); err != nil {
		return h.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// bookPath resolves :bookId and, when withEdition is set, :editionId.
func bookPath(c echo.Context, withEdition bool) (bookID, editionID int64, err error) {
	if bookID, err = pathID(c, "bookId"); err != nil {
		return 0, 0, err
	}
	if withEdition {
		if editionID, err = pathID(c, "editionId"); err != nil {
			return 0, 0, err
		}
	}
	return bookID, editionID, nil
}

func (h *Handler) CreateAuthor(c echo.Context) error {
	return create(h, c, h.librarySvc.CreateAuthor)
}

func (h *Handler) ListAuthors(c echo.Context) error {
	return list(h, c, h.librarySvc.ListAuthors)
}

func (h *Handler) GetAuthor(c echo.Context) error {
	id, err := pathID(c, "authorId")
	if err != nil {
		return err
	}
	return get(h, c, func(ctx context.Context) (model.Author, error) {
		return h.librarySvc.GetAuthor(ctx, id)
	})
}

func (h *Handler) UpdateAuthor(c echo.Context) error {
	id, err := pathID(c, "authorId")
	if err != nil {
		return err
	}
	return update(h, c, func(ctx context.Context, req model.UpdateAuthorRequest) (model.Author, error) {
		return h.librarySvc.UpdateAuthor(ctx, id, req)
	})
}

func (h *Handler) DeleteAuthor(c echo.Context) error {
	id, err := pathID(c, "authorId")
	if err != nil {
		return err
	}
	return h.remove(c, func(ctx context.Context) error {
		return h.librarySvc.DeleteAuthor(ctx, id)
	})
}

func (h *Handler) CreatePublisher(c echo.Context) error {
	return create(h, c, h.librarySvc.CreatePublisher)
}

func (h *Handler) ListPublishers(c echo.Context) error {
	return list(h, c, h.librarySvc.ListPublishers)
}

func (h *Handler) GetPublisher(c echo.Context) error {
	id, err := pathID(c, "publisherId")
	if err != nil {
		return err
	}
	return get(h, c, func(ctx context.Context) (model.Publisher, error) {
		return h.librarySvc.GetPublisher(ctx, id)
	})
}

func (h *Handler) UpdatePublisher(c echo.Context) error {
	id, err := pathID(c, "publisherId")
	if err != nil {
		return err
	}
	return update(h, c, func(ctx context.Context, req model.UpdatePublisherRequest) (model.Publisher, error) {
		return h.librarySvc.UpdatePublisher(ctx, id, req)
	})
}

func (h *Handler) DeletePublisher(c echo.Context) error {
	id, err := pathID(c, "publisherId")
	if err != nil {
		return err
	}
	return h.remove(c, func(ctx context.Context) error {
		return h.librarySvc.DeletePublisher(ctx, id)
	})
}

// CreateBook
// @Summary  Create a book
// @Tags     books
// @Accept   json
// @Produce  json
// @Param    payload  body      model.CreateBookRequest  true  "Book"
// @Success  201      {object}  model.Book
// @Failure  422      {object}  map[string][]string
// @Router   /api/v1/books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	return create(h, c, h.librarySvc.CreateBook)
}

// ListBooks
// @Summary  List books with copy counts
// @Tags     books
// @Produce  json
// @Param    search  query     string  false  "Title or author name"
// @Param    page    query     int     false  "Page, 1-based"
// @Param    size    query     int     false  "Page size, max 1000"
// @Success  200     {object}  model.Page[model.Book]
// @Router   /api/v1/books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	return list(h, c, h.librarySvc.ListBooks)
}

func (h *Handler) GetBook(c echo.Context) error {
	bookID, _, err := bookPath(c, false)
	if err != nil {
		return err
	}
	return get(h, c, func(ctx context.Context) (model.Book, error) {
		return h.librarySvc.GetBook(ctx, bookID)
	})
}

// UpdateBook
// @Summary  Partially update a book
// @Tags     books
// @Accept   json
// @Produce  json
// @Param    bookId   path      int                      true  "Book id"
// @Param    payload  body      model.UpdateBookRequest  true  "Fields to change"
// @Success  200      {object}  model.Book
// @Failure  404      {object}  echo.HTTPError
// @Failure  422      {object}  map[string][]string
// @Router   /api/v1/books/{bookId} [patch]
func (h *Handler) UpdateBook(c echo.Context) error {
	bookID, _, err := bookPath(c, false)
	if err != nil {
		return err
	}
	return update(h, c, func(ctx context.Context, req model.UpdateBookRequest) (model.Book, error) {
		return h.librarySvc.UpdateBook(ctx, bookID, req)
	})
}

func (h *Handler) DeleteBook(c echo.Context) error {
	bookID, _, err := bookPath(c, false)
	if err != nil {
		return err
	}
	return h.remove(c, func(ctx context.Context) error {
		return h.librarySvc.DeleteBook(ctx, bookID)
	})
}

func (h *Handler) CreateEdition(c echo.Context) error {
	bookID, _, err := bookPath(c, false)
	if err != nil {
		return err
	}
	return create(h, c, func(ctx context.Context, req model.CreateEditionRequest) (model.BookEdition, error) {
		return h.librarySvc.CreateEdition(ctx, bookID, req)
	})
}

func (h *Handler) ListEditions(c echo.Context) error {
	bookID, _, err := bookPath(c, false)
	if err != nil {
		return err
	}
	return list(h, c, func(ctx context.Context, search string, page model.PageRequest) (model.Page[model.BookEdition], error) {
		return h.librarySvc.ListEditions(ctx, bookID, search, page)
	})
}

func (h *Handler) GetEdition(c echo.Context) error {
	bookID, editionID, err := bookPath(c, true)
	if err != nil {
		return err
	}
	return get(h, c, func(ctx context.Context) (model.BookEdition, error) {
		return h.librarySvc.GetEdition(ctx, bookID, editionID)
	})
}

func (h *Handler) UpdateEdition(c echo.Context) error {
	bookID, editionID, err := bookPath(c, true)
	if err != nil {
		return err
	}
	return update(h, c, func(ctx context.Context, req model.UpdateEditionRequest) (model.BookEdition, error) {
		return h.librarySvc.UpdateEdition(ctx, bookID, editionID, req)
	})
}

func (h *Handler) DeleteEdition(c echo.Context) error {
	bookID, editionID, err := bookPath(c, true)
	if err != nil {
		return err
	}
	return h.remove(c, func(ctx context.Context) error {
		return h.librarySvc.DeleteEdition(ctx, bookID, editionID)
	})
}

func (h *Handler) CreateCopy(c echo.Context) error {
	bookID, editionID, err := bookPath(c, true)
	if err != nil {
		return err
	}
	return create(h, c, func(ctx context.Context, req model.CreateCopyRequest) (model.BookCopy, error) {
		return h.librarySvc.CreateCopy(ctx, bookID, editionID, req)
	})
}

func (h *Handler) ListCopies(c echo.Context) error {
	bookID, editionID, err := bookPath(c, true)
	if err != nil {
		return err
	}
	return list(h, c, func(ctx context.Context, search string, page model.PageRequest) (model.Page[model.BookCopy], error) {
		return h.librarySvc.ListCopies(ctx, bookID, editionID, search, page)
	})
}

func (h *Handler) GetCopy(c echo.Context) error {
	bookID, editionID, err := bookPath(c, true)
	if err != nil {
		return err
	}
	copyID, err := pathID(c, "copyId")
	if err != nil {
		return err
	}
	return get(h, c, func(ctx context.Context) (model.BookCopy, error) {
		return h.librarySvc.GetCopy(ctx, bookID, editionID, copyID)
	})
}

func (h *Handler) DeleteCopy(c echo.Context) error {
	bookID, editionID, err := bookPath(c, true)
	if err != nil {
		return err
	}
	copyID, err := pathID(c, "copyId")
	if err != nil {
		return err
	}
	return h.remove(c, func(ctx context.Context) error {
		return h.librarySvc.DeleteCopy(ctx, bookID, editionID, copyID)
	})
}

// CreateVisitor
// @Summary  Register a visitor
// @Tags     visitors
// @Accept   json
// @Produce  json
// @Param    payload  body      model.CreateVisitorRequest  true  "Visitor"
// @Success  201      {object}  model.Visitor
// @Failure  422      {object}  map[string][]string
// @Router   /api/v1/visitors [post]
func (h *Handler) CreateVisitor(c echo.Context) error {
	return create(h, c, h.librarySvc.CreateVisitor)
}

func (h *Handler) ListVisitors(c echo.Context) error {
	return list(h, c, h.librarySvc.ListVisitors)
}

func (h *Handler) GetVisitor(c echo.Context) error {
	identifier := c.Param("identifier")
	return get(h, c, func(ctx context.Context) (model.Visitor, error) {
		return h.librarySvc.GetVisitor(ctx, identifier)
	})
}

// UpdateVisitor only toggles is_active; other visitor fields are immutable here.
func (h *Handler) UpdateVisitor(c echo.Context) error {
	identifier := c.Param("identifier")
	var req model.UpdateVisitorRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return h.fail(c, err)
	}
	visitor, err := h.librarySvc.UpdateVisitor(c.Request().Context(), identifier, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, visitor)
}
