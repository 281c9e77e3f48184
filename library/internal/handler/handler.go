package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookaloo/library/internal/errs"
	"github.com/Astemirdum/bookaloo/library/internal/model"
	md "github.com/Astemirdum/bookaloo/pkg/middleware"
	"github.com/Astemirdum/bookaloo/pkg/validate"

	_ "github.com/Astemirdum/bookaloo/swagger"
)

type Handler struct {
	librarySvc LibraryService
	log        *zap.Logger
}

func New(librarySvc LibraryService, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		log:        log.Named("handler"),
	}
}

func NewValidator() *validate.CustomValidator {
	return validate.NewCustomValidator(validate.WithCustomType(model.DateValue, model.Date{}))
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPatch, http.MethodPost, http.MethodDelete},
	}))
	e.Validator = NewValidator()

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1",
		middleware.RequestID(),
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/loans", h.Lend)
	api.GET("/loans", h.ListLoans)
	api.GET("/loans/:loanId", h.GetLoan)
	api.POST("/returns", h.Return)

	api.POST("/authors", h.CreateAuthor)
	api.GET("/authors", h.ListAuthors)
	api.GET("/authors/:authorId", h.GetAuthor)
	api.PATCH("/authors/:authorId", h.UpdateAuthor)
	api.DELETE("/authors/:authorId", h.DeleteAuthor)

	api.POST("/publishers", h.CreatePublisher)
	api.GET("/publishers", h.ListPublishers)
	api.GET("/publishers/:publisherId", h.GetPublisher)
	api.PATCH("/publishers/:publisherId", h.UpdatePublisher)
	api.DELETE("/publishers/:publisherId", h.DeletePublisher)

	api.POST("/books", h.CreateBook)
	api.GET("/books", h.ListBooks)
	api.GET("/books/:bookId", h.GetBook)
	api.PATCH("/books/:bookId", h.UpdateBook)
	api.DELETE("/books/:bookId", h.DeleteBook)

	api.POST("/books/:bookId/editions", h.CreateEdition)
	api.GET("/books/:bookId/editions", h.ListEditions)
	api.GET("/books/:bookId/editions/:editionId", h.GetEdition)
	api.PATCH("/books/:bookId/editions/:editionId", h.UpdateEdition)
	api.DELETE("/books/:bookId/editions/:editionId", h.DeleteEdition)

	copies := api.Group("/books/:bookId/editions/:editionId/copies")
	copies.POST("", h.CreateCopy)
	copies.GET("", h.ListCopies)
	copies.GET("/:copyId", h.GetCopy)
	copies.DELETE("/:copyId", h.DeleteCopy)

	api.POST("/visitors", h.CreateVisitor)
	api.GET("/visitors", h.ListVisitors)
	api.GET("/visitors/:identifier", h.GetVisitor)
	api.PATCH("/visitors/:identifier", h.UpdateVisitor)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// fail renders err: field errors as a {"field": ["message"]} map with 422, lookups of
// unknown objects as 404 and protected deletes as 409.
func (h *Handler) fail(c echo.Context, err error) error {
	var (
		httpErr   *echo.HTTPError
		fieldErrs *errs.FieldErrors
		valErrs   validate.Errors
	)
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.As(err, &fieldErrs):
		return c.JSON(http.StatusUnprocessableEntity, fieldErrs.Fields)
	case errors.As(err, &valErrs):
		return c.JSON(http.StatusUnprocessableEntity, valErrs)
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found.")
	case errors.Is(err, errs.ErrProtected):
		return echo.NewHTTPError(http.StatusConflict, "Cannot delete: the object is referenced by other objects.")
	case errors.Is(err, errs.ErrConstraintViolation):
		constraint, _ := errs.Constraint(err)
		return c.JSON(http.StatusUnprocessableEntity, map[string][]string{
			"non_field_errors": {fmt.Sprintf("Constraint %q violated.", constraint)},
		})
	}
	h.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (h *Handler) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	return nil
}

func (h *Handler) bindAndValidate(c echo.Context, req any) error {
	if err := h.bind(c, req); err != nil {
		return err
	}
	return c.Validate(req)
}

func pageRequest(c echo.Context) (model.PageRequest, error) {
	var (
		p   model.PageRequest
		err error
	)
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if p.Page, err = strconv.Atoi(pageParam); err != nil || p.Page < 1 {
			return p, echo.NewHTTPError(http.StatusBadRequest, "page is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if p.Size, err = strconv.Atoi(sizeParam); err != nil || p.Size < 1 {
			return p, echo.NewHTTPError(http.StatusBadRequest, "size is invalid")
		}
	}
	if p = p.Normalize(); !p.InRange() {
		return p, echo.NewHTTPError(http.StatusBadRequest, "page is invalid")
	}
	return p, nil
}

// pathID parses an integer path parameter; a malformed id addresses nothing.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Not found.")
	}
	return id, nil
}
