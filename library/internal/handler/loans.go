package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/bookaloo/library/internal/model"
)

// Lend
// @Summary      Lend a book copy
// @Description  Opens a loan for an available copy. Due date defaults to 14 days from now.
// @Tags         loans
// @Accept       json
// @Produce      json
// @Param        payload  body      model.LendRequest  true  "Loan"
// @Success      201      {object}  model.Loan
// @Failure      400      {object}  echo.HTTPError
// @Failure      422      {object}  map[string][]string
// @Router       /api/v1/loans [post]
func (h *Handler) Lend(c echo.Context) error {
	var req model.LendRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	loan, err := h.librarySvc.Lend(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, loan)
}

// Return
// @Summary      Return a book copy
// @Description  Closes the open loan of the copy and optionally records its condition.
// @Tags         loans
// @Accept       json
// @Produce      json
// @Param        payload  body      model.ReturnRequest  true  "Return"
// @Success      200      {object}  model.Loan
// @Failure      400      {object}  echo.HTTPError
// @Failure      422      {object}  map[string][]string
// @Router       /api/v1/returns [post]
func (h *Handler) Return(c echo.Context) error {
	var req model.ReturnRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	loan, err := h.librarySvc.Return(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, loan)
}

// ListLoans
// @Summary      List loans
// @Description  Newest first.
// @Tags         loans
// @Produce      json
// @Param        visitor_identifier    query  string  false  "Visitor identifier"
// @Param        book_copy_identifier  query  string  false  "Book copy identifier"
// @Param        open                  query  bool    false  "Only open (true) or closed (false) loans"
// @Param        page                  query  int     false  "Page, 1-based"
// @Param        size                  query  int     false  "Page size, max 1000"
// @Success      200  {object}  model.Page[model.Loan]
// @Failure      400  {object}  echo.HTTPError
// @Router       /api/v1/loans [get]
func (h *Handler) ListLoans(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return err
	}
	filter := model.LoanFilter{
		VisitorIdentifier:  c.QueryParam("visitor_identifier"),
		BookCopyIdentifier: c.QueryParam("book_copy_identifier"),
	}
	if openParam := c.QueryParam("open"); openParam != "" {
		open, err := strconv.ParseBool(openParam)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "open is invalid")
		}
		filter.Open = &open
	}
	loans, err := h.librarySvc.ListLoans(c.Request().Context(), filter, page)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, loans)
}

// GetLoan
// @Summary      Get a loan
// @Tags         loans
// @Produce      json
// @Param        loanId  path      int  true  "Loan id"
// @Success      200     {object}  model.Loan
// @Failure      404     {object}  echo.HTTPError
// @Router       /api/v1/loans/{loanId} [get]
func (h *Handler) GetLoan(c echo.Context) error {
	id, err := pathID(c, "loanId")
	if err != nil {
		return err
	}
	loan, err := h.librarySvc.GetLoan(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, loan)
}
