package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookaloo/library/internal/errs"
	"github.com/Astemirdum/bookaloo/library/internal/handler"
	"github.com/Astemirdum/bookaloo/library/internal/model"

	service_mocks "github.com/Astemirdum/bookaloo/library/internal/handler/mocks"
)

type request struct {
	method, target, body string
}

type response struct {
	expectedCode int
	expectedBody string
}

type testCase struct {
	name         string
	mockBehavior func(r *service_mocks.MockLibraryService)
	request      request
	response     response
}

func run(t *testing.T, tests []testCase) {
	t.Helper()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockLibraryService(c)
			h := handler.New(svc, zap.NewNop())
			e := h.NewRouter()

			r := httptest.NewRequest(tt.request.method, tt.request.target, http.NoBody)
			if tt.request.body != "" {
				r = httptest.NewRequest(tt.request.method, tt.request.target, strings.NewReader(tt.request.body))
			}
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			if tt.mockBehavior != nil {
				tt.mockBehavior(svc)
			}
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

var (
	loanDate = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	dueDate  = time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC)
	birth    = 1828

	testLoan = model.Loan{
		ID: 1,
		Book: model.LoanBook{
			BookCopyIdentifier: "C00001",
			ISBN:               "9780140447934",
			Author:             model.LoanAuthor{ID: 1, FullName: "Leo Tolstoy", BirthYear: &birth},
		},
		Visitor: model.LoanVisitor{
			Identifier: "V00001",
			FullName:   "Anna Karenina",
			Email:      "anna@example.com",
		},
		LoanDate: loanDate,
		DueDate:  dueDate,
	}
	testLoanJSON = `{"id":1,"book":{"book_copy_identifier":"C00001","isbn":"9780140447934","author":{"id":1,"full_name":"Leo Tolstoy","birth_year":1828}},` +
		`"visitor":{"identifier":"V00001","full_name":"Anna Karenina","email":"anna@example.com","phone_number":""},` +
		`"loan_date":"2020-01-01T00:00:00Z","due_date":"2020-01-10T00:00:00Z","return_date":null}`
)

func TestHandler_Lend(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Lend(gomock.Any(), model.LendRequest{
						BookCopyIdentifier: "C00001",
						VisitorIdentifier:  "V00001",
						DueDate:            &dueDate,
					}).
					Return(testLoan, nil)
			},
			request: request{
				method: http.MethodPost,
				target: "/api/v1/loans",
				body:   `{"book_copy_identifier":"C00001","visitor_identifier":"V00001","due_date":"2020-01-10T00:00:00Z"}`,
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: testLoanJSON,
			},
		},
		{
			name: "err. field errors",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Lend(gomock.Any(), model.LendRequest{BookCopyIdentifier: "C00001", VisitorIdentifier: "V00001"}).
					Return(model.Loan{}, errs.NewFieldErrors().
						Add("book_copy_identifier", "Book copy with identifier=C00001 is not available.").
						Add("visitor_identifier", "Visitor with identifier=V00001 is not active."))
			},
			request: request{
				method: http.MethodPost,
				target: "/api/v1/loans",
				body:   `{"book_copy_identifier":"C00001","visitor_identifier":"V00001"}`,
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"book_copy_identifier":["Book copy with identifier=C00001 is not available."],"visitor_identifier":["Visitor with identifier=V00001 is not active."]}`,
			},
		},
		{
			name: "err. not found is a field error",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Lend(gomock.Any(), gomock.Any()).
					Return(model.Loan{}, errs.NewFieldErrors().NotFound("visitor_identifier", "NOPE01"))
			},
			request: request{
				method: http.MethodPost,
				target: "/api/v1/loans",
				body:   `{"book_copy_identifier":"C00001","visitor_identifier":"NOPE01"}`,
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"visitor_identifier":["Object with identifier=NOPE01 does not exist."]}`,
			},
		},
		{
			name: "err. invalid body",
			request: request{
				method: http.MethodPost,
				target: "/api/v1/loans",
				body:   `{"due_date":"tomorrow"}`,
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid body"}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Lend(gomock.Any(), gomock.Any()).
					Return(model.Loan{}, errors.New("db internal"))
			},
			request: request{
				method: http.MethodPost,
				target: "/api/v1/loans",
				body:   `{"book_copy_identifier":"C00001","visitor_identifier":"V00001"}`,
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	})
}

func TestHandler_Return(t *testing.T) {
	t.Parallel()
	poor := model.ConditionPoor
	returned := testLoan
	returnDate := dueDate.Add(-24 * time.Hour)
	returned.ReturnDate = &returnDate

	run(t, []testCase{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Return(gomock.Any(), model.ReturnRequest{BookCopyIdentifier: "C00001", BookCopyCondition: &poor}).
					Return(returned, nil)
			},
			request: request{
				method: http.MethodPost,
				target: "/api/v1/returns",
				body:   `{"book_copy_identifier":"C00001","book_copy_condition":"Poor"}`,
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: strings.Replace(testLoanJSON, `"return_date":null`, `"return_date":"2020-01-09T00:00:00Z"`, 1),
			},
		},
		{
			name: "err. already returned",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					Return(gomock.Any(), model.ReturnRequest{BookCopyIdentifier: "C00001"}).
					Return(model.Loan{}, errs.NewFieldErrors().Add("book_copy_identifier", errs.MsgAlreadyReturned))
			},
			request: request{
				method: http.MethodPost,
				target: "/api/v1/returns",
				body:   `{"book_copy_identifier":"C00001","book_copy_condition":null}`,
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"book_copy_identifier":["That book copy has already been returned."]}`,
			},
		},
	})
}

func TestHandler_ListLoans(t *testing.T) {
	t.Parallel()
	open := true
	next := 3
	prev := 1

	run(t, []testCase{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ListLoans(gomock.Any(),
						model.LoanFilter{VisitorIdentifier: "V00001", Open: &open},
						model.PageRequest{Page: 2, Size: 1}).
					Return(model.Page[model.Loan]{Count: 3, Next: &next, Previous: &prev, Results: []model.Loan{testLoan}}, nil)
			},
			request: request{
				method: http.MethodGet,
				target: "/api/v1/loans?visitor_identifier=V00001&open=true&page=2&size=1",
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"count":3,"next":3,"previous":1,"results":[` + testLoanJSON + `]}`,
			},
		},
		{
			name: "ok. size capped",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ListLoans(gomock.Any(), model.LoanFilter{}, model.PageRequest{Page: 1, Size: model.MaxPageSize}).
					Return(model.Page[model.Loan]{Results: []model.Loan{}}, nil)
			},
			request: request{
				method: http.MethodGet,
				target: "/api/v1/loans?size=5000",
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"count":0,"next":null,"previous":null,"results":[]}`,
			},
		},
		{
			name: "err. page",
			request: request{
				method: http.MethodGet,
				target: "/api/v1/loans?page=first",
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"page is invalid"}`,
			},
		},
		{
			name: "err. page out of range",
			request: request{
				method: http.MethodGet,
				target: "/api/v1/loans?page=9223372036854775807",
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"page is invalid"}`,
			},
		},
		{
			name: "err. open",
			request: request{
				method: http.MethodGet,
				target: "/api/v1/loans?open=maybe",
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"open is invalid"}`,
			},
		},
	})
}

func TestHandler_Catalog(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name: "create book",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateBook(gomock.Any(), model.CreateBookRequest{Title: "War and Peace", AuthorID: 1}).
					Return(model.Book{
						ID:          1,
						Title:       "War and Peace",
						Author:      model.Author{ID: 1, FullName: "Leo Tolstoy"},
						CopiesCount: model.CopiesCount{Total: 2, Available: 1},
					}, nil)
			},
			request: request{
				method: http.MethodPost,
				target: "/api/v1/books",
				body:   `{"title":"War and Peace","author":1}`,
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"title":"War and Peace","author":{"id":1,"full_name":"Leo Tolstoy","birth_year":null,"description":""},"copies_count":{"total":2,"available":1}}`,
			},
		},
		{
			name: "get book. not found",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().GetBook(gomock.Any(), int64(42)).Return(model.Book{}, errs.ErrNotFound)
			},
			request: request{method: http.MethodGet, target: "/api/v1/books/42"},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Not found."}`,
			},
		},
		{
			name:    "get copy. malformed id",
			request: request{method: http.MethodGet, target: "/api/v1/books/1/editions/2/copies/abc"},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Not found."}`,
			},
		},
		{
			name: "get copy",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().GetCopy(gomock.Any(), int64(1), int64(2), int64(3)).Return(model.BookCopy{
					ID: 3, Identifier: "C00003", BookEditionID: 2, Condition: model.ConditionGood, IsAvailable: true,
				}, nil)
			},
			request: request{method: http.MethodGet, target: "/api/v1/books/1/editions/2/copies/3"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":3,"identifier":"C00003","book_edition":2,"condition":"Good","is_available":true}`,
			},
		},
		{
			name: "delete author",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().DeleteAuthor(gomock.Any(), int64(7)).Return(nil)
			},
			request:  request{method: http.MethodDelete, target: "/api/v1/authors/7"},
			response: response{expectedCode: http.StatusNoContent},
		},
		{
			name: "delete author. protected",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().DeleteAuthor(gomock.Any(), int64(1)).Return(errors.Wrap(errs.ErrProtected, "books_author_id_fkey"))
			},
			request: request{method: http.MethodDelete, target: "/api/v1/authors/1"},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"Cannot delete: the object is referenced by other objects."}`,
			},
		},
		{
			name: "create visitor. invalid",
			request: request{
				method: http.MethodPost,
				target: "/api/v1/visitors",
				body:   `{"email":"nope","phone_number":"+1234567890123456"}`,
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"email":["Enter a valid email address."],"full_name":["This field is required."],"identifier":["This field is required."],"phone_number":["Ensure this field has no more than 15 characters."]}`,
			},
		},
		{
			name: "create edition. missing publication date",
			request: request{
				method: http.MethodPost,
				target: "/api/v1/books/1/editions",
				body:   `{"publisher":1,"isbn":"9780140447934"}`,
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"publication_date":["This field is required."]}`,
			},
		},
		{
			name: "create edition",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateEdition(gomock.Any(), int64(1), model.CreateEditionRequest{
						PublisherID:     1,
						PublicationDate: model.NewDate(time.Date(1869, 1, 1, 0, 0, 0, 0, time.UTC)),
						ISBN:            "9780140447934",
					}).
					Return(model.BookEdition{
						ID: 5, BookID: 1, PublisherID: 1,
						PublicationDate: model.NewDate(time.Date(1869, 1, 1, 0, 0, 0, 0, time.UTC)),
						ISBN:            "9780140447934",
					}, nil)
			},
			request: request{
				method: http.MethodPost,
				target: "/api/v1/books/1/editions",
				body:   `{"publisher":1,"publication_date":"1869-01-01","isbn":"9780140447934"}`,
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":5,"book":1,"publisher":1,"publication_date":"1869-01-01","isbn":"9780140447934"}`,
			},
		},
		{
			name: "create copy. duplicate",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateCopy(gomock.Any(), int64(1), int64(2), model.CreateCopyRequest{Identifier: "C00001"}).
					Return(model.BookCopy{}, errs.NewFieldErrors().Add("identifier", "Book copy with this identifier already exists."))
			},
			request: request{
				method: http.MethodPost,
				target: "/api/v1/books/1/editions/2/copies",
				body:   `{"identifier":"C00001"}`,
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"identifier":["Book copy with this identifier already exists."]}`,
			},
		},
		{
			name: "create copy. unmapped constraint",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					CreateCopy(gomock.Any(), int64(1), int64(2), gomock.Any()).
					Return(model.BookCopy{}, &errs.ConstraintError{Code: "23514", Constraint: "book_copies_condition_check"})
			},
			request: request{
				method: http.MethodPost,
				target: "/api/v1/books/1/editions/2/copies",
				body:   `{"identifier":"C00001","condition":"Good"}`,
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"non_field_errors":["Constraint \"book_copies_condition_check\" violated."]}`,
			},
		},
		{
			name: "deactivate visitor",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				inactive := false
				r.EXPECT().
					UpdateVisitor(gomock.Any(), "V00001", model.UpdateVisitorRequest{IsActive: &inactive}).
					Return(model.Visitor{ID: 1, Identifier: "V00001", FullName: "Anna Karenina", Email: "anna@example.com"}, nil)
			},
			request: request{
				method: http.MethodPatch,
				target: "/api/v1/visitors/V00001",
				body:   `{"is_active":false}`,
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"identifier":"V00001","full_name":"Anna Karenina","email":"anna@example.com","phone_number":"","is_active":false}`,
			},
		},
		{
			name: "update book",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				title := "Anna Karenina"
				r.EXPECT().
					UpdateBook(gomock.Any(), int64(1), model.UpdateBookRequest{Title: &title}).
					Return(model.Book{ID: 1, Title: title, Author: model.Author{ID: 1, FullName: "Leo Tolstoy"}}, nil)
			},
			request: request{
				method: http.MethodPatch,
				target: "/api/v1/books/1",
				body:   `{"title":"Anna Karenina"}`,
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":1,"title":"Anna Karenina","author":{"id":1,"full_name":"Leo Tolstoy","birth_year":null,"description":""},"copies_count":{"total":0,"available":0}}`,
			},
		},
		{
			name: "update author. blank name",
			request: request{
				method: http.MethodPatch,
				target: "/api/v1/authors/1",
				body:   `{"full_name":""}`,
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"full_name":["This field may not be blank."]}`,
			},
		},
		{
			name: "update publisher. not found",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().UpdatePublisher(gomock.Any(), int64(9), gomock.Any()).Return(model.Publisher{}, errs.ErrNotFound)
			},
			request: request{
				method: http.MethodPatch,
				target: "/api/v1/publishers/9",
				body:   `{"address":"Moscow"}`,
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"Not found."}`,
			},
		},
		{
			name: "update edition. unknown publisher",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				publisher := int64(99)
				r.EXPECT().
					UpdateEdition(gomock.Any(), int64(1), int64(2), model.UpdateEditionRequest{PublisherID: &publisher}).
					Return(model.BookEdition{}, errs.NewFieldErrors().Add("publisher", `Invalid pk "99" - object does not exist.`))
			},
			request: request{
				method: http.MethodPatch,
				target: "/api/v1/books/1/editions/2",
				body:   `{"publisher":99}`,
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"publisher":["Invalid pk \"99\" - object does not exist."]}`,
			},
		},
		{
			name: "list authors",
			mockBehavior: func(r *service_mocks.MockLibraryService) {
				r.EXPECT().
					ListAuthors(gomock.Any(), "tolstoy", model.PageRequest{Page: 1, Size: model.DefaultPageSize}).
					Return(model.Page[model.Author]{Count: 1, Results: []model.Author{{ID: 1, FullName: "Leo Tolstoy"}}}, nil)
			},
			request: request{method: http.MethodGet, target: "/api/v1/authors?search=tolstoy"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"count":1,"next":null,"previous":null,"results":[{"id":1,"full_name":"Leo Tolstoy","birth_year":null,"description":""}]}`,
			},
		},
	})
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name:    "ok",
			request: request{method: http.MethodGet, target: "/manage/health"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: "OK",
			},
		},
	})
}
