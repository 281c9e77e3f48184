package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookaloo/stats/internal/handler"
	"github.com/Astemirdum/bookaloo/stats/internal/model"

	service_mocks "github.com/Astemirdum/bookaloo/stats/internal/handler/mocks"
)

func TestHandler_GetStats(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockStatsService)

	tests := []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "ok",
			target: "/api/v1/stats?visitor_identifier=V00001",
			mockBehavior: func(r *service_mocks.MockStatsService) {
				r.EXPECT().GetStats(gomock.Any(), "V00001").Return([]model.VisitorStats{{
					VisitorIdentifier: "V00001",
					Loans:             3,
					Returns:           2,
					OpenLoans:         1,
					LastActivity:      time.Date(2020, 1, 9, 12, 0, 0, 0, time.UTC),
				}}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"visitor_identifier":"V00001","loans":3,"returns":2,"open_loans":1,"last_activity":"2020-01-09T12:00:00Z"}]`,
			},
		},
		{
			name:   "ok. empty",
			target: "/api/v1/stats",
			mockBehavior: func(r *service_mocks.MockStatsService) {
				r.EXPECT().GetStats(gomock.Any(), "").Return([]model.VisitorStats{}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[]`,
			},
		},
		{
			name:   "err. internal",
			target: "/api/v1/stats",
			mockBehavior: func(r *service_mocks.MockStatsService) {
				r.EXPECT().GetStats(gomock.Any(), "").Return(nil, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockStatsService(c)
			h := handler.New(svc, zap.NewNop())

			r := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			h.NewRouter().ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
