package apis

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}

func TestHealthCheckAPI(t *testing.T) {
	testCases := []struct {
		name           string
		pingErr        error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Database reachable",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"healthy"}`,
		},
		{
			name:           "Database unreachable",
			pingErr:        errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"message":"connection refused"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			NewHealthCheckAPI(pingerFunc(func(context.Context) error { return tc.pingErr })).
				Setup(e.Group(""))

			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.JSONEq(t, tc.expectedBody, rec.Body.String())
		})
	}
}
