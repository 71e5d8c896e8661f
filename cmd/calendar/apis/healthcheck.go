package apis

import (
	"calendar-backend/cmd/calendar/model"
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

type IPinger interface {
	PingContext(ctx context.Context) error
}

type HealthCheckAPI struct {
	db IPinger
}

func NewHealthCheckAPI(db IPinger) *HealthCheckAPI {
	return &HealthCheckAPI{
		db: db,
	}
}

func (a *HealthCheckAPI) Setup(g *echo.Group) {
	g.GET("/healthz", a.healthCheck)
}

func (a *HealthCheckAPI) healthCheck(c echo.Context) error {

	err := a.db.PingContext(c.Request().Context())
	if err != nil {
		return c.JSON(
			http.StatusInternalServerError,
			model.BaseResponse{
				Message: err.Error(),
			},
		)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: "healthy",
		},
	)
}
