package apis

import (
	"bytes"
	"calendar-backend/cmd/calendar/model"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type IEventService interface {
	CreateEvent(ctx context.Context, req model.EventRequest) (model.CreateEventResponse, error)
	ListEvents(ctx context.Context, q model.EventRangeQuery) ([]model.EventResponse, error)
	TodayEvents(ctx context.Context) ([]model.EventResponse, error)
	GetEvent(ctx context.Context, id uint) (model.EventResponse, error)
	UpdateEvent(ctx context.Context, id uint, req model.EventRequest) (model.BaseResponse, error)
	DeleteEvent(ctx context.Context, id uint) (model.BaseResponse, error)
	ImportEvents(ctx context.Context, r io.Reader) ([]model.EventResponse, error)
	ExportEvents(ctx context.Context, w io.Writer) error
}

type EventAPI struct {
	eventService IEventService
	logger       zerolog.Logger
}

func NewEventAPI(eventService IEventService, logger zerolog.Logger) *EventAPI {

	return &EventAPI{
		eventService: eventService,
		logger:       logger,
	}
}

func (a *EventAPI) Setup(g *echo.Group) {
	g.POST("/event", a.createEvent)
	g.GET("/event", a.listEvents)
	g.GET("/event/today", a.todayEvents)
	g.POST("/event/import", a.importEvents)
	g.GET("/event/export", a.exportEvents)
	g.GET("/event/:id", a.getEvent)
	g.PUT("/event/:id", a.updateEvent)
	g.DELETE("/event/:id", a.deleteEvent)
}

func (a *EventAPI) createEvent(c echo.Context) error {

	ctx := c.Request().Context()

	var req model.EventRequest
	if err := c.Bind(&req); err != nil {
		return a.badRequest(c, err)
	}

	resp, err := a.eventService.CreateEvent(ctx, req)
	if err != nil {
		return a.respondError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (a *EventAPI) listEvents(c echo.Context) error {

	ctx := c.Request().Context()

	var q model.EventRangeQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return a.badRequest(c, err)
	}

	events, err := a.eventService.ListEvents(ctx, q)
	if err != nil {
		return a.respondError(c, err)
	}

	return c.JSON(http.StatusOK, events)
}

func (a *EventAPI) todayEvents(c echo.Context) error {

	ctx := c.Request().Context()

	events, err := a.eventService.TodayEvents(ctx)
	if err != nil {
		return a.respondError(c, err)
	}

	return c.JSON(http.StatusOK, events)
}

func (a *EventAPI) getEvent(c echo.Context) error {

	ctx := c.Request().Context()

	id, ok := eventID(c)
	if !ok {
		return a.respondError(c, model.ErrEventNotFound)
	}

	event, err := a.eventService.GetEvent(ctx, id)
	if err != nil {
		return a.respondError(c, err)
	}

	return c.JSON(http.StatusOK, event)
}

func (a *EventAPI) updateEvent(c echo.Context) error {

	ctx := c.Request().Context()

	id, ok := eventID(c)
	if !ok {
		return a.respondError(c, model.ErrEventNotFound)
	}

	var req model.EventRequest
	if err := c.Bind(&req); err != nil {
		return a.badRequest(c, err)
	}

	resp, err := a.eventService.UpdateEvent(ctx, id, req)
	if err != nil {
		return a.respondError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// deleteEvent answers 204, which forbids a body, so the confirmation message is only logged.
func (a *EventAPI) deleteEvent(c echo.Context) error {

	ctx := c.Request().Context()

	id, ok := eventID(c)
	if !ok {
		return a.respondError(c, model.ErrEventNotFound)
	}

	resp, err := a.eventService.DeleteEvent(ctx, id)
	if err != nil {
		return a.respondError(c, err)
	}

	a.logger.Info().Uint("event_id", id).Msg(resp.Message)

	return c.NoContent(http.StatusNoContent)
}

func (a *EventAPI) importEvents(c echo.Context) error {

	ctx := c.Request().Context()

	csvfile, err := c.FormFile("csvfile")
	if err != nil {
		return a.badRequest(c, err)
	}

	cf, err := csvfile.Open()
	if err != nil {
		return a.badRequest(c, err)
	}

	defer cf.Close()

	events, err := a.eventService.ImportEvents(ctx, cf)
	if err != nil {
		return a.respondError(c, err)
	}

	return c.JSON(
		http.StatusOK,
		model.BaseResponse{
			Message: model.MsgEventAdded,
			Data:    events,
		},
	)
}

func (a *EventAPI) exportEvents(c echo.Context) error {

	ctx := c.Request().Context()

	// Buffer so a storage failure can still be reported with a status code.
	var buf bytes.Buffer
	if err := a.eventService.ExportEvents(ctx, &buf); err != nil {
		return a.respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="events.csv"`)

	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// eventID accepts 1..MaxInt64, the range of the bigint id column.
func eventID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 63)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (a *EventAPI) badRequest(c echo.Context, err error) error {

	msg := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	return c.JSON(
		http.StatusBadRequest,
		model.BaseResponse{
			Message: msg,
		},
	)
}

// respondError maps the service error taxonomy onto status codes.
func (a *EventAPI) respondError(c echo.Context, err error) error {

	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(
			http.StatusBadRequest,
			model.BaseResponse{
				Message: verr.Message,
			},
		)
	case errors.Is(err, model.ErrEventNotFound):
		return c.JSON(
			http.StatusNotFound,
			model.BaseResponse{
				Message: model.MsgEventNonExistent,
			},
		)
	}

	a.logger.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("request failed")

	return c.JSON(
		http.StatusInternalServerError,
		model.BaseResponse{
			Message: err.Error(),
		},
	)
}
