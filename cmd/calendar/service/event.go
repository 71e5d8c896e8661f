package service

import (
	"calendar-backend/cmd/calendar/model"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gocarina/gocsv"
	"github.com/goforj/godump"
)

type IEventRepo interface {
	CreateEvent(ctx context.Context, name string, date time.Time) (model.Event, error)
	CreateEvents(ctx context.Context, events []model.Event) ([]model.Event, error)
	ListEvents(ctx context.Context) ([]model.Event, error)
	GetEventByID(ctx context.Context, id uint) (model.Event, error)
	ListEventsByDateRange(ctx context.Context, start, end time.Time) ([]model.Event, error)
	ListEventsByDate(ctx context.Context, date time.Time) ([]model.Event, error)
	UpdateEvent(ctx context.Context, id uint, name string, date time.Time) (model.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
}

type EventService struct {
	eventRepo IEventRepo
	validate  *validator.Validate
	location  *time.Location
	now       func() time.Time
	debug     bool
}

type Option func(*EventService)

// WithLocation sets the location whose calendar decides what "today" is.
func WithLocation(loc *time.Location) Option {
	return func(s *EventService) {
		s.location = loc
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *EventService) {
		s.now = now
	}
}

// WithDebug dumps parsed import rows to stdout.
func WithDebug(debug bool) Option {
	return func(s *EventService) {
		s.debug = debug
	}
}

func NewEventService(eventRepo IEventRepo, opts ...Option) *EventService {
	s := &EventService{
		eventRepo: eventRepo,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		location:  time.Local,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateEvent turns a bound request into an EventInput or a *model.ValidationError.
// A name of only whitespace is rejected, any other name is kept exactly as sent.
func (s *EventService) ValidateEvent(req model.EventRequest) (model.EventInput, error) {
	name := req.Name
	req.Name = strings.TrimSpace(req.Name)
	req.Date = strings.TrimSpace(req.Date)

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return model.EventInput{}, err
		}
		switch verrs[0].Field() {
		case "Date":
			return model.EventInput{}, &model.ValidationError{Field: "date", Message: model.MsgDateRequired}
		default:
			return model.EventInput{}, &model.ValidationError{Field: "event", Message: model.MsgNameRequired}
		}
	}

	date, err := model.ParseDate(req.Date)
	if err != nil {
		return model.EventInput{}, &model.ValidationError{Field: "date", Message: model.MsgDateRequired}
	}

	return model.EventInput{
		Name: name,
		Date: date,
	}, nil
}

func (s *EventService) CreateEvent(ctx context.Context, req model.EventRequest) (model.CreateEventResponse, error) {
	in, err := s.ValidateEvent(req)
	if err != nil {
		return model.CreateEventResponse{}, err
	}

	event, err := s.eventRepo.CreateEvent(ctx, in.Name, in.Date)
	if err != nil {
		return model.CreateEventResponse{}, fmt.Errorf("create event: %w", err)
	}

	return model.CreateEventResponse{
		Message: model.MsgEventAdded,
		Event:   event.Name,
		Date:    model.FormatDate(event.Date),
	}, nil
}

// ListEvents returns every event, or only those inside the inclusive range when both ends
// are given. An empty range is reported as model.ErrEventNotFound.
func (s *EventService) ListEvents(ctx context.Context, q model.EventRangeQuery) ([]model.EventResponse, error) {
	if !q.HasRange() {
		events, err := s.eventRepo.ListEvents(ctx)
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		return model.NewEventResponses(events), nil
	}

	start, err := parseRangeBound("start_time", q.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseRangeBound("end_time", q.EndTime)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListEventsByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("list events by date range: %w", err)
	}
	if len(events) == 0 {
		return nil, model.ErrEventNotFound
	}

	return model.NewEventResponses(events), nil
}

func parseRangeBound(field, value string) (time.Time, error) {
	d, err := model.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &model.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("The %s parameter must be a date! The correct format is YYYY-MM-DD!", field),
		}
	}
	return d, nil
}

// Today returns the current calendar date in the service location.
func (s *EventService) Today() time.Time {
	return model.DateOf(s.now().In(s.location))
}

func (s *EventService) TodayEvents(ctx context.Context) ([]model.EventResponse, error) {
	events, err := s.eventRepo.ListEventsByDate(ctx, s.Today())
	if err != nil {
		return nil, fmt.Errorf("list today's events: %w", err)
	}
	return model.NewEventResponses(events), nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (model.EventResponse, error) {
	event, err := s.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			return model.EventResponse{}, model.ErrEventNotFound
		}
		return model.EventResponse{}, fmt.Errorf("get event: %w", err)
	}
	return model.NewEventResponse(event), nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id uint, req model.EventRequest) (model.BaseResponse, error) {
	in, err := s.ValidateEvent(req)
	if err != nil {
		return model.BaseResponse{}, err
	}

	if _, err := s.eventRepo.UpdateEvent(ctx, id, in.Name, in.Date); err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			return model.BaseResponse{}, model.ErrEventNotFound
		}
		return model.BaseResponse{}, fmt.Errorf("update event: %w", err)
	}

	return model.BaseResponse{Message: model.MsgEventUpdated}, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id uint) (model.BaseResponse, error) {
	if err := s.eventRepo.DeleteEvent(ctx, id); err != nil {
		if errors.Is(err, model.ErrEventNotFound) {
			return model.BaseResponse{}, model.ErrEventNotFound
		}
		return model.BaseResponse{}, fmt.Errorf("delete event: %w", err)
	}
	return model.BaseResponse{Message: model.MsgEventDeleted}, nil
}

// ImportEvents reads an event,date CSV document and stores all rows in one batch.
// A single invalid row rejects the whole document.
func (s *EventService) ImportEvents(ctx context.Context, r io.Reader) ([]model.EventResponse, error) {
	var rows []*model.EventCSV
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []model.EventResponse{}, nil
		}
		return nil, &model.ValidationError{Field: "csvfile", Message: err.Error()}
	}

	if s.debug {
		godump.Dump(rows)
	}

	events := make([]model.Event, 0, len(rows))
	for i, row := range rows {
		in, err := s.ValidateEvent(model.EventRequest{Name: row.Event, Date: row.Date})
		if err != nil {
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				return nil, &model.ValidationError{
					Field:   verr.Field,
					Message: fmt.Sprintf("row %d: %s", i+1, verr.Message),
				}
			}
			return nil, err
		}
		events = append(events, model.Event{Name: in.Name, Date: in.Date})
	}

	created, err := s.eventRepo.CreateEvents(ctx, events)
	if err != nil {
		return nil, fmt.Errorf("import events: %w", err)
	}

	return model.NewEventResponses(created), nil
}

func (s *EventService) ExportEvents(ctx context.Context, w io.Writer) error {
	events, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		return fmt.Errorf("export events: %w", err)
	}

	rows := make([]model.EventExportCSV, 0, len(events))
	for _, e := range events {
		rows = append(rows, model.NewEventExportCSV(e))
	}

	return gocsv.Marshal(&rows, w)
}
