package model

const (
	MsgEventNonExistent = "The event doesn't exist!"
	MsgEventAdded       = "The event has been added!"
	MsgEventUpdated     = "The event has been updated"
	MsgEventDeleted     = "The event has been deleted!"
	MsgNameRequired     = "The event name is required!"
	MsgDateRequired     = "The event date with the correct format is required! The correct format is YYYY-MM-DD!"
)

type BaseResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

type EventRequest struct {
	Name string `json:"event" form:"event" validate:"required"`
	Date string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
}

type EventRangeQuery struct {
	StartTime string `query:"start_time"`
	EndTime   string `query:"end_time"`
}

// HasRange reports whether both ends of the range were supplied.
func (q EventRangeQuery) HasRange() bool {
	return q.StartTime != "" && q.EndTime != ""
}

type EventResponse struct {
	ID    uint   `json:"id"`
	Event string `json:"event"`
	Date  string `json:"date"`
}

func NewEventResponse(e Event) EventResponse {
	return EventResponse{
		ID:    e.ID,
		Event: e.Name,
		Date:  FormatDate(e.Date),
	}
}

// NewEventResponses never returns nil so an empty listing encodes as [].
func NewEventResponses(events []Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, NewEventResponse(e))
	}
	return out
}

type CreateEventResponse struct {
	Message string `json:"message"`
	Event   string `json:"event"`
	Date    string `json:"date"`
}
