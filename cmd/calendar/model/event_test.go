package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvent_TableName(t *testing.T) {
	event := Event{}
	assert.Equal(t, "events", event.TableName())
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "Valid date", input: "2024-05-01", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Leap day", input: "2024-02-29", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "Not a leap year", input: "2023-02-29", wantErr: true},
		{name: "Month out of range", input: "2024-13-40", wantErr: true},
		{name: "Wrong separator", input: "2024/05/01", wantErr: true},
		{name: "Time of day", input: "2024-05-01T10:00:00", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-09", FormatDate(d))
}

func TestDateOf_UsesLocationOfTime(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 23:30 UTC on the 1st is already the 2nd in Tokyo.
	instant := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-05-01", FormatDate(DateOf(instant)))
	assert.Equal(t, "2024-05-02", FormatDate(DateOf(instant.In(tokyo))))
	assert.Equal(t, time.UTC, DateOf(instant.In(tokyo)).Location())
}

func TestNewEventResponse(t *testing.T) {
	event := Event{
		ID:   7,
		Name: "Launch",
		Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	jsonData, err := json.Marshal(NewEventResponse(event))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"event":"Launch","date":"2024-05-01"}`, string(jsonData))
}

func TestNewEventResponses_EmptyIsNotNull(t *testing.T) {
	jsonData, err := json.Marshal(NewEventResponses(nil))
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(jsonData))
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Field: "date", Message: MsgDateRequired}
	assert.EqualError(t, err, MsgDateRequired)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}
