package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseResponse_JSONSerialization(t *testing.T) {
	tests := []struct {
		name     string
		response BaseResponse
		expected string
	}{
		{
			name: "Response with data and message",
			response: BaseResponse{
				Data:    []EventResponse{{ID: 1, Event: "Launch", Date: "2024-05-01"}},
				Message: MsgEventAdded,
			},
			expected: `{"data":[{"id":1,"event":"Launch","date":"2024-05-01"}],"message":"The event has been added!"}`,
		},
		{
			name: "Response with nil data",
			response: BaseResponse{
				Data:    nil,
				Message: MsgEventNonExistent,
			},
			expected: `{"message":"The event doesn't exist!"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonData, err := json.Marshal(tt.response)
			assert.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(jsonData))
		})
	}
}

func TestCreateEventResponse_Fields(t *testing.T) {
	jsonData, err := json.Marshal(CreateEventResponse{
		Message: MsgEventAdded,
		Event:   "Launch",
		Date:    "2024-05-01",
	})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"message":"The event has been added!","event":"Launch","date":"2024-05-01"}`, string(jsonData))
}

func TestEventRequest_UnmarshalIgnoresUnknownFields(t *testing.T) {
	var req EventRequest
	err := json.Unmarshal([]byte(`{"event":"Launch","date":"2024-05-01","color":"red"}`), &req)
	assert.NoError(t, err)
	assert.Equal(t, "Launch", req.Name)
	assert.Equal(t, "2024-05-01", req.Date)
}

func TestEventRangeQuery_HasRange(t *testing.T) {
	assert.True(t, EventRangeQuery{StartTime: "2024-01-01", EndTime: "2024-01-31"}.HasRange())
	assert.False(t, EventRangeQuery{StartTime: "2024-01-01"}.HasRange())
	assert.False(t, EventRangeQuery{EndTime: "2024-01-31"}.HasRange())
	assert.False(t, EventRangeQuery{}.HasRange())
}
