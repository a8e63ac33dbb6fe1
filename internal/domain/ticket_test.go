package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_JSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 999, time.Local))

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-02 03:04:05"`, string(data))

	var back Timestamp
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, ts.Equal(back.Time))
}

func TestTimestamp_ZeroIsEmpty(t *testing.T) {
	data, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, `""`, string(data))

	var back Timestamp
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.IsZero())
}

func TestTimestamp_RejectsOtherLayouts(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"2024-01-02T03:04:05Z"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`42`), &ts))
}

func TestTicket_JSONShape(t *testing.T) {
	ticket := Ticket{
		ID:        "abc",
		Title:     "t",
		Status:    TicketStatusInProgress,
		CreatedAt: NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local)),
		UpdatedAt: NewTimestamp(time.Date(2024, 1, 2, 3, 4, 6, 0, time.Local)),
	}

	data, err := json.Marshal(ticket)

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"abc","title":"t","description":"","status":"in_progress",
		"created_at":"2024-01-02 03:04:05","updated_at":"2024-01-02 03:04:06"}`, string(data))
}

func TestTicketStatus_Known(t *testing.T) {
	assert.True(t, TicketStatusOpen.Known())
	assert.True(t, TicketStatusInProgress.Known())
	assert.True(t, TicketStatusClosed.Known())
	assert.False(t, TicketStatus("OPEN").Known())
	assert.False(t, TicketStatus("").Known())
}
