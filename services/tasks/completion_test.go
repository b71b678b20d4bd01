package tasks

import (
	"testing"
	"time"

	"salonbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompletionTask(t *testing.T) {
	fireAt := time.Date(2030, 1, 7, 10, 30, 0, 0, time.UTC)
	payload := models.CompletionPayload{AppointmentID: "a1", SalonID: "s1", EndAt: fireAt.Format(time.RFC3339)}

	task, opts, err := NewCompletionTask(payload, fireAt)
	require.NoError(t, err)
	assert.Equal(t, TypeCompleteAppointment, task.Type())
	assert.Len(t, opts, 3)

	decoded, err := ParseCompletionPayload(task)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}
