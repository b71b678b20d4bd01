package tasks

import (
	"encoding/json"
	"time"

	"salonbook/models"

	"github.com/hibiken/asynq"
)

const TypeCompleteAppointment = "appointment:complete"

// NewCompletionTask builds the task that marks an appointment complete once
// it has ended. The task ID is derived from the appointment so a repeat
// enqueue is rejected by asynq.
func NewCompletionTask(payload models.CompletionPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeCompleteAppointment, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID("complete:" + payload.AppointmentID),
		asynq.MaxRetry(5),
	}

	return task, opts, nil
}

// ParseCompletionPayload decodes a completion task body.
func ParseCompletionPayload(task *asynq.Task) (models.CompletionPayload, error) {
	var p models.CompletionPayload
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}
