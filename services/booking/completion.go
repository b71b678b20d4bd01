package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonbook/models"
	"salonbook/services/tasks"

	"github.com/hibiken/asynq"
)

// CompletionScheduler arranges for an appointment to be marked complete
// after it ends.
type CompletionScheduler interface {
	ScheduleCompletion(ctx context.Context, appt *models.Appointment) error
}

// AsynqCompletionScheduler enqueues completion tasks on the asynq queue.
type AsynqCompletionScheduler struct {
	Client *asynq.Client
}

func NewAsynqCompletionScheduler(client *asynq.Client) *AsynqCompletionScheduler {
	return &AsynqCompletionScheduler{Client: client}
}

func (s *AsynqCompletionScheduler) ScheduleCompletion(ctx context.Context, appt *models.Appointment) error {
	payload := models.CompletionPayload{
		AppointmentID: appt.ID,
		SalonID:       appt.SalonID,
		EndAt:         appt.EndAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewCompletionTask(payload, appt.EndAt)
	if err != nil {
		return fmt.Errorf("build completion task: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			return nil
		}
		return fmt.Errorf("enqueue completion task: %w", err)
	}
	return nil
}
