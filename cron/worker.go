package cron

import (
	"context"
	"fmt"
	"time"

	"salonbook/config"
	"salonbook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Completer marks a finished appointment complete.
type Completer interface {
	Complete(ctx context.Context, appointmentID string) error
}

// QueueRedisOpt is the asynq connection for the completion queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewCompletionMux routes completion tasks to completer.
func NewCompletionMux(completer Completer, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeCompleteAppointment, HandleCompletionTask(completer, logger))
	return mux
}

// InitCompletionWorker starts the asynq server in the background and returns
// it so the caller can shut it down.
func InitCompletionWorker(completer Completer, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	mux := NewCompletionMux(completer, logger)

	go func() {
		logger.Info("starting completion worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("completion worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempts == maxAttempts {
				logger.Error("completion worker gave up; appointments must be completed by hand")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandleCompletionTask decodes the payload and completes the appointment.
// A malformed payload is not retried.
func HandleCompletionTask(completer Completer, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseCompletionPayload(task)
		if err != nil || p.AppointmentID == "" {
			logger.Warn("invalid completion payload", zap.ByteString("payload", task.Payload()), zap.Error(err))
			return fmt.Errorf("invalid completion payload: %v: %w", err, asynq.SkipRetry)
		}

		if err := completer.Complete(ctx, p.AppointmentID); err != nil {
			logger.Error("failed to complete appointment",
				zap.String("appointmentID", p.AppointmentID),
				zap.String("salonID", p.SalonID),
				zap.Error(err),
			)
			return err
		}
		logger.Info("appointment completion processed", zap.String("appointmentID", p.AppointmentID))
		return nil
	}
}
