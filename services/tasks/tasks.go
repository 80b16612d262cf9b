// Package tasks defines the asynq task types and the scheduler used by the
// booking and contact services.
package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"eraflix/models"
)

const (
	TypeBookingReminder = "booking:reminder"
	TypeContactNotify   = "contact:notify"
)

// NewBookingReminderTask builds a reminder task scheduled for fireAt.
func NewBookingReminderTask(payload models.BookingReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// NewContactNotifyTask builds an immediate admin-notification task.
func NewContactNotifyTask(payload models.ContactNotifyPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeContactNotify, b)
	opts := []asynq.Option{asynq.MaxRetry(5)}

	return task, opts, nil
}

// AsynqScheduler enqueues tasks on the shared Redis-backed queue. It satisfies
// booking.TaskScheduler and contact.Notifier.
type AsynqScheduler struct {
	Client *asynq.Client
}

// NewAsynqScheduler constructs a scheduler over the given Redis options.
func NewAsynqScheduler(redisOpts asynq.RedisClientOpt) *AsynqScheduler {
	return &AsynqScheduler{Client: asynq.NewClient(redisOpts)}
}

func (s *AsynqScheduler) ScheduleBookingReminder(payload models.BookingReminderPayload, fireAt time.Time) error {
	task, opts, err := NewBookingReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}

func (s *AsynqScheduler) EnqueueContactNotification(payload models.ContactNotifyPayload) error {
	task, opts, err := NewContactNotifyTask(payload)
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}
