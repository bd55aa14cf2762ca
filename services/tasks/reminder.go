package tasks

import (
	"encoding/json"
	"time"

	"meydancha/config"
	"meydancha/models"

	"github.com/hibiken/asynq"
)

// TypeSendReminder is the asynq task type for booking reminders.
const TypeSendReminder = "reminder:send"

// NewReminderTask builds the delayed reminder task for a booking.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderQueueOpt is the Redis connection for the reminder queue, shared
// by the enqueueing client and the worker.
func ReminderQueueOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// AsynqReminderScheduler enqueues reminder tasks on the shared queue.
type AsynqReminderScheduler struct {
	Client *asynq.Client
}

// NewAsynqReminderScheduler creates a scheduler backed by a fresh client.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{Client: asynq.NewClient(ReminderQueueOpt())}
}

// ScheduleReminder enqueues the reminder to process at fireAt.
func (s *AsynqReminderScheduler) ScheduleReminder(payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.Client.Enqueue(task, opts...)
	return err
}
