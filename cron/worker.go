package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bookingRepo "meydancha/database/repository/booking"
	"meydancha/models"
	"meydancha/services/notification"
	"meydancha/services/tasks"
	"meydancha/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker starts the background asynq worker that delivers
// booking reminders when their delayed tasks come due.
func InitReminderWorker(bookings bookingRepo.BookingRepository, notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		tasks.ReminderQueueOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(bookings, notifSvc))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempt := 1; attempt <= maxAttempts; attempt++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempt), zap.Error(err))
			if attempt == maxAttempts {
				logger.Fatal("reminder worker gave up after max attempts")
			}
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()
}

// handleReminderTask re-reads the booking before delivering: a reminder for
// a booking cancelled after scheduling is silently dropped.
func handleReminderTask(bookings bookingRepo.BookingRepository, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		b, err := bookings.GetByID(ctx, p.BookingID)
		if err != nil {
			logger.Warn("reminder for unknown booking dropped",
				zap.String("bookingID", p.BookingID), zap.Error(err))
			return nil
		}
		if b.Status != models.BookingStatusConfirmed {
			logger.Info("reminder skipped, booking no longer confirmed",
				zap.String("bookingID", p.BookingID), zap.String("status", b.Status))
			return nil
		}

		title := "Upcoming booking at " + p.FieldName
		body := fmt.Sprintf("Your booking at %s starts at %s on %s.", p.FieldName, p.StartTime, p.Date)
		if _, err := notifSvc.Notify(ctx, p.UserID, title, body); err != nil {
			logger.Error("reminder delivery failed",
				zap.String("bookingID", p.BookingID), zap.Error(err))
			return err
		}

		logger.Info("reminder delivered",
			zap.String("bookingID", p.BookingID), zap.String("userID", p.UserID))
		return nil
	}
}

// InitCompletionSweeper marks confirmed bookings whose end time has passed
// as completed, on a fixed interval. Completion is what makes a booking
// reviewable.
func InitCompletionSweeper(bookings bookingRepo.BookingRepository, loc *time.Location, interval time.Duration) {
	go func() {
		logger := utils.GetLogger()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			n, err := bookings.CompletePast(ctx, time.Now().In(loc))
			cancel()
			if err != nil {
				logger.Error("booking completion sweep failed", zap.Error(err))
				continue
			}
			if n > 0 {
				logger.Info("bookings completed", zap.Int64("count", n))
			}
		}
	}()
}
