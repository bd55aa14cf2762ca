package notification

import (
	"context"
	"time"

	notificationRepo "meydancha/database/repository/notification"
	"meydancha/models"

	"github.com/google/uuid"
)

// NotificationService records and serves in-app notifications.
type NotificationService interface {
	Notify(ctx context.Context, userID, title, body string) (*models.Notification, error)
	ListForUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

var _ NotificationService = (*DefaultNotificationService)(nil)

func (s *DefaultNotificationService) Notify(ctx context.Context, userID, title, body string) (*models.Notification, error) {
	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *DefaultNotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.Repo.MarkRead(ctx, id, userID)
}
