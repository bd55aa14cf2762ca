// File: database/repository/notification/interface.go
package notificationRepo

import (
	"context"

	"meydancha/database"
	"meydancha/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationRepository defines data access for in-app notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new MongoDB NotificationRepository.
func NewMongoNotificationRepo() NotificationRepository {
	return &mongoNotificationRepo{
		coll: database.DB().Collection("notifications"),
	}
}
