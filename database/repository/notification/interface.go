// File: database/repository/notification/interface.go
package notificationRepo

import (
	"context"

	"zeefreeze/database"
	"zeefreeze/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationRepository defines methods for persisted notification access.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	GetByAccountID(ctx context.Context, accountID string, unreadOnly bool) ([]models.Notification, error)
	CountUnread(ctx context.Context, accountID string) (int64, error)
	MarkRead(ctx context.Context, accountID, notificationID string) error
	MarkAllRead(ctx context.Context, accountID string) error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new MongoDB NotificationRepository.
func NewMongoNotificationRepo() NotificationRepository {
	db := database.MongoClient.Database(database.Name)
	return &mongoNotificationRepo{
		coll: db.Collection("notifications"),
	}
}
