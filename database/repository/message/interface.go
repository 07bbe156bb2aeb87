// File: database/repository/message/interface.go
package messageRepo

import (
	"context"

	"zeefreeze/database"
	"zeefreeze/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MessageRepository defines methods for conversation-thread data access.
type MessageRepository interface {
	Create(ctx context.Context, m *models.Message) error
	GetThread(ctx context.Context, threadID string) ([]models.Message, error)
	GetThreadsForAccount(ctx context.Context, accountID string) ([]string, error)
	MarkThreadRead(ctx context.Context, threadID, readerID string) error
}

type mongoMessageRepo struct {
	coll *mongo.Collection
}

// NewMongoMessageRepo constructs a new MongoDB MessageRepository.
func NewMongoMessageRepo() MessageRepository {
	db := database.MongoClient.Database(database.Name)
	return &mongoMessageRepo{
		coll: db.Collection("messages"),
	}
}
