// File: database/repository/message/crud.go
package messageRepo

import (
	"context"
	"fmt"
	"time"

	"zeefreeze/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoMessageRepo) Create(ctx context.Context, m *models.Message) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *mongoMessageRepo) GetThread(ctx context.Context, threadID string) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"threadId": threadID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch thread %s: %w", threadID, err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("error decoding messages: %w", err)
	}
	return messages, nil
}

func (r *mongoMessageRepo) GetThreadsForAccount(ctx context.Context, accountID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"senderId": accountID},
		bson.M{"recipientId": accountID},
	}}
	raw, err := r.coll.Distinct(ctx, "threadId", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads for %s: %w", accountID, err)
	}

	threads := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			threads = append(threads, s)
		}
	}
	return threads, nil
}

func (r *mongoMessageRepo) MarkThreadRead(ctx context.Context, threadID, readerID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"threadId": threadID, "recipientId": readerID, "read": false}
	if _, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"read": true}}); err != nil {
		return fmt.Errorf("failed to mark thread %s read: %w", threadID, err)
	}
	return nil
}
