// File: services/message/message.go
package message

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	messageRepo "zeefreeze/database/repository/message"
	"zeefreeze/models"
	notificationSvc "zeefreeze/services/notification"
	"zeefreeze/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MessageService handles conversation threads between clients, technicians
// and the back office.
type MessageService interface {
	Send(ctx context.Context, senderID, senderRole string, req models.SendMessageRequest) (*models.Message, error)
	GetThread(ctx context.Context, threadID, readerID string) ([]models.Message, error)
	ListThreads(ctx context.Context, accountID string) ([]string, error)
	MarkThreadRead(ctx context.Context, threadID, readerID string) error
}

// DefaultMessageService is the production implementation.
type DefaultMessageService struct {
	Repo     messageRepo.MessageRepository
	Notifier notificationSvc.NotificationService
}

func NewDefaultMessageService(repo messageRepo.MessageRepository, notifier notificationSvc.NotificationService) (*DefaultMessageService, error) {
	if repo == nil {
		return nil, fmt.Errorf("message service initialization error: repository is nil")
	}
	return &DefaultMessageService{Repo: repo, Notifier: notifier}, nil
}

// threadID derives a stable thread key from the two participant IDs,
// independent of who writes first.
func threadID(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, ":")
}

func (s *DefaultMessageService) Send(ctx context.Context, senderID, senderRole string, req models.SendMessageRequest) (*models.Message, error) {
	if senderID == req.RecipientID {
		return nil, fmt.Errorf("cannot send a message to yourself")
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, fmt.Errorf("message body is empty")
	}

	msg := models.Message{
		ID:          uuid.New().String(),
		ThreadID:    threadID(senderID, req.RecipientID),
		SenderID:    senderID,
		SenderRole:  senderRole,
		RecipientID: req.RecipientID,
		Body:        req.Body,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(ctx, &msg); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	if s.Notifier != nil {
		// Recipient role is unknown here; the notifier resolves the token by
		// trying the accounts collections.
		if err := s.Notifier.Notify(ctx, req.RecipientID, "", "message",
			"New message", req.Body, map[string]string{"threadId": msg.ThreadID}); err != nil {
			utils.GetLogger().Warn("Failed to notify message recipient",
				zap.String("recipientID", req.RecipientID), zap.Error(err))
		}
	}
	return &msg, nil
}

func (s *DefaultMessageService) GetThread(ctx context.Context, threadID, readerID string) ([]models.Message, error) {
	msgs, err := s.Repo.GetThread(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch thread: %w", err)
	}
	// Reading a thread marks the other side's messages as read.
	if err := s.Repo.MarkThreadRead(ctx, threadID, readerID); err != nil {
		utils.GetLogger().Warn("Failed to mark thread read",
			zap.String("threadID", threadID), zap.Error(err))
	}
	return msgs, nil
}

func (s *DefaultMessageService) ListThreads(ctx context.Context, accountID string) ([]string, error) {
	threads, err := s.Repo.GetThreadsForAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	return threads, nil
}

func (s *DefaultMessageService) MarkThreadRead(ctx context.Context, threadID, readerID string) error {
	if err := s.Repo.MarkThreadRead(ctx, threadID, readerID); err != nil {
		return fmt.Errorf("failed to mark thread read: %w", err)
	}
	return nil
}
