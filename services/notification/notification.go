// File: services/notification/notification.go
package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "zeefreeze/database/repository/notification"
	technicianRepo "zeefreeze/database/repository/technician"
	userRepo "zeefreeze/database/repository/user"
	"zeefreeze/models"
	"zeefreeze/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// NotificationService persists in-app notifications and mirrors them as FCM
// pushes when the account has a registered device. Delivery is pull-based:
// clients fetch their feed on demand, the server never polls for them.
type NotificationService interface {
	Notify(ctx context.Context, accountID, accountRole, nType, title, body string, data map[string]string) error
	GetForAccount(ctx context.Context, accountID string, unreadOnly bool) ([]models.Notification, error)
	CountUnread(ctx context.Context, accountID string) (int64, error)
	MarkRead(ctx context.Context, accountID, notificationID string) error
	MarkAllRead(ctx context.Context, accountID string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo  notificationRepo.NotificationRepository
	Users userRepo.UserRepository
	Techs technicianRepo.TechnicianRepository
}

func NewDefaultNotificationService(
	repo notificationRepo.NotificationRepository,
	users userRepo.UserRepository,
	techs technicianRepo.TechnicianRepository,
) (*DefaultNotificationService, error) {
	if repo == nil || users == nil || techs == nil {
		return nil, fmt.Errorf("notification service initialization error: one or more dependencies are nil")
	}
	return &DefaultNotificationService{Repo: repo, Users: users, Techs: techs}, nil
}

// Notify stores the notification and attempts a push. Push failures are logged
// but never fail the calling flow: the persisted record is the delivery of
// record.
func (s *DefaultNotificationService) Notify(ctx context.Context, accountID, accountRole, nType, title, body string, data map[string]string) error {
	n := models.Notification{
		ID:          uuid.New().String(),
		AccountID:   accountID,
		AccountRole: accountRole,
		Type:        nType,
		Title:       title,
		Body:        body,
		Data:        data,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(ctx, &n); err != nil {
		return fmt.Errorf("failed to persist notification: %w", err)
	}

	token := s.lookupFCMToken(accountID, accountRole)
	if token == "" {
		return nil
	}
	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = accountRole
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if utils.FCMClient == nil {
		utils.GetLogger().Debug("FCM client not initialized; skipping push",
			zap.String("accountID", accountID))
		return nil
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		utils.GetLogger().Warn("Failed to send FCM push",
			zap.String("accountID", accountID), zap.Error(err))
	}
	return nil
}

// lookupFCMToken resolves the push token for an account. When the caller does
// not know the account's role it tries the users collection first, then
// technicians.
func (s *DefaultNotificationService) lookupFCMToken(accountID, accountRole string) string {
	if accountRole == models.RoleTechnician {
		tech, err := s.Techs.GetByIDWithProjection(accountID, bson.M{"fcmToken": 1})
		if err != nil || tech == nil {
			return ""
		}
		return tech.FCMToken
	}
	usr, err := s.Users.GetByIDWithProjection(accountID, bson.M{"fcmToken": 1})
	if err == nil && usr != nil && usr.FCMToken != "" {
		return usr.FCMToken
	}
	if accountRole == "" {
		tech, err := s.Techs.GetByIDWithProjection(accountID, bson.M{"fcmToken": 1})
		if err == nil && tech != nil {
			return tech.FCMToken
		}
	}
	return ""
}

func (s *DefaultNotificationService) GetForAccount(ctx context.Context, accountID string, unreadOnly bool) ([]models.Notification, error) {
	notifications, err := s.Repo.GetByAccountID(ctx, accountID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return notifications, nil
}

func (s *DefaultNotificationService) CountUnread(ctx context.Context, accountID string) (int64, error) {
	count, err := s.Repo.CountUnread(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, accountID, notificationID string) error {
	if err := s.Repo.MarkRead(ctx, accountID, notificationID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, accountID string) error {
	if err := s.Repo.MarkAllRead(ctx, accountID); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
