package repositories

import (
	"context"

	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByRecipient(ctx context.Context, recipientID string, page, limit int) ([]models.Notification, int64, error)
	UnreadCount(ctx context.Context, recipientID string) (int64, error)
	MarkAsRead(ctx context.Context, recipientID, notificationID string) (bool, error)
	MarkAllAsRead(ctx context.Context, recipientID string) error
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(notification).Error, "notificationRepo.Create")
}

func (r *postgresNotificationRepository) ListByRecipient(ctx context.Context, recipientID string, page, limit int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&models.Notification{}).Where("recipient_id = ?", recipientID).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "notificationRepo.ListByRecipient.Count")
	}

	offset := (page - 1) * limit
	err := db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "notificationRepo.ListByRecipient")
	}
	return notifications, total, nil
}

func (r *postgresNotificationRepository) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).Where("recipient_id = ? AND is_read = false", recipientID).Count(&count).Error
	return count, errors.Wrap(err, "notificationRepo.UnreadCount")
}

func (r *postgresNotificationRepository) MarkAsRead(ctx context.Context, recipientID, notificationID string) (bool, error) {
	if !validIDs(recipientID, notificationID) {
		return false, nil
	}
	res := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND recipient_id = ?", notificationID, recipientID).
		Update("is_read", true)
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "notificationRepo.MarkAsRead")
	}
	return res.RowsAffected > 0, nil
}

func (r *postgresNotificationRepository) MarkAllAsRead(ctx context.Context, recipientID string) error {
	err := r.db.WithContext(ctx).Model(&models.Notification{}).Where("recipient_id = ? AND is_read = false", recipientID).Update("is_read", true).Error
	return errors.Wrap(err, "notificationRepo.MarkAllAsRead")
}

func (r *postgresNotificationRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("recipient_id = ? OR actor_id = ?", userID, userID).Delete(&models.Notification{})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "notificationRepo.DeleteByUser")
	}
	return res.RowsAffected, nil
}
