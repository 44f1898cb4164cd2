package repositories

import (
	"context"
	"time"

	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SecretRepository defines the interface for secret message storage.
type SecretRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.SecretMessage, error)
	// Upsert creates the user's secret or overwrites message and updated_at.
	Upsert(ctx context.Context, userID, message string) (*models.SecretMessage, error)
	DeleteByUserID(ctx context.Context, userID string) (int64, error)
}

// PostgresSecretRepository implements SecretRepository for PostgreSQL
type PostgresSecretRepository struct {
	db *gorm.DB
}

func NewPostgresSecretRepository(db *gorm.DB) *PostgresSecretRepository {
	return &PostgresSecretRepository{db: db}
}

func (r *PostgresSecretRepository) GetByUserID(ctx context.Context, userID string) (*models.SecretMessage, error) {
	if !validIDs(userID) {
		return nil, errors.Wrap(ErrNotFound, "secretRepo.GetByUserID")
	}
	var secret models.SecretMessage
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&secret).Error; err != nil {
		return nil, errors.Wrap(translate(err), "secretRepo.GetByUserID")
	}
	return &secret, nil
}

func (r *PostgresSecretRepository) Upsert(ctx context.Context, userID, message string) (*models.SecretMessage, error) {
	now := time.Now().UTC()
	secret := &models.SecretMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Message:   message,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"message", "updated_at"}),
	}).Create(secret).Error
	if err != nil {
		return nil, errors.Wrap(err, "secretRepo.Upsert")
	}
	// On conflict the generated id and created_at are not the stored ones.
	return r.GetByUserID(ctx, userID)
}

func (r *PostgresSecretRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	if !validIDs(userID) {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.SecretMessage{})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "secretRepo.DeleteByUserID")
	}
	return res.RowsAffected, nil
}
