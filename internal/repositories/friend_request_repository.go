package repositories

import (
	"context"
	"time"

	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=../mocks/mock_repositories.go -package=mocks github.com/anonto42/secret-friends/backend/internal/repositories SecretRepository,FriendRequestRepository

// FriendRequestRepository defines the interface for friend request data operations
type FriendRequestRepository interface {
	Create(ctx context.Context, req *models.FriendRequest) error
	GetByID(ctx context.Context, id string) (*models.FriendRequest, error)
	// FindOpenBetween returns a pending or accepted request between a and b in either direction.
	FindOpenBetween(ctx context.Context, a, b string) (*models.FriendRequest, error)
	ListIncomingPending(ctx context.Context, userID string) ([]models.FriendRequest, error)
	ListAccepted(ctx context.Context, userID string) ([]models.FriendRequest, error)
	ExistsAccepted(ctx context.Context, a, b string) (bool, error)
	// TransitionStatus moves the request from one status to another only if it
	// currently holds from. It reports whether a row changed.
	TransitionStatus(ctx context.Context, id string, from, to models.FriendRequestStatus, at time.Time) (bool, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

// PostgresFriendRequestRepository implements FriendRequestRepository for PostgreSQL
type PostgresFriendRequestRepository struct {
	db *gorm.DB
}

// NewPostgresFriendRequestRepository creates a new PostgresFriendRequestRepository
func NewPostgresFriendRequestRepository(db *gorm.DB) *PostgresFriendRequestRepository {
	return &PostgresFriendRequestRepository{db: db}
}

// betweenPair scopes a query to edges joining a and b, whichever direction.
func betweenPair(a, b string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)", a, b, b, a)
	}
}

func touching(userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("from_user_id = ? OR to_user_id = ?", userID, userID)
	}
}

func (r *PostgresFriendRequestRepository) Create(ctx context.Context, req *models.FriendRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return errors.Wrap(translate(err), "friendRequestRepo.Create")
	}
	return nil
}

func (r *PostgresFriendRequestRepository) GetByID(ctx context.Context, id string) (*models.FriendRequest, error) {
	if !validIDs(id) {
		return nil, errors.Wrap(ErrNotFound, "friendRequestRepo.GetByID")
	}
	var req models.FriendRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error; err != nil {
		return nil, errors.Wrap(translate(err), "friendRequestRepo.GetByID")
	}
	return &req, nil
}

func (r *PostgresFriendRequestRepository) FindOpenBetween(ctx context.Context, a, b string) (*models.FriendRequest, error) {
	if !validIDs(a, b) {
		return nil, errors.Wrap(ErrNotFound, "friendRequestRepo.FindOpenBetween")
	}
	var req models.FriendRequest
	err := r.db.WithContext(ctx).
		Scopes(betweenPair(a, b)).
		Where("status IN ?", []models.FriendRequestStatus{models.FriendRequestStatusPending, models.FriendRequestStatusAccepted}).
		Order("created_at ASC").
		First(&req).Error
	if err != nil {
		return nil, errors.Wrap(translate(err), "friendRequestRepo.FindOpenBetween")
	}
	return &req, nil
}

func (r *PostgresFriendRequestRepository) ListIncomingPending(ctx context.Context, userID string) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if !validIDs(userID) {
		return requests, nil
	}
	err := r.db.WithContext(ctx).
		Where("to_user_id = ? AND status = ?", userID, models.FriendRequestStatusPending).
		Order("created_at ASC").
		Find(&requests).Error
	if err != nil {
		return nil, errors.Wrap(err, "friendRequestRepo.ListIncomingPending")
	}
	return requests, nil
}

func (r *PostgresFriendRequestRepository) ListAccepted(ctx context.Context, userID string) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	if !validIDs(userID) {
		return requests, nil
	}
	err := r.db.WithContext(ctx).
		Scopes(touching(userID)).
		Where("status = ?", models.FriendRequestStatusAccepted).
		Order("created_at ASC").
		Find(&requests).Error
	if err != nil {
		return nil, errors.Wrap(err, "friendRequestRepo.ListAccepted")
	}
	return requests, nil
}

func (r *PostgresFriendRequestRepository) ExistsAccepted(ctx context.Context, a, b string) (bool, error) {
	if !validIDs(a, b) {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.FriendRequest{}).
		Scopes(betweenPair(a, b)).
		Where("status = ?", models.FriendRequestStatusAccepted).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "friendRequestRepo.ExistsAccepted")
	}
	return count > 0, nil
}

func (r *PostgresFriendRequestRepository) TransitionStatus(ctx context.Context, id string, from, to models.FriendRequestStatus, at time.Time) (bool, error) {
	if !validIDs(id) {
		return false, nil
	}
	res := r.db.WithContext(ctx).
		Model(&models.FriendRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "updated_at": at})
	if res.Error != nil {
		return false, errors.Wrap(res.Error, "friendRequestRepo.TransitionStatus")
	}
	return res.RowsAffected > 0, nil
}

func (r *PostgresFriendRequestRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	if !validIDs(userID) {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Scopes(touching(userID)).Delete(&models.FriendRequest{})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "friendRequestRepo.DeleteByUser")
	}
	return res.RowsAffected, nil
}
