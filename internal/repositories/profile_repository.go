package repositories

import (
	"context"

	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	GetByFirebaseUID(ctx context.Context, firebaseUID string) (*models.Profile, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	Delete(ctx context.Context, id string) error
}

// PostgresProfileRepository implements ProfileRepository for PostgreSQL
type PostgresProfileRepository struct {
	db *gorm.DB
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return errors.Wrap(translate(err), "profileRepo.Create")
	}
	return nil
}

func (r *PostgresProfileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	if !validIDs(id) {
		return nil, errors.Wrap(ErrNotFound, "profileRepo.GetByID")
	}
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, errors.Wrap(translate(err), "profileRepo.GetByID")
	}
	return &profile, nil
}

func (r *PostgresProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, errors.Wrap(translate(err), "profileRepo.GetByEmail")
	}
	return &profile, nil
}

func (r *PostgresProfileRepository) GetByFirebaseUID(ctx context.Context, firebaseUID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("firebase_uid = ?", firebaseUID).First(&profile).Error; err != nil {
		return nil, errors.Wrap(translate(err), "profileRepo.GetByFirebaseUID")
	}
	return &profile, nil
}

// GetByIDs loads the given profiles keyed by id; unknown ids are absent from the map.
func (r *PostgresProfileRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*models.Profile, error) {
	result := make(map[string]*models.Profile, len(ids))
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if validIDs(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return result, nil
	}
	var profiles []models.Profile
	if err := r.db.WithContext(ctx).Where("id IN ?", valid).Find(&profiles).Error; err != nil {
		return nil, errors.Wrap(err, "profileRepo.GetByIDs")
	}
	for i := range profiles {
		result[profiles[i].ID] = &profiles[i]
	}
	return result, nil
}

func (r *PostgresProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return errors.Wrap(err, "profileRepo.Update")
	}
	return nil
}

// Delete removes the profile; deleting a missing profile is not an error.
func (r *PostgresProfileRepository) Delete(ctx context.Context, id string) error {
	if !validIDs(id) {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Profile{}).Error; err != nil {
		return errors.Wrap(err, "profileRepo.Delete")
	}
	return nil
}
