package repositories

import (
	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// openPairIndex allows at most one pending or accepted request per unordered
// pair of users. A rejected request does not block a new one.
const openPairIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_friend_requests_open_pair
	ON friend_requests (LEAST(from_user_id, to_user_id), GREATEST(from_user_id, to_user_id))
	WHERE status IN ('pending', 'accepted')`

// AutoMigrate creates or updates the relational tables. Secrets live in
// Postgres only when withSecrets is set; otherwise Mongo holds them.
func AutoMigrate(db *gorm.DB, withSecrets bool) error {
	tables := []any{
		&models.Profile{},
		&models.FriendRequest{},
		&models.Notification{},
	}
	if withSecrets {
		tables = append(tables, &models.SecretMessage{})
	}
	if err := db.AutoMigrate(tables...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	if err := db.Exec(openPairIndex).Error; err != nil {
		return errors.Wrap(err, "create open pair index")
	}
	return nil
}
