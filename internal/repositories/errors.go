package repositories

import (
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned by every adapter when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write collides with a unique constraint.
	ErrConflict = errors.New("record conflicts with an existing one")
)

// translate maps driver errors onto the adapter-neutral ones. The gorm
// session must run with TranslateError for duplicate keys to surface.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), mongo.IsDuplicateKeyError(err):
		return ErrConflict
	}
	return err
}

// validIDs reports whether every id parses as a uuid. Postgres rejects a
// malformed literal on a uuid column, so such ids can never match a row.
func validIDs(ids ...string) bool {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return false
		}
	}
	return true
}
