package repositories

import (
	"context"
	"testing"

	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoSecretRepository(t *testing.T) {
	db := requireMongo(t)
	ctx := context.Background()
	repo := NewMongoSecretRepository(db)
	require.NoError(t, repo.EnsureIndexes(ctx))

	t.Run("missing secret is not found", func(t *testing.T) {
		_, err := repo.GetByUserID(ctx, "nobody")
		assert.True(t, errors.Is(err, ErrNotFound), "%v", err)
	})

	t.Run("upsert keeps one document per user", func(t *testing.T) {
		first, err := repo.Upsert(ctx, "user-1", "one")
		require.NoError(t, err)
		second, err := repo.Upsert(ctx, "user-1", "two")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())
		assert.Equal(t, "two", second.Message)

		count, err := db.Collection("secrets").CountDocuments(ctx, bson.M{"user_id": "user-1"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)

		got, err := repo.GetByUserID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "two", got.Message)
	})

	t.Run("user_id index is unique", func(t *testing.T) {
		_, err := repo.Upsert(ctx, "user-2", "mine")
		require.NoError(t, err)

		_, err = db.Collection("secrets").InsertOne(ctx, models.SecretMessage{ID: "dup", UserID: "user-2"})
		assert.Error(t, err)
	})

	t.Run("delete removes the user's secret", func(t *testing.T) {
		_, err := repo.Upsert(ctx, "user-3", "bye")
		require.NoError(t, err)

		n, err := repo.DeleteByUserID(ctx, "user-3")
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)

		_, err = repo.GetByUserID(ctx, "user-3")
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}
