package repositories

import (
	"context"
	"time"

	"github.com/anonto42/secret-friends/backend/internal/models"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSecretRepository implements SecretRepository for MongoDB
type MongoSecretRepository struct {
	collection *mongo.Collection
}

// NewMongoSecretRepository creates a new MongoSecretRepository
func NewMongoSecretRepository(db *mongo.Database) *MongoSecretRepository {
	return &MongoSecretRepository{collection: db.Collection("secrets")}
}

// EnsureIndexes creates the unique user_id index that backs the one-secret-per-user rule.
func (r *MongoSecretRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return errors.Wrap(err, "secretRepo.EnsureIndexes")
}

func (r *MongoSecretRepository) GetByUserID(ctx context.Context, userID string) (*models.SecretMessage, error) {
	var secret models.SecretMessage
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&secret)
	if err != nil {
		return nil, errors.Wrap(translate(err), "secretRepo.GetByUserID")
	}
	return &secret, nil
}

func (r *MongoSecretRepository) Upsert(ctx context.Context, userID, message string) (*models.SecretMessage, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{"message": message, "updated_at": now},
		"$setOnInsert": bson.M{
			"_id":        uuid.NewString(),
			"user_id":    userID,
			"created_at": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var secret models.SecretMessage
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, update, opts).Decode(&secret)
	if err != nil {
		return nil, errors.Wrap(translate(err), "secretRepo.Upsert")
	}
	return &secret, nil
}

func (r *MongoSecretRepository) DeleteByUserID(ctx context.Context, userID string) (int64, error) {
	res, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, errors.Wrap(err, "secretRepo.DeleteByUserID")
	}
	return res.DeletedCount, nil
}
