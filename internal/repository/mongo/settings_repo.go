package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

// mongoSettingsRepository implements repository.SettingsRepository.
type mongoSettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new settings repository over the given
// records collection.
func NewSettingsRepository(collection *mongo.Collection) repository.SettingsRepository {
	return &mongoSettingsRepository{collection: collection}
}

// Get returns the user's settings record, or ErrNotFound when the user
// has never written one.
func (r *mongoSettingsRepository) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	var settings domain.UserSettings
	filter := bson.M{"type": domain.TypeSettings, "userId": userID}
	if err := r.collection.FindOne(ctx, filter).Decode(&settings); err != nil {
		return nil, storeErr(err)
	}
	return &settings, nil
}

// Upsert writes the single settings document for the user. The
// deterministic id keeps concurrent writers on one document; the later
// arrival wins.
func (r *mongoSettingsRepository) Upsert(ctx context.Context, settings *domain.UserSettings) error {
	if settings.UserID == "" {
		return errors.New("settings require userId")
	}
	settings.ID = domain.SettingsID(settings.UserID)
	settings.Type = domain.TypeSettings
	settings.UpdatedAt = time.Now().UTC()

	filter := bson.M{"_id": settings.ID, "userId": settings.UserID}
	if _, err := r.collection.ReplaceOne(ctx, filter, settings, options.Replace().SetUpsert(true)); err != nil {
		return storeErr(err)
	}
	return nil
}
