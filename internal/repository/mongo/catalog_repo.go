package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"workout-tracker/internal/catalog"
	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

// mongoCatalogRepository implements repository.CatalogRepository over the
// shared records collection.
type mongoCatalogRepository struct {
	collection *mongo.Collection
}

// NewCatalogRepository creates a new catalog repository over the given
// records collection.
func NewCatalogRepository(collection *mongo.Collection) repository.CatalogRepository {
	return &mongoCatalogRepository{collection: collection}
}

// GetDayDefinition retrieves one day definition by its cycle number.
func (r *mongoCatalogRepository) GetDayDefinition(ctx context.Context, dayNumber int) (*domain.DayDefinition, error) {
	var day domain.DayDefinition
	filter := bson.M{"type": domain.TypeDayDefinition, "dayNumber": dayNumber}
	if err := r.collection.FindOne(ctx, filter).Decode(&day); err != nil {
		return nil, storeErr(err)
	}
	return &day, nil
}

// ListExercisesByDay retrieves the prescribed exercises for a cycle day.
// An empty result is not an error.
func (r *mongoCatalogRepository) ListExercisesByDay(ctx context.Context, dayNumber int) ([]domain.Exercise, error) {
	filter := bson.M{"type": domain.TypeExercise, "dayNumber": dayNumber}
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	exercises := []domain.Exercise{}
	if err = cursor.All(ctx, &exercises); err != nil {
		return nil, storeErr(err)
	}
	return exercises, nil
}

// SeedCatalog upserts the reference data under deterministic ids so
// reseeding is idempotent. Counts of written documents are reported for
// the admin response.
func (r *mongoCatalogRepository) SeedCatalog(ctx context.Context, days []domain.DayDefinition, exercises []domain.Exercise) (int, int, error) {
	replaceOpts := options.Replace().SetUpsert(true)

	daysSeeded := 0
	for _, day := range days {
		day.ID = catalog.DayDocID(day.DayNumber)
		day.Type = domain.TypeDayDefinition
		if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": day.ID}, day, replaceOpts); err != nil {
			return daysSeeded, 0, storeErr(err)
		}
		daysSeeded++
	}

	exercisesSeeded := 0
	for _, exercise := range exercises {
		exercise.ID = catalog.ExerciseDocID(exercise)
		exercise.Type = domain.TypeExercise
		if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": exercise.ID}, exercise, replaceOpts); err != nil {
			return daysSeeded, exercisesSeeded, storeErr(err)
		}
		exercisesSeeded++
	}

	return daysSeeded, exercisesSeeded, nil
}

// EnsureRecordIndexes creates the indexes backing catalog lookups and
// per-user history queries. Call during startup.
func EnsureRecordIndexes(ctx context.Context, collection *mongo.Collection) error {
	indexes := []mongo.IndexModel{
		{
			// Catalog lookups by kind and cycle day.
			Keys: bson.D{{Key: "type", Value: 1}, {Key: "dayNumber", Value: 1}},
		},
		{
			// History listing in its response order.
			Keys: bson.D{{Key: "type", Value: 1}, {Key: "userId", Value: 1}, {Key: "date", Value: -1}, {Key: "createdAt", Value: -1}},
		},
		{
			// Settings lookup per user.
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "type", Value: 1}},
		},
	}
	_, err := collection.Indexes().CreateMany(ctx, indexes)
	return err
}
