package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

// mongoWorkoutRepository implements repository.WorkoutRepository on top
// of the shared type-discriminated collection.
type mongoWorkoutRepository struct {
	collection *mongo.Collection
}

// NewWorkoutRepository creates a new workout repository over the given
// records collection.
func NewWorkoutRepository(collection *mongo.Collection) repository.WorkoutRepository {
	return &mongoWorkoutRepository{collection: collection}
}

// Create inserts a new logged workout. Inserts are strict: an already
// taken id surfaces as ErrDuplicateID rather than an overwrite, so a
// caller-supplied id can never clobber an existing record.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.LoggedWorkout) error {
	if workout.UserID == "" {
		return errors.New("logged workout requires userId")
	}
	if workout.ID == "" {
		workout.ID = uuid.NewString()
	}
	workout.Type = domain.TypeLoggedWorkout
	now := time.Now().UTC()
	workout.CreatedAt = now
	if workout.Timestamp.IsZero() {
		workout.Timestamp = now
	}
	if workout.Exercises == nil {
		workout.Exercises = []domain.CompletedExercise{}
	}

	if _, err := r.collection.InsertOne(ctx, workout); err != nil {
		return storeErr(err)
	}
	return nil
}

// List returns all of a user's logged workouts, most recent date first,
// ties broken by creation instant.
func (r *mongoWorkoutRepository) List(ctx context.Context, userID string) ([]domain.LoggedWorkout, error) {
	filter := bson.M{"type": domain.TypeLoggedWorkout, "userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}})
	return r.find(ctx, filter, findOptions)
}

// ListByDay returns a user's logged workouts for one cycle day, most
// recently recorded first.
func (r *mongoWorkoutRepository) ListByDay(ctx context.Context, userID string, dayNumber int) ([]domain.LoggedWorkout, error) {
	filter := bson.M{"type": domain.TypeLoggedWorkout, "userId": userID, "dayNumber": dayNumber}
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	return r.find(ctx, filter, findOptions)
}

func (r *mongoWorkoutRepository) find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]domain.LoggedWorkout, error) {
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, storeErr(err)
	}
	defer cursor.Close(ctx)

	workouts := []domain.LoggedWorkout{}
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, storeErr(err)
	}
	return workouts, nil
}

// BulkCreate inserts each draft independently. A failing draft is
// reported alongside the successes and never aborts its siblings.
func (r *mongoWorkoutRepository) BulkCreate(ctx context.Context, workouts []domain.LoggedWorkout) (*repository.BulkResult, error) {
	result := &repository.BulkResult{
		Created:  []domain.LoggedWorkout{},
		Failures: []repository.BulkFailure{},
	}
	for i := range workouts {
		w := workouts[i]
		if err := r.Create(ctx, &w); err != nil {
			result.Failures = append(result.Failures, repository.BulkFailure{
				Draft: workouts[i],
				Error: err.Error(),
			})
			continue
		}
		result.Created = append(result.Created, w)
	}
	return result, nil
}

// Delete removes a record by id and owner. The filter carries both keys,
// so a record owned by another user reports ErrNotFound.
func (r *mongoWorkoutRepository) Delete(ctx context.Context, userID, id string) error {
	if userID == "" || id == "" {
		return errors.New("workout id and user id are required for deletion")
	}

	filter := bson.M{"_id": id, "userId": userID, "type": domain.TypeLoggedWorkout}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return storeErr(err)
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
