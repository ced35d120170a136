package services

import (
	"context"
	"fmt"
	"time"

	"missioncontrol/internal/database"
	"missioncontrol/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityStore handles the dashboard's activity feed
type ActivityStore struct {
	collection *mongo.Collection
}

// NewActivityStore creates a new activity store
func NewActivityStore(db *database.MongoDB) *ActivityStore {
	return &ActivityStore{collection: db.Collection(database.CollectionActivities)}
}

// Create inserts a new activity entry stamped with the current time
func (s *ActivityStore) Create(ctx context.Context, activity *models.Activity) error {
	activity.Timestamp = time.Now().UnixMilli()

	result, err := s.collection.InsertOne(ctx, activity)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	activity.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns the latest entries, newest first. A non-positive limit
// defaults to 50.
func (s *ActivityStore) List(ctx context.Context, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = 50
	}

	cursor, err := s.collection.Find(ctx, bson.M{},
		options.Find().
			SetSort(bson.D{{Key: "timestamp", Value: -1}}).
			SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer cursor.Close(ctx)

	activities := make([]models.Activity, 0, limit)
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("failed to decode activities: %w", err)
	}
	return activities, nil
}
