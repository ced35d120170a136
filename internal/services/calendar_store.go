package services

import (
	"context"
	"fmt"

	"missioncontrol/internal/database"
	"missioncontrol/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CalendarStore handles CRUD for dashboard-owned calendar events
type CalendarStore struct {
	collection *mongo.Collection
}

// NewCalendarStore creates a new calendar store
func NewCalendarStore(db *database.MongoDB) *CalendarStore {
	return &CalendarStore{collection: db.Collection(database.CollectionCalendarEvents)}
}

// Create inserts a new event
func (s *CalendarStore) Create(ctx context.Context, event *models.CalendarEvent) error {
	result, err := s.collection.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to create calendar event: %w", err)
	}
	event.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns events sorted by start time, optionally bounded to a window.
// Bounds are Unix milliseconds; zero means unbounded.
func (s *CalendarStore) List(ctx context.Context, startAfter, startBefore int64) ([]models.CalendarEvent, error) {
	filter := bson.M{}
	window := bson.M{}
	if startAfter > 0 {
		window["$gte"] = startAfter
	}
	if startBefore > 0 {
		window["$lte"] = startBefore
	}
	if len(window) > 0 {
		filter["startTime"] = window
	}

	cursor, err := s.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	defer cursor.Close(ctx)

	events := make([]models.CalendarEvent, 0, 16)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode calendar events: %w", err)
	}
	return events, nil
}

// Delete removes an event by ID
func (s *CalendarStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("calendar event not found")
	}
	return nil
}
