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
)

// TaskStore handles CRUD for dashboard-owned tasks
type TaskStore struct {
	collection *mongo.Collection
}

// NewTaskStore creates a new task store
func NewTaskStore(db *database.MongoDB) *TaskStore {
	return &TaskStore{collection: db.Collection(database.CollectionTasks)}
}

// Create inserts a new task
func (s *TaskStore) Create(ctx context.Context, task *models.Task) error {
	now := time.Now().UnixMilli()
	task.CreatedAt = now
	task.UpdatedAt = now

	result, err := s.collection.InsertOne(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	task.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns all tasks, optionally filtered by status via the by-status
// index
func (s *TaskStore) List(ctx context.Context, status string) ([]models.Task, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := make([]models.Task, 0, 16)
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}

// UpdateStatus patches one task's status
func (s *TaskStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UnixMilli(),
	}})
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("task not found")
	}
	return nil
}
