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

// ContentDraftStore handles CRUD for dashboard-owned content drafts
type ContentDraftStore struct {
	collection *mongo.Collection
}

// NewContentDraftStore creates a new content draft store
func NewContentDraftStore(db *database.MongoDB) *ContentDraftStore {
	return &ContentDraftStore{collection: db.Collection(database.CollectionContentDrafts)}
}

// Create inserts a new draft
func (s *ContentDraftStore) Create(ctx context.Context, draft *models.ContentDraft) error {
	draft.Touch()

	result, err := s.collection.InsertOne(ctx, draft)
	if err != nil {
		return fmt.Errorf("failed to create content draft: %w", err)
	}
	draft.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns all drafts, optionally filtered by status
func (s *ContentDraftStore) List(ctx context.Context, status string) ([]models.ContentDraft, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list content drafts: %w", err)
	}
	defer cursor.Close(ctx)

	drafts := make([]models.ContentDraft, 0, 16)
	if err := cursor.All(ctx, &drafts); err != nil {
		return nil, fmt.Errorf("failed to decode content drafts: %w", err)
	}
	return drafts, nil
}

// UpdateStatus patches one draft's status
func (s *ContentDraftStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":    status,
		"updatedAt": time.Now().UnixMilli(),
	}})
	if err != nil {
		return fmt.Errorf("failed to update content draft: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("content draft not found")
	}
	return nil
}
