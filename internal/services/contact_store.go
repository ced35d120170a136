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

// ContactStore handles CRUD for dashboard-owned contacts
type ContactStore struct {
	collection *mongo.Collection
}

// NewContactStore creates a new contact store
func NewContactStore(db *database.MongoDB) *ContactStore {
	return &ContactStore{collection: db.Collection(database.CollectionContacts)}
}

// Create inserts a new contact
func (s *ContactStore) Create(ctx context.Context, contact *models.Contact) error {
	contact.CreatedAt = time.Now().UnixMilli()

	result, err := s.collection.InsertOne(ctx, contact)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	contact.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns all contacts sorted by name
func (s *ContactStore) List(ctx context.Context) ([]models.Contact, error) {
	cursor, err := s.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer cursor.Close(ctx)

	contacts := make([]models.Contact, 0, 16)
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}
