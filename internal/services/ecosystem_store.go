package services

import (
	"context"
	"fmt"
	"time"

	"missioncontrol/internal/database"
	"missioncontrol/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EcosystemStore handles dashboard-owned product cards, keyed by slug
type EcosystemStore struct {
	collection *mongo.Collection
}

// NewEcosystemStore creates a new ecosystem store
func NewEcosystemStore(db *database.MongoDB) *EcosystemStore {
	return &EcosystemStore{collection: db.Collection(database.CollectionEcosystemProducts)}
}

// List returns all products
func (s *EcosystemStore) List(ctx context.Context) ([]models.EcosystemProduct, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]models.EcosystemProduct, 0, 8)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// GetBySlug returns one product, or nil when the slug is unknown
func (s *EcosystemStore) GetBySlug(ctx context.Context, slug string) (*models.EcosystemProduct, error) {
	var product models.EcosystemProduct
	err := s.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

// Upsert replaces the product with the given slug, or inserts it
func (s *EcosystemStore) Upsert(ctx context.Context, product *models.EcosystemProduct) error {
	product.UpdatedAt = time.Now().UnixMilli()

	_, err := s.collection.ReplaceOne(ctx,
		bson.M{"slug": product.Slug},
		product,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert product %q: %w", product.Slug, err)
	}
	return nil
}
