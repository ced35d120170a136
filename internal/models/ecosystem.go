package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// EcosystemProduct is a dashboard-owned product card, upserted by slug.
type EcosystemProduct struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug        string             `bson:"slug" json:"slug"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Status      string             `bson:"status" json:"status"`
	Health      string             `bson:"health" json:"health"`
	URL         string             `bson:"url,omitempty" json:"url,omitempty"`
	Metrics     interface{}        `bson:"metrics,omitempty" json:"metrics,omitempty"`
	UpdatedAt   int64              `bson:"updatedAt" json:"updatedAt"`
}
