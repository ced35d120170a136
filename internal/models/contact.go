package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Contact is a dashboard-owned contact record.
type Contact struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Company     string             `bson:"company,omitempty" json:"company,omitempty"`
	Role        string             `bson:"role,omitempty" json:"role,omitempty"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	LastContact int64              `bson:"lastContact,omitempty" json:"lastContact,omitempty"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
}
