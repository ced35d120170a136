package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Activity is one line of the dashboard's activity feed.
type Activity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type      string             `bson:"type" json:"type"`
	Message   string             `bson:"message" json:"message"`
	Source    string             `bson:"source,omitempty" json:"source,omitempty"`
	Metadata  interface{}        `bson:"metadata,omitempty" json:"metadata,omitempty"`
	Timestamp int64              `bson:"timestamp" json:"timestamp"`
}
