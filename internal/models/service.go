package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SystemService is a point-in-time snapshot of one listening process on the
// workspace machine. The collection is fully replaced every sync cycle; no
// history is retained.
type SystemService struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name         string             `bson:"name" json:"name"`
	URL          string             `bson:"url,omitempty" json:"url,omitempty"`
	Port         int                `bson:"port,omitempty" json:"port,omitempty"`
	Status       string             `bson:"status" json:"status"`
	PID          int                `bson:"pid,omitempty" json:"pid,omitempty"`
	LastCheck    string             `bson:"lastCheck,omitempty" json:"lastCheck,omitempty"`
	ResponseTime int                `bson:"responseTime,omitempty" json:"responseTime,omitempty"`
}
