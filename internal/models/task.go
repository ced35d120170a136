package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Task is a dashboard-owned work item (store-owned: the remote store is the
// sole source of truth, mutated directly by the UI).
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      string             `bson:"status" json:"status"`
	Priority    string             `bson:"priority" json:"priority"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Assignee    string             `bson:"assignee,omitempty" json:"assignee,omitempty"`
	DueDate     int64              `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt   int64              `bson:"updatedAt" json:"updatedAt"`
}
