package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CalendarEvent is a dashboard-owned calendar entry. Times are Unix
// milliseconds.
type CalendarEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	StartTime   int64              `bson:"startTime" json:"startTime"`
	EndTime     int64              `bson:"endTime" json:"endTime"`
	Type        string             `bson:"type" json:"type"`
	Color       string             `bson:"color,omitempty" json:"color,omitempty"`
	AllDay      bool               `bson:"allDay,omitempty" json:"allDay,omitempty"`
}
