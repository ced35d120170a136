package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentItem is one entry of the content pipeline, parsed from the queue
// markdown or mirrored from the contentPipeline collection.
type ContentItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ItemID    string             `bson:"itemId" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Platform  string             `bson:"platform,omitempty" json:"platform"`
	Status    string             `bson:"status" json:"status"`
	Preview   string             `bson:"preview,omitempty" json:"preview"`
	CreatedAt string             `bson:"createdAt,omitempty" json:"createdAt"`
}

// ContentDraft is a dashboard-owned draft, created and edited directly via
// the UI (never synced from the filesystem).
type ContentDraft struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Body         string             `bson:"body,omitempty" json:"body,omitempty"`
	Platform     string             `bson:"platform" json:"platform"`
	Status       string             `bson:"status" json:"status"`
	Author       string             `bson:"author,omitempty" json:"author,omitempty"`
	ScheduledFor int64              `bson:"scheduledFor,omitempty" json:"scheduledFor,omitempty"`
	CreatedAt    int64              `bson:"createdAt" json:"createdAt"`
	UpdatedAt    int64              `bson:"updatedAt" json:"updatedAt"`
}

// Touch stamps creation/update times in Unix milliseconds.
func (d *ContentDraft) Touch() {
	now := time.Now().UnixMilli()
	if d.CreatedAt == 0 {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
}
