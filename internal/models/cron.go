package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CronJob mirrors one entry of the local cron registry. The collection is
// replaced wholesale each sync, so a job missing from the latest registry
// disappears from the mirror.
type CronJob struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	JobID             string             `bson:"jobId" json:"jobId"`
	Name              string             `bson:"name" json:"name"`
	Schedule          string             `bson:"schedule" json:"schedule"`
	Status            string             `bson:"status" json:"status"`
	LastStatus        string             `bson:"lastStatus,omitempty" json:"lastStatus,omitempty"`
	LastRun           string             `bson:"lastRun,omitempty" json:"lastRun,omitempty"`
	NextRun           string             `bson:"nextRun,omitempty" json:"nextRun,omitempty"`
	ConsecutiveErrors int                `bson:"consecutiveErrors" json:"consecutiveErrors"`
	Agent             string             `bson:"agent,omitempty" json:"agent,omitempty"`
}
