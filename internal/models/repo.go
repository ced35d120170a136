package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Repo is derived from local version-control inspection of one project
// directory. Replaced wholesale each sync.
type Repo struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name           string             `bson:"name" json:"name"`
	Path           string             `bson:"path,omitempty" json:"path,omitempty"`
	Branch         string             `bson:"branch" json:"branch"`
	LastCommit     string             `bson:"lastCommit,omitempty" json:"lastCommit"`
	LastCommitDate string             `bson:"lastCommitDate,omitempty" json:"lastCommitDate"`
	DirtyFiles     int                `bson:"dirtyFiles" json:"dirtyFiles"`
	Clean          bool               `bson:"clean" json:"clean"`
	Changes        []string           `bson:"changes,omitempty" json:"changes,omitempty"`
	Languages      map[string]int     `bson:"languages,omitempty" json:"languages"`
}
