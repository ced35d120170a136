package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SystemState is a generic key-value escape hatch for heterogeneous blobs
// (markdown documents, JSON configs) that don't warrant their own collection.
// At most one row exists per key: writes go through find-by-key then
// replace-or-insert, never a blind insert.
type SystemState struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Key      string             `bson:"key" json:"key"`
	Value    string             `bson:"value" json:"value"`
	SyncedAt string             `bson:"syncedAt" json:"syncedAt"`
}

// BranchStatus is the public shape of one repo's remote-tracking state,
// decoded from the branchCheck systemState blob or the local branch-check
// file.
type BranchStatus struct {
	Repo      string `json:"repo"`
	Branch    string `json:"branch"`
	Ahead     int    `json:"ahead"`
	Behind    int    `json:"behind"`
	Clean     bool   `json:"clean"`
	LastCheck string `json:"lastCheck,omitempty"`
}

// UnmarshalJSON defaults Clean to true when the field is absent. Ahead and
// Behind default to zero, so an entry that only names the repo reads as in
// sync with its remote.
func (b *BranchStatus) UnmarshalJSON(data []byte) error {
	type alias BranchStatus
	aux := struct {
		*alias
		Clean *bool `json:"clean"`
	}{alias: (*alias)(b)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	b.Clean = aux.Clean == nil || *aux.Clean
	return nil
}
