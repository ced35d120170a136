package models

import (
	"encoding/json"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FlexID accepts either a JSON string or number. Suggested-task ids in the
// local file have historically been both.
type FlexID string

// UnmarshalJSON decodes a string or numeric id into its string form.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// MarshalJSON encodes the id back as a number when it is purely numeric,
// preserving the local file's original representation.
func (f FlexID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.Atoi(string(f)); err == nil {
		return []byte(f), nil
	}
	return json.Marshal(string(f))
}

// SuggestedTask is an agent-proposed task awaiting human approval. Status is
// mutated by approve/reject actions against the local file, then mirrored on
// the next sync.
type SuggestedTask struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TaskID     FlexID             `bson:"taskId" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Category   string             `bson:"category,omitempty" json:"category,omitempty"`
	Reasoning  string             `bson:"reasoning,omitempty" json:"reasoning,omitempty"`
	NextAction string             `bson:"nextAction,omitempty" json:"nextAction,omitempty"`
	Priority   string             `bson:"priority,omitempty" json:"priority,omitempty"`
	Effort     string             `bson:"effort,omitempty" json:"effort,omitempty"`
	Status     string             `bson:"status" json:"status"`
	CreatedAt  string             `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
