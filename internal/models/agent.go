package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AgentStatus is one row per registered agent. Soul and Rules carry the
// agent's long-form personality/capability prompts when present on disk.
type AgentStatus struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	AgentID      string             `bson:"agentId" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Model        string             `bson:"model,omitempty" json:"model,omitempty"`
	Status       string             `bson:"status" json:"status"`
	Role         string             `bson:"role,omitempty" json:"role,omitempty"`
	Level        string             `bson:"level,omitempty" json:"level,omitempty"`
	Channels     []string           `bson:"channels,omitempty" json:"channels,omitempty"`
	Capabilities []string           `bson:"capabilities,omitempty" json:"capabilities,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	CronJobs     []string           `bson:"cronJobs,omitempty" json:"cronJobs,omitempty"`
	Soul         string             `bson:"soul,omitempty" json:"soul,omitempty"`
	Rules        string             `bson:"rules,omitempty" json:"rules,omitempty"`
}

// AgentDetail is the response shape of the per-agent endpoint.
type AgentDetail struct {
	ID       string                 `json:"id"`
	Soul     string                 `json:"soul,omitempty"`
	Rules    string                 `json:"rules,omitempty"`
	Registry map[string]interface{} `json:"registry"`
	Outputs  []string               `json:"outputs"`
}
