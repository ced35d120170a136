package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Revenue is a singleton collection: every sync deletes the prior row and
// inserts one fresh row, so the collection holds at most one document.
type Revenue struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	CurrentMRR  float64            `bson:"currentMRR" json:"currentMRR"`
	MonthlyBurn float64            `bson:"monthlyBurn" json:"monthlyBurn"`
	Net         float64            `bson:"net" json:"net"`
	Currency    string             `bson:"currency,omitempty" json:"currency,omitempty"`
	Note        string             `bson:"note,omitempty" json:"note,omitempty"`
	Sources     []RevenueSource    `bson:"sources,omitempty" json:"sources,omitempty"`
	Projects    interface{}        `bson:"projects,omitempty" json:"projects,omitempty"`
	SyncedAt    string             `bson:"syncedAt" json:"syncedAt"`
}

// RevenueSource is one named revenue stream.
type RevenueSource struct {
	Name   string  `bson:"name" json:"name"`
	Amount float64 `bson:"amount" json:"amount"`
}

// RevenueData is the public shape of the revenue endpoint. Sources and
// History are always non-nil so the dashboard never branches on a missing
// field.
type RevenueData struct {
	CurrentMRR  float64          `json:"currentMRR"`
	MonthlyBurn float64          `json:"monthlyBurn"`
	Net         float64          `json:"net"`
	Currency    string           `json:"currency,omitempty"`
	Note        string           `json:"note,omitempty"`
	Sources     []RevenueSource  `json:"sources"`
	History     []RevenueHistory `json:"history"`
}

// RevenueHistory is one month of revenue vs burn.
type RevenueHistory struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Burn    float64 `json:"burn"`
}
