package models

import "time"

// Plan types supported by the schedule builder. Hybrid plans advance topics
// continuously across the month for variety; fusion plans repeat the same
// weekly rotation for consistency.
const (
	PlanTypeHybrid = "hybrid"
	PlanTypeFusion = "fusion"
)

// Child represents a child registered with the portal
type Child struct {
	ID          string
	Name        string
	ParentEmail string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ChildProfile is the input to a plan-generation request. It is owned by the
// caller and read-only inside the engine.
type ChildProfile struct {
	ChildID       string   `json:"child_id,omitempty"`
	Name          string   `json:"child_name"`
	Age           int      `json:"age"`
	Interests     []string `json:"interests"`
	Dislikes      []string `json:"dislikes,omitempty"`
	LearningStyle string   `json:"learning_style"`
	Goals         []string `json:"goals,omitempty"`
	PlanType      string   `json:"plan_type"`
}

// HasInterests reports whether the profile carries at least one interest
func (p ChildProfile) HasInterests() bool {
	return len(p.Interests) > 0
}
