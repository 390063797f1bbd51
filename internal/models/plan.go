package models

import "time"

// Week and day keys used by the schedule builder. Days are lowercase weekday
// names ordered Monday through Sunday.
var (
	WeekKeys = []string{"week_1", "week_2", "week_3", "week_4"}
	DayKeys  = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// TopicAssignment is the per-day entry in a weekly plan
type TopicAssignment struct {
	TopicName     string `json:"topic_name"`
	Niche         string `json:"niche"`
	Objective     string `json:"objective"`
	ActivityOne   string `json:"activity_1"`
	ActivityTwo   string `json:"activity_2"`
	EstimatedTime string `json:"estimated_time"`
	LearningStyle string `json:"learning_style"`
}

// WeeklyPlan maps "week_1".."week_4" to a day-name -> assignment mapping
type WeeklyPlan map[string]map[string]TopicAssignment

// MonthlyPlan is the full generated plan for one calendar month. The sections
// beyond the weekly plan are produced by the remote plan service and stored
// as-is; their internal shape is owned by that service, so they stay loosely
// typed here.
type MonthlyPlan struct {
	ChildProfile          map[string]any `json:"childProfile"`
	ProfileAnalysis       map[string]any `json:"profileAnalysis"`
	MatchedTopics         []MatchedTopic `json:"matchedTopics"`
	WeeklyPlan            WeeklyPlan     `json:"weeklyPlan"`
	LearningObjectives    []string       `json:"learningObjectives"`
	RecommendedActivities []string       `json:"recommendedActivities"`
	ProgressTracking      map[string]any `json:"progressTracking"`
	ReviewInsights        map[string]any `json:"reviewInsights"`
	LLMIntegration        map[string]any `json:"llmIntegration"`
	AgentTimings          map[string]any `json:"agentTimings"`
}

// ChildPlanDocument is the durable per-child record: one MonthlyPlan per
// MonthYear key plus the append-only, unique month index. It is mutated only
// through the plan repository's merge operation.
type ChildPlanDocument struct {
	Plans  map[string]MonthlyPlan `json:"plans"`
	Months []string               `json:"months"`
}

// MonthYearKey formats a timestamp as the persistence key for its calendar
// month: month name plus 4-digit year with no separator, e.g. "July2025".
func MonthYearKey(t time.Time) string {
	return t.Format("January2006")
}
