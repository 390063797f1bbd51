package planner

import (
	"encoding/json"
	"log"

	"planweaver/internal/models"
)

// Sanitize deep-copies a monthly plan through a JSON round-trip so the
// persistence layer only ever sees plain values. If the round-trip fails, the
// plan is rebuilt section by section from the known top-level fields, with
// unserializable or missing sections defaulting to empty. It never fails.
func Sanitize(plan models.MonthlyPlan) models.MonthlyPlan {
	raw, err := json.Marshal(plan)
	if err == nil {
		var clean models.MonthlyPlan
		if err = json.Unmarshal(raw, &clean); err == nil {
			return clean
		}
	}

	log.Printf("Warning: plan failed serialization round-trip, rebuilding known fields: %v", err)
	return rebuildPlan(plan)
}

func rebuildPlan(plan models.MonthlyPlan) models.MonthlyPlan {
	return models.MonthlyPlan{
		ChildProfile:          sanitizeSection(plan.ChildProfile),
		ProfileAnalysis:       sanitizeSection(plan.ProfileAnalysis),
		MatchedTopics:         sanitizeTopics(plan.MatchedTopics),
		WeeklyPlan:            sanitizeWeeklyPlan(plan.WeeklyPlan),
		LearningObjectives:    sanitizeStrings(plan.LearningObjectives),
		RecommendedActivities: sanitizeStrings(plan.RecommendedActivities),
		ProgressTracking:      sanitizeSection(plan.ProgressTracking),
		ReviewInsights:        sanitizeSection(plan.ReviewInsights),
		LLMIntegration:        sanitizeSection(plan.LLMIntegration),
		AgentTimings:          sanitizeSection(plan.AgentTimings),
	}
}

// sanitizeSection round-trips one loosely-typed section, returning an empty
// object when the section is missing or cannot be serialized
func sanitizeSection(section map[string]any) map[string]any {
	if section == nil {
		return map[string]any{}
	}

	raw, err := json.Marshal(section)
	if err != nil {
		return map[string]any{}
	}
	clean := map[string]any{}
	if err := json.Unmarshal(raw, &clean); err != nil {
		return map[string]any{}
	}
	return clean
}

func sanitizeTopics(topics []models.MatchedTopic) []models.MatchedTopic {
	if topics == nil {
		return []models.MatchedTopic{}
	}
	return topics
}

func sanitizeWeeklyPlan(plan models.WeeklyPlan) models.WeeklyPlan {
	if plan == nil {
		return models.WeeklyPlan{}
	}
	return plan
}

func sanitizeStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
