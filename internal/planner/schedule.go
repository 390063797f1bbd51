package planner

import "planweaver/internal/models"

// BuildWeeklyPlan arranges the selected topics into a 4-week grid with all
// seven day keys in Monday-to-Sunday order. The indexing rule is the entire
// semantic difference between the two plan types:
//
//   - hybrid: selected[(week*7 + day) % K]; topics advance continuously
//     across the 28-day span, so every week differs (variety)
//   - fusion: selected[day % K]; the same 7-day rotation repeats every
//     week (consistency)
//
// K is the actual list length, which may be shorter than the schedule size
// when padding came up short.
func BuildWeeklyPlan(selected []models.MatchedTopic, planType, learningStyle string) models.WeeklyPlan {
	if len(selected) == 0 {
		return models.WeeklyPlan{}
	}

	k := len(selected)
	plan := make(models.WeeklyPlan, len(models.WeekKeys))

	for w, weekKey := range models.WeekKeys {
		week := make(map[string]models.TopicAssignment, len(models.DayKeys))
		for d, dayKey := range models.DayKeys {
			var idx int
			if planType == models.PlanTypeFusion {
				idx = d % k
			} else {
				idx = (w*7 + d) % k
			}
			week[dayKey] = assignmentFor(selected[idx], learningStyle)
		}
		plan[weekKey] = week
	}

	return plan
}

// buildFiveDayPlan is the lower-fidelity fallback grid: weekdays only, with
// the same day-indexed rotation in every week regardless of plan type.
func buildFiveDayPlan(selected []models.MatchedTopic, learningStyle string) models.WeeklyPlan {
	if len(selected) == 0 {
		return models.WeeklyPlan{}
	}

	k := len(selected)
	weekdays := models.DayKeys[:5]
	plan := make(models.WeeklyPlan, len(models.WeekKeys))

	for _, weekKey := range models.WeekKeys {
		week := make(map[string]models.TopicAssignment, len(weekdays))
		for d, dayKey := range weekdays {
			week[dayKey] = assignmentFor(selected[d%k], learningStyle)
		}
		plan[weekKey] = week
	}

	return plan
}

func assignmentFor(topic models.MatchedTopic, learningStyle string) models.TopicAssignment {
	return models.TopicAssignment{
		TopicName:     topic.TopicName,
		Niche:         topic.Niche,
		Objective:     topic.Objective,
		ActivityOne:   topic.ActivityOne,
		ActivityTwo:   topic.ActivityTwo,
		EstimatedTime: topic.EstimatedTime,
		LearningStyle: learningStyle,
	}
}
