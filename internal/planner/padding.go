package planner

import "planweaver/internal/models"

// ScheduleSizeFor returns the required topic-list size for a plan type:
// 4 for hybrid, 7 for fusion.
func ScheduleSizeFor(planType string) int {
	if planType == models.PlanTypeFusion {
		return 7
	}
	return 4
}

// PadToScheduleSize stretches a matched-topic list toward the required size n
// by concatenating the list with itself once and truncating to n.
//
// An empty input stays empty; that case belongs to the generic synthesizer,
// not the padding policy. Note that a single concatenation cannot reach n when
// fewer than n/2 topics matched; the result is then shorter than n, and the
// schedule builder indexes modulo the actual length. That shortfall is
// long-standing upstream behavior and is asserted by tests as-is.
func PadToScheduleSize(matched []models.MatchedTopic, n int) []models.MatchedTopic {
	if len(matched) == 0 {
		return nil
	}

	doubled := make([]models.MatchedTopic, 0, 2*len(matched))
	doubled = append(doubled, matched...)
	doubled = append(doubled, matched...)

	if len(doubled) > n {
		doubled = doubled[:n]
	}
	return doubled
}
