package planner

import (
	"testing"

	"planweaver/internal/models"
)

func TestBuildWeeklyPlanShape(t *testing.T) {
	plan := BuildWeeklyPlan(matchedTopics("A", "B", "C", "D"), models.PlanTypeHybrid, "visual")

	if len(plan) != 4 {
		t.Fatalf("expected 4 weeks, got %d", len(plan))
	}
	for _, weekKey := range models.WeekKeys {
		week, ok := plan[weekKey]
		if !ok {
			t.Fatalf("missing week %s", weekKey)
		}
		if len(week) != 7 {
			t.Errorf("%s: expected 7 days, got %d", weekKey, len(week))
		}
		for _, dayKey := range models.DayKeys {
			assignment, ok := week[dayKey]
			if !ok {
				t.Errorf("%s missing day %s", weekKey, dayKey)
				continue
			}
			if assignment.LearningStyle != "visual" {
				t.Errorf("expected learning style echoed, got %q", assignment.LearningStyle)
			}
		}
	}
}

func TestHybridAdvancesAcrossWeeks(t *testing.T) {
	plan := BuildWeeklyPlan(matchedTopics("A", "B", "C", "D"), models.PlanTypeHybrid, "visual")

	// Week 1 cycles A,B,C,D,A,B,C across monday..sunday
	week1 := []string{"A", "B", "C", "D", "A", "B", "C"}
	for d, dayKey := range models.DayKeys {
		if got := plan["week_1"][dayKey].TopicName; got != week1[d] {
			t.Errorf("week_1 %s = %q, want %q", dayKey, got, week1[d])
		}
	}

	// Week 2 monday continues the cycle: index (1*7+0) % 4 = 3 -> D
	if got := plan["week_2"]["monday"].TopicName; got != "D" {
		t.Errorf("week_2 monday = %q, want D", got)
	}
}

func TestFusionRepeatsIdenticalWeeks(t *testing.T) {
	plan := BuildWeeklyPlan(matchedTopics("A", "B", "C", "D"), models.PlanTypeFusion, "auditory")

	// Fusion week_2 monday is selected[0 % 4] = A, same as week_1 monday
	if got := plan["week_2"]["monday"].TopicName; got != "A" {
		t.Errorf("fusion week_2 monday = %q, want A", got)
	}

	for _, dayKey := range models.DayKeys {
		first := plan["week_1"][dayKey].TopicName
		for _, weekKey := range models.WeekKeys[1:] {
			if got := plan[weekKey][dayKey].TopicName; got != first {
				t.Errorf("fusion %s %s = %q, want %q (weeks must be identical)", weekKey, dayKey, got, first)
			}
		}
	}
}

func TestHybridAndFusionDiverge(t *testing.T) {
	topics := matchedTopics("A", "B", "C", "D")

	hybrid := BuildWeeklyPlan(topics, models.PlanTypeHybrid, "visual")
	fusion := BuildWeeklyPlan(topics, models.PlanTypeFusion, "visual")

	if hybrid["week_2"]["monday"].TopicName == fusion["week_2"]["monday"].TopicName {
		t.Error("hybrid and fusion must diverge at week_2 monday for K=4")
	}
}

func TestBuildWeeklyPlanShortListIndexesModuloLength(t *testing.T) {
	// Padding a single match for a hybrid plan yields length 2; the builder
	// must index modulo 2, not modulo the schedule size.
	selected := PadToScheduleSize(matchedTopics("A"), 4)
	plan := BuildWeeklyPlan(selected, models.PlanTypeHybrid, "visual")

	for _, weekKey := range models.WeekKeys {
		for _, dayKey := range models.DayKeys {
			if got := plan[weekKey][dayKey].TopicName; got != "A" {
				t.Fatalf("%s %s = %q, want A", weekKey, dayKey, got)
			}
		}
	}
}

func TestBuildFiveDayPlan(t *testing.T) {
	plan := buildFiveDayPlan(matchedTopics("A", "B", "C"), "visual")

	if len(plan) != 4 {
		t.Fatalf("expected 4 weeks, got %d", len(plan))
	}

	weekdays := []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
	expected := []string{"A", "B", "C", "A", "B"}
	for _, weekKey := range models.WeekKeys {
		week := plan[weekKey]
		if len(week) != 5 {
			t.Errorf("%s: expected 5 weekdays, got %d", weekKey, len(week))
		}
		if _, ok := week["saturday"]; ok {
			t.Errorf("%s: five-day grid must not contain saturday", weekKey)
		}
		for d, dayKey := range weekdays {
			if got := week[dayKey].TopicName; got != expected[d] {
				t.Errorf("%s %s = %q, want %q", weekKey, dayKey, got, expected[d])
			}
		}
	}
}
