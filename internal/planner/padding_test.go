package planner

import (
	"testing"

	"planweaver/internal/models"
)

func matchedTopics(names ...string) []models.MatchedTopic {
	topics := make([]models.MatchedTopic, len(names))
	for i, name := range names {
		topics[i] = models.MatchedTopic{TopicName: name, Niche: "Finance"}
	}
	return topics
}

func TestScheduleSizeFor(t *testing.T) {
	if n := ScheduleSizeFor(models.PlanTypeHybrid); n != 4 {
		t.Errorf("hybrid schedule size = %d, want 4", n)
	}
	if n := ScheduleSizeFor(models.PlanTypeFusion); n != 7 {
		t.Errorf("fusion schedule size = %d, want 7", n)
	}
}

func TestPadToScheduleSize(t *testing.T) {
	tests := []struct {
		name     string
		topics   []models.MatchedTopic
		n        int
		expected []string
	}{
		{
			name:     "exact fit needs no padding",
			topics:   matchedTopics("A", "B", "C", "D"),
			n:        4,
			expected: []string{"A", "B", "C", "D"},
		},
		{
			name:     "doubles then truncates",
			topics:   matchedTopics("A", "B", "C"),
			n:        4,
			expected: []string{"A", "B", "C", "A"},
		},
		{
			name:     "fusion size from three topics",
			topics:   matchedTopics("A", "B", "C"),
			n:        7,
			expected: []string{"A", "B", "C", "A", "B", "C"},
		},
		{
			// One self-concatenation cannot reach 4 from a single topic.
			// The result is length 2, not 4. Upstream behavior, kept.
			name:     "short list stays short",
			topics:   matchedTopics("A"),
			n:        4,
			expected: []string{"A", "A"},
		},
		{
			name:     "empty list triggers nothing",
			topics:   nil,
			n:        4,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PadToScheduleSize(tt.topics, tt.n)
			if len(result) != len(tt.expected) {
				t.Fatalf("length = %d, want %d", len(result), len(tt.expected))
			}
			for i, name := range tt.expected {
				if result[i].TopicName != name {
					t.Errorf("position %d: got %q, want %q", i, result[i].TopicName, name)
				}
			}
		})
	}
}

func TestSynthesizeGenericTopics(t *testing.T) {
	topics := SynthesizeGenericTopics([]string{"Music", "Nature", "Music"})

	if len(topics) != 2 {
		t.Fatalf("expected one topic per distinct interest, got %d", len(topics))
	}
	if topics[0].TopicName != "Introduction to Music" {
		t.Errorf("unexpected topic name %q", topics[0].TopicName)
	}
	if topics[1].Niche != "Nature" {
		t.Errorf("expected niche from interest, got %q", topics[1].Niche)
	}
	if topics[0].EstimatedTime != "30 mins" {
		t.Errorf("expected 30 mins estimate, got %q", topics[0].EstimatedTime)
	}
}

func TestSynthesizeGenericTopicsNoInterests(t *testing.T) {
	topics := SynthesizeGenericTopics(nil)

	if len(topics) != 1 {
		t.Fatalf("expected a single general topic, got %d", len(topics))
	}
	if topics[0].TopicName != "Introduction to General Learning" {
		t.Errorf("unexpected topic name %q", topics[0].TopicName)
	}
}
