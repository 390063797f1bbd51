package planner

import (
	"strconv"
	"strings"

	"planweaver/internal/models"
)

// maxMatchedTopics caps how many catalog entries a single generation request
// will match, regardless of plan type. The padding policy stretches the list
// to schedule size later.
const maxMatchedTopics = 4

// MatchTopics filters the catalog by interest membership and the age
// heuristic, scanning in stored order and stopping at the cap. It never
// synthesizes placeholder topics; an empty result is the generic-synthesis
// trigger handled by the caller.
func MatchTopics(interests []string, age int, topics []models.CatalogTopic) []models.MatchedTopic {
	if len(interests) == 0 {
		return nil
	}

	interestSet := make(map[string]bool, len(interests))
	for _, interest := range interests {
		interestSet[interest] = true
	}

	var matched []models.MatchedTopic
	for _, topic := range topics {
		if !interestSet[topic.Niche] {
			continue
		}
		if !ageEligible(topic.Age, age) {
			continue
		}

		matched = append(matched, models.MatchedTopic{
			TopicName:     topic.Topic,
			Niche:         topic.Niche,
			AgeRange:      topic.Age,
			Objective:     topic.Objective,
			ActivityOne:   topic.ActivityOne,
			ActivityTwo:   topic.ActivityTwo,
			EstimatedTime: topic.EstimatedTime,
		})

		if len(matched) >= maxMatchedTopics {
			break
		}
	}

	return matched
}

// ageEligible applies the catalog's age heuristic: the free-form age text
// matches when it contains the child's age as a decimal string, or one of two
// common range spellings. This is a textual check, not range parsing: the
// catalog's Age column is unstructured prose and the upstream matching
// contract is defined in terms of these substrings.
func ageEligible(ageText string, age int) bool {
	if strings.Contains(ageText, strconv.Itoa(age)) {
		return true
	}
	if strings.Contains(ageText, "5-12") {
		return true
	}
	if strings.Contains(ageText, "3 and 4") {
		return true
	}
	return false
}
