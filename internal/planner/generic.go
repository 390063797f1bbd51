package planner

import (
	"fmt"

	"planweaver/internal/models"
)

// SynthesizeGenericTopics builds placeholder topics when the catalog yields no
// matches: one introductory topic per distinct interest, or a single general
// learning topic when the profile has no interests at all. This is also the
// sole topic source for the lowest fallback tier.
func SynthesizeGenericTopics(interests []string) []models.MatchedTopic {
	if len(interests) == 0 {
		return []models.MatchedTopic{genericTopic("General Learning")}
	}

	seen := make(map[string]bool, len(interests))
	topics := make([]models.MatchedTopic, 0, len(interests))
	for _, interest := range interests {
		if seen[interest] {
			continue
		}
		seen[interest] = true
		topics = append(topics, genericTopic(interest))
	}
	return topics
}

func genericTopic(interest string) models.MatchedTopic {
	return models.MatchedTopic{
		TopicName:     fmt.Sprintf("Introduction to %s", interest),
		Niche:         interest,
		AgeRange:      "All ages",
		Objective:     fmt.Sprintf("Explore the basics of %s through hands-on discovery", interest),
		ActivityOne:   fmt.Sprintf("Talk about what %s means and find examples at home", interest),
		ActivityTwo:   fmt.Sprintf("Draw or build something inspired by %s", interest),
		EstimatedTime: "30 mins",
	}
}
