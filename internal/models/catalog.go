package models

// CatalogTopic is one row of the static topics table. Field names follow the
// upstream JSON document exactly, including the spaced keys. Age is free-form
// text (e.g. "Ages 5-12"), not a structured interval.
type CatalogTopic struct {
	Topic         string `json:"Topic"`
	Niche         string `json:"Niche"`
	Age           string `json:"Age"`
	Objective     string `json:"Objective"`
	ActivityOne   string `json:"Activity 1"`
	ActivityTwo   string `json:"Activity 2"`
	EstimatedTime string `json:"Estimated Time"`
	Hashtags      string `json:"Hashtags"`
}

// NicheMeta is one row of the static niches table: a subject category plus
// presentation metadata for the portal UI.
type NicheMeta struct {
	Niche string `json:"Niche"`
	Slug  string `json:"Niche Slug"`
	Icon  string `json:"Icon"`
	Color string `json:"Color"`
}

// MatchedTopic is a CatalogTopic projected into the engine's internal field
// names, tagged with the niche it was matched under. Produced per
// plan-generation call and discarded afterwards.
type MatchedTopic struct {
	TopicName     string `json:"topic_name"`
	Niche         string `json:"niche"`
	AgeRange      string `json:"age_range"`
	Objective     string `json:"objective"`
	ActivityOne   string `json:"activity_1"`
	ActivityTwo   string `json:"activity_2"`
	EstimatedTime string `json:"estimated_time"`
}
