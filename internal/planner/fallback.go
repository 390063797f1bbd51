package planner

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"planweaver/internal/catalog"
	"planweaver/internal/models"
	"planweaver/internal/planclient"
)

// FallbackState is the sticky circuit breaker shared by all generation calls
// in a process. Once the remote tier exhausts its retry budget for any call,
// the state flips to degraded and stays there for the process lifetime; all
// later calls skip the remote tier entirely. There is no automatic reset;
// recovery means restarting the process. The mutex is required because HTTP
// handlers invoke the engine concurrently.
type FallbackState struct {
	mu       sync.Mutex
	degraded bool
}

// NewFallbackState creates a healthy (non-degraded) breaker state
func NewFallbackState() *FallbackState {
	return &FallbackState{}
}

// Degraded reports whether the remote tier has been switched off
func (s *FallbackState) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// MarkDegraded permanently switches the remote tier off for this process
func (s *FallbackState) MarkDegraded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.degraded {
		log.Printf("Plan service marked degraded: all further generation runs locally")
	}
	s.degraded = true
}

// RemoteGenerator is the remote plan-service dependency of the orchestrator
type RemoteGenerator interface {
	GeneratePlan(ctx context.Context, profile models.ChildProfile) (*models.MonthlyPlan, error)
}

// Rotation selects which local-synthesis grid variant to build
type Rotation int

const (
	// SevenDayRotation is the full-fidelity local tier: the same 4-week,
	// 7-day schedule the remote service would have produced.
	SevenDayRotation Rotation = iota

	// FiveDayRotation is the lower-fidelity variant used when generation
	// fails outright: weekdays only, identical weeks.
	FiveDayRotation
)

// Generation sources recorded for telemetry. Local results are normal
// successes; callers should not treat them differently from remote ones.
const (
	SourceRemote     = "remote"
	SourceLocal      = "local"
	SourceLocalBasic = "local-basic"
)

// LocalSynthesis generates a monthly plan entirely in-process from the static
// catalog: match, pad, build schedule. It performs no I/O and always runs to
// completion once started.
type LocalSynthesis struct {
	Catalog  *catalog.Loader
	Rotation Rotation
}

// Generate builds a local plan for the profile
func (ls LocalSynthesis) Generate(profile models.ChildProfile) models.MonthlyPlan {
	matched := MatchTopics(profile.Interests, profile.Age, ls.Catalog.Topics())

	var selected []models.MatchedTopic
	if len(matched) == 0 {
		selected = SynthesizeGenericTopics(profile.Interests)
	} else if ls.Rotation == SevenDayRotation {
		selected = PadToScheduleSize(matched, ScheduleSizeFor(profile.PlanType))
	} else {
		// The basic variant uses the matches as-is
		selected = matched
	}

	var weekly models.WeeklyPlan
	if ls.Rotation == FiveDayRotation {
		weekly = buildFiveDayPlan(selected, profile.LearningStyle)
	} else {
		weekly = BuildWeeklyPlan(selected, profile.PlanType, profile.LearningStyle)
	}

	objectives := make([]string, 0, len(selected))
	activities := make([]string, 0, 2*len(selected))
	seenObjectives := make(map[string]bool, len(selected))
	for _, topic := range selected {
		if topic.Objective != "" && !seenObjectives[topic.Objective] {
			seenObjectives[topic.Objective] = true
			objectives = append(objectives, topic.Objective)
		}
	}
	seenActivities := make(map[string]bool, 2*len(selected))
	for _, topic := range selected {
		for _, activity := range []string{topic.ActivityOne, topic.ActivityTwo} {
			if activity != "" && !seenActivities[activity] {
				seenActivities[activity] = true
				activities = append(activities, activity)
			}
		}
	}

	return models.MonthlyPlan{
		ChildProfile: profileToMap(profile),
		ProfileAnalysis: map[string]any{
			"matched_from_catalog": len(matched),
			"selected_topics":      len(selected),
			"plan_type":            profile.PlanType,
		},
		MatchedTopics:         selected,
		WeeklyPlan:            weekly,
		LearningObjectives:    objectives,
		RecommendedActivities: activities,
		ProgressTracking:      map[string]any{},
		ReviewInsights:        map[string]any{},
		LLMIntegration:        map[string]any{"used": false},
		AgentTimings:          map[string]any{},
	}
}

func profileToMap(profile models.ChildProfile) map[string]any {
	raw, err := json.Marshal(profile)
	if err != nil {
		return map[string]any{}
	}
	result := map[string]any{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return map[string]any{}
	}
	return result
}

// GenerateResult is a successful generation plus where it came from
type GenerateResult struct {
	Plan   models.MonthlyPlan
	Source string
}

// Orchestrator resolves a plan through the tiered chain: remote service
// first (skipped entirely while degraded), then local synthesis. Remote
// rejections (4xx) are returned to the caller, who owns the lower-fidelity
// recovery path.
type Orchestrator struct {
	remote RemoteGenerator
	local  LocalSynthesis
	state  *FallbackState
}

// NewOrchestrator creates an orchestrator over the given remote client,
// catalog, and breaker state
func NewOrchestrator(remote RemoteGenerator, cat *catalog.Loader, state *FallbackState) *Orchestrator {
	return &Orchestrator{
		remote: remote,
		local:  LocalSynthesis{Catalog: cat, Rotation: SevenDayRotation},
		state:  state,
	}
}

// Generate runs the fallback chain for one profile
func (o *Orchestrator) Generate(ctx context.Context, profile models.ChildProfile) (*GenerateResult, error) {
	if !o.state.Degraded() {
		plan, err := o.remote.GeneratePlan(ctx, profile)
		if err == nil {
			return &GenerateResult{Plan: *plan, Source: SourceRemote}, nil
		}

		var transient *planclient.TransientError
		if !errors.As(err, &transient) {
			return nil, err
		}

		o.state.MarkDegraded()
		log.Printf("Plan generation falling back to local synthesis: %v", err)
	}

	plan := o.local.Generate(profile)
	return &GenerateResult{Plan: plan, Source: SourceLocal}, nil
}
