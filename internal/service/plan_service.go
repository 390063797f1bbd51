package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"planweaver/internal/models"
	"planweaver/internal/planner"
)

// planGenerator is the tiered fallback orchestrator
type planGenerator interface {
	Generate(ctx context.Context, profile models.ChildProfile) (*planner.GenerateResult, error)
}

// childStore and planStore are satisfied by the repositories
type childStore interface {
	CreateChild(name, parentEmail string) (*models.Child, error)
	GetChildByID(childID string) (*models.Child, error)
}

type planStore interface {
	MergeMonthlyPlan(childID, monthYear string, plan models.MonthlyPlan) error
	GetChildPlanDocument(childID string) (*models.ChildPlanDocument, error)
}

type notifier interface {
	IsEnabled() bool
	SendPlanReadyEmail(ctx context.Context, toEmail, childName, monthYear string) error
}

// PlanService drives one plan generation end to end: resolve the child, run
// the fallback chain, sanitize, merge into the child's plan document, and
// notify the parent.
type PlanService struct {
	generator planGenerator
	basic     planner.LocalSynthesis
	children  childStore
	plans     planStore
	notify    notifier
	now       func() time.Time
}

// NewPlanService creates a new plan service. basic is the lower-fidelity
// local synthesis used when the fallback chain itself fails.
func NewPlanService(generator planGenerator, basic planner.LocalSynthesis, children childStore, plans planStore, notify notifier) *PlanService {
	return &PlanService{
		generator: generator,
		basic:     basic,
		children:  children,
		plans:     plans,
		notify:    notify,
		now:       time.Now,
	}
}

// PlanGeneration is the result handed back to the HTTP layer
type PlanGeneration struct {
	ChildID   string             `json:"child_id"`
	MonthYear string             `json:"month_year"`
	Source    string             `json:"source"`
	Plan      models.MonthlyPlan `json:"plan"`
}

// GeneratePlan produces and persists this month's plan for the profile.
// Generation itself never fails the request: if the fallback chain errors out
// (a remote rejection, typically), the basic local variant still produces a
// plan. Persistence errors are surfaced.
func (s *PlanService) GeneratePlan(ctx context.Context, profile models.ChildProfile, parentEmail string) (*PlanGeneration, error) {
	child, err := s.resolveChild(profile, parentEmail)
	if err != nil {
		return nil, err
	}
	profile.ChildID = child.ID

	var plan models.MonthlyPlan
	var source string

	result, err := s.generator.Generate(ctx, profile)
	if err != nil {
		// The orchestrator only returns hard rejections. The portal still
		// owes the family a plan, so fall back to the basic local grid.
		log.Printf("Plan generation failed for child %s, using basic fallback: %v", child.ID, err)
		plan = s.basic.Generate(profile)
		source = planner.SourceLocalBasic
	} else {
		plan = result.Plan
		source = result.Source
	}

	monthYear := models.MonthYearKey(s.now())
	sanitized := planner.Sanitize(plan)

	if err := s.plans.MergeMonthlyPlan(child.ID, monthYear, sanitized); err != nil {
		return nil, fmt.Errorf("failed to save plan for %s: %w", monthYear, err)
	}

	if s.notify != nil && s.notify.IsEnabled() {
		if err := s.notify.SendPlanReadyEmail(ctx, child.ParentEmail, child.Name, monthYear); err != nil {
			log.Printf("Warning: failed to send plan-ready email for child %s: %v", child.ID, err)
		}
	}

	return &PlanGeneration{
		ChildID:   child.ID,
		MonthYear: monthYear,
		Source:    source,
		Plan:      sanitized,
	}, nil
}

// resolveChild finds the profile's child or registers it on first generation
func (s *PlanService) resolveChild(profile models.ChildProfile, parentEmail string) (*models.Child, error) {
	if profile.ChildID != "" {
		child, err := s.children.GetChildByID(profile.ChildID)
		if err != nil {
			return nil, err
		}
		if child != nil {
			return child, nil
		}
	}

	child, err := s.children.CreateChild(profile.Name, parentEmail)
	if err != nil {
		return nil, err
	}
	return child, nil
}

// GetPlans returns the child's full plan document
func (s *PlanService) GetPlans(childID string) (*models.ChildPlanDocument, error) {
	return s.plans.GetChildPlanDocument(childID)
}
