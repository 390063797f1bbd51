package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"planweaver/internal/models"
	"planweaver/internal/service"
)

// planAPI is satisfied by service.PlanService
type planAPI interface {
	GeneratePlan(ctx context.Context, profile models.ChildProfile, parentEmail string) (*service.PlanGeneration, error)
	GetPlans(childID string) (*models.ChildPlanDocument, error)
}

// PlanHandler serves the plan generation and retrieval endpoints
type PlanHandler struct {
	plans planAPI
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(plans planAPI) *PlanHandler {
	return &PlanHandler{plans: plans}
}

// RegisterRoutes wires the plan endpoints onto the mux
func (h *PlanHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/plans", h.GeneratePlan)
	mux.HandleFunc("POST /api/children/{id}/plan", h.GeneratePlanForChild)
	mux.HandleFunc("GET /api/children/{id}/plans", h.GetPlans)
}

type generatePlanRequest struct {
	Profile     models.ChildProfile `json:"profile"`
	ParentEmail string              `json:"parent_email"`
}

// GeneratePlan generates this month's plan for a new child profile
func (h *PlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, "")
}

// GeneratePlanForChild generates this month's plan for an existing child
func (h *PlanHandler) GeneratePlanForChild(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, r.PathValue("id"))
}

func (h *PlanHandler) generate(w http.ResponseWriter, r *http.Request, childID string) {
	var req generatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "Failed to decode plan request", err)
		return
	}

	req.Profile.ChildID = childID
	if msg := validateProfile(&req.Profile); msg != "" {
		respondWithError(w, http.StatusBadRequest, msg, "", nil)
		return
	}

	result, err := h.plans.GeneratePlan(r.Context(), req.Profile, req.ParentEmail)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to generate plan", "Plan generation failed", err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// GetPlans returns the child's full plan document
func (h *PlanHandler) GetPlans(w http.ResponseWriter, r *http.Request) {
	childID := r.PathValue("id")
	if childID == "" {
		respondWithError(w, http.StatusBadRequest, "Child ID is required", "", nil)
		return
	}

	doc, err := h.plans.GetPlans(childID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to load plans", fmt.Sprintf("Failed to load plans for child %s", childID), err)
		return
	}

	respondWithJSON(w, http.StatusOK, doc)
}

// validateProfile normalizes the profile and returns a user-facing message
// when it is unusable
func validateProfile(profile *models.ChildProfile) string {
	if profile.Name == "" {
		return "Child name is required"
	}
	if profile.Age <= 0 || profile.Age > 18 {
		return "Age must be between 1 and 18"
	}
	if profile.PlanType == "" {
		profile.PlanType = models.PlanTypeHybrid
	}
	if profile.PlanType != models.PlanTypeHybrid && profile.PlanType != models.PlanTypeFusion {
		return "Plan type must be hybrid or fusion"
	}
	return ""
}
