package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"planweaver/internal/database"
	"planweaver/internal/models"
)

// PlanRepository stores per-child plan documents: one row per (child, month)
// with an ordered, append-only month index
type PlanRepository struct {
	db *database.DB
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *database.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// MergeMonthlyPlan writes one month's record into the child's plan document.
// The month's row is inserted or replaced; rows for other months are never
// touched, and the month keeps its original position in the index when it
// already exists (set-like append).
func (r *PlanRepository) MergeMonthlyPlan(childID, monthYear string, plan models.MonthlyPlan) error {
	record, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan record: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin merge transaction: %w", err)
	}
	defer tx.Rollback()

	position, err := monthPosition(tx, childID, monthYear)
	if err != nil {
		return err
	}

	upsert := r.db.Dialect.RewriteQuery(r.db.Dialect.UpsertPlanQuery())
	if _, err := tx.Tx.Exec(upsert, childID, monthYear, position, string(record)); err != nil {
		return fmt.Errorf("failed to merge plan for %s: %w", monthYear, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit merge: %w", err)
	}
	return nil
}

// monthPosition returns the month's existing index position, or the next free
// position when the month is new
func monthPosition(tx database.DBTX, childID, monthYear string) (int, error) {
	var position int
	query := "SELECT position FROM plan_documents WHERE child_id = ? AND month_year = ?"
	err := tx.QueryRow(query, childID, monthYear).Scan(&position)
	if err == nil {
		return position, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up month position: %w", err)
	}

	query = "SELECT COALESCE(MAX(position) + 1, 0) FROM plan_documents WHERE child_id = ?"
	if err := tx.QueryRow(query, childID).Scan(&position); err != nil {
		return 0, fmt.Errorf("failed to compute next month position: %w", err)
	}
	return position, nil
}

// GetChildPlanDocument reassembles the child's full plan document in index
// order. A child with no plans gets an empty document, not nil.
func (r *PlanRepository) GetChildPlanDocument(childID string) (*models.ChildPlanDocument, error) {
	query := `
		SELECT month_year, record
		FROM plan_documents
		WHERE child_id = ?
		ORDER BY position ASC
	`
	rows, err := r.db.Query(query, childID)
	if err != nil {
		return nil, fmt.Errorf("failed to query plan document: %w", err)
	}
	defer rows.Close()

	doc := &models.ChildPlanDocument{
		Plans:  make(map[string]models.MonthlyPlan),
		Months: []string{},
	}

	for rows.Next() {
		var monthYear, record string
		if err := rows.Scan(&monthYear, &record); err != nil {
			return nil, fmt.Errorf("failed to scan plan row: %w", err)
		}

		var plan models.MonthlyPlan
		if err := json.Unmarshal([]byte(record), &plan); err != nil {
			return nil, fmt.Errorf("failed to decode plan record for %s: %w", monthYear, err)
		}

		doc.Plans[monthYear] = plan
		doc.Months = append(doc.Months, monthYear)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read plan rows: %w", err)
	}

	return doc, nil
}

// GetMonthlyPlan retrieves a single month's record; returns nil when absent
func (r *PlanRepository) GetMonthlyPlan(childID, monthYear string) (*models.MonthlyPlan, error) {
	var record string
	query := "SELECT record FROM plan_documents WHERE child_id = ? AND month_year = ?"
	err := r.db.QueryRow(query, childID, monthYear).Scan(&record)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get plan for %s: %w", monthYear, err)
	}

	var plan models.MonthlyPlan
	if err := json.Unmarshal([]byte(record), &plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan record for %s: %w", monthYear, err)
	}
	return &plan, nil
}
