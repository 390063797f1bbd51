package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"planweaver/internal/database"
	"planweaver/internal/models"
)

// ChildRepository handles database operations for children
type ChildRepository struct {
	db *database.DB
}

// NewChildRepository creates a new child repository
func NewChildRepository(db *database.DB) *ChildRepository {
	return &ChildRepository{db: db}
}

// CreateChild registers a child and returns the stored record
func (r *ChildRepository) CreateChild(name, parentEmail string) (*models.Child, error) {
	child := &models.Child{
		ID:          uuid.New().String(),
		Name:        name,
		ParentEmail: parentEmail,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	query := "INSERT INTO children (id, name, parent_email) VALUES (?, ?, ?)"
	if _, err := r.db.Exec(query, child.ID, child.Name, child.ParentEmail); err != nil {
		return nil, fmt.Errorf("failed to create child: %w", err)
	}

	return child, nil
}

// GetChildByID retrieves a child by ID; returns nil when not found
func (r *ChildRepository) GetChildByID(childID string) (*models.Child, error) {
	query := "SELECT id, name, parent_email, created_at, updated_at FROM children WHERE id = ?"
	child := &models.Child{}
	err := r.db.QueryRow(query, childID).Scan(
		&child.ID,
		&child.Name,
		&child.ParentEmail,
		&child.CreatedAt,
		&child.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get child: %w", err)
	}

	return child, nil
}
