package repository

import (
	"path/filepath"
	"reflect"
	"testing"

	"planweaver/internal/database"
	"planweaver/internal/models"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	// A file-backed database: with a pooled :memory: DSN every connection
	// would get its own empty schema.
	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(filepath.Join("..", "..", "migrations")); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func planWithObjective(objective string) models.MonthlyPlan {
	return models.MonthlyPlan{
		LearningObjectives: []string{objective},
		WeeklyPlan: models.WeeklyPlan{
			"week_1": {"monday": models.TopicAssignment{TopicName: objective}},
		},
	}
}

func TestCreateAndGetChild(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChildRepository(db)

	child, err := repo.CreateChild("Maya", "parent@example.com")
	if err != nil {
		t.Fatalf("CreateChild() returned error: %v", err)
	}
	if child.ID == "" {
		t.Fatal("expected generated child ID")
	}

	loaded, err := repo.GetChildByID(child.ID)
	if err != nil {
		t.Fatalf("GetChildByID() returned error: %v", err)
	}
	if loaded == nil {
		t.Fatal("expected child to be found")
	}
	if loaded.Name != "Maya" || loaded.ParentEmail != "parent@example.com" {
		t.Errorf("unexpected child record: %+v", loaded)
	}
}

func TestGetChildByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChildRepository(db)

	child, err := repo.GetChildByID("missing")
	if err != nil {
		t.Fatalf("GetChildByID() returned error: %v", err)
	}
	if child != nil {
		t.Error("expected nil for unknown child")
	}
}

func TestMergePreservesOtherMonths(t *testing.T) {
	db := setupTestDB(t)
	children := NewChildRepository(db)
	plans := NewPlanRepository(db)

	child, err := children.CreateChild("Maya", "")
	if err != nil {
		t.Fatalf("CreateChild() returned error: %v", err)
	}

	june := planWithObjective("june plan")
	if err := plans.MergeMonthlyPlan(child.ID, "June2025", june); err != nil {
		t.Fatalf("merge June: %v", err)
	}

	july := planWithObjective("july plan")
	if err := plans.MergeMonthlyPlan(child.ID, "July2025", july); err != nil {
		t.Fatalf("merge July: %v", err)
	}

	doc, err := plans.GetChildPlanDocument(child.ID)
	if err != nil {
		t.Fatalf("GetChildPlanDocument() returned error: %v", err)
	}

	if len(doc.Plans) != 2 {
		t.Fatalf("expected 2 months, got %d", len(doc.Plans))
	}
	if !reflect.DeepEqual(doc.Plans["June2025"].LearningObjectives, []string{"june plan"}) {
		t.Error("June record must be untouched by the July merge")
	}
	if !reflect.DeepEqual(doc.Months, []string{"June2025", "July2025"}) {
		t.Errorf("months index = %v, want [June2025 July2025]", doc.Months)
	}
}

func TestMergeSameMonthTwiceOverwritesWithoutDuplicateIndex(t *testing.T) {
	db := setupTestDB(t)
	children := NewChildRepository(db)
	plans := NewPlanRepository(db)

	child, err := children.CreateChild("Maya", "")
	if err != nil {
		t.Fatalf("CreateChild() returned error: %v", err)
	}

	if err := plans.MergeMonthlyPlan(child.ID, "July2025", planWithObjective("first")); err != nil {
		t.Fatalf("first merge: %v", err)
	}
	if err := plans.MergeMonthlyPlan(child.ID, "July2025", planWithObjective("second")); err != nil {
		t.Fatalf("second merge: %v", err)
	}

	doc, err := plans.GetChildPlanDocument(child.ID)
	if err != nil {
		t.Fatalf("GetChildPlanDocument() returned error: %v", err)
	}

	if !reflect.DeepEqual(doc.Months, []string{"July2025"}) {
		t.Errorf("months must gain July2025 exactly once, got %v", doc.Months)
	}
	if !reflect.DeepEqual(doc.Plans["July2025"].LearningObjectives, []string{"second"}) {
		t.Error("re-merging the same month must overwrite its record")
	}
}

func TestMergeKeepsInsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	children := NewChildRepository(db)
	plans := NewPlanRepository(db)

	child, err := children.CreateChild("Maya", "")
	if err != nil {
		t.Fatalf("CreateChild() returned error: %v", err)
	}

	months := []string{"May2025", "June2025", "July2025"}
	for _, month := range months {
		if err := plans.MergeMonthlyPlan(child.ID, month, planWithObjective(month)); err != nil {
			t.Fatalf("merge %s: %v", month, err)
		}
	}

	// Re-merging an earlier month must not move it to the end
	if err := plans.MergeMonthlyPlan(child.ID, "May2025", planWithObjective("updated")); err != nil {
		t.Fatalf("re-merge May: %v", err)
	}

	doc, err := plans.GetChildPlanDocument(child.ID)
	if err != nil {
		t.Fatalf("GetChildPlanDocument() returned error: %v", err)
	}
	if !reflect.DeepEqual(doc.Months, months) {
		t.Errorf("months order = %v, want %v", doc.Months, months)
	}
}

func TestGetChildPlanDocumentEmpty(t *testing.T) {
	db := setupTestDB(t)
	plans := NewPlanRepository(db)

	doc, err := plans.GetChildPlanDocument("no-such-child")
	if err != nil {
		t.Fatalf("GetChildPlanDocument() returned error: %v", err)
	}
	if doc == nil {
		t.Fatal("expected an empty document, not nil")
	}
	if len(doc.Plans) != 0 || len(doc.Months) != 0 {
		t.Errorf("expected empty document, got %+v", doc)
	}
}

func TestGetMonthlyPlan(t *testing.T) {
	db := setupTestDB(t)
	children := NewChildRepository(db)
	plans := NewPlanRepository(db)

	child, err := children.CreateChild("Maya", "")
	if err != nil {
		t.Fatalf("CreateChild() returned error: %v", err)
	}

	if err := plans.MergeMonthlyPlan(child.ID, "July2025", planWithObjective("july plan")); err != nil {
		t.Fatalf("merge: %v", err)
	}

	plan, err := plans.GetMonthlyPlan(child.ID, "July2025")
	if err != nil {
		t.Fatalf("GetMonthlyPlan() returned error: %v", err)
	}
	if plan == nil || plan.LearningObjectives[0] != "july plan" {
		t.Errorf("unexpected plan: %+v", plan)
	}

	missing, err := plans.GetMonthlyPlan(child.ID, "August2025")
	if err != nil {
		t.Fatalf("GetMonthlyPlan() for missing month returned error: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing month")
	}
}
