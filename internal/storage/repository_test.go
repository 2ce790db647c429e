package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type testNote struct {
	BaseEntity

	Title string `json:"title"`
	Body  string `json:"body"`
}

func newTestDB(t *testing.T) *badger.DB {
	t.Helper()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func newTestRepository(t *testing.T) *Repository[*testNote] {
	t.Helper()

	return NewRepository(newTestDB(t), "notes", func() *testNote { return &testNote{} })
}

func TestRepository_CreateAndList(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, title := range []string{"first", "second", "third"} {
		if err := repo.Create(ctx, &testNote{Title: title}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	notes, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(notes) != 3 {
		t.Errorf("Expected 3 notes, got %d", len(notes))
	}

	for _, note := range notes {
		if note.ID == uuid.Nil {
			t.Error("Expected a generated ID")
		}
		if note.CreatedAt.IsZero() || note.UpdatedAt.IsZero() {
			t.Error("Expected store-assigned timestamps")
		}
	}
}

func TestRepository_ListEmpty(t *testing.T) {
	repo := newTestRepository(t)

	notes, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if notes == nil {
		t.Error("Expected an empty slice, got nil")
	}
	if len(notes) != 0 {
		t.Errorf("Expected no notes, got %d", len(notes))
	}
}

func TestRepository_Get(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	note := &testNote{Title: "keep", Body: "contents"}
	if err := repo.Create(ctx, note); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.Get(ctx, note.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if got.ID != note.ID {
		t.Errorf("Expected ID %s, got %s", note.ID, got.ID)
	}
	if got.Title != "keep" || got.Body != "contents" {
		t.Errorf("Entity fields not preserved: %+v", got)
	}
}

func TestRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestRepository_CreateKeepsClientID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id := uuid.New()
	if err := repo.Create(ctx, &testNote{BaseEntity: BaseEntity{ID: id}, Title: "mine"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != id {
		t.Errorf("Expected client-supplied ID %s, got %s", id, got.ID)
	}
}

func TestRepository_CreateConflict(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id := uuid.New()
	if err := repo.Create(ctx, &testNote{BaseEntity: BaseEntity{ID: id}}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err := repo.Create(ctx, &testNote{BaseEntity: BaseEntity{ID: id}})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("Expected ErrConflict, got %v", err)
	}
}

func TestRepository_Update(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	note := &testNote{Title: "before"}
	if err := repo.Create(ctx, note); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := repo.Update(ctx, note.ID, func(n *testNote) error {
		n.Title = "after"
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != "after" {
		t.Errorf("Expected title 'after', got '%s'", updated.Title)
	}
	if updated.ID != note.ID {
		t.Error("Update must not change the ID")
	}
	if !updated.CreatedAt.Equal(note.CreatedAt) {
		t.Error("Update must not change CreatedAt")
	}
	if updated.UpdatedAt.Before(note.UpdatedAt) {
		t.Error("Expected UpdatedAt to be bumped")
	}
}

func TestRepository_UpdateMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Update(context.Background(), uuid.New(), func(n *testNote) error {
		return nil
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	note := &testNote{Title: "gone"}
	if err := repo.Create(ctx, note); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := repo.Delete(ctx, note.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := repo.Get(ctx, note.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	if err := repo.Delete(ctx, note.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestRepository_Count(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0, got %d", count)
	}

	for range 5 {
		if err := repo.Create(ctx, &testNote{}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	count, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 5 {
		t.Errorf("Expected 5, got %d", count)
	}
}

func TestRepository_CollectionsAreIsolated(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	notes := NewRepository(db, "notes", func() *testNote { return &testNote{} })
	drafts := NewRepository(db, "drafts", func() *testNote { return &testNote{} })

	if err := notes.Create(ctx, &testNote{Title: "note"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := drafts.Create(ctx, &testNote{Title: "draft"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := notes.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "note" {
		t.Errorf("Expected only the note, got %+v", got)
	}
}

func TestRepository_ContextCancelled(t *testing.T) {
	repo := newTestRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.List(ctx); err == nil {
		t.Error("Expected error for cancelled context")
	}
	if err := repo.Create(ctx, &testNote{}); err == nil {
		t.Error("Expected error for cancelled context")
	}
}
