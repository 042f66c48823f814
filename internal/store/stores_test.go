package store

import (
	"context"
	"testing"

	"stocktrack/internal/db"
)

func TestCreateAndListStores(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	a, err := CreateStore(ctx, database, "Branch A", "Downtown")
	if err != nil {
		t.Fatalf("CreateStore: %v", err)
	}
	if a.ID != 1 {
		t.Errorf("expected first store id 1, got %d", a.ID)
	}

	b, _ := CreateStore(ctx, database, "Branch B", "Uptown")
	if b.ID != 2 {
		t.Errorf("expected second store id 2, got %d", b.ID)
	}

	// Duplicate names are allowed.
	c, err := CreateStore(ctx, database, "Branch A", "Downtown")
	if err != nil {
		t.Fatalf("CreateStore duplicate name: %v", err)
	}
	if c.ID != 3 {
		t.Errorf("expected third store id 3, got %d", c.ID)
	}

	stores, err := ListStores(ctx, database)
	if err != nil {
		t.Fatalf("ListStores: %v", err)
	}
	if len(stores) != 3 {
		t.Errorf("expected 3 stores, got %d", len(stores))
	}
}

func TestGetStoreMissing(t *testing.T) {
	database := db.NewTestDB(t)

	s, err := GetStore(context.Background(), database, 42)
	if err != nil {
		t.Fatalf("GetStore: %v", err)
	}
	if s != nil {
		t.Errorf("expected nil for missing store, got %+v", s)
	}
}
