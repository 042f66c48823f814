package store

import (
	"context"
	"errors"
	"testing"

	"stocktrack/internal/db"
	"stocktrack/internal/model"
)

func TestCreateTransferStartsPending(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	transfer, err := CreateTransfer(ctx, database, 1, 1, 2, 10)
	if err != nil {
		t.Fatalf("CreateTransfer: %v", err)
	}
	if transfer.Status != model.TransferPending {
		t.Errorf("expected status pending, got %q", transfer.Status)
	}
	if transfer.CreatedAt.IsZero() {
		t.Error("expected server-assigned creation timestamp")
	}
	if transfer.Quantity != 10 {
		t.Errorf("expected quantity 10, got %d", transfer.Quantity)
	}
}

func TestListTransfersByStore(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateTransfer(ctx, database, 1, 1, 2, 5)
	CreateTransfer(ctx, database, 1, 2, 3, 5)
	CreateTransfer(ctx, database, 1, 3, 4, 5)

	// Store 2 is source of one transfer and destination of another.
	transfers, err := ListTransfersByStore(ctx, database, 2)
	if err != nil {
		t.Fatalf("ListTransfersByStore: %v", err)
	}
	if len(transfers) != 2 {
		t.Errorf("expected 2 transfers touching store 2, got %d", len(transfers))
	}

	transfers, _ = ListTransfersByStore(ctx, database, 9)
	if len(transfers) != 0 {
		t.Errorf("expected no transfers for store 9, got %d", len(transfers))
	}
}

func TestCompleteTransferLeavesStockAlone(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	p, _ := CreateProduct(ctx, database, "Baby Onesie", 3, "Light Pink")
	a, _ := CreateStore(ctx, database, "Branch A", "Downtown")
	b, _ := CreateStore(ctx, database, "Branch B", "Uptown")
	srcRow, _ := CreateStock(ctx, database, p.ID, a.ID, 50)

	transfer, _ := CreateTransfer(ctx, database, p.ID, a.ID, b.ID, 10)

	completed, err := CompleteTransfer(ctx, database, transfer.ID, false)
	if err != nil {
		t.Fatalf("CompleteTransfer: %v", err)
	}
	if completed.Status != model.TransferCompleted {
		t.Errorf("expected status completed, got %q", completed.Status)
	}

	// A completed transfer is a record of intent only: the source row keeps
	// its quantity and no destination row appears.
	src, _ := GetStock(ctx, database, srcRow.ID)
	if src.Quantity != 50 {
		t.Errorf("expected source quantity unchanged at 50, got %d", src.Quantity)
	}
	dst, _ := ListStockByStore(ctx, database, b.ID)
	if len(dst) != 0 {
		t.Errorf("expected no stock rows at destination, got %d", len(dst))
	}
}

func TestCompleteTransferIdempotent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	transfer, _ := CreateTransfer(ctx, database, 1, 1, 2, 5)

	first, err := CompleteTransfer(ctx, database, transfer.ID, false)
	if err != nil {
		t.Fatalf("first CompleteTransfer: %v", err)
	}
	second, err := CompleteTransfer(ctx, database, transfer.ID, false)
	if err != nil {
		t.Fatalf("second CompleteTransfer: %v", err)
	}
	if first.Status != model.TransferCompleted || second.Status != model.TransferCompleted {
		t.Errorf("expected both completions to report completed, got %q and %q", first.Status, second.Status)
	}
}

func TestCompleteTransferMissing(t *testing.T) {
	database := db.NewTestDB(t)

	_, err := CompleteTransfer(context.Background(), database, 123, false)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCompleteTransferAppliesStock(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	p, _ := CreateProduct(ctx, database, "Baby Onesie", 3, "Dark Blue")
	a, _ := CreateStore(ctx, database, "Branch A", "Downtown")
	b, _ := CreateStore(ctx, database, "Branch B", "Uptown")
	srcRow, _ := CreateStock(ctx, database, p.ID, a.ID, 50)

	transfer, _ := CreateTransfer(ctx, database, p.ID, a.ID, b.ID, 10)

	if _, err := CompleteTransfer(ctx, database, transfer.ID, true); err != nil {
		t.Fatalf("CompleteTransfer: %v", err)
	}

	src, _ := GetStock(ctx, database, srcRow.ID)
	if src.Quantity != 40 {
		t.Errorf("expected source quantity 40, got %d", src.Quantity)
	}

	dst, _ := ListStockByStore(ctx, database, b.ID)
	if len(dst) != 1 || dst[0].Quantity != 10 || dst[0].ProductID != p.ID {
		t.Errorf("expected destination row with quantity 10, got %+v", dst)
	}

	// Re-completing must not move stock again.
	if _, err := CompleteTransfer(ctx, database, transfer.ID, true); err != nil {
		t.Fatalf("second CompleteTransfer: %v", err)
	}
	src, _ = GetStock(ctx, database, srcRow.ID)
	if src.Quantity != 40 {
		t.Errorf("expected source quantity still 40 after re-completion, got %d", src.Quantity)
	}
}

func TestCompleteTransferAppliesStockToExistingRow(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	p, _ := CreateProduct(ctx, database, "Knit Blanket", 9, "Plain White")
	a, _ := CreateStore(ctx, database, "Branch A", "Downtown")
	b, _ := CreateStore(ctx, database, "Branch B", "Uptown")
	CreateStock(ctx, database, p.ID, a.ID, 20)
	dstRow, _ := CreateStock(ctx, database, p.ID, b.ID, 5)

	transfer, _ := CreateTransfer(ctx, database, p.ID, a.ID, b.ID, 8)
	if _, err := CompleteTransfer(ctx, database, transfer.ID, true); err != nil {
		t.Fatalf("CompleteTransfer: %v", err)
	}

	dst, _ := GetStock(ctx, database, dstRow.ID)
	if dst.Quantity != 13 {
		t.Errorf("expected destination quantity 13, got %d", dst.Quantity)
	}
}

func TestCompleteTransferInsufficientStock(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	p, _ := CreateProduct(ctx, database, "Baby Onesie", 6, "Light Blue")
	a, _ := CreateStore(ctx, database, "Branch A", "Downtown")
	b, _ := CreateStore(ctx, database, "Branch B", "Uptown")
	srcRow, _ := CreateStock(ctx, database, p.ID, a.ID, 3)

	transfer, _ := CreateTransfer(ctx, database, p.ID, a.ID, b.ID, 10)

	if _, err := CompleteTransfer(ctx, database, transfer.ID, true); err == nil {
		t.Fatal("expected error for insufficient source stock")
	}

	// The failed completion must leave everything untouched.
	src, _ := GetStock(ctx, database, srcRow.ID)
	if src.Quantity != 3 {
		t.Errorf("expected source quantity unchanged at 3, got %d", src.Quantity)
	}
	got, _ := GetTransfer(ctx, database, transfer.ID)
	if got.Status != model.TransferPending {
		t.Errorf("expected transfer still pending, got %q", got.Status)
	}
}
