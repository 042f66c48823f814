package store

import (
	"context"
	"database/sql"
	"fmt"

	"stocktrack/internal/model"
)

// CreateTransfer records the intent to move stock between two stores. The
// transfer always starts out pending with a server-assigned timestamp.
// Source availability, quantity positivity and from != to are not checked
// here; a transfer is a record, not a stock mutation.
func CreateTransfer(ctx context.Context, db *sql.DB, productID, fromStoreID, toStoreID int64, quantity int) (*model.Transfer, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO transfers (product_id, from_store_id, to_store_id, quantity, status)
		 VALUES (?, ?, ?, ?, ?)`,
		productID, fromStoreID, toStoreID, quantity, model.TransferPending,
	)
	if err != nil {
		return nil, fmt.Errorf("creating transfer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting transfer id: %w", err)
	}

	return GetTransfer(ctx, db, id)
}

// GetTransfer returns a transfer by ID, or nil if no such transfer exists.
func GetTransfer(ctx context.Context, db *sql.DB, id int64) (*model.Transfer, error) {
	t := &model.Transfer{}
	err := db.QueryRowContext(ctx,
		`SELECT id, product_id, from_store_id, to_store_id, quantity, status, created_at
		 FROM transfers WHERE id = ?`, id,
	).Scan(&t.ID, &t.ProductID, &t.FromStoreID, &t.ToStoreID, &t.Quantity, &t.Status, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting transfer: %w", err)
	}
	return t, nil
}

// ListTransfersByStore returns all transfers where the store is either the
// source or the destination.
func ListTransfersByStore(ctx context.Context, db *sql.DB, storeID int64) ([]model.Transfer, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, product_id, from_store_id, to_store_id, quantity, status, created_at
		 FROM transfers
		 WHERE from_store_id = ? OR to_store_id = ?
		 ORDER BY id`, storeID, storeID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing transfers: %w", err)
	}
	defer rows.Close()

	var transfers []model.Transfer
	for rows.Next() {
		var t model.Transfer
		if err := rows.Scan(&t.ID, &t.ProductID, &t.FromStoreID, &t.ToStoreID, &t.Quantity, &t.Status, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning transfer: %w", err)
		}
		transfers = append(transfers, t)
	}
	return transfers, rows.Err()
}

// CompleteTransfer marks a transfer completed. Completing an
// already-completed transfer is a no-op, not an error.
//
// With applyStock false (the default mode), only the status changes: stock
// quantities at the two stores are untouched, and reconciling them is left
// to a later step. With applyStock true, the first completion also moves the
// quantity from the source stock row to the destination row in the same
// transaction, failing if the source has less than the transfer quantity.
// Returns ErrNotFound if the transfer does not exist.
func CompleteTransfer(ctx context.Context, db *sql.DB, id int64, applyStock bool) (*model.Transfer, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var status string
	var productID, fromStoreID, toStoreID int64
	var quantity int
	err = tx.QueryRowContext(ctx,
		`SELECT product_id, from_store_id, to_store_id, quantity, status
		 FROM transfers WHERE id = ?`, id,
	).Scan(&productID, &fromStoreID, &toStoreID, &quantity, &status)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting transfer: %w", err)
	}

	// Stock only moves on the pending -> completed edge, so re-completing
	// can never apply the movement twice.
	if applyStock && status == model.TransferPending {
		if err := moveStock(ctx, tx, productID, fromStoreID, toStoreID, quantity); err != nil {
			return nil, err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE transfers SET status = ? WHERE id = ?`,
		model.TransferCompleted, id,
	); err != nil {
		return nil, fmt.Errorf("completing transfer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transfer completion: %w", err)
	}

	return GetTransfer(ctx, db, id)
}

// moveStock shifts quantity between the stock rows of two stores inside an
// open transaction.
func moveStock(ctx context.Context, tx *sql.Tx, productID, fromStoreID, toStoreID int64, quantity int) error {
	var srcID int64
	var available int
	err := tx.QueryRowContext(ctx,
		`SELECT id, quantity FROM stock WHERE product_id = ? AND store_id = ?`,
		productID, fromStoreID,
	).Scan(&srcID, &available)
	if err == sql.ErrNoRows {
		return fmt.Errorf("no stock of product %d at store %d", productID, fromStoreID)
	}
	if err != nil {
		return fmt.Errorf("checking source stock: %w", err)
	}

	if available < quantity {
		return fmt.Errorf("insufficient quantity: have %d, need %d", available, quantity)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE stock SET quantity = quantity - ? WHERE id = ?`,
		quantity, srcID,
	); err != nil {
		return fmt.Errorf("updating source stock: %w", err)
	}

	var dstID int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM stock WHERE product_id = ? AND store_id = ?`,
		productID, toStoreID,
	).Scan(&dstID)
	switch {
	case err == sql.ErrNoRows:
		_, err = tx.ExecContext(ctx,
			`INSERT INTO stock (product_id, store_id, quantity) VALUES (?, ?, ?)`,
			productID, toStoreID, quantity,
		)
	case err == nil:
		_, err = tx.ExecContext(ctx,
			`UPDATE stock SET quantity = quantity + ? WHERE id = ?`,
			quantity, dstID,
		)
	}
	if err != nil {
		return fmt.Errorf("updating destination stock: %w", err)
	}
	return nil
}
