package store

import (
	"context"
	"database/sql"
	"fmt"

	"stocktrack/internal/model"
)

// CreateStore creates a new store. Name and location are not required to be
// unique.
func CreateStore(ctx context.Context, db *sql.DB, name, location string) (*model.Store, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO stores (name, location) VALUES (?, ?)`,
		name, location,
	)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting store id: %w", err)
	}

	return GetStore(ctx, db, id)
}

// GetStore returns a store by ID, or nil if no such store exists.
func GetStore(ctx context.Context, db *sql.DB, id int64) (*model.Store, error) {
	s := &model.Store{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, location FROM stores WHERE id = ?`, id,
	).Scan(&s.ID, &s.Name, &s.Location)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting store: %w", err)
	}
	return s, nil
}

// ListStores returns all stores.
func ListStores(ctx context.Context, db *sql.DB) ([]model.Store, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, location FROM stores ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing stores: %w", err)
	}
	defer rows.Close()

	var stores []model.Store
	for rows.Next() {
		var s model.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Location); err != nil {
			return nil, fmt.Errorf("scanning store: %w", err)
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}
