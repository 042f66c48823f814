package store

import (
	"context"
	"database/sql"
	"fmt"

	"stocktrack/internal/model"
)

// CreateStock creates a stock row. No check is made that the product or
// store exists, or that a row for the same (product, store) pair is absent.
func CreateStock(ctx context.Context, db *sql.DB, productID, storeID int64, quantity int) (*model.Stock, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO stock (product_id, store_id, quantity) VALUES (?, ?, ?)`,
		productID, storeID, quantity,
	)
	if err != nil {
		return nil, fmt.Errorf("creating stock: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting stock id: %w", err)
	}

	return GetStock(ctx, db, id)
}

// GetStock returns a stock row by ID, or nil if no such row exists.
func GetStock(ctx context.Context, db *sql.DB, id int64) (*model.Stock, error) {
	s := &model.Stock{}
	err := db.QueryRowContext(ctx,
		`SELECT id, product_id, store_id, quantity FROM stock WHERE id = ?`, id,
	).Scan(&s.ID, &s.ProductID, &s.StoreID, &s.Quantity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting stock: %w", err)
	}
	return s, nil
}

// ListStockByStore returns all stock rows for a store, each joined with its
// product. The join is a LEFT JOIN: a row whose product was deleted comes
// back with a nil Product instead of being dropped or failing.
func ListStockByStore(ctx context.Context, db *sql.DB, storeID int64) ([]model.StockWithProduct, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT s.id, s.product_id, s.store_id, s.quantity,
		        p.id, p.name, p.size, p.color
		 FROM stock s
		 LEFT JOIN products p ON p.id = s.product_id
		 WHERE s.store_id = ?
		 ORDER BY s.id`, storeID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing stock: %w", err)
	}
	defer rows.Close()

	var stock []model.StockWithProduct
	for rows.Next() {
		var s model.StockWithProduct
		var pid sql.NullInt64
		var name, color sql.NullString
		var size sql.NullInt64
		if err := rows.Scan(&s.ID, &s.ProductID, &s.StoreID, &s.Quantity,
			&pid, &name, &size, &color); err != nil {
			return nil, fmt.Errorf("scanning stock: %w", err)
		}
		if pid.Valid {
			s.Product = &model.Product{
				ID:    pid.Int64,
				Name:  name.String,
				Size:  int(size.Int64),
				Color: color.String,
			}
		}
		stock = append(stock, s)
	}
	return stock, rows.Err()
}

// SetStockQuantity overwrites a stock row's quantity. The new value replaces
// the old unconditionally; there is no delta arithmetic and no floor at zero.
// Returns ErrNotFound if the row does not exist.
func SetStockQuantity(ctx context.Context, db *sql.DB, id int64, quantity int) (*model.Stock, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE stock SET quantity = ? WHERE id = ?`,
		quantity, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating stock: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("updating stock: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	return GetStock(ctx, db, id)
}
