package store

import (
	"context"
	"database/sql"
	"fmt"

	"stocktrack/internal/model"
)

// CreateProduct creates a new product. Identical name/size/color combinations
// may exist; there is no SKU-style uniqueness.
func CreateProduct(ctx context.Context, db *sql.DB, name string, size int, color string) (*model.Product, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO products (name, size, color) VALUES (?, ?, ?)`,
		name, size, color,
	)
	if err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting product id: %w", err)
	}

	return GetProduct(ctx, db, id)
}

// GetProduct returns a product by ID, or nil if no such product exists.
func GetProduct(ctx context.Context, db *sql.DB, id int64) (*model.Product, error) {
	p := &model.Product{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name, size, color FROM products WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Size, &p.Color)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}
	return p, nil
}

// ListProducts returns all products.
func ListProducts(ctx context.Context, db *sql.DB) ([]model.Product, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, size, color FROM products ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Size, &p.Color); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// DeleteProduct removes a product. Stock rows and transfers referencing it
// are left in place; their product lookups come back empty afterwards.
func DeleteProduct(ctx context.Context, db *sql.DB, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetProductPhoto stores a product's photo data.
func SetProductPhoto(ctx context.Context, db *sql.DB, id int64, photo []byte, mime string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE products SET photo = ?, photo_mime = ? WHERE id = ?`,
		photo, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting product photo: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("setting product photo: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetProductPhoto returns a product's photo data and MIME type. Both are
// empty when the product has no photo.
func GetProductPhoto(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var photo []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT photo, photo_mime FROM products WHERE id = ?`, id,
	).Scan(&photo, &mime)
	if err == sql.ErrNoRows {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting product photo: %w", err)
	}
	return photo, mime.String, nil
}
