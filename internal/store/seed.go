package store

import (
	"context"
	"database/sql"
	"fmt"

	"stocktrack/internal/model"
)

// SeedResult describes what Seed created.
type SeedResult struct {
	Stores   []model.Store   `json:"stores"`
	Products []model.Product `json:"products"`
	Stock    []model.Stock   `json:"stock"`
}

// Seed inserts the demo dataset: two stores, three products and three stock
// rows. Each insert stands alone; if one fails, earlier inserts remain.
func Seed(ctx context.Context, db *sql.DB) (*SeedResult, error) {
	branchA, err := CreateStore(ctx, db, "Branch A", "Downtown")
	if err != nil {
		return nil, fmt.Errorf("seeding stores: %w", err)
	}
	branchB, err := CreateStore(ctx, db, "Branch B", "Uptown")
	if err != nil {
		return nil, fmt.Errorf("seeding stores: %w", err)
	}

	products := []struct {
		name  string
		size  int
		color string
	}{
		{"Baby Onesie", 3, "Light Pink"},
		{"Baby Onesie", 6, "Dark Blue"},
		{"Knit Blanket", 9, "Plain White"},
	}

	result := &SeedResult{Stores: []model.Store{*branchA, *branchB}}
	for _, p := range products {
		created, err := CreateProduct(ctx, db, p.name, p.size, p.color)
		if err != nil {
			return nil, fmt.Errorf("seeding products: %w", err)
		}
		result.Products = append(result.Products, *created)
	}

	stock := []struct {
		product model.Product
		store   model.Store
		qty     int
	}{
		{result.Products[0], *branchA, 50},
		{result.Products[1], *branchA, 30},
		{result.Products[2], *branchB, 25},
	}
	for _, s := range stock {
		created, err := CreateStock(ctx, db, s.product.ID, s.store.ID, s.qty)
		if err != nil {
			return nil, fmt.Errorf("seeding stock: %w", err)
		}
		result.Stock = append(result.Stock, *created)
	}

	return result, nil
}
