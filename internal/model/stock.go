package model

// Stock represents the quantity of one product held at one store.
// One row per (product, store) pair by convention; not enforced.
type Stock struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"productId"`
	StoreID   int64 `json:"storeId"`
	Quantity  int   `json:"quantity"`
}

// StockWithProduct is a stock row joined with its product. Product is nil
// when the referenced product has been deleted.
type StockWithProduct struct {
	Stock
	Product *Product `json:"product"`
}
