package model

import "time"

// Transfer records the intent to move a quantity of a product between two
// stores. Its status alone does not guarantee stock actually moved.
type Transfer struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"productId"`
	FromStoreID int64     `json:"fromStoreId"`
	ToStoreID   int64     `json:"toStoreId"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Transfer statuses. The only transition is pending -> completed.
const (
	TransferPending   = "pending"
	TransferCompleted = "completed"
)
