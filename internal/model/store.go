package model

// Store represents a physical shop location that holds stock.
type Store struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
