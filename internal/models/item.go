package models

// Item represents a cargo item type moved during operations
type Item struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Unit      string `json:"unit,omitempty" db:"unit"` // e.g. "kg", "pallet", "box"
	CreatedAt int64  `json:"createdAt" db:"created_at"` // Unix timestamp in milliseconds
	UpdatedAt int64  `json:"updatedAt" db:"updated_at"`
}

// ItemsResponse represents a paginated response of items
type ItemsResponse struct {
	Data       []Item `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}
