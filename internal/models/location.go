package models

// Location represents a named place (depot, warehouse, customer site)
type Location struct {
	ID        string  `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	Address   string  `json:"address,omitempty" db:"address"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	CreatedAt int64   `json:"createdAt" db:"created_at"` // Unix timestamp in milliseconds
	UpdatedAt int64   `json:"updatedAt" db:"updated_at"`
}

// LocationsResponse represents a paginated response of locations
type LocationsResponse struct {
	Data       []Location `json:"data"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalPages int        `json:"totalPages"`
}
