package models

// Driver represents a driver assignable to operations
type Driver struct {
	ID            string `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	Phone         string `json:"phone,omitempty" db:"phone"`
	LicenseNumber string `json:"licenseNumber,omitempty" db:"license_number"`
	Status        string `json:"status" db:"status"` // ACTIVE, SUSPENDED, INACTIVE
	CreatedAt     int64  `json:"createdAt" db:"created_at"` // Unix timestamp in milliseconds
	UpdatedAt     int64  `json:"updatedAt" db:"updated_at"`
}

// Driver status constants
const (
	DriverStatusActive    = "ACTIVE"
	DriverStatusSuspended = "SUSPENDED"
	DriverStatusInactive  = "INACTIVE"
)

// DriversResponse represents a paginated response of drivers
type DriversResponse struct {
	Data       []Driver `json:"data"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
}
