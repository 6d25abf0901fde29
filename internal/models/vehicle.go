package models

// Vehicle represents a fleet vehicle
type Vehicle struct {
	ID          string `json:"id" db:"id"`
	PlateNumber string `json:"plateNumber" db:"plate_number"`
	Model       string `json:"model,omitempty" db:"model"`
	Status      string `json:"status" db:"status"` // ACTIVE, MAINTENANCE, RETIRED
	CreatedAt   int64  `json:"createdAt" db:"created_at"` // Unix timestamp in milliseconds
	UpdatedAt   int64  `json:"updatedAt" db:"updated_at"`
}

// Vehicle status constants
const (
	VehicleStatusActive      = "ACTIVE"
	VehicleStatusMaintenance = "MAINTENANCE"
	VehicleStatusRetired     = "RETIRED"
)

// VehiclesResponse represents a paginated response of vehicles
type VehiclesResponse struct {
	Data       []Vehicle `json:"data"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}
