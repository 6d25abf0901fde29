package models

// Operation represents one vehicle trip/run from dispatch to completion
type Operation struct {
	ID              string `json:"id" db:"id"`
	OperationNumber string `json:"operationNumber" db:"operation_number"`
	Status          string `json:"status" db:"status"` // PLANNED, IN_PROGRESS, COMPLETED, CANCELLED
	VehicleID       string `json:"vehicleId" db:"vehicle_id"`
	DriverID        string `json:"driverId" db:"driver_id"`

	// Temporal info, Unix timestamps in milliseconds. NULL until the
	// operation actually starts/ends.
	ActualStartTime *int64 `json:"actualStartTime,omitempty" db:"actual_start_time"`
	ActualEndTime   *int64 `json:"actualEndTime,omitempty" db:"actual_end_time"`

	TotalDistanceKm float64 `json:"totalDistanceKm" db:"total_distance_km"`
	Notes           string  `json:"notes,omitempty" db:"notes"`

	CreatedAt int64 `json:"createdAt" db:"created_at"`
	UpdatedAt int64 `json:"updatedAt" db:"updated_at"`

	// Joined rows, populated on detail reads
	Vehicle *Vehicle `json:"vehicle,omitempty" db:"-"`
	Driver  *Driver  `json:"driver,omitempty" db:"-"`
}

// Operation status constants
const (
	OperationStatusPlanned    = "PLANNED"
	OperationStatusInProgress = "IN_PROGRESS"
	OperationStatusCompleted  = "COMPLETED"
	OperationStatusCancelled  = "CANCELLED"
)

// OperationsResponse represents a paginated response of operations
type OperationsResponse struct {
	Data       []Operation `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"pageSize"`
	TotalPages int         `json:"totalPages"`
}
