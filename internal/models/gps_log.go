package models

// GpsLog represents one breadcrumb of the continuous GPS log of an operation
type GpsLog struct {
	ID          int64   `json:"id" db:"id"`
	OperationID string  `json:"operationId" db:"operation_id"`
	VehicleID   string  `json:"vehicleId" db:"vehicle_id"`
	Latitude    float64 `json:"latitude" db:"latitude"`
	Longitude   float64 `json:"longitude" db:"longitude"`
	SpeedKmh    *float64 `json:"speedKmh,omitempty" db:"speed_kmh"`
	RecordedAt  int64   `json:"recordedAt" db:"recorded_at"` // Unix timestamp in milliseconds
}

// GpsLogsResponse represents a list response of GPS logs
type GpsLogsResponse struct {
	Data  []GpsLog `json:"data"`
	Total int64    `json:"total"`
}
