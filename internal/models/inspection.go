package models

// InspectionRecord represents a pre- or post-trip checklist execution
type InspectionRecord struct {
	ID             string `json:"id" db:"id"`
	OperationID    string `json:"operationId" db:"operation_id"`
	InspectionType string `json:"inspectionType" db:"inspection_type"` // PRE_TRIP, POST_TRIP
	Status         string `json:"status" db:"status"`                  // IN_PROGRESS, COMPLETED

	// StartedAt is NULL for records created but never started; CreatedAt
	// always exists. Unix timestamps in milliseconds.
	StartedAt *int64 `json:"startedAt,omitempty" db:"started_at"`
	CreatedAt int64  `json:"createdAt" db:"created_at"`

	// Coordinates captured by the inspecting device, if any
	Latitude  *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude *float64 `json:"longitude,omitempty" db:"longitude"`

	Results []InspectionItemResult `json:"results" db:"-"`
}

// Inspection type constants
const (
	InspectionTypePreTrip  = "PRE_TRIP"
	InspectionTypePostTrip = "POST_TRIP"
)

// Inspection status constants
const (
	InspectionStatusInProgress = "IN_PROGRESS"
	InspectionStatusCompleted  = "COMPLETED"
)

// InspectionItemResult represents one checklist line of an inspection.
// IsPassed is NULL when the check was recorded without a pass/fail outcome
// (e.g. a free-text reading).
type InspectionItemResult struct {
	ID           string `json:"id" db:"id"`
	InspectionID string `json:"inspectionId" db:"inspection_id"`
	CheckName    string `json:"checkName" db:"check_name"`
	ResultValue  string `json:"resultValue,omitempty" db:"result_value"`
	IsPassed     *bool  `json:"isPassed,omitempty" db:"is_passed"`
}
