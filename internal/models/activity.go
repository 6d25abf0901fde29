package models

// Activity represents a discrete work segment within an operation
type Activity struct {
	ID             string `json:"id" db:"id"`
	OperationID    string `json:"operationId" db:"operation_id"`
	SequenceNumber int    `json:"sequenceNumber" db:"sequence_number"`
	ActivityType   string `json:"activityType" db:"activity_type"`

	LocationID *string `json:"locationId,omitempty" db:"location_id"`
	ItemID     *string `json:"itemId,omitempty" db:"item_id"`

	// Unix timestamps in milliseconds
	PlannedTime     *int64 `json:"plannedTime,omitempty" db:"planned_time"`
	ActualStartTime *int64 `json:"actualStartTime,omitempty" db:"actual_start_time"`
	ActualEndTime   *int64 `json:"actualEndTime,omitempty" db:"actual_end_time"`

	// Quantity is stored as TEXT (legacy schema); coerced to a number at
	// timeline-normalization time, defaulting to 0
	Quantity string `json:"quantity,omitempty" db:"quantity"`
	Notes    string `json:"notes,omitempty" db:"notes"`

	// Coordinates captured by the driver's device at the activity site
	Latitude      *float64 `json:"latitude,omitempty" db:"latitude"`
	Longitude     *float64 `json:"longitude,omitempty" db:"longitude"`
	GpsRecordedAt *int64   `json:"gpsRecordedAt,omitempty" db:"gps_recorded_at"`

	CreatedAt int64 `json:"createdAt" db:"created_at"`

	// Joined rows, populated on reads when the foreign key is set
	Location *Location `json:"location,omitempty" db:"-"`
	Item     *Item     `json:"item,omitempty" db:"-"`
}

// Activity type constants (fixed category set)
const (
	ActivityTypeLoading      = "LOADING"
	ActivityTypeUnloading    = "UNLOADING"
	ActivityTypeTransporting = "TRANSPORTING"
	ActivityTypeWaiting      = "WAITING"
	ActivityTypeMaintenance  = "MAINTENANCE"
	ActivityTypeRefueling    = "REFUELING"
	ActivityTypeBreak        = "BREAK"
	ActivityTypeOther        = "OTHER"
)

// ActivityTypes lists every valid activity category
var ActivityTypes = []string{
	ActivityTypeLoading,
	ActivityTypeUnloading,
	ActivityTypeTransporting,
	ActivityTypeWaiting,
	ActivityTypeMaintenance,
	ActivityTypeRefueling,
	ActivityTypeBreak,
	ActivityTypeOther,
}

// IsValidActivityType reports whether t is one of the fixed categories
func IsValidActivityType(t string) bool {
	for _, v := range ActivityTypes {
		if v == t {
			return true
		}
	}
	return false
}
