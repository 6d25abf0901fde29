package models

// Timeline event type constants. Activity events carry the activity's
// category verbatim (see ActivityTypes).
const (
	EventTypeTripStart      = "TRIP_START"
	EventTypeTripEnd        = "TRIP_END"
	EventTypePreInspection  = "PRE_INSPECTION"
	EventTypePostInspection = "POST_INSPECTION"
)

// GpsPoint is a single captured coordinate attached to a timeline event
type GpsPoint struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	RecordedAt int64   `json:"recordedAt"` // Unix timestamp in milliseconds
}

// InspectionSummary holds derived pass/fail counts for one inspection.
// Results with no recorded outcome count toward Total only, so
// Passed+Failed <= Total.
type InspectionSummary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// TimelineEvent is the common shape every source record is normalized
// into. Timestamp may be nil after normalization; the merge engine floors
// such events to the front before assigning sequence numbers.
type TimelineEvent struct {
	ID             string  `json:"id"`
	SequenceNumber int     `json:"sequenceNumber"`
	EventType      string  `json:"eventType"`
	Timestamp      *int64  `json:"timestamp"` // Unix timestamp in milliseconds

	Location          *Location          `json:"location,omitempty"`
	GpsLocation       *GpsPoint          `json:"gpsLocation,omitempty"`
	Quantity          *float64           `json:"quantity,omitempty"`
	Item              *Item              `json:"item,omitempty"`
	InspectionSummary *InspectionSummary `json:"inspectionSummary,omitempty"`
	Notes             string             `json:"notes,omitempty"`
}

// RoutePoint is one entry of the continuous route track, kept separate
// from the discrete timeline events
type RoutePoint struct {
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	SpeedKmh   *float64 `json:"speedKmh,omitempty"`
	RecordedAt int64    `json:"recordedAt"` // Unix timestamp in milliseconds
}

// OperationSummary is the operation header returned alongside the timeline
type OperationSummary struct {
	ID              string   `json:"id"`
	OperationNumber string   `json:"operationNumber"`
	Status          string   `json:"status"`
	Vehicle         *Vehicle `json:"vehicle,omitempty"`
	Driver          *Driver  `json:"driver,omitempty"`
	ActualStartTime *int64   `json:"actualStartTime,omitempty"`
	ActualEndTime   *int64   `json:"actualEndTime,omitempty"`
	TotalDistanceKm float64  `json:"totalDistanceKm"`
	Notes           string   `json:"notes,omitempty"`
}

// OperationTimeline is the full aggregation result for one operation
type OperationTimeline struct {
	Data         []TimelineEvent  `json:"data"`
	Total        int              `json:"total"`
	Operation    OperationSummary `json:"operation"`
	RouteGpsLogs []RoutePoint     `json:"routeGpsLogs"`
}
