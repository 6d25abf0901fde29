package models

// PageFilter holds the common pagination parameters
type PageFilter struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

// Normalize clamps pagination to sane bounds (default 100, cap 1000)
func (f *PageFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 100
	}
	if f.PageSize > 1000 {
		f.PageSize = 1000
	}
}

// Offset returns the row offset for the current page
func (f *PageFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// OperationFilter represents filter parameters for querying operations
type OperationFilter struct {
	Status    string `form:"status"`
	VehicleID string `form:"vehicleId"`
	DriverID  string `form:"driverId"`
	StartTime int64  `form:"startTime"` // Unix timestamp in milliseconds
	EndTime   int64  `form:"endTime"`
	PageFilter
}

// TimelineFilter represents the query parameters of the timeline endpoint.
// The filters scope the Activity source only; trip boundaries and
// inspections are always included (carried behavior, see DESIGN.md).
type TimelineFilter struct {
	ActivityType string `form:"activityType"`
	StartDate    int64  `form:"startDate"` // Unix timestamp in milliseconds
	EndDate      int64  `form:"endDate"`
	LocationID   string `form:"locationId"`
	ItemID       string `form:"itemId"`
}
