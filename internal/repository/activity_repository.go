package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/fleetops-backend-go/internal/models"
)

// ActivityRepository handles database operations for work activities
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// ListByOperation retrieves the activities of an operation with their
// location and item rows joined, ordered by the stored sequence number.
// The filter narrows the activity set only.
func (r *ActivityRepository) ListByOperation(ctx context.Context, operationID string, filter models.TimelineFilter) ([]models.Activity, error) {
	query := `SELECT a.id, a.operation_id, a.sequence_number, a.activity_type,
		a.location_id, a.item_id, a.planned_time, a.actual_start_time, a.actual_end_time,
		a.quantity, a.notes, a.latitude, a.longitude, a.gps_recorded_at, a.created_at,
		l.id, l.name, l.address, l.latitude, l.longitude,
		i.id, i.name, i.unit
		FROM activities a
		LEFT JOIN locations l ON l.id = a.location_id
		LEFT JOIN items i ON i.id = a.item_id`

	conditions := []string{"a.operation_id = ?"}
	args := []interface{}{operationID}

	// Add filters
	if filter.ActivityType != "" {
		conditions = append(conditions, "a.activity_type = ?")
		args = append(args, filter.ActivityType)
	}
	if filter.StartDate > 0 {
		conditions = append(conditions, "COALESCE(a.actual_start_time, a.planned_time) >= ?")
		args = append(args, filter.StartDate)
	}
	if filter.EndDate > 0 {
		conditions = append(conditions, "COALESCE(a.actual_start_time, a.planned_time) <= ?")
		args = append(args, filter.EndDate)
	}
	if filter.LocationID != "" {
		conditions = append(conditions, "a.location_id = ?")
		args = append(args, filter.LocationID)
	}
	if filter.ItemID != "" {
		conditions = append(conditions, "a.item_id = ?")
		args = append(args, filter.ItemID)
	}

	query += " WHERE " + strings.Join(conditions, " AND ")
	query += " ORDER BY a.sequence_number, a.created_at"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		var locID, locName, locAddress *string
		var locLat, locLon *float64
		var itemID, itemName, itemUnit *string

		err := rows.Scan(
			&a.ID, &a.OperationID, &a.SequenceNumber, &a.ActivityType,
			&a.LocationID, &a.ItemID, &a.PlannedTime, &a.ActualStartTime, &a.ActualEndTime,
			&a.Quantity, &a.Notes, &a.Latitude, &a.Longitude, &a.GpsRecordedAt, &a.CreatedAt,
			&locID, &locName, &locAddress, &locLat, &locLon,
			&itemID, &itemName, &itemUnit,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}

		// A recorded foreign key whose row has been deleted leaves the
		// joined side NULL; the activity still goes out with a nil
		// location/item.
		if locID != nil {
			a.Location = &models.Location{ID: *locID}
			if locName != nil {
				a.Location.Name = *locName
			}
			if locAddress != nil {
				a.Location.Address = *locAddress
			}
			if locLat != nil {
				a.Location.Latitude = *locLat
			}
			if locLon != nil {
				a.Location.Longitude = *locLon
			}
		}
		if itemID != nil {
			a.Item = &models.Item{ID: *itemID}
			if itemName != nil {
				a.Item.Name = *itemName
			}
			if itemUnit != nil {
				a.Item.Unit = *itemUnit
			}
		}

		activities = append(activities, a)
	}

	return activities, rows.Err()
}

// GetByID retrieves a single activity by ID
func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*models.Activity, error) {
	query := `SELECT id, operation_id, sequence_number, activity_type,
		location_id, item_id, planned_time, actual_start_time, actual_end_time,
		quantity, notes, latitude, longitude, gps_recorded_at, created_at
		FROM activities WHERE id = ?`

	var a models.Activity
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.OperationID, &a.SequenceNumber, &a.ActivityType,
		&a.LocationID, &a.ItemID, &a.PlannedTime, &a.ActualStartTime, &a.ActualEndTime,
		&a.Quantity, &a.Notes, &a.Latitude, &a.Longitude, &a.GpsRecordedAt, &a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return &a, nil
}

// Create inserts a new activity, minting its ID. When no sequence number
// is given the activity is appended after the operation's current maximum.
func (r *ActivityRepository) Create(ctx context.Context, a *models.Activity) error {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now().UnixMilli()
	if a.Quantity == "" {
		a.Quantity = "0"
	}

	if a.SequenceNumber == 0 {
		var max sql.NullInt64
		err := r.db.QueryRowContext(ctx,
			"SELECT MAX(sequence_number) FROM activities WHERE operation_id = ?",
			a.OperationID,
		).Scan(&max)
		if err != nil {
			return fmt.Errorf("failed to get max sequence number: %w", err)
		}
		a.SequenceNumber = int(max.Int64) + 1
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activities (id, operation_id, sequence_number, activity_type,
			location_id, item_id, planned_time, actual_start_time, actual_end_time,
			quantity, notes, latitude, longitude, gps_recorded_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.OperationID, a.SequenceNumber, a.ActivityType,
		a.LocationID, a.ItemID, a.PlannedTime, a.ActualStartTime, a.ActualEndTime,
		a.Quantity, a.Notes, a.Latitude, a.Longitude, a.GpsRecordedAt, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// Update modifies an existing activity's mutable fields
func (r *ActivityRepository) Update(ctx context.Context, a *models.Activity) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE activities SET activity_type = ?, location_id = ?, item_id = ?,
			planned_time = ?, actual_start_time = ?, actual_end_time = ?,
			quantity = ?, notes = ?, latitude = ?, longitude = ?, gps_recorded_at = ?
		WHERE id = ?`,
		a.ActivityType, a.LocationID, a.ItemID,
		a.PlannedTime, a.ActualStartTime, a.ActualEndTime,
		a.Quantity, a.Notes, a.Latitude, a.Longitude, a.GpsRecordedAt,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
