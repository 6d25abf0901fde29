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

// OperationRepository handles database operations for operations (trips)
type OperationRepository struct {
	db *sql.DB
}

// NewOperationRepository creates a new operation repository
func NewOperationRepository(db *sql.DB) *OperationRepository {
	return &OperationRepository{db: db}
}

// List retrieves operations with filtering and pagination
func (r *OperationRepository) List(ctx context.Context, filter models.OperationFilter) ([]models.Operation, int64, error) {
	query := `SELECT id, operation_number, status, vehicle_id, driver_id,
		actual_start_time, actual_end_time, total_distance_km, notes,
		created_at, updated_at
		FROM operations`

	var conditions []string
	var args []interface{}

	// Add filters
	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.VehicleID != "" {
		conditions = append(conditions, "vehicle_id = ?")
		args = append(args, filter.VehicleID)
	}
	if filter.DriverID != "" {
		conditions = append(conditions, "driver_id = ?")
		args = append(args, filter.DriverID)
	}
	if filter.StartTime > 0 {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, filter.StartTime)
	}
	if filter.EndTime > 0 {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, filter.EndTime)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	// Get total count
	countQuery := "SELECT COUNT(*) FROM operations"
	if len(conditions) > 0 {
		countQuery += " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count operations: %w", err)
	}

	filter.Normalize()
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, filter.PageSize, filter.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query operations: %w", err)
	}
	defer rows.Close()

	var operations []models.Operation
	for rows.Next() {
		var op models.Operation
		err := rows.Scan(
			&op.ID, &op.OperationNumber, &op.Status, &op.VehicleID, &op.DriverID,
			&op.ActualStartTime, &op.ActualEndTime, &op.TotalDistanceKm, &op.Notes,
			&op.CreatedAt, &op.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan operation: %w", err)
		}
		operations = append(operations, op)
	}

	return operations, total, rows.Err()
}

// GetByID retrieves a single operation by ID with its vehicle and driver
// joined. Returns (nil, nil) when the operation does not exist; a missing
// vehicle or driver row leaves the corresponding field nil.
func (r *OperationRepository) GetByID(ctx context.Context, id string) (*models.Operation, error) {
	query := `SELECT o.id, o.operation_number, o.status, o.vehicle_id, o.driver_id,
		o.actual_start_time, o.actual_end_time, o.total_distance_km, o.notes,
		o.created_at, o.updated_at,
		v.id, v.plate_number, v.model, v.status, v.created_at, v.updated_at,
		d.id, d.name, d.phone, d.license_number, d.status, d.created_at, d.updated_at
		FROM operations o
		LEFT JOIN vehicles v ON v.id = o.vehicle_id
		LEFT JOIN drivers d ON d.id = o.driver_id
		WHERE o.id = ?`

	var op models.Operation
	var v vehicleRow
	var d driverRow
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&op.ID, &op.OperationNumber, &op.Status, &op.VehicleID, &op.DriverID,
		&op.ActualStartTime, &op.ActualEndTime, &op.TotalDistanceKm, &op.Notes,
		&op.CreatedAt, &op.UpdatedAt,
		&v.id, &v.plateNumber, &v.model, &v.status, &v.createdAt, &v.updatedAt,
		&d.id, &d.name, &d.phone, &d.licenseNumber, &d.status, &d.createdAt, &d.updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get operation: %w", err)
	}

	op.Vehicle = v.toModel()
	op.Driver = d.toModel()
	return &op, nil
}

// Create inserts a new operation, minting its ID
func (r *OperationRepository) Create(ctx context.Context, op *models.Operation) error {
	op.ID = uuid.NewString()
	now := time.Now().UnixMilli()
	op.CreatedAt = now
	op.UpdatedAt = now
	if op.Status == "" {
		op.Status = models.OperationStatusPlanned
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO operations (id, operation_number, status, vehicle_id, driver_id,
			actual_start_time, actual_end_time, total_distance_km, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		op.ID, op.OperationNumber, op.Status, op.VehicleID, op.DriverID,
		op.ActualStartTime, op.ActualEndTime, op.TotalDistanceKm, op.Notes,
		op.CreatedAt, op.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create operation: %w", err)
	}
	return nil
}

// Update modifies an existing operation's editable fields
func (r *OperationRepository) Update(ctx context.Context, op *models.Operation) error {
	op.UpdatedAt = time.Now().UnixMilli()

	res, err := r.db.ExecContext(ctx,
		`UPDATE operations SET operation_number = ?, status = ?, vehicle_id = ?,
			driver_id = ?, notes = ?, updated_at = ? WHERE id = ?`,
		op.OperationNumber, op.Status, op.VehicleID, op.DriverID, op.Notes,
		op.UpdatedAt, op.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update operation: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Start stamps the actual start time and flips status to IN_PROGRESS
func (r *OperationRepository) Start(ctx context.Context, id string, startedAt int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE operations SET status = ?, actual_start_time = ?, updated_at = ? WHERE id = ?`,
		models.OperationStatusInProgress, startedAt, time.Now().UnixMilli(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to start operation: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Complete stamps the actual end time, stores the travelled distance and
// flips status to COMPLETED
func (r *OperationRepository) Complete(ctx context.Context, id string, endedAt int64, distanceKm float64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE operations SET status = ?, actual_end_time = ?, total_distance_km = ?, updated_at = ? WHERE id = ?`,
		models.OperationStatusCompleted, endedAt, distanceKm, time.Now().UnixMilli(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete operation: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes an operation by ID
func (r *OperationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM operations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete operation: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// vehicleRow buffers a LEFT JOINed vehicle that may be entirely NULL
type vehicleRow struct {
	id          *string
	plateNumber *string
	model       *string
	status      *string
	createdAt   *int64
	updatedAt   *int64
}

func (v *vehicleRow) toModel() *models.Vehicle {
	if v.id == nil {
		return nil
	}
	m := &models.Vehicle{ID: *v.id}
	if v.plateNumber != nil {
		m.PlateNumber = *v.plateNumber
	}
	if v.model != nil {
		m.Model = *v.model
	}
	if v.status != nil {
		m.Status = *v.status
	}
	if v.createdAt != nil {
		m.CreatedAt = *v.createdAt
	}
	if v.updatedAt != nil {
		m.UpdatedAt = *v.updatedAt
	}
	return m
}

// driverRow buffers a LEFT JOINed driver that may be entirely NULL
type driverRow struct {
	id            *string
	name          *string
	phone         *string
	licenseNumber *string
	status        *string
	createdAt     *int64
	updatedAt     *int64
}

func (d *driverRow) toModel() *models.Driver {
	if d.id == nil {
		return nil
	}
	m := &models.Driver{ID: *d.id}
	if d.name != nil {
		m.Name = *d.name
	}
	if d.phone != nil {
		m.Phone = *d.phone
	}
	if d.licenseNumber != nil {
		m.LicenseNumber = *d.licenseNumber
	}
	if d.status != nil {
		m.Status = *d.status
	}
	if d.createdAt != nil {
		m.CreatedAt = *d.createdAt
	}
	if d.updatedAt != nil {
		m.UpdatedAt = *d.updatedAt
	}
	return m
}
