package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/fleetops-backend-go/internal/models"
)

// VehicleRepository handles database operations for vehicles
type VehicleRepository struct {
	db *sql.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// List retrieves vehicles with pagination
func (r *VehicleRepository) List(ctx context.Context, filter models.PageFilter) ([]models.Vehicle, int64, error) {
	filter.Normalize()

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM vehicles").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	query := `SELECT id, plate_number, model, status, created_at, updated_at
		FROM vehicles ORDER BY plate_number LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, filter.PageSize, filter.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.PlateNumber, &v.Model, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, total, rows.Err()
}

// GetByID retrieves a single vehicle by ID
func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	query := `SELECT id, plate_number, model, status, created_at, updated_at
		FROM vehicles WHERE id = ?`

	var v models.Vehicle
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.PlateNumber, &v.Model, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return &v, nil
}

// Create inserts a new vehicle, minting its ID
func (r *VehicleRepository) Create(ctx context.Context, v *models.Vehicle) error {
	v.ID = uuid.NewString()
	now := time.Now().UnixMilli()
	v.CreatedAt = now
	v.UpdatedAt = now
	if v.Status == "" {
		v.Status = models.VehicleStatusActive
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO vehicles (id, plate_number, model, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		v.ID, v.PlateNumber, v.Model, v.Status, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// Update modifies an existing vehicle
func (r *VehicleRepository) Update(ctx context.Context, v *models.Vehicle) error {
	v.UpdatedAt = time.Now().UnixMilli()

	res, err := r.db.ExecContext(ctx,
		`UPDATE vehicles SET plate_number = ?, model = ?, status = ?, updated_at = ? WHERE id = ?`,
		v.PlateNumber, v.Model, v.Status, v.UpdatedAt, v.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a vehicle by ID
func (r *VehicleRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM vehicles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
