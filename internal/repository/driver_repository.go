package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/fleetops-backend-go/internal/models"
)

// DriverRepository handles database operations for drivers
type DriverRepository struct {
	db *sql.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *sql.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

// List retrieves drivers with pagination
func (r *DriverRepository) List(ctx context.Context, filter models.PageFilter) ([]models.Driver, int64, error) {
	filter.Normalize()

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM drivers").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count drivers: %w", err)
	}

	query := `SELECT id, name, phone, license_number, status, created_at, updated_at
		FROM drivers ORDER BY name LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, filter.PageSize, filter.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query drivers: %w", err)
	}
	defer rows.Close()

	var drivers []models.Driver
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.Phone, &d.LicenseNumber, &d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan driver: %w", err)
		}
		drivers = append(drivers, d)
	}

	return drivers, total, rows.Err()
}

// GetByID retrieves a single driver by ID
func (r *DriverRepository) GetByID(ctx context.Context, id string) (*models.Driver, error) {
	query := `SELECT id, name, phone, license_number, status, created_at, updated_at
		FROM drivers WHERE id = ?`

	var d models.Driver
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name, &d.Phone, &d.LicenseNumber, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return &d, nil
}

// Create inserts a new driver, minting its ID
func (r *DriverRepository) Create(ctx context.Context, d *models.Driver) error {
	d.ID = uuid.NewString()
	now := time.Now().UnixMilli()
	d.CreatedAt = now
	d.UpdatedAt = now
	if d.Status == "" {
		d.Status = models.DriverStatusActive
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO drivers (id, name, phone, license_number, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.Name, d.Phone, d.LicenseNumber, d.Status, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}
	return nil
}

// Update modifies an existing driver
func (r *DriverRepository) Update(ctx context.Context, d *models.Driver) error {
	d.UpdatedAt = time.Now().UnixMilli()

	res, err := r.db.ExecContext(ctx,
		`UPDATE drivers SET name = ?, phone = ?, license_number = ?, status = ?, updated_at = ? WHERE id = ?`,
		d.Name, d.Phone, d.LicenseNumber, d.Status, d.UpdatedAt, d.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update driver: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a driver by ID
func (r *DriverRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM drivers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete driver: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
