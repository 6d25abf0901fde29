package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/fleetops-backend-go/internal/models"
)

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *sql.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// List retrieves locations with pagination
func (r *LocationRepository) List(ctx context.Context, filter models.PageFilter) ([]models.Location, int64, error) {
	filter.Normalize()

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM locations").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count locations: %w", err)
	}

	query := `SELECT id, name, address, latitude, longitude, created_at, updated_at
		FROM locations ORDER BY name LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, filter.PageSize, filter.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.Latitude, &l.Longitude, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, l)
	}

	return locations, total, rows.Err()
}

// GetByID retrieves a single location by ID
func (r *LocationRepository) GetByID(ctx context.Context, id string) (*models.Location, error) {
	query := `SELECT id, name, address, latitude, longitude, created_at, updated_at
		FROM locations WHERE id = ?`

	var l models.Location
	err := r.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.Name, &l.Address, &l.Latitude, &l.Longitude, &l.CreatedAt, &l.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	return &l, nil
}

// Create inserts a new location, minting its ID
func (r *LocationRepository) Create(ctx context.Context, l *models.Location) error {
	l.ID = uuid.NewString()
	now := time.Now().UnixMilli()
	l.CreatedAt = now
	l.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO locations (id, name, address, latitude, longitude, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.Name, l.Address, l.Latitude, l.Longitude, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

// Update modifies an existing location
func (r *LocationRepository) Update(ctx context.Context, l *models.Location) error {
	l.UpdatedAt = time.Now().UnixMilli()

	res, err := r.db.ExecContext(ctx,
		`UPDATE locations SET name = ?, address = ?, latitude = ?, longitude = ?, updated_at = ? WHERE id = ?`,
		l.Name, l.Address, l.Latitude, l.Longitude, l.UpdatedAt, l.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update location: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a location by ID
func (r *LocationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM locations WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
