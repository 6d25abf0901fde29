package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fleetops/fleetops-backend-go/internal/models"
)

// GpsLogRepository handles database operations for GPS breadcrumb logs
type GpsLogRepository struct {
	db *sql.DB
}

// NewGpsLogRepository creates a new GPS log repository
func NewGpsLogRepository(db *sql.DB) *GpsLogRepository {
	return &GpsLogRepository{db: db}
}

// ListByOperation retrieves all GPS logs of an operation ordered by
// recording time ascending (insert order on ties)
func (r *GpsLogRepository) ListByOperation(ctx context.Context, operationID string) ([]models.GpsLog, error) {
	query := `SELECT id, operation_id, vehicle_id, latitude, longitude, speed_kmh, recorded_at
		FROM gps_logs WHERE operation_id = ? ORDER BY recorded_at, id`

	rows, err := r.db.QueryContext(ctx, query, operationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query gps logs: %w", err)
	}
	defer rows.Close()

	var logs []models.GpsLog
	for rows.Next() {
		var g models.GpsLog
		if err := rows.Scan(&g.ID, &g.OperationID, &g.VehicleID, &g.Latitude, &g.Longitude, &g.SpeedKmh, &g.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan gps log: %w", err)
		}
		logs = append(logs, g)
	}

	return logs, rows.Err()
}

// InsertBatch inserts a batch of GPS logs for one operation in a single
// transaction
func (r *GpsLogRepository) InsertBatch(ctx context.Context, operationID string, logs []models.GpsLog) error {
	if len(logs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO gps_logs (operation_id, vehicle_id, latitude, longitude, speed_kmh, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("failed to prepare gps insert: %w", err)
	}
	defer stmt.Close()

	for i := range logs {
		g := &logs[i]
		g.OperationID = operationID
		if _, err := stmt.ExecContext(ctx, g.OperationID, g.VehicleID, g.Latitude, g.Longitude, g.SpeedKmh, g.RecordedAt); err != nil {
			return fmt.Errorf("failed to insert gps log: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit gps logs: %w", err)
	}
	return nil
}

// CountByOperation returns the number of GPS rows stored for an operation
func (r *GpsLogRepository) CountByOperation(ctx context.Context, operationID string) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM gps_logs WHERE operation_id = ?", operationID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count gps logs: %w", err)
	}
	return total, nil
}
