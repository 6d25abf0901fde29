package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/fleetops-backend-go/internal/models"
)

// InspectionRepository handles database operations for inspection records
type InspectionRepository struct {
	db *sql.DB
}

// NewInspectionRepository creates a new inspection repository
func NewInspectionRepository(db *sql.DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

// ListByOperation retrieves all inspections of an operation with their
// nested item results, ordered by creation time
func (r *InspectionRepository) ListByOperation(ctx context.Context, operationID string) ([]models.InspectionRecord, error) {
	query := `SELECT id, operation_id, inspection_type, status, started_at,
		latitude, longitude, created_at
		FROM inspections WHERE operation_id = ? ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, operationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inspections: %w", err)
	}
	defer rows.Close()

	var inspections []models.InspectionRecord
	for rows.Next() {
		var rec models.InspectionRecord
		err := rows.Scan(
			&rec.ID, &rec.OperationID, &rec.InspectionType, &rec.Status,
			&rec.StartedAt, &rec.Latitude, &rec.Longitude, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inspection: %w", err)
		}
		inspections = append(inspections, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range inspections {
		results, err := r.listResults(ctx, inspections[i].ID)
		if err != nil {
			return nil, err
		}
		inspections[i].Results = results
	}

	return inspections, nil
}

// listResults retrieves the item results of one inspection in insert order
func (r *InspectionRepository) listResults(ctx context.Context, inspectionID string) ([]models.InspectionItemResult, error) {
	query := `SELECT id, inspection_id, check_name, result_value, is_passed
		FROM inspection_results WHERE inspection_id = ? ORDER BY rowid`

	rows, err := r.db.QueryContext(ctx, query, inspectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query inspection results: %w", err)
	}
	defer rows.Close()

	var results []models.InspectionItemResult
	for rows.Next() {
		var res models.InspectionItemResult
		var passed sql.NullBool
		if err := rows.Scan(&res.ID, &res.InspectionID, &res.CheckName, &res.ResultValue, &passed); err != nil {
			return nil, fmt.Errorf("failed to scan inspection result: %w", err)
		}
		if passed.Valid {
			res.IsPassed = &passed.Bool
		}
		results = append(results, res)
	}

	return results, rows.Err()
}

// Create inserts an inspection together with its item results in one
// transaction
func (r *InspectionRepository) Create(ctx context.Context, rec *models.InspectionRecord) error {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UnixMilli()
	if rec.Status == "" {
		rec.Status = models.InspectionStatusInProgress
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO inspections (id, operation_id, inspection_type, status,
			started_at, latitude, longitude, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.OperationID, rec.InspectionType, rec.Status,
		rec.StartedAt, rec.Latitude, rec.Longitude, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create inspection: %w", err)
	}

	for i := range rec.Results {
		res := &rec.Results[i]
		res.ID = uuid.NewString()
		res.InspectionID = rec.ID

		var passed interface{}
		if res.IsPassed != nil {
			passed = *res.IsPassed
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO inspection_results (id, inspection_id, check_name, result_value, is_passed)
			VALUES (?, ?, ?, ?, ?)`,
			res.ID, res.InspectionID, res.CheckName, res.ResultValue, passed,
		)
		if err != nil {
			return fmt.Errorf("failed to create inspection result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit inspection: %w", err)
	}
	return nil
}
