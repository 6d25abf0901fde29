package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fleetops/fleetops-backend-go/internal/models"
)

// ItemRepository handles database operations for cargo items
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// List retrieves items with pagination
func (r *ItemRepository) List(ctx context.Context, filter models.PageFilter) ([]models.Item, int64, error) {
	filter.Normalize()

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM items").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}

	query := `SELECT id, name, unit, created_at, updated_at
		FROM items ORDER BY name LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, filter.PageSize, filter.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Unit, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, it)
	}

	return items, total, rows.Err()
}

// GetByID retrieves a single item by ID
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	query := `SELECT id, name, unit, created_at, updated_at FROM items WHERE id = ?`

	var it models.Item
	err := r.db.QueryRowContext(ctx, query, id).Scan(&it.ID, &it.Name, &it.Unit, &it.CreatedAt, &it.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return &it, nil
}

// Create inserts a new item, minting its ID
func (r *ItemRepository) Create(ctx context.Context, it *models.Item) error {
	it.ID = uuid.NewString()
	now := time.Now().UnixMilli()
	it.CreatedAt = now
	it.UpdatedAt = now

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO items (id, name, unit, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		it.ID, it.Name, it.Unit, it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// Update modifies an existing item
func (r *ItemRepository) Update(ctx context.Context, it *models.Item) error {
	it.UpdatedAt = time.Now().UnixMilli()

	res, err := r.db.ExecContext(ctx,
		`UPDATE items SET name = ?, unit = ?, updated_at = ? WHERE id = ?`,
		it.Name, it.Unit, it.UpdatedAt, it.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes an item by ID
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
