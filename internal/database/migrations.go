package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents one schema migration step
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the ordered schema history; the DDL ships with the binary
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_fleet_tables",
		SQL: `
		CREATE TABLE IF NOT EXISTS vehicles (
			id TEXT PRIMARY KEY,
			plate_number TEXT NOT NULL UNIQUE,
			model TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'ACTIVE',
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS drivers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			license_number TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'ACTIVE',
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS locations (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			unit TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);
		`,
	},
	{
		Version: 2,
		Name:    "create_operation_tables",
		SQL: `
		CREATE TABLE IF NOT EXISTS operations (
			id TEXT PRIMARY KEY,
			operation_number TEXT NOT NULL UNIQUE,
			status TEXT NOT NULL DEFAULT 'PLANNED',
			vehicle_id TEXT NOT NULL REFERENCES vehicles(id),
			driver_id TEXT NOT NULL REFERENCES drivers(id),
			actual_start_time INTEGER,
			actual_end_time INTEGER,
			total_distance_km REAL NOT NULL DEFAULT 0,
			notes TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS inspections (
			id TEXT PRIMARY KEY,
			operation_id TEXT NOT NULL REFERENCES operations(id),
			inspection_type TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'IN_PROGRESS',
			started_at INTEGER,
			latitude REAL,
			longitude REAL,
			created_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS inspection_results (
			id TEXT PRIMARY KEY,
			inspection_id TEXT NOT NULL REFERENCES inspections(id),
			check_name TEXT NOT NULL DEFAULT '',
			result_value TEXT NOT NULL DEFAULT '',
			is_passed INTEGER
		);

		CREATE TABLE IF NOT EXISTS activities (
			id TEXT PRIMARY KEY,
			operation_id TEXT NOT NULL REFERENCES operations(id),
			sequence_number INTEGER NOT NULL DEFAULT 0,
			activity_type TEXT NOT NULL,
			location_id TEXT REFERENCES locations(id),
			item_id TEXT REFERENCES items(id),
			planned_time INTEGER,
			actual_start_time INTEGER,
			actual_end_time INTEGER,
			quantity TEXT NOT NULL DEFAULT '0',
			notes TEXT NOT NULL DEFAULT '',
			latitude REAL,
			longitude REAL,
			gps_recorded_at INTEGER,
			created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_inspections_operation ON inspections(operation_id);
		CREATE INDEX IF NOT EXISTS idx_activities_operation ON activities(operation_id);
		`,
	},
	{
		Version: 3,
		Name:    "create_gps_logs",
		SQL: `
		CREATE TABLE IF NOT EXISTS gps_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			operation_id TEXT NOT NULL REFERENCES operations(id),
			vehicle_id TEXT NOT NULL DEFAULT '',
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			speed_kmh REAL,
			recorded_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_gps_logs_operation ON gps_logs(operation_id, recorded_at);
		`,
	},
}

// Migrate applies all pending migrations in version order
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

// initMigrationsTable creates the migrations tracking table
func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// appliedMigrations returns the set of already-applied migration versions
func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}
