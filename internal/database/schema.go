package database

import (
	"database/sql"
	"fmt"
)

// Schema statements are idempotent so Init can run on every start
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS activities (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		sport TEXT NOT NULL,
		distance_km REAL NOT NULL,
		elevation_gain_m REAL NOT NULL DEFAULT 0,
		moving_time_s INTEGER NOT NULL DEFAULT 0,
		started_at TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS activity_splits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		activity_id INTEGER NOT NULL,
		split_index INTEGER NOT NULL,
		distance_km REAL NOT NULL,
		elevation_change_m REAL NOT NULL,
		pace_min_km REAL NOT NULL,
		FOREIGN KEY (activity_id) REFERENCES activities(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_user_sport
		ON activities(user_id, sport)`,
	`CREATE INDEX IF NOT EXISTS idx_splits_activity
		ON activity_splits(activity_id)`,
}

func applySchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
