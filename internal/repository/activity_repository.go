package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/renatmannanov/gpx-predict/internal/database"
	"github.com/renatmannanov/gpx-predict/internal/models"
)

// ActivityRepository handles database operations for activities and
// their splits
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// SaveActivity inserts an activity and its splits in one transaction
func (r *ActivityRepository) SaveActivity(activity *models.Activity) error {
	return database.Transaction(func(tx *sql.Tx) error {
		result, err := tx.Exec(`
			INSERT INTO activities (user_id, name, sport, distance_km, elevation_gain_m, moving_time_s, started_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			activity.UserID, activity.Name, activity.Sport,
			activity.DistanceKm, activity.ElevationGainM, activity.MovingTimeS, activity.StartedAt)
		if err != nil {
			return fmt.Errorf("failed to insert activity: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get activity id: %w", err)
		}
		activity.ID = id

		for i, split := range activity.Splits {
			_, err := tx.Exec(`
				INSERT INTO activity_splits (activity_id, split_index, distance_km, elevation_change_m, pace_min_km)
				VALUES (?, ?, ?, ?, ?)`,
				id, i, split.DistanceKm, split.ElevationChangeM, split.PaceMinKm)
			if err != nil {
				return fmt.Errorf("failed to insert split %d: %w", i, err)
			}
		}

		return nil
	})
}

// GetActivities retrieves activities matching the filter, newest first
func (r *ActivityRepository) GetActivities(filter models.ActivityFilter) ([]models.Activity, error) {
	query := `SELECT id, user_id, name, sport, distance_km, elevation_gain_m, moving_time_s, started_at
		FROM activities`

	var conditions []string
	var args []interface{}

	if filter.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, filter.UserID)
	}
	if filter.Sport != "" {
		conditions = append(conditions, "sport = ?")
		args = append(args, filter.Sport)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY started_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.Sport,
			&a.DistanceKm, &a.ElevationGainM, &a.MovingTimeS, &a.StartedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}

	return activities, rows.Err()
}

// GetSplits retrieves the splits of one activity in recorded order
func (r *ActivityRepository) GetSplits(activityID int64) ([]models.Split, error) {
	rows, err := r.db.Query(`
		SELECT distance_km, elevation_change_m, pace_min_km
		FROM activity_splits
		WHERE activity_id = ?
		ORDER BY split_index`, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query splits: %w", err)
	}
	defer rows.Close()

	var splits []models.Split
	for rows.Next() {
		var s models.Split
		if err := rows.Scan(&s.DistanceKm, &s.ElevationChangeM, &s.PaceMinKm); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, s)
	}

	return splits, rows.Err()
}

// GetAllSplits retrieves every split for a user and sport across
// activities, the raw material for personal pace profiles
func (r *ActivityRepository) GetAllSplits(userID, sport string) ([]models.Split, error) {
	rows, err := r.db.Query(`
		SELECT s.distance_km, s.elevation_change_m, s.pace_min_km
		FROM activity_splits s
		JOIN activities a ON a.id = s.activity_id
		WHERE a.user_id = ? AND a.sport = ?
		ORDER BY a.started_at, s.split_index`, userID, sport)
	if err != nil {
		return nil, fmt.Errorf("failed to query splits: %w", err)
	}
	defer rows.Close()

	var splits []models.Split
	for rows.Next() {
		var s models.Split
		if err := rows.Scan(&s.DistanceKm, &s.ElevationChangeM, &s.PaceMinKm); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, s)
	}

	return splits, rows.Err()
}

// DeleteActivity removes an activity; splits cascade
func (r *ActivityRepository) DeleteActivity(id int64) error {
	result, err := r.db.Exec("DELETE FROM activities WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("activity %d not found", id)
	}

	return nil
}
