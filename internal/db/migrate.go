package db

import (
	"database/sql"
	"fmt"
)

// migrations are applied in order on every open. Statements are
// idempotent (IF NOT EXISTS) so re-running the full list is safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS student_profiles (
		id                   TEXT PRIMARY KEY,
		student_name         TEXT NOT NULL,
		goals                TEXT NOT NULL DEFAULT '',
		preferred_time       TEXT NOT NULL DEFAULT '',
		daily_duration_hours REAL NOT NULL CHECK(daily_duration_hours > 0),
		environment          TEXT NOT NULL DEFAULT '',
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS profile_subjects (
		profile_id TEXT NOT NULL REFERENCES student_profiles(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		name       TEXT NOT NULL,
		strength   TEXT NOT NULL DEFAULT '',
		weakness   TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (profile_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS profile_methods (
		profile_id TEXT NOT NULL REFERENCES student_profiles(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		method     TEXT NOT NULL,
		PRIMARY KEY (profile_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS plans (
		id         TEXT PRIMARY KEY,
		profile_id TEXT NOT NULL REFERENCES student_profiles(id) ON DELETE CASCADE,
		start_date TEXT NOT NULL,
		num_days   INTEGER NOT NULL CHECK(num_days > 0),
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plan_days (
		plan_id        TEXT NOT NULL REFERENCES plans(id) ON DELETE CASCADE,
		date           TEXT NOT NULL,
		environment    TEXT NOT NULL DEFAULT '',
		preferred_time TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (plan_id, date)
	)`,

	`CREATE TABLE IF NOT EXISTS study_blocks (
		plan_id  TEXT NOT NULL,
		date     TEXT NOT NULL,
		position INTEGER NOT NULL,
		subject  TEXT NOT NULL,
		hours    REAL NOT NULL CHECK(hours > 0),
		task     TEXT NOT NULL,
		priority TEXT NOT NULL CHECK(priority IN ('High','Medium','Low')),
		PRIMARY KEY (plan_id, date, position),
		FOREIGN KEY (plan_id, date) REFERENCES plan_days(plan_id, date) ON DELETE CASCADE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plans_profile_created
		ON plans(profile_id, created_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
