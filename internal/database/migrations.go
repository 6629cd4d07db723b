package database

import (
	"database/sql"
	"fmt"
	"time"
)

// Migration represents a database schema migration
type Migration struct {
	Version     int
	Description string
	Up          func(*sql.Tx) error
	Down        func(*sql.Tx) error
}

// migrations is the ordered list of all database migrations
var migrations = []Migration{
	{
		Version:     1,
		Description: "Create schema_version table",
		Up:          migration001Up,
		Down:        migration001Down,
	},
	{
		Version:     2,
		Description: "Create campaigns table",
		Up:          migration002Up,
		Down:        migration002Down,
	},
	{
		Version:     3,
		Description: "Create campaign_options table",
		Up:          migration003Up,
		Down:        migration003Down,
	},
	{
		Version:     4,
		Description: "Create options_history table",
		Up:          migration004Up,
		Down:        migration004Down,
	},
}

// LatestVersion is the schema version after every migration has run
func LatestVersion() int {
	return migrations[len(migrations)-1].Version
}

// RunMigrations runs all pending database migrations
func (db *DB) RunMigrations() error {
	currentVersion, err := db.getCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	db.logger.DebugWithContext("Checked database version", map[string]interface{}{
		"version": currentVersion,
	})

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		err := db.ExecTx(func(tx *sql.Tx) error {
			if err := migration.Up(tx); err != nil {
				return fmt.Errorf("migration %d failed: %w", migration.Version, err)
			}

			_, err := tx.Exec(`
				INSERT INTO schema_version (version, description, applied_at)
				VALUES (?, ?, ?)
			`, migration.Version, migration.Description, time.Now())

			return err
		})

		if err != nil {
			return err
		}

		db.logger.InfoWithContext("Applied migration", map[string]interface{}{
			"version":     migration.Version,
			"description": migration.Description,
		})
	}

	return nil
}

// getCurrentVersion returns the current schema version
func (db *DB) getCurrentVersion() (int, error) {
	var tableExists bool
	err := db.conn.QueryRow(`
		SELECT COUNT(*) > 0
		FROM sqlite_master
		WHERE type='table' AND name='schema_version'
	`).Scan(&tableExists)

	if err != nil {
		return 0, err
	}

	if !tableExists {
		return 0, nil
	}

	var version int
	err = db.conn.QueryRow(`
		SELECT COALESCE(MAX(version), 0)
		FROM schema_version
	`).Scan(&version)

	if err != nil {
		return 0, err
	}

	return version, nil
}

// Migration 001: Schema version tracking table
func migration001Up(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			version INTEGER NOT NULL UNIQUE,
			description TEXT NOT NULL,
			applied_at DATETIME NOT NULL
		)
	`)
	return err
}

func migration001Down(tx *sql.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS schema_version`)
	return err
}

// Migration 002: Campaigns table
func migration002Up(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE campaigns (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			faction_code TEXT NOT NULL,
			campaign_date TEXT NOT NULL,

			-- Appearance
			camo_category TEXT NOT NULL DEFAULT '',
			camo_file TEXT NOT NULL DEFAULT '',
			colour TEXT NOT NULL,
			icon_category TEXT NOT NULL DEFAULT '',
			icon_file TEXT NOT NULL DEFAULT '',
			rank_system TEXT NOT NULL,

			-- Timestamps
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX idx_campaigns_name ON campaigns(name);
	`)
	return err
}

func migration002Down(tx *sql.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS campaigns`)
	return err
}

// Migration 003: Options documents, one row per campaign
func migration003Up(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE campaign_options (
			campaign_id INTEGER PRIMARY KEY,
			options_ini TEXT NOT NULL,
			rules_yaml TEXT NOT NULL,
			abilities_yaml TEXT NOT NULL,
			skill_table_yaml TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,

			FOREIGN KEY (campaign_id) REFERENCES campaigns(id) ON DELETE CASCADE
		)
	`)
	return err
}

func migration003Down(tx *sql.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS campaign_options`)
	return err
}

// Migration 004: Append-only history of committed options
func migration004Up(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE options_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			campaign_id INTEGER NOT NULL,
			changed_fields TEXT NOT NULL DEFAULT '',
			options_ini TEXT NOT NULL,
			recorded_at DATETIME NOT NULL,

			FOREIGN KEY (campaign_id) REFERENCES campaigns(id) ON DELETE CASCADE
		);

		CREATE INDEX idx_options_history_campaign ON options_history(campaign_id, recorded_at);
	`)
	return err
}

func migration004Down(tx *sql.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS options_history`)
	return err
}
