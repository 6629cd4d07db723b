package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"jordanella.com/campaign-options/internal/logging"
)

// DB wraps the SQLite campaign store
type DB struct {
	conn   *sql.DB
	path   string
	logger *logging.Logger
}

// Open opens the campaign store at dbPath, creating the file and its
// directory when missing. Call RunMigrations before use.
func Open(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open campaign store: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open campaign store %s: %w", dbPath, err)
	}

	// One connection, shared by auto-save and the GUI
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	db := &DB{
		conn:   conn,
		path:   dbPath,
		logger: logging.NewLogger("Database"),
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// SetLogger replaces the logger used for migrations and auto-save
func (db *DB) SetLogger(logger *logging.Logger) {
	db.logger = logger
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// ExecTx runs fn in a transaction, rolling back when it fails. A campaign
// and its options documents are always written together through here.
func (db *DB) ExecTx(fn func(*sql.Tx) error) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	return tx.Commit()
}

// GetVersion returns the highest applied migration, 0 on a fresh store
func (db *DB) GetVersion() (int, error) {
	var version int
	err := db.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, err
	}
	return version, nil
}

// Backup writes a consistent copy of the store to backupPath. The target
// must not exist yet.
func (db *DB) Backup(backupPath string) error {
	if err := os.MkdirAll(filepath.Dir(backupPath), 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(backupPath); err == nil {
		return fmt.Errorf("backup %s already exists", backupPath)
	}
	if _, err := db.conn.Exec("VACUUM INTO ?", backupPath); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// Vacuum reclaims the space left by deleted campaigns and history
func (db *DB) Vacuum() error {
	_, err := db.conn.Exec("VACUUM")
	return err
}

// Stats summarises what the store holds
type Stats struct {
	Campaigns int64
	Snapshots int64

	// LastSaved is the newest campaign save, zero when nothing is stored
	LastSaved time.Time

	// MostEdited is the campaign with the most history snapshots
	MostEdited          string
	MostEditedSnapshots int64

	FileSize int64
}

// GetStats counts the stored campaigns and their options history
func (db *DB) GetStats() (Stats, error) {
	var st Stats
	err := db.conn.QueryRow(`
		SELECT
			(SELECT COUNT(*) FROM campaigns),
			(SELECT COUNT(*) FROM options_history)
	`).Scan(&st.Campaigns, &st.Snapshots)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to count campaigns: %w", err)
	}

	if st.Campaigns > 0 {
		err = db.conn.QueryRow(`
			SELECT updated_at FROM campaigns ORDER BY updated_at DESC LIMIT 1
		`).Scan(&st.LastSaved)
		if err != nil {
			return Stats{}, fmt.Errorf("failed to read last save: %w", err)
		}
	}

	if st.Snapshots > 0 {
		err = db.conn.QueryRow(`
			SELECT c.name, COUNT(h.id) AS n
			FROM options_history h
			JOIN campaigns c ON c.id = h.campaign_id
			GROUP BY h.campaign_id
			ORDER BY n DESC, c.name
			LIMIT 1
		`).Scan(&st.MostEdited, &st.MostEditedSnapshots)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return Stats{}, fmt.Errorf("failed to rank campaigns: %w", err)
		}
	}

	if info, err := os.Stat(db.path); err == nil {
		st.FileSize = info.Size()
	}
	return st, nil
}
