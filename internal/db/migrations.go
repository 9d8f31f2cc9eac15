package db

import (
	"fmt"

	"gorm.io/gorm"
)

// Records are stored as whole JSON documents. The collection is always read
// and written in full, so the schema stays a plain key-payload table.
var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS quote_records (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		payload TEXT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_quote_records_position ON quote_records (position);`,
	`CREATE TABLE IF NOT EXISTS profile_record (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		payload TEXT NOT NULL
	);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
