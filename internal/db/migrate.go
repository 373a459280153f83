package db

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"testtrack/migrations"
	"testtrack/pkg/logger"
)

// Migrate applies every embedded *.sql file not yet recorded in
// schema_migrations, in lexical order. Each file runs in its own transaction
// together with its ledger row.
func Migrate(db *gorm.DB, log logger.Logger) (int, error) {
	return MigrateFS(db, migrations.FS, log)
}

func MigrateFS(db *gorm.DB, source fs.FS, log logger.Logger) (int, error) {
	if err := ensureSchemaMigrations(db); err != nil {
		return 0, err
	}

	files, err := fs.Glob(source, "*.sql")
	if err != nil {
		return 0, err
	}
	sort.Strings(files)

	applied := 0
	for _, name := range files {
		done, err := isMigrationApplied(db, name)
		if err != nil {
			return applied, err
		}
		if done {
			continue
		}

		contents, err := fs.ReadFile(source, name)
		if err != nil {
			return applied, err
		}

		sql := strings.TrimSpace(string(contents))
		if sql == "" {
			continue
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(sql).Error; err != nil {
				return err
			}
			return recordMigration(tx, name)
		})
		if err != nil {
			return applied, fmt.Errorf("apply migration %s: %w", name, err)
		}

		log.Info("db: migration applied", "file", name)
		applied++
	}

	return applied, nil
}

func ensureSchemaMigrations(db *gorm.DB) error {
	return db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			filename TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`).Error
}

func isMigrationApplied(db *gorm.DB, name string) (bool, error) {
	var count int64
	if err := db.Raw("SELECT COUNT(1) FROM schema_migrations WHERE filename = ?", name).Scan(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func recordMigration(db *gorm.DB, name string) error {
	return db.Exec("INSERT INTO schema_migrations (filename, applied_at) VALUES (?, ?)", name, time.Now().UTC()).Error
}
