package persist

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/critic/internal/review"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteCodec stores entries in a SQLite database file.
//
// Save replaces every row inside one transaction, matching the wholesale
// overwrite semantics of TextCodec.
type SQLiteCodec struct{}

// Save replaces the contents of the database at path with entries.
// The file is created if it does not exist.
func (SQLiteCodec) Save(ctx context.Context, path string, entries []Entry) (err error) {
	db, err := openSQLite(path)
	if err != nil {
		return fmt.Errorf("save database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save database: begin: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM reviews`); err != nil {
		return fmt.Errorf("save database: clear: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO reviews (id, source_path, actual_label, predicted_label)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("save database: prepare: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if !e.Actual.Valid() || !e.Predicted.Valid() {
			err = fmt.Errorf("save database: review %d: invalid label", e.ID)
			return err
		}
		if _, err = stmt.ExecContext(ctx, e.ID, e.SourcePath, e.Actual.String(), e.Predicted.String()); err != nil {
			return fmt.Errorf("save database: review %d: %w", e.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("save database: commit: %w", err)
	}
	return nil
}

// Load reads every row ordered by id. A missing file returns ErrNoDatabase
// without creating it.
func (SQLiteCodec) Load(ctx context.Context, path string) ([]Entry, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoDatabase
	}

	db, err := openSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("load database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT id, source_path, actual_label, predicted_label
		FROM reviews
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("load database: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	row := 0
	for rows.Next() {
		row++
		var (
			e                 Entry
			actual, predicted string
		)
		if err := rows.Scan(&e.ID, &e.SourcePath, &actual, &predicted); err != nil {
			return nil, fmt.Errorf("load database: row %d: %w", row, err)
		}
		content := fmt.Sprintf("%d|%s|%s|%s", e.ID, e.SourcePath, actual, predicted)
		if e.ID <= 0 {
			return nil, &review.CorruptRecordError{Line: row, Content: content, Reason: fmt.Sprintf("id %d is not positive", e.ID)}
		}
		if e.Actual, err = review.ParseLabel(actual); err != nil {
			return nil, &review.CorruptRecordError{Line: row, Content: content, Reason: err.Error()}
		}
		if e.Predicted, err = review.ParseLabel(predicted); err != nil {
			return nil, &review.CorruptRecordError{Line: row, Content: content, Reason: err.Error()}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load database: %w", err)
	}
	return entries, nil
}

// openSQLite opens (creating if needed) the database at path with pragmas
// and schema applied.
func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	if err := checkSchemaVersion(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Schema version history (PRAGMA user_version):
// 0 - fresh file, schema just created
// 1 - reviews table
const currentSchemaVersion = 1

// checkSchemaVersion stamps new databases and refuses ones written by a
// newer schema.
func checkSchemaVersion(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, currentSchemaVersion)
	}
	if version < currentSchemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
			return fmt.Errorf("set user_version: %w", err)
		}
	}
	return nil
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	return nil
}
