package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/katalvlaran/lvpage/source"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	itemsTable = "items"
	schemaSQL  = `CREATE TABLE IF NOT EXISTS items (id INTEGER PRIMARY KEY, label TEXT NOT NULL)`
)

// item is one row of the items table.
type item struct {
	ID    int64
	Label string
}

func scanItem(rows *sql.Rows) (item, error) {
	var it item
	err := rows.Scan(&it.ID, &it.Label)

	return it, err
}

// openDB opens (creating if needed) the SQLite database at path and ensures
// the items table exists.
func openDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// seed replaces the contents of the items table with rows numbered 0..n-1.
func seed(ctx context.Context, db *sql.DB, n int) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO items (id, label) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()
	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, i, fmt.Sprintf("item-%04d", i)); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	logrus.WithField("rows", n).Info("seeded items")

	return nil
}

// itemsSource returns the positional source over the items table.
func itemsSource(db *sql.DB) (*source.SQLSource[item], error) {
	return source.NewSQLSource[item](db, itemsTable, []string{"id", "label"}, "id", scanItem,
		source.WithSQLLogger(logrus.StandardLogger()))
}
