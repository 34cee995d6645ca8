package source

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
)

// identifierRe matches the plain SQL identifiers SQLSource accepts.
var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// RowScanner converts the current row into an item.
type RowScanner[T any] func(rows *sql.Rows) (T, error)

// SQLSource pages one table through database/sql, ordered by a key column:
//
//	SELECT <columns> FROM <table> ORDER BY <orderBy> LIMIT ? OFFSET ?
//
// Positions are OFFSETs in that order, so the order column should be unique and
// stable. Any driver with LIMIT/OFFSET support works; tests and the CLI use
// modernc.org/sqlite.
type SQLSource[T any] struct {
	db         *sql.DB
	countQuery string
	rangeQuery string
	scan       RowScanner[T]
	logger     logrus.FieldLogger
}

// SQLOption configures an SQLSource.
type SQLOption func(*sqlConfig)

type sqlConfig struct {
	logger logrus.FieldLogger
}

// WithSQLLogger sets the logger for query diagnostics (default: logrus standard logger).
func WithSQLLogger(logger logrus.FieldLogger) SQLOption {
	return func(c *sqlConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewSQLSource returns a source over table, selecting columns ordered by
// orderBy and converting rows with scan.
//
// Errors:
//   - ErrNilSource if db or scan is nil.
//   - ErrInvalidTable if table, orderBy or any column is not a plain identifier.
func NewSQLSource[T any](db *sql.DB, table string, columns []string, orderBy string, scan RowScanner[T], opts ...SQLOption) (*SQLSource[T], error) {
	if db == nil || scan == nil {
		return nil, ErrNilSource
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrInvalidTable)
	}
	for _, name := range append([]string{table, orderBy}, columns...) {
		if !identifierRe.MatchString(name) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTable, name)
		}
	}

	cfg := sqlConfig{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quote(c)
	}

	return &SQLSource[T]{
		db:         db,
		countQuery: fmt.Sprintf("SELECT COUNT(*) FROM %s", quote(table)),
		rangeQuery: fmt.Sprintf("SELECT %s FROM %s ORDER BY %s LIMIT ? OFFSET ?",
			strings.Join(quoted, ", "), quote(table), quote(orderBy)),
		scan:   scan,
		logger: cfg.logger.WithField("table", table),
	}, nil
}

func quote(ident string) string { return `"` + ident + `"` }

// Count returns the number of rows in the table.
func (s *SQLSource[T]) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, s.countQuery).Scan(&n); err != nil {
		return 0, fmt.Errorf("source: count rows: %w", err)
	}
	s.logger.WithField("count", n).Debug("counted rows")

	return n, nil
}

// LoadRange returns up to count rows starting at offset start.
func (s *SQLSource[T]) LoadRange(ctx context.Context, start, count int) ([]T, error) {
	if err := checkRange(start, count); err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, s.rangeQuery, count, start)
	if err != nil {
		return nil, fmt.Errorf("source: query range %d+%d: %w", start, count, err)
	}
	defer rows.Close()

	items := make([]T, 0, count)
	for rows.Next() {
		item, err := s.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("source: scan row %d: %w", start+len(items), err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("source: iterate range %d+%d: %w", start, count, err)
	}
	s.logger.WithFields(logrus.Fields{"start": start, "requested": count, "loaded": len(items)}).Debug("loaded range")

	return items, nil
}
