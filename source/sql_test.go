package source_test

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvpage/paging"
	"github.com/katalvlaran/lvpage/source"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

type row struct {
	ID    int64
	Label string
}

func scanRow(rows *sql.Rows) (row, error) {
	var r row
	err := rows.Scan(&r.ID, &r.Label)

	return r, err
}

// openSeeded opens a fresh SQLite file with n rows in table items.
func openSeeded(t *testing.T, n int) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "items.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	_, err = db.ExecContext(ctx, `CREATE TABLE items (id INTEGER PRIMARY KEY, label TEXT NOT NULL)`)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		_, err = db.ExecContext(ctx, `INSERT INTO items (id, label) VALUES (?, ?)`, i, fmt.Sprintf("item-%02d", i))
		require.NoError(t, err)
	}

	return db
}

func newItemsSource(t *testing.T, db *sql.DB) *source.SQLSource[row] {
	t.Helper()
	logger, _ := test.NewNullLogger()
	src, err := source.NewSQLSource[row](db, "items", []string{"id", "label"}, "id", scanRow, source.WithSQLLogger(logger))
	require.NoError(t, err)

	return src
}

func TestSQLSource_CountAndRange(t *testing.T) {
	ctx := context.Background()
	src := newItemsSource(t, openSeeded(t, 12))

	n, err := src.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 12, n)

	got, err := src.LoadRange(ctx, 10, 5)
	require.NoError(t, err)
	require.Equal(t, []row{{10, "item-10"}, {11, "item-11"}}, got)

	got, err = src.LoadRange(ctx, 3, 0)
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = src.LoadRange(ctx, -2, 1)
	require.ErrorIs(t, err, source.ErrNegativeRange)
}

func TestSQLSource_RejectsBadIdentifiers(t *testing.T) {
	db := openSeeded(t, 0)
	for _, tc := range []struct {
		table, order string
		cols         []string
	}{
		{"items; DROP TABLE items", "id", []string{"id"}},
		{"items", "id desc", []string{"id"}},
		{"items", "id", []string{"label", "1bad"}},
		{"items", "id", nil},
	} {
		_, err := source.NewSQLSource[row](db, tc.table, tc.cols, tc.order, scanRow)
		require.ErrorIs(t, err, source.ErrInvalidTable, "%+v", tc)
	}

	_, err := source.NewSQLSource[row](nil, "items", []string{"id"}, "id", scanRow)
	require.ErrorIs(t, err, source.ErrNilSource)
}

func TestSQLSource_MissingTable(t *testing.T) {
	db := openSeeded(t, 0)
	src, err := source.NewSQLSource[row](db, "missing", []string{"id", "label"}, "id", scanRow)
	require.NoError(t, err)

	_, err = src.Count(context.Background())
	require.Error(t, err)
	_, err = src.LoadRange(context.Background(), 0, 3)
	require.Error(t, err)
}

func TestSQLSource_BacksContiguousList(t *testing.T) {
	ctx := context.Background()
	src := newItemsSource(t, openSeeded(t, 30))

	list, err := source.InitialList[row](ctx, src, 15, 6, paging.WithExecutor[row](func(job func()) { job() }))
	require.NoError(t, err)
	require.Equal(t, 30, list.Size())
	require.Equal(t, 12, list.LeadingNullCount())

	snap := list.Snapshot()
	for list.LeadingNullCount() > 0 || list.TrailingNullCount() > 0 {
		list.LoadAround(list.LeadingNullCount())
		list.LoadAround(list.LeadingNullCount() + list.LoadedCount() - 1)
		require.NoError(t, list.Err())
	}
	for i := 0; i < list.Size(); i++ {
		v, ok, err := list.Get(i)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, int64(i), v.ID)
	}

	// The earlier snapshot is unaffected and can drive a diff.
	require.Equal(t, 6, snap.(paging.Contiguous[row]).LoadedCount())
	var changed int
	require.NoError(t, list.AddCallback(snap, &paging.CallbackFuncs{
		Changed: func(_, n int) { changed += n },
	}))
	require.Equal(t, 24, changed)
}
