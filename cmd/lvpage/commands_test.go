package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestSeedAndWindow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "items.db")

	out, err := run(t, "seed", "--db", db, "--rows", "50")
	require.NoError(t, err)
	require.Contains(t, out, "seeded 50 rows")

	out, err = run(t, "window", "--db", db, "--position", "20", "--page-size", "10",
		"--grow-before", "1", "--grow-after", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, "size=50 leading=5 loaded=30 trailing=15 offset=0", lines[0])
	require.Len(t, lines, 31)
	require.Equal(t, "     5       5  item-0005", lines[1])
	require.Equal(t, "    34      34  item-0034", lines[30])
}

func TestWindow_SinglePageGrowsOneDirection(t *testing.T) {
	db := filepath.Join(t.TempDir(), "items.db")
	_, err := run(t, "seed", "--db", db, "--rows", "10")
	require.NoError(t, err)

	out, err := run(t, "window", "--db", db, "--position", "5", "--page-size", "1", "--grow-before", "1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, "size=10 leading=4 loaded=2 trailing=4 offset=0", lines[0])
	require.Equal(t, "     4       4  item-0004", lines[1])

	out, err = run(t, "window", "--db", db, "--position", "5", "--page-size", "1", "--grow-after", "1")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, "size=10 leading=5 loaded=2 trailing=3 offset=0", lines[0])
	require.Equal(t, "     6       6  item-0006", lines[2])
}

func TestWindow_EnvDatabaseAndReseed(t *testing.T) {
	db := filepath.Join(t.TempDir(), "items.db")
	t.Setenv(envDB, db)

	_, err := run(t, "seed", "--rows", "3")
	require.NoError(t, err)
	_, err = run(t, "seed", "--rows", "2")
	require.NoError(t, err, "reseeding replaces rows")

	out, err := run(t, "window", "--page-size", "5")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "size=2 leading=0 loaded=2 trailing=0 offset=0\n"), out)
}

func TestCommands_Errors(t *testing.T) {
	t.Setenv(envDB, "")

	_, err := run(t, "window")
	require.ErrorIs(t, err, errNoDB)

	db := filepath.Join(t.TempDir(), "items.db")
	_, err = run(t, "window", "--db", db, "--page-size", "0")
	require.Error(t, err)

	_, err = run(t, "seed", "--db", db, "--rows", "-1")
	require.Error(t, err)
}
