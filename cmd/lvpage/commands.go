package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvpage/paging"
	"github.com/katalvlaran/lvpage/source"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const envDB = "LVPAGE_DB"

var errNoDB = errors.New("database path must be provided using either --db or " + envDB + " env var")

// windowArgs are the flags of the window subcommand.
type windowArgs struct {
	Position   int
	PageSize   int
	GrowBefore int
	GrowAfter  int
}

// newRootCmd builds the command tree writing results to out.
func newRootCmd(out io.Writer) *cobra.Command {
	var dbPath string
	root := &cobra.Command{
		Use:           "lvpage",
		Short:         "Null-padded paging windows over an SQLite table",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (env "+envDB+")")

	resolveDB := func() (string, error) {
		if dbPath != "" {
			return dbPath, nil
		}
		if env := os.Getenv(envDB); env != "" {
			return env, nil
		}

		return "", errNoDB
	}

	var rows int
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the items table and fill it with numbered rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := resolveDB()
			if err != nil {
				return err
			}
			if rows < 0 {
				return fmt.Errorf("--rows must be non-negative, got %d", rows)
			}
			return runSeed(cmd.Context(), path, rows, out)
		},
	}
	seedCmd.Flags().IntVar(&rows, "rows", 100, "number of rows to insert")

	var wa windowArgs
	windowCmd := &cobra.Command{
		Use:   "window",
		Short: "Load a page around a position and print the padded window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := resolveDB()
			if err != nil {
				return err
			}
			if wa.Position < 0 || wa.PageSize <= 0 || wa.GrowBefore < 0 || wa.GrowAfter < 0 {
				return fmt.Errorf("invalid window arguments: %+v", wa)
			}
			return runWindow(cmd.Context(), path, wa, out)
		},
	}
	windowCmd.Flags().IntVar(&wa.Position, "position", 0, "store position to centre the first page on")
	windowCmd.Flags().IntVar(&wa.PageSize, "page-size", paging.DefaultPageSize, "items per page")
	windowCmd.Flags().IntVar(&wa.GrowBefore, "grow-before", 0, "extra pages to load before the window")
	windowCmd.Flags().IntVar(&wa.GrowAfter, "grow-after", 0, "extra pages to load after the window")

	root.AddCommand(seedCmd, windowCmd)

	return root
}

func runSeed(ctx context.Context, path string, rows int, out io.Writer) error {
	db, err := openDB(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := seed(ctx, db, rows); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "seeded %d rows into %s\n", rows, path)

	return err
}

func runWindow(ctx context.Context, path string, wa windowArgs, out io.Writer) error {
	db, err := openDB(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	src, err := itemsSource(db)
	if err != nil {
		return err
	}
	list, err := source.InitialList[item](ctx, src, wa.Position, wa.PageSize,
		paging.WithExecutor[item](func(job func()) { job() }),
		paging.WithContext[item](ctx),
		paging.WithPrefetchDistance[item](1),
	)
	if err != nil {
		return err
	}

	// Loads run inline. Each LoadAround targets the null slot just outside one
	// edge, which is within the prefetch distance of that edge only, so it
	// grows the window by one page in that direction.
	for i := 0; i < wa.GrowBefore; i++ {
		list.LoadAround(list.LeadingNullCount() - 1)
	}
	for i := 0; i < wa.GrowAfter; i++ {
		list.LoadAround(list.LeadingNullCount() + list.LoadedCount())
	}
	if err := list.Err(); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"prepended": list.NumberPrepended(),
		"appended":  list.NumberAppended(),
	}).Debug("window grown")

	return printWindow(out, list.Snapshot().(*paging.NullPaddedList[item]))
}

// printWindow writes the window shape followed by the loaded positions.
func printWindow(out io.Writer, l *paging.NullPaddedList[item]) error {
	if _, err := fmt.Fprintf(out, "size=%d leading=%d loaded=%d trailing=%d offset=%d\n",
		l.Size(), l.LeadingNullCount(), l.LoadedCount(), l.TrailingNullCount(), l.PositionOffset()); err != nil {
		return err
	}
	for i := 0; i < l.LoadedCount(); i++ {
		index := l.LeadingNullCount() + i
		it, _, err := l.Get(index)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%6d  %6d  %s\n", index, it.ID, it.Label); err != nil {
			return err
		}
	}

	return nil
}
