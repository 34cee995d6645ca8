package source_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/lvpage/source"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrumented_RecordsCalls(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	m, err := source.NewMetrics(reg)
	require.NoError(t, err)

	src, err := source.Instrument[int]("ints", source.NewSliceSource(ints(10)), m)
	require.NoError(t, err)

	_, err = src.Count(ctx)
	require.NoError(t, err)
	_, err = src.LoadRange(ctx, 8, 5)
	require.NoError(t, err)
	_, err = src.LoadRange(ctx, -1, 5)
	require.ErrorIs(t, err, source.ErrNegativeRange)

	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP lvpage_source_items_total Number of items returned by range loads.
# TYPE lvpage_source_items_total counter
lvpage_source_items_total{op="range",source="ints"} 2
# HELP lvpage_source_load_errors_total Number of failed source calls.
# TYPE lvpage_source_load_errors_total counter
lvpage_source_load_errors_total{op="range",source="ints"} 1
# HELP lvpage_source_loads_total Number of source calls.
# TYPE lvpage_source_loads_total counter
lvpage_source_loads_total{op="count",source="ints"} 1
lvpage_source_loads_total{op="range",source="ints"} 2
`), "lvpage_source_items_total", "lvpage_source_load_errors_total", "lvpage_source_loads_total"))

	series, err := testutil.GatherAndCount(reg, "lvpage_source_load_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, series, "one histogram per operation")
}

func TestNewMetrics_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := source.NewMetrics(reg)
	require.NoError(t, err)
	b, err := source.NewMetrics(reg)
	require.NoError(t, err)

	sa, err := source.Instrument[int]("x", source.NewSliceSource(ints(1)), a)
	require.NoError(t, err)
	sb, err := source.Instrument[int]("x", source.NewSliceSource(ints(1)), b)
	require.NoError(t, err)
	_, _ = sa.Count(context.Background())
	_, _ = sb.Count(context.Background())

	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(`
# HELP lvpage_source_loads_total Number of source calls.
# TYPE lvpage_source_loads_total counter
lvpage_source_loads_total{op="count",source="x"} 2
`), "lvpage_source_loads_total"))
}

func TestInstrument_NilArguments(t *testing.T) {
	m, err := source.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	_, err = source.Instrument[int]("x", nil, m)
	require.True(t, errors.Is(err, source.ErrNilSource))
	_, err = source.Instrument[int]("x", source.NewSliceSource(ints(1)), nil)
	require.ErrorIs(t, err, source.ErrNilSource)
}
