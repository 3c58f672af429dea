package rollup

import (
	"testing"

	"github.com/Spok95/projfin/internal/domain/benchmarks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareBenchmark_LowerIsBetter(t *testing.T) {
	e := &benchmarks.Entry{ProjectType: "construction", Metric: "labor_pct_of_revenue", P25: 12, P50: 18, P75: 24, SampleN: 41}

	c := CompareBenchmark("labor_pct_of_revenue", 22, e, LowerIsBetter)

	require.True(t, c.HasBenchmark)
	require.True(t, c.DeltaP50.Valid)
	assert.InDelta(t, 22.2, c.DeltaP50.Value, 0.05)
	assert.False(t, c.Favorable)
	assert.Equal(t, "P25–P75: 12.0–24.0 (n=41)", c.Band)
}

func TestCompareBenchmark_HigherIsBetter(t *testing.T) {
	e := &benchmarks.Entry{Metric: "margin_pct", P25: 8, P50: 15, P75: 22, SampleN: 41}

	c := CompareBenchmark("margin_pct", 18, e, HigherIsBetter)

	require.True(t, c.DeltaP50.Valid)
	assert.InDelta(t, 20.0, c.DeltaP50.Value, 1e-9)
	assert.True(t, c.Favorable)
}

func TestCompareBenchmark_NoEntry(t *testing.T) {
	// Отсутствующий бенчмарк — это не «дельта ноль»
	c := CompareBenchmark("margin_pct", 18, nil, HigherIsBetter)

	assert.False(t, c.HasBenchmark)
	assert.False(t, c.DeltaP50.Valid)
	assert.Empty(t, c.Band)
}

func TestCompareBenchmark_ZeroMedianUndefined(t *testing.T) {
	e := &benchmarks.Entry{Metric: "margin_pct", P25: -5, P50: 0, P75: 5}

	c := CompareBenchmark("margin_pct", 3, e, HigherIsBetter)

	assert.True(t, c.HasBenchmark)
	assert.False(t, c.DeltaP50.Valid)
}

func TestCompareBenchmark_NegativeMedian(t *testing.T) {
	// Дельта нормируется на |P50|
	e := &benchmarks.Entry{Metric: "margin_pct", P25: -10, P50: -4, P75: 2}

	c := CompareBenchmark("margin_pct", -2, e, HigherIsBetter)

	require.True(t, c.DeltaP50.Valid)
	assert.InDelta(t, 50.0, c.DeltaP50.Value, 1e-9)
	assert.True(t, c.Favorable)
}
