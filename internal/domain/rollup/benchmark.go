package rollup

import (
	"fmt"
	"math"

	"github.com/Spok95/projfin/internal/domain/benchmarks"
)

// Direction — в какую сторону метрике «лучше».
type Direction int

const (
	HigherIsBetter Direction = iota
	LowerIsBetter // например, labor % of revenue
)

// BenchComparison — сравнение значения метрики с перцентилями когорты.
// HasBenchmark=false означает «когорта не покрыта», и это не то же
// самое, что дельта 0.
type BenchComparison struct {
	Metric       string
	Value        float64
	HasBenchmark bool
	DeltaP50     Percent
	Favorable    bool
	P25          float64
	P50          float64
	P75          float64
	Band         string
	SampleN      int
}

// CompareBenchmark считает дельту от медианы и классифицирует её по
// направлению метрики. Дельта не определена при нулевой медиане.
func CompareBenchmark(metric string, value float64, e *benchmarks.Entry, dir Direction) BenchComparison {
	c := BenchComparison{Metric: metric, Value: value}
	if e == nil {
		return c
	}
	c.HasBenchmark = true
	c.P25, c.P50, c.P75 = e.P25, e.P50, e.P75
	c.SampleN = e.SampleN
	c.Band = fmt.Sprintf("P25–P75: %.1f–%.1f (n=%d)", e.P25, e.P75, e.SampleN)

	if e.P50 == 0 {
		c.DeltaP50 = UndefinedPct
		return c
	}
	delta := (value - e.P50) / math.Abs(e.P50) * 100
	c.DeltaP50 = Pct(delta)
	switch dir {
	case LowerIsBetter:
		c.Favorable = delta <= 0
	default:
		c.Favorable = delta >= 0
	}
	return c
}
