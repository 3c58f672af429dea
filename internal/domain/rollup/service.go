package rollup

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Spok95/projfin/internal/domain/actuals"
	"github.com/Spok95/projfin/internal/domain/benchmarks"
	"github.com/Spok95/projfin/internal/domain/pl"
	"github.com/Spok95/projfin/internal/domain/plan"
	"github.com/Spok95/projfin/internal/domain/projects"
	"github.com/Spok95/projfin/internal/domain/rates"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sethvargo/go-retry"
)

var (
	recomputeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "projfin_recompute_total",
		Help: "Rollup recomputes by status.",
	}, []string{"status"})
	recomputeSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "projfin_recompute_duration_seconds",
		Help:    "Rollup recompute duration.",
		Buckets: prometheus.DefBuckets,
	})
)

type ProjectStore interface {
	GetByID(ctx context.Context, id int64) (*projects.Project, error)
}

type PlanStore interface {
	ListByYear(ctx context.Context, projectID int64, year int) ([]plan.Line, error)
}

type RateSource interface {
	Snapshot(ctx context.Context) (*rates.Snapshot, error)
}

type ActualStore interface {
	ByYear(ctx context.Context, projectID int64, year int) (actuals.YearSeries, error)
	Total(ctx context.Context, projectID int64) (float64, error)
}

type Publisher interface {
	ReplaceYear(ctx context.Context, projectID int64, year int, rows []pl.Row) error
	ListProject(ctx context.Context, projectID int64) ([]pl.Row, error)
}

type BenchmarkStore interface {
	Get(ctx context.Context, projectType, metric string) (*benchmarks.Entry, error)
}

// Service гоняет конвейер план → агрегация → бленд → выручка → публикация.
// Пересчёт идемпотентен: на неизменных входах даёт побитно тот же снимок.
type Service struct {
	log      *slog.Logger
	projects ProjectStore
	plan     PlanStore
	rates    RateSource
	actuals  ActualStore
	pl       Publisher
	bench    BenchmarkStore
	now      func() time.Time

	// Пересчёты одного (проект, год) сериализуются: два конкурентных
	// delete+insert по одному ключу — это потерянное обновление.
	mu    sync.Mutex
	locks map[lockKey]*sync.Mutex
}

type lockKey struct {
	projectID int64
	year      int
}

func NewService(log *slog.Logger, p ProjectStore, pln PlanStore, r RateSource, a ActualStore, publ Publisher, b BenchmarkStore) *Service {
	return &Service{
		log:      log,
		projects: p,
		plan:     pln,
		rates:    r,
		actuals:  a,
		pl:       publ,
		bench:    b,
		now:      time.Now,
		locks:    make(map[lockKey]*sync.Mutex),
	}
}

func (s *Service) lockFor(projectID int64, year int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := lockKey{projectID: projectID, year: year}
	if s.locks[k] == nil {
		s.locks[k] = &sync.Mutex{}
	}
	return s.locks[k]
}

// Recompute пересчитывает и публикует P&L проекта за год.
// Все чтения идут одним батчем до начала агрегации — расчёт работает
// над единым снимком входов.
func (s *Service) Recompute(ctx context.Context, projectID int64, year int) error {
	lock := s.lockFor(projectID, year)
	lock.Lock()
	defer lock.Unlock()

	start := time.Now()
	err := s.recompute(ctx, projectID, year)
	recomputeSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		recomputeTotal.WithLabelValues("error").Inc()
		return err
	}
	recomputeTotal.WithLabelValues("ok").Inc()
	return nil
}

func (s *Service) recompute(ctx context.Context, projectID int64, year int) error {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}
	if p == nil {
		return fmt.Errorf("project %d not found", projectID)
	}

	lines, err := s.plan.ListByYear(ctx, projectID, year)
	if err != nil {
		return fmt.Errorf("load plan lines: %w", err)
	}
	snap, err := s.rates.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("load rate snapshot: %w", err)
	}
	acts, err := s.actuals.ByYear(ctx, projectID, year)
	if err != nil {
		return fmt.Errorf("load actuals: %w", err)
	}

	forecast := Aggregate(s.log, projectID, year, lines, snap)
	blended := BlendCosts(forecast, acts)
	// Выручка считается от сблендированных затрат, иначе при
	// cost-plus факт выше прогноза давал бы revenue < cost.
	revenue := PriceYear(blended, p.Formula, p.FeePct)
	rows := blended.Rows(revenue)

	b := retry.WithMaxRetries(3, retry.NewFibonacci(200*time.Millisecond))
	if err := retry.Do(ctx, b, func(ctx context.Context) error {
		if err := s.pl.ReplaceYear(ctx, projectID, year, rows); err != nil {
			s.log.Warn("publish failed, retrying", "project_id", projectID, "year", year, "err", err)
			return retry.RetryableError(err)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("publish monthly pl: %w", err)
	}

	s.log.Info("rollup published",
		"project_id", projectID,
		"year", year,
		"total_cost", blended.TotalCost(),
	)
	return nil
}

// EACReport — оценка на завершение: экстраполяция факта на весь период
// исполнения плюс сравнение с финансированием и бенчмарками когорты.
type EACReport struct {
	ProjectID     int64
	ActualToDate  float64
	MonthsElapsed int
	MonthsTotal   int
	AvgMonthly    float64
	ProratedTotal float64
	Funding       float64
	Variance      float64
	VariancePct   Percent
	Metrics       []BenchComparison
}

func (s *Service) EAC(ctx context.Context, projectID int64) (*EACReport, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("project %d not found", projectID)
	}

	actualToDate, err := s.actuals.Total(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("load actual total: %w", err)
	}

	total := MonthsInclusive(p.PoPStart, p.PoPEnd)
	elapsed := MonthsElapsed(p.PoPStart, p.PoPEnd, s.now())
	pr := Prorate(actualToDate, elapsed, total)
	variance, variancePct := Variance(p.FundingAmount, pr.Total)

	r := &EACReport{
		ProjectID:     projectID,
		ActualToDate:  actualToDate,
		MonthsElapsed: elapsed,
		MonthsTotal:   total,
		AvgMonthly:    pr.AvgMonthly,
		ProratedTotal: pr.Total,
		Funding:       p.FundingAmount,
		Variance:      variance,
		VariancePct:   variancePct,
	}

	metrics, err := s.benchMetrics(ctx, p)
	if err != nil {
		return nil, err
	}
	r.Metrics = metrics
	return r, nil
}

// benchMetrics считает годовые метрики из опубликованного снимка
// (потребители никогда не пересчитывают сетку сами) и сравнивает
// с перцентилями когорты.
func (s *Service) benchMetrics(ctx context.Context, p *projects.Project) ([]BenchComparison, error) {
	rows, err := s.pl.ListProject(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("load published pl: %w", err)
	}

	var revenue, cost, labor float64
	for _, row := range rows {
		revenue += row.Revenue
		cost += row.Total
		labor += row.Labor
	}

	var out []BenchComparison
	if margin := MarginPct(revenue, cost); margin.Valid {
		e, err := s.bench.Get(ctx, p.ProjectType, "margin_pct")
		if err != nil {
			return nil, fmt.Errorf("load benchmark margin_pct: %w", err)
		}
		out = append(out, CompareBenchmark("margin_pct", margin.Value, e, HigherIsBetter))
	}
	if laborShare := ShareOfRevenue(labor, revenue); laborShare.Valid {
		e, err := s.bench.Get(ctx, p.ProjectType, "labor_pct_of_revenue")
		if err != nil {
			return nil, fmt.Errorf("load benchmark labor_pct_of_revenue: %w", err)
		}
		out = append(out, CompareBenchmark("labor_pct_of_revenue", laborShare.Value, e, LowerIsBetter))
	}
	return out, nil
}
