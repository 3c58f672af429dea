package benchmarks

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// Get возвращает бенчмарк метрики (nil, nil если когорта не покрыта).
// Отсутствующий бенчмарк не подменяется нулём — ноль означал бы
// «ровно на уровне медианы».
func (r *Repo) Get(ctx context.Context, projectType, metric string) (*Entry, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT project_type, metric, period, p25, p50, p75, sample_n
		FROM benchmarks
		WHERE project_type = $1 AND metric = $2 AND period = 'annual'
	`, projectType, metric)
	var e Entry
	if err := row.Scan(&e.ProjectType, &e.Metric, &e.Period, &e.P25, &e.P50, &e.P75, &e.SampleN); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *Repo) ListByType(ctx context.Context, projectType string) ([]Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT project_type, metric, period, p25, p50, p75, sample_n
		FROM benchmarks
		WHERE project_type = $1 AND period = 'annual'
		ORDER BY metric
	`, projectType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ProjectType, &e.Metric, &e.Period, &e.P25, &e.P50, &e.P75, &e.SampleN); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
