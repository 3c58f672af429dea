package actuals

import (
	"context"

	"github.com/Spok95/projfin/internal/domain/plan"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// ByYear возвращает факты проекта за год по (статья, месяц).
// Несколько записей на одну ячейку суммируются.
func (r *Repo) ByYear(ctx context.Context, projectID int64, year int) (YearSeries, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT category, EXTRACT(MONTH FROM month)::int, SUM(amount)
		FROM actual_lines
		WHERE project_id = $1
		  AND month >= make_date($2, 1, 1) AND month < make_date($2 + 1, 1, 1)
		GROUP BY category, EXTRACT(MONTH FROM month)
	`, projectID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := YearSeries{}
	for rows.Next() {
		var cat plan.Category
		var month int
		var amount float64
		if err := rows.Scan(&cat, &month, &amount); err != nil {
			return nil, err
		}
		if month < 1 || month > 12 {
			continue
		}
		s := out[cat]
		s[month-1] += amount
		out[cat] = s
	}
	return out, rows.Err()
}

// Total возвращает факт проекта нарастающим итогом (0, если фактов нет).
func (r *Repo) Total(ctx context.Context, projectID int64) (float64, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0)
		FROM actual_lines
		WHERE project_id = $1
	`, projectID)
	var total float64
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
