package plan

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// ListByCategory возвращает строки плана проекта за календарный год по одной статье.
func (r *Repo) ListByCategory(ctx context.Context, projectID int64, year int, cat Category) ([]Line, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, project_id, category, resource_key, month, qty, created_at
		FROM plan_lines
		WHERE project_id = $1 AND category = $2
		  AND month >= make_date($3, 1, 1) AND month < make_date($3 + 1, 1, 1)
		ORDER BY month, resource_key
	`, projectID, string(cat), year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Line
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.ID, &l.ProjectID, &l.Category, &l.ResourceKey, &l.Month, &l.Qty, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// ListByYear собирает план по всем статьям — по одному запросу на статью,
// чтобы расчёт работал над единым снимком до начала агрегации.
func (r *Repo) ListByYear(ctx context.Context, projectID int64, year int) ([]Line, error) {
	var out []Line
	for _, cat := range Categories {
		lines, err := r.ListByCategory(ctx, projectID, year, cat)
		if err != nil {
			return nil, err
		}
		out = append(out, lines...)
	}
	return out, nil
}
