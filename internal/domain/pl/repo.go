package pl

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// ReplaceYear замещает снимок P&L проекта за год: delete + insert в одной
// транзакции, чтобы читатели не видели полузаписанный год. Ошибка отдаётся
// наверх как повторяемая — пересчёт идемпотентен, retry безопасен.
func (r *Repo) ReplaceYear(ctx context.Context, projectID int64, year int, rows []Row) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("pl replace begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, `
		DELETE FROM monthly_pl
		WHERE project_id = $1
		  AND month >= make_date($2, 1, 1) AND month < make_date($2 + 1, 1, 1)
	`, projectID, year); err != nil {
		return fmt.Errorf("pl replace delete: %w", err)
	}

	for _, row := range rows {
		if _, err = tx.Exec(ctx, `
			INSERT INTO monthly_pl
				(project_id, month, revenue, labor_cost, sub_cost, equip_cost, material_cost, odc_cost, total_cost, computed_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW())
		`, row.ProjectID, row.Month, row.Revenue, row.Labor, row.Subs, row.Equipment, row.Materials, row.ODC, row.Total); err != nil {
			return fmt.Errorf("pl replace insert %s: %w", row.Month.Format("2006-01"), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("pl replace commit: %w", err)
	}
	return nil
}

func (r *Repo) listQuery(ctx context.Context, q string, args ...any) ([]Row, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var row Row
		if err := rows.Scan(
			&row.ProjectID,
			&row.Month,
			&row.Revenue,
			&row.Labor,
			&row.Subs,
			&row.Equipment,
			&row.Materials,
			&row.ODC,
			&row.Total,
			&row.ComputedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListYear — опубликованный снимок за год (потребители не пересчитывают).
func (r *Repo) ListYear(ctx context.Context, projectID int64, year int) ([]Row, error) {
	return r.listQuery(ctx, `
		SELECT project_id, month, revenue, labor_cost, sub_cost, equip_cost, material_cost, odc_cost, total_cost, computed_at
		FROM monthly_pl
		WHERE project_id = $1
		  AND month >= make_date($2, 1, 1) AND month < make_date($2 + 1, 1, 1)
		ORDER BY month
	`, projectID, year)
}

// ListProject — весь опубликованный P&L проекта за период исполнения.
func (r *Repo) ListProject(ctx context.Context, projectID int64) ([]Row, error) {
	return r.listQuery(ctx, `
		SELECT project_id, month, revenue, labor_cost, sub_cost, equip_cost, material_cost, odc_cost, total_cost, computed_at
		FROM monthly_pl
		WHERE project_id = $1
		ORDER BY month
	`, projectID)
}
