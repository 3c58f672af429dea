package projects

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// GetByID возвращает проект (nil, nil если не найден).
// Движок читает проекты только для расчёта — правка идёт через CRUD-формы.
func (r *Repo) GetByID(ctx context.Context, id int64) (*Project, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, revenue_formula, fee_pct, pop_start, pop_end, funding_amount, project_type, active, created_at
		FROM projects WHERE id = $1
	`, id)
	var p Project
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Formula,
		&p.FeePct,
		&p.PoPStart,
		&p.PoPEnd,
		&p.FundingAmount,
		&p.ProjectType,
		&p.Active,
		&p.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repo) List(ctx context.Context, onlyActive bool) ([]Project, error) {
	q := `
		SELECT id, name, revenue_formula, fee_pct, pop_start, pop_end, funding_amount, project_type, active, created_at
		FROM projects
	`
	if onlyActive {
		q += " WHERE active = TRUE"
	}
	q += " ORDER BY name"

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Formula,
			&p.FeePct,
			&p.PoPStart,
			&p.PoPEnd,
			&p.FundingAmount,
			&p.ProjectType,
			&p.Active,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
