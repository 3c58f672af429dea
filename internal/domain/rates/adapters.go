package rates

import (
	"context"

	"github.com/Spok95/projfin/internal/domain/plan"
	"github.com/jackc/pgx/v5"
)

// Querier — минимальный срез pgxpool.Pool, нужный адаптерам.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Adapter приводит одну из известных форм каталога к каноническим Entry.
// Цепочка адаптеров пробуется по порядку; берётся первый, давший строки.
type Adapter struct {
	Name string
	Load func(ctx context.Context, q Querier) ([]Entry, error)
}

// Часовая норма для пересчёта дневных тарифов техники.
const hoursPerDay = 8.0

// hourlyEquipmentRate приводит тариф к часовому: qty плана — часы.
func hourlyEquipmentRate(rate float64, unit string) float64 {
	if unit == "day" {
		return rate / hoursPerDay
	}
	return rate
}

// loadedMaterialRate — нагруженная стоимость единицы с учётом отходов.
// Отрицательная доля отходов — мусор в справочнике, считаем её нулём.
func loadedMaterialRate(unitCost, waste float64) float64 {
	if waste < 0 {
		waste = 0
	}
	return unitCost * (1 + waste)
}

// flatAdapter — общая таблица rate_catalog(category, resource_key, rate)
// из предыдущей версии приложения; ставка в ней уже нагруженная.
func flatAdapter(cat plan.Category) Adapter {
	return Adapter{
		Name: "rate_catalog/" + string(cat),
		Load: func(ctx context.Context, q Querier) ([]Entry, error) {
			rows, err := q.Query(ctx, `
				SELECT resource_key, rate
				FROM rate_catalog
				WHERE category = $1
			`, string(cat))
			if err != nil {
				return nil, err
			}
			defer rows.Close()

			var out []Entry
			for rows.Next() {
				e := Entry{Category: cat}
				if err := rows.Scan(&e.Key, &e.Rate); err != nil {
					return nil, err
				}
				out = append(out, e)
			}
			return out, rows.Err()
		},
	}
}

func laborChain() []Adapter {
	return []Adapter{
		{
			Name: "labor_rates",
			Load: func(ctx context.Context, q Querier) ([]Entry, error) {
				rows, err := q.Query(ctx, `SELECT role, loaded_rate FROM labor_rates`)
				if err != nil {
					return nil, err
				}
				defer rows.Close()

				var out []Entry
				for rows.Next() {
					e := Entry{Category: plan.CategoryLabor}
					if err := rows.Scan(&e.Key, &e.Rate); err != nil {
						return nil, err
					}
					out = append(out, e)
				}
				return out, rows.Err()
			},
		},
		flatAdapter(plan.CategoryLabor),
		{
			// схема самой первой версии таймшитов
			Name: "staff_rates(legacy)",
			Load: func(ctx context.Context, q Querier) ([]Entry, error) {
				rows, err := q.Query(ctx, `SELECT role_name, hourly_rate FROM staff_rates`)
				if err != nil {
					return nil, err
				}
				defer rows.Close()

				var out []Entry
				for rows.Next() {
					e := Entry{Category: plan.CategoryLabor}
					if err := rows.Scan(&e.Key, &e.Rate); err != nil {
						return nil, err
					}
					out = append(out, e)
				}
				return out, rows.Err()
			},
		},
	}
}

func equipmentChain() []Adapter {
	return []Adapter{
		{
			Name: "equipment_rates",
			Load: func(ctx context.Context, q Querier) ([]Entry, error) {
				rows, err := q.Query(ctx, `SELECT equip_type, rate, rate_unit FROM equipment_rates`)
				if err != nil {
					return nil, err
				}
				defer rows.Close()

				var out []Entry
				for rows.Next() {
					e := Entry{Category: plan.CategoryEquipment}
					var unit string
					if err := rows.Scan(&e.Key, &e.Rate, &unit); err != nil {
						return nil, err
					}
					e.Rate = hourlyEquipmentRate(e.Rate, unit)
					out = append(out, e)
				}
				return out, rows.Err()
			},
		},
		flatAdapter(plan.CategoryEquipment),
	}
}

func materialChain() []Adapter {
	return []Adapter{
		{
			Name: "material_rates",
			Load: func(ctx context.Context, q Querier) ([]Entry, error) {
				rows, err := q.Query(ctx, `SELECT sku, unit_cost, waste_frac FROM material_rates`)
				if err != nil {
					return nil, err
				}
				defer rows.Close()

				var out []Entry
				for rows.Next() {
					e := Entry{Category: plan.CategoryMaterial}
					var waste float64
					if err := rows.Scan(&e.Key, &e.Rate, &waste); err != nil {
						return nil, err
					}
					e.Rate = loadedMaterialRate(e.Rate, waste)
					out = append(out, e)
				}
				return out, rows.Err()
			},
		},
		flatAdapter(plan.CategoryMaterial),
	}
}

// defaultChains — порядок попыток фиксированный: основная схема,
// потом общая rate_catalog, потом legacy-формы.
func defaultChains() map[plan.Category][]Adapter {
	return map[plan.Category][]Adapter{
		plan.CategoryLabor:     laborChain(),
		plan.CategoryEquipment: equipmentChain(),
		plan.CategoryMaterial:  materialChain(),
	}
}
