package rollup

import (
	"log/slog"

	"github.com/Spok95/projfin/internal/domain/plan"
	"github.com/Spok95/projfin/internal/domain/rates"
)

// Aggregate сворачивает строки плана в помесячные корзины по статьям.
// Накопление аддитивное: две строки на один ресурс и месяц суммируются.
// Отрицательное qty — опечатка планировщика, а не сторнирование:
// зажимаем в ноль и пишем warn как сигнал качества данных.
func Aggregate(log *slog.Logger, projectID int64, year int, lines []plan.Line, snap *rates.Snapshot) *Grid {
	g := NewGrid(projectID, year)

	for _, l := range lines {
		if l.Month.Year() != year {
			continue
		}
		m := int(l.Month.Month()) - 1

		qty := l.Qty
		if qty < 0 {
			log.Warn("negative plan qty clamped",
				"project_id", projectID,
				"category", string(l.Category),
				"resource", l.ResourceKey,
				"month", l.Month.Format("2006-01"),
				"qty", l.Qty,
			)
			qty = 0
		}

		switch l.Category {
		case plan.CategoryLabor:
			g.Labor[m] += qty * snap.Rate(plan.CategoryLabor, l.ResourceKey)
			g.LaborHours[m] += qty
		case plan.CategoryEquipment:
			g.Equipment[m] += qty * snap.Rate(plan.CategoryEquipment, l.ResourceKey)
			g.EquipHours[m] += qty
		case plan.CategoryMaterial:
			g.Materials[m] += qty * snap.Rate(plan.CategoryMaterial, l.ResourceKey)
		case plan.CategorySub:
			// qty для субподряда — уже сумма
			g.Subs[m] += qty
		case plan.CategoryODC:
			g.ODC[m] += qty
		default:
			log.Warn("unknown plan category, folded into odc",
				"project_id", projectID,
				"category", string(l.Category),
			)
			g.ODC[m] += qty
		}
	}
	return g
}
