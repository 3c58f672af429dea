package rollup

import (
	"github.com/Spok95/projfin/internal/domain/actuals"
	"github.com/Spok95/projfin/internal/domain/plan"
)

// BlendCosts накладывает факт на прогноз. Гранулярность выбора —
// ячейка (статья, месяц): ненулевой факт вытесняет прогноз только в
// своей статье. Факт по труду часто провязан раньше, чем по
// материалам, поэтому месяц целиком не переключается.
// Часы остаются плановыми: факт приходит деньгами.
func BlendCosts(g *Grid, acts actuals.YearSeries) *Grid {
	out := *g
	out.Labor = blendSeries(g.Labor, acts[plan.CategoryLabor])
	out.Subs = blendSeries(g.Subs, acts[plan.CategorySub])
	out.Equipment = blendSeries(g.Equipment, acts[plan.CategoryEquipment])
	out.Materials = blendSeries(g.Materials, acts[plan.CategoryMaterial])
	out.ODC = blendSeries(g.ODC, acts[plan.CategoryODC])
	return &out
}

// blendSeries: факт != 0 — берём факт, иначе прогноз. Нулевой факт
// трактуется как «ещё не провязан», а не как «потратили ровно ноль».
func blendSeries(forecast, actual [12]float64) [12]float64 {
	var out [12]float64
	for m := 0; m < 12; m++ {
		if actual[m] != 0 {
			out[m] = actual[m]
		} else {
			out[m] = forecast[m]
		}
	}
	return out
}
