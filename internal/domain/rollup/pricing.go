package rollup

import "github.com/Spok95/projfin/internal/domain/projects"

// PriceRevenue считает выручку месяца от прямых затрат по формуле проекта.
// T&M и фикспрайс биллятся по затратам как есть; cost-plus добавляет
// процент вознаграждения. Неизвестная формула деградирует до сквозной —
// один битый проект не должен ронять портфельный свод.
func PriceRevenue(f projects.Formula, feePct, directCost float64) float64 {
	switch f {
	case projects.FormulaCostPlusFee:
		return directCost * (1 + feePct/100)
	case projects.FormulaTimeAndMaterials, projects.FormulaFixedPrice:
		return directCost
	default:
		return directCost
	}
}

// PriceYear — выручка по всем месяцам сетки.
func PriceYear(g *Grid, f projects.Formula, feePct float64) [12]float64 {
	var rev [12]float64
	for m := 0; m < 12; m++ {
		rev[m] = PriceRevenue(f, feePct, g.Cost(m))
	}
	return rev
}
