package rollup

import (
	"testing"

	"github.com/Spok95/projfin/internal/domain/projects"
	"github.com/stretchr/testify/assert"
)

func TestPriceRevenue(t *testing.T) {
	assert.Equal(t, 1000.0, PriceRevenue(projects.FormulaTimeAndMaterials, 0, 1000))
	assert.Equal(t, 1000.0, PriceRevenue(projects.FormulaFixedPrice, 15, 1000))
	assert.Equal(t, 1080.0, PriceRevenue(projects.FormulaCostPlusFee, 8, 1000))
	// Неизвестная формула — сквозная, а не ошибка
	assert.Equal(t, 1000.0, PriceRevenue(projects.Formula("PAIN_SHARE"), 8, 1000))
}

func TestPriceYear_CostPlusNeverBelowCost(t *testing.T) {
	g := NewGrid(1, 2025)
	g.Labor = [12]float64{100, 0, 250.5, 0, 0, 99999, 0, 0, 1, 0, 0, 7}
	g.Subs[2] = 4000

	rev := PriceYear(g, projects.FormulaCostPlusFee, 12)
	for m := 0; m < 12; m++ {
		if g.Cost(m) > 0 {
			assert.GreaterOrEqual(t, rev[m], g.Cost(m), "month %d", m+1)
		} else {
			assert.Equal(t, 0.0, rev[m])
		}
	}
}
