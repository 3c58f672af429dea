package rollup

import (
	"time"

	"github.com/Spok95/projfin/internal/domain/pl"
)

// Grid — помесячная сетка прямых затрат проекта за календарный год.
// Фиксированные массивы по номеру месяца (0–11) вместо map по строке
// "YYYY-MM": формат ключа ломался уже дважды ("2025-01" против "2025-1").
type Grid struct {
	ProjectID int64
	Year      int

	Labor     [12]float64
	Subs      [12]float64
	Equipment [12]float64
	Materials [12]float64
	ODC       [12]float64

	// Плановые часы считаются и для ресурсов без ставки,
	// иначе метрики по трудозатратам худеют при дырах в каталоге.
	LaborHours [12]float64
	EquipHours [12]float64
}

func NewGrid(projectID int64, year int) *Grid {
	return &Grid{ProjectID: projectID, Year: year}
}

// Cost — суммарные прямые затраты месяца m (0–11).
func (g *Grid) Cost(m int) float64 {
	return g.Labor[m] + g.Subs[m] + g.Equipment[m] + g.Materials[m] + g.ODC[m]
}

func (g *Grid) TotalCost() float64 {
	var t float64
	for m := 0; m < 12; m++ {
		t += g.Cost(m)
	}
	return t
}

// Rows собирает строки P&L для публикации: месяц — первое число,
// total пересчитывается из статей, а не доверяется вызвавшему.
func (g *Grid) Rows(revenue [12]float64) []pl.Row {
	rows := make([]pl.Row, 0, 12)
	for m := 0; m < 12; m++ {
		rows = append(rows, pl.Row{
			ProjectID: g.ProjectID,
			Month:     time.Date(g.Year, time.Month(m+1), 1, 0, 0, 0, 0, time.UTC),
			Revenue:   revenue[m],
			Labor:     g.Labor[m],
			Subs:      g.Subs[m],
			Equipment: g.Equipment[m],
			Materials: g.Materials[m],
			ODC:       g.ODC[m],
			Total:     g.Cost(m),
		})
	}
	return rows
}
