package rollup

import (
	"encoding/json"
	"fmt"
)

// Percent — процентная величина с явным «не определено». Деление на ноль
// не кодируется ни нулём, ни -100: это разные утверждения, и смешение
// «нет данных» с «ровно ноль» уже приводило к кривым отчётам.
type Percent struct {
	Value float64
	Valid bool
}

func Pct(v float64) Percent { return Percent{Value: v, Valid: true} }

// UndefinedPct — сентинел «не определено»; на краях рендерится как «—».
var UndefinedPct = Percent{}

func (p Percent) String() string {
	if !p.Valid {
		return "—"
	}
	return fmt.Sprintf("%.1f%%", p.Value)
}

// MarshalJSON: «не определено» уходит наружу как null, не как 0.
func (p Percent) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}

// Variance — абсолютное и процентное отклонение бюджета от факта.
// Процент не определён при нулевом бюджете.
func Variance(budget, actual float64) (float64, Percent) {
	v := budget - actual
	if budget == 0 {
		return v, UndefinedPct
	}
	return v, Pct(v / budget * 100)
}

// MarginPct — маржа в процентах от выручки; при нулевой выручке
// не определена (даже если затраты тоже нулевые).
func MarginPct(revenue, cost float64) Percent {
	if revenue == 0 {
		return UndefinedPct
	}
	return Pct((revenue - cost) / revenue * 100)
}

// ShareOfRevenue — доля статьи в выручке, %.
func ShareOfRevenue(part, revenue float64) Percent {
	if revenue == 0 {
		return UndefinedPct
	}
	return Pct(part / revenue * 100)
}
