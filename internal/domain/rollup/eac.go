package rollup

import "time"

// MonthsInclusive — число календарных месяцев между парами (год, месяц)
// включительно: январь–март = 3. Считаем по месяцам, не по дням, чтобы
// контрактные даты конца/начала месяца не давали дробных перекосов.
func MonthsInclusive(start, end time.Time) int {
	n := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
	if n < 0 {
		return 0
	}
	return n
}

// MonthsElapsed — месяцы от старта до min(now, конец периода) включительно.
// До старта проекта — 0.
func MonthsElapsed(start, end, now time.Time) int {
	if now.After(end) {
		now = end
	}
	return MonthsInclusive(start, now)
}

// Proration — экстраполяция факта на весь период исполнения.
type Proration struct {
	AvgMonthly float64
	Total      float64
}

// Prorate: средний месячный факт, умноженный на полный срок периода.
// Нет факта или нет прошедших месяцев — оценка ноль: из пустоты
// не экстраполируем.
func Prorate(actualToDate float64, monthsElapsed, monthsTotal int) Proration {
	if actualToDate == 0 || monthsElapsed <= 0 {
		return Proration{}
	}
	avg := actualToDate / float64(monthsElapsed)
	return Proration{
		AvgMonthly: avg,
		Total:      avg * float64(monthsTotal),
	}
}
