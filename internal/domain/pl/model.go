package pl

import "time"

// Row — каноническая строка месячного P&L, единственный артефакт,
// который читают таблицы, графики и портфельные своды. Идентичности
// кроме (проект, месяц) у строки нет: пересчёт замещает снимок целиком.
type Row struct {
	ProjectID  int64
	Month      time.Time // первое число месяца
	Revenue    float64
	Labor      float64
	Subs       float64
	Equipment  float64
	Materials  float64
	ODC        float64
	Total      float64 // labor + subs + equipment + materials + odc
	ComputedAt time.Time
}
