package rates

import "github.com/Spok95/projfin/internal/domain/plan"

// Entry — каноническая строка каталога ставок после приведения схемы.
// Rate — уже «нагруженная» ставка за единицу qty строки плана:
// для материалов это unit_cost * (1 + waste_frac), для техники —
// почасовая ставка независимо от того, в чём тарифицируется источник.
type Entry struct {
	Category plan.Category
	Key      string
	Rate     float64
}

type rateKey struct {
	cat plan.Category
	key string
}

// Snapshot — каталог ставок, снятый одним батчем перед расчётом.
type Snapshot struct {
	rates map[rateKey]float64
}

func NewSnapshot(entries []Entry) *Snapshot {
	s := &Snapshot{rates: make(map[rateKey]float64, len(entries))}
	for _, e := range entries {
		s.rates[rateKey{cat: e.Category, key: e.Key}] = e.Rate
	}
	return s
}

// Rate возвращает ставку ресурса. Неизвестный ресурс — это не ошибка:
// такая строка плана даёт нулевую стоимость, часы при этом считаются.
func (s *Snapshot) Rate(cat plan.Category, key string) float64 {
	return s.rates[rateKey{cat: cat, key: key}]
}

func (s *Snapshot) Len() int { return len(s.rates) }
