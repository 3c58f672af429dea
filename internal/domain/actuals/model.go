package actuals

import "github.com/Spok95/projfin/internal/domain/plan"

// YearSeries — факты года из внешней выгрузки главной книги,
// разложенные по статьям в 12 помесячных ячеек. Для движка read-only.
// Отсутствие записей означает нули: проект без провязанных фактов законен.
type YearSeries map[plan.Category][12]float64
