package rates

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Spok95/projfin/internal/domain/plan"
	"github.com/jackc/pgx/v5/pgconn"
)

// Loader снимает каталог ставок, перебирая известные формы схемы.
// sub и odc ставок не имеют — их qty уже является суммой.
type Loader struct {
	q      Querier
	log    *slog.Logger
	chains map[plan.Category][]Adapter
}

func NewLoader(q Querier, log *slog.Logger) *Loader {
	return &Loader{q: q, log: log, chains: defaultChains()}
}

// Snapshot загружает ставки по всем статьям. Исчерпание цепочки без
// данных — не ошибка: каталог деградирует до пустого, все ставки 0.
func (l *Loader) Snapshot(ctx context.Context) (*Snapshot, error) {
	var all []Entry
	for _, cat := range []plan.Category{plan.CategoryLabor, plan.CategoryEquipment, plan.CategoryMaterial} {
		entries, err := l.loadCategory(ctx, cat)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return NewSnapshot(all), nil
}

func (l *Loader) loadCategory(ctx context.Context, cat plan.Category) ([]Entry, error) {
	for _, a := range l.chains[cat] {
		entries, err := a.Load(ctx, l.q)
		if err != nil {
			if isSchemaAbsent(err) {
				l.log.Debug("rate schema absent, trying next", "adapter", a.Name)
				continue
			}
			return nil, err
		}
		if len(entries) == 0 {
			continue
		}
		return entries, nil
	}
	l.log.Warn("no rate source for category", "category", string(cat))
	return nil, nil
}

// isSchemaAbsent — отсутствующая таблица/колонка (42P01/42703):
// значит, эта форма каталога в данной инсталляции не используется.
func isSchemaAbsent(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "42P01" || pgErr.Code == "42703"
}
