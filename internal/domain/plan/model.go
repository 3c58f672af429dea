package plan

import "time"

// Category — статья прямых затрат. Единица qty зависит от статьи:
// часы для labor/equipment, количество для material, сумма для sub/odc.
type Category string

const (
	CategoryLabor     Category = "labor"
	CategorySub       Category = "sub"
	CategoryEquipment Category = "equipment"
	CategoryMaterial  Category = "material"
	CategoryODC       Category = "odc"
)

// Categories — фиксированный порядок статей для выборок и отчётов.
var Categories = []Category{CategoryLabor, CategorySub, CategoryEquipment, CategoryMaterial, CategoryODC}

type Line struct {
	ID          int64
	ProjectID   int64
	Category    Category
	ResourceKey string // роль / тип техники / SKU; для sub и odc — имя контрагента или статьи
	Month       time.Time
	Qty         float64
	CreatedAt   time.Time
}
