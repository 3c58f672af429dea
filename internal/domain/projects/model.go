package projects

import "time"

type Formula string

const (
	FormulaTimeAndMaterials Formula = "TIME_AND_MATERIALS"
	FormulaCostPlusFee      Formula = "COST_PLUS_FEE"
	FormulaFixedPrice       Formula = "FIXED_PRICE"
)

type Project struct {
	ID            int64
	Name          string
	Formula       Formula
	FeePct        float64 // применяется только при COST_PLUS_FEE
	PoPStart      time.Time
	PoPEnd        time.Time
	FundingAmount float64
	ProjectType   string // ключ когорты для бенчмарков
	Active        bool
	CreatedAt     time.Time
}
