package benchmarks

// Entry — перцентильные границы метрики по когорте типа проекта.
// Справочные данные, для движка read-only.
type Entry struct {
	ProjectType string
	Metric      string
	Period      string // пока только "annual"
	P25         float64
	P50         float64
	P75         float64
	SampleN     int
}
