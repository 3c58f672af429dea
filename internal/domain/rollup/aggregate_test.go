package rollup

import (
	"log/slog"
	"testing"
	"time"

	"github.com/Spok95/projfin/internal/domain/plan"
	"github.com/Spok95/projfin/internal/domain/rates"
	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func testSnapshot() *rates.Snapshot {
	return rates.NewSnapshot([]rates.Entry{
		{Category: plan.CategoryLabor, Key: "PM", Rate: 150},
		{Category: plan.CategoryLabor, Key: "Tech", Rate: 80},
		{Category: plan.CategoryEquipment, Key: "Excavator", Rate: 200},
		{Category: plan.CategoryMaterial, Key: "CONC-40", Rate: 110}, // уже с отходами
	})
}

func TestAggregate_SameResourceSameMonthSums(t *testing.T) {
	// Две строки на одного сотрудника и месяц складываются, а не затирают друг друга.
	lines := []plan.Line{
		{ProjectID: 1, Category: plan.CategoryLabor, ResourceKey: "PM", Month: month(2025, time.March), Qty: 10},
		{ProjectID: 1, Category: plan.CategoryLabor, ResourceKey: "PM", Month: month(2025, time.March), Qty: 5},
	}

	g := Aggregate(testLogger(), 1, 2025, lines, testSnapshot())

	assert.Equal(t, 15.0, g.LaborHours[2])
	assert.Equal(t, 15.0*150, g.Labor[2])
}

func TestAggregate_UnknownResourceZeroCostHoursCounted(t *testing.T) {
	lines := []plan.Line{
		{ProjectID: 1, Category: plan.CategoryLabor, ResourceKey: "Engineer", Month: month(2025, time.January), Qty: 40},
	}

	g := Aggregate(testLogger(), 1, 2025, lines, testSnapshot())

	assert.Equal(t, 0.0, g.Labor[0])
	assert.Equal(t, 40.0, g.LaborHours[0])
}

func TestAggregate_NegativeQtyClamped(t *testing.T) {
	lines := []plan.Line{
		{ProjectID: 1, Category: plan.CategoryLabor, ResourceKey: "PM", Month: month(2025, time.May), Qty: -20},
		{ProjectID: 1, Category: plan.CategorySub, ResourceKey: "ООО Подряд", Month: month(2025, time.May), Qty: -5000},
	}

	g := Aggregate(testLogger(), 1, 2025, lines, testSnapshot())

	assert.Equal(t, 0.0, g.Labor[4])
	assert.Equal(t, 0.0, g.LaborHours[4])
	assert.Equal(t, 0.0, g.Subs[4])
}

func TestAggregate_OutsideYearExcluded(t *testing.T) {
	lines := []plan.Line{
		{ProjectID: 1, Category: plan.CategoryODC, Month: month(2024, time.December), Qty: 999},
		{ProjectID: 1, Category: plan.CategoryODC, Month: month(2025, time.January), Qty: 100},
		{ProjectID: 1, Category: plan.CategoryODC, Month: month(2026, time.January), Qty: 999},
	}

	g := Aggregate(testLogger(), 1, 2025, lines, testSnapshot())

	assert.Equal(t, 100.0, g.TotalCost())
}

func TestAggregate_DirectCostCategoriesTakenAsIs(t *testing.T) {
	lines := []plan.Line{
		{ProjectID: 1, Category: plan.CategorySub, ResourceKey: "Sub A", Month: month(2025, time.July), Qty: 12000},
		{ProjectID: 1, Category: plan.CategoryODC, ResourceKey: "travel", Month: month(2025, time.July), Qty: 800},
		{ProjectID: 1, Category: plan.CategoryMaterial, ResourceKey: "CONC-40", Month: month(2025, time.July), Qty: 10},
		{ProjectID: 1, Category: plan.CategoryEquipment, ResourceKey: "Excavator", Month: month(2025, time.July), Qty: 8},
	}

	g := Aggregate(testLogger(), 1, 2025, lines, testSnapshot())

	assert.Equal(t, 12000.0, g.Subs[6])
	assert.Equal(t, 800.0, g.ODC[6])
	assert.Equal(t, 10.0*110, g.Materials[6])
	assert.Equal(t, 8.0*200, g.Equipment[6])
}

func TestAggregate_UnknownCategoryFoldedIntoODC(t *testing.T) {
	lines := []plan.Line{
		{ProjectID: 1, Category: "misc", Month: month(2025, time.February), Qty: 250},
	}

	g := Aggregate(testLogger(), 1, 2025, lines, testSnapshot())

	assert.Equal(t, 250.0, g.ODC[1])
}

func TestGrid_CostIsSumOfCategories(t *testing.T) {
	lines := []plan.Line{
		{ProjectID: 1, Category: plan.CategoryLabor, ResourceKey: "Tech", Month: month(2025, time.April), Qty: 100},
		{ProjectID: 1, Category: plan.CategorySub, Month: month(2025, time.April), Qty: 5000},
		{ProjectID: 1, Category: plan.CategoryEquipment, ResourceKey: "Excavator", Month: month(2025, time.April), Qty: 10},
		{ProjectID: 1, Category: plan.CategoryMaterial, ResourceKey: "CONC-40", Month: month(2025, time.April), Qty: 3},
		{ProjectID: 1, Category: plan.CategoryODC, Month: month(2025, time.April), Qty: 400},
	}

	g := Aggregate(testLogger(), 1, 2025, lines, testSnapshot())

	for m := 0; m < 12; m++ {
		assert.Equal(t, g.Labor[m]+g.Subs[m]+g.Equipment[m]+g.Materials[m]+g.ODC[m], g.Cost(m), "month %d", m+1)
	}
}
