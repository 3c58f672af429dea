package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"
)

// export выгружает опубликованную сетку P&L в Excel: строка на месяц.
func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	projectID, year, ok := projectYearParams(r)
	if !ok {
		http.Error(w, "invalid project/year parameters", http.StatusBadRequest)
		return
	}

	// 1) снимок
	rows, err := h.pl.ListYear(r.Context(), projectID, year)
	if err != nil {
		h.log.Error("export read failed", "project_id", projectID, "year", year, "err", err)
		http.Error(w, "failed to read grid", http.StatusInternalServerError)
		return
	}
	if len(rows) == 0 {
		http.Error(w, "no published rows for this project/year", http.StatusNotFound)
		return
	}

	// 2) Excel
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"project_id",
		"month",
		"revenue",
		"labor_cost",
		"sub_cost",
		"equip_cost",
		"material_cost",
		"odc_cost",
		"total_cost",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		http.Error(w, "failed to build workbook", http.StatusInternalServerError)
		return
	}

	rowN := 2
	for _, row := range rows {
		excelRow := []interface{}{
			row.ProjectID,
			row.Month.Format("2006-01"),
			row.Revenue,
			row.Labor,
			row.Subs,
			row.Equipment,
			row.Materials,
			row.ODC,
			row.Total,
		}
		cell, err := excelize.CoordinatesToCellName(1, rowN)
		if err != nil {
			http.Error(w, "failed to build workbook", http.StatusInternalServerError)
			return
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			http.Error(w, "failed to build workbook", http.StatusInternalServerError)
			return
		}
		rowN++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		http.Error(w, "failed to write workbook", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="pl_%d_%d.xlsx"`, projectID, year))
	_, _ = w.Write(buf.Bytes())
}
