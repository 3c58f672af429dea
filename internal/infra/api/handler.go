package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Spok95/projfin/internal/domain/pl"
	"github.com/Spok95/projfin/internal/domain/rollup"
)

// Handler — HTTP-поверхность движка для браузерных форм:
// пересчёт, чтение опубликованной сетки, выгрузка в Excel, EAC.
type Handler struct {
	log *slog.Logger
	svc *rollup.Service
	pl  *pl.Repo
}

func NewHandler(log *slog.Logger, svc *rollup.Service, plRepo *pl.Repo) *Handler {
	return &Handler{log: log, svc: svc, pl: plRepo}
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /rollup/recompute", h.recompute)
	mux.HandleFunc("GET /rollup/grid", h.grid)
	mux.HandleFunc("GET /rollup/export", h.export)
	mux.HandleFunc("GET /rollup/eac", h.eac)
}

func projectYearParams(r *http.Request) (int64, int, bool) {
	projectID, err := strconv.ParseInt(r.URL.Query().Get("project"), 10, 64)
	if err != nil || projectID <= 0 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		return 0, 0, false
	}
	return projectID, year, true
}

func (h *Handler) recompute(w http.ResponseWriter, r *http.Request) {
	projectID, year, ok := projectYearParams(r)
	if !ok {
		http.Error(w, "invalid project/year parameters", http.StatusBadRequest)
		return
	}

	if err := h.svc.Recompute(r.Context(), projectID, year); err != nil {
		h.log.Error("recompute failed",
			"project_id", projectID,
			"year", year,
			"err", err,
		)
		// Публикация неатомарна относительно конкурентных читателей:
		// клиент должен уметь повторить запрос.
		http.Error(w, "recompute failed, retry later", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"project": projectID, "year": year, "status": "ok"})
}

func (h *Handler) grid(w http.ResponseWriter, r *http.Request) {
	projectID, year, ok := projectYearParams(r)
	if !ok {
		http.Error(w, "invalid project/year parameters", http.StatusBadRequest)
		return
	}

	rows, err := h.pl.ListYear(r.Context(), projectID, year)
	if err != nil {
		h.log.Error("grid read failed", "project_id", projectID, "year", year, "err", err)
		http.Error(w, "failed to read grid", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rows)
}

func (h *Handler) eac(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(r.URL.Query().Get("project"), 10, 64)
	if err != nil || projectID <= 0 {
		http.Error(w, "invalid project parameter", http.StatusBadRequest)
		return
	}

	report, err := h.svc.EAC(r.Context(), projectID)
	if err != nil {
		h.log.Error("eac report failed", "project_id", projectID, "err", err)
		http.Error(w, "failed to build eac report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(report)
}
