package insights

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

type OverviewDTO struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	Income       float64 `json:"income"`
	Expenses     float64 `json:"expenses"`
	Budget       float64 `json:"budget"`
	BudgetLeft   float64 `json:"budgetLeft"`
	PercentSpent float64 `json:"percentSpent"`
}

type SummaryStepDTO struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Value    string  `json:"value,omitempty"`
	Amount   float64 `json:"amount"`
	Emoji    string  `json:"emoji"`
}

type MonthRefDTO struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Label string `json:"label"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	year, month, err := parseYearMonth(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	overview, err := h.service.Overview(r.Context(), year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(OverviewToDTO(overview)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetWeeklySummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	steps, err := h.service.WeeklySummary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]SummaryStepDTO, 0, len(steps))
	for _, step := range steps {
		dtos = append(dtos, SummaryStepToDTO(step))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetMonths(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	months := h.service.MonthWindow(r.Context())
	dtos := make([]MonthRefDTO, 0, len(months))
	for _, ref := range months {
		dtos = append(dtos, MonthRefDTO{Year: ref.Year, Month: int(ref.Month), Label: ref.Label})
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func parseYearMonth(r *http.Request) (int, time.Month, error) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid or missing year parameter")
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid or missing month parameter")
	}
	return year, time.Month(month), nil
}

func OverviewToDTO(o Overview) OverviewDTO {
	return OverviewDTO{
		Year:         o.Year,
		Month:        int(o.Month),
		Income:       o.Income.Float64(),
		Expenses:     o.Expenses.Float64(),
		Budget:       o.Budget.Float64(),
		BudgetLeft:   o.BudgetLeft.Float64(),
		PercentSpent: o.PercentSpent,
	}
}

func SummaryStepToDTO(s SummaryStep) SummaryStepDTO {
	return SummaryStepDTO{
		Title:    s.Title,
		Subtitle: s.Subtitle,
		Value:    s.Value,
		Amount:   s.Amount.Float64(),
		Emoji:    s.Emoji,
	}
}
