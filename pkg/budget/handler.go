package budget

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// EntryDTO carries one budget line. Budgeted amounts are submitted as the raw
// string the user typed; the service coerces invalid input to 0.
type EntryDTO struct {
	CategoryKey  string  `json:"categoryKey"`
	Subcategory  string  `json:"subcategory"`
	Budgeted     float64 `json:"budgeted"`
	Spent        float64 `json:"spent"`
	Remaining    float64 `json:"remaining"`
	PercentSpent float64 `json:"percentSpent"`
}

type TableDTO struct {
	Entries       []EntryDTO `json:"entries"`
	TotalBudgeted float64    `json:"totalBudgeted"`
	TotalSpent    float64    `json:"totalSpent"`
	Remaining     float64    `json:"remaining"`
	PercentSpent  float64    `json:"percentSpent"`
}

type SetBudgetedDTO struct {
	Budgeted string `json:"budgeted"`
}

type BulkEntryDTO struct {
	CategoryKey string `json:"categoryKey"`
	Subcategory string `json:"subcategory"`
	Budgeted    string `json:"budgeted"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	entries, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	totals, err := h.service.Totals(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := TableDTO{
		Entries:       make([]EntryDTO, 0, len(entries)),
		TotalBudgeted: totals.Budgeted.Float64(),
		TotalSpent:    totals.Spent.Float64(),
		Remaining:     totals.Remaining().Float64(),
		PercentSpent:  totals.PercentSpent(),
	}
	for key, entry := range entries {
		dto.Entries = append(dto.Entries, entryToDTO(key, entry))
	}
	sort.Slice(dto.Entries, func(i, j int) bool {
		if dto.Entries[i].CategoryKey != dto.Entries[j].CategoryKey {
			return dto.Entries[i].CategoryKey < dto.Entries[j].CategoryKey
		}
		return dto.Entries[i].Subcategory < dto.Entries[j].Subcategory
	})

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) SetBudgeted(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	key := Key{CategoryKey: vars["categoryKey"], Subcategory: vars["subcategory"]}

	var body SetBudgetedDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := h.service.SetBudgeted(r.Context(), key, body.Budgeted)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(entryToDTO(key, entry)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) BulkSetBudgeted(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var body []BulkEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Debugf("bulk budget save with %d entries", len(body))
	rawAmounts := make(map[Key]string, len(body))
	for _, item := range body {
		rawAmounts[Key{CategoryKey: item.CategoryKey, Subcategory: item.Subcategory}] = item.Budgeted
	}

	if err := h.service.BulkSetBudgeted(r.Context(), rawAmounts); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func entryToDTO(key Key, entry Entry) EntryDTO {
	return EntryDTO{
		CategoryKey:  key.CategoryKey,
		Subcategory:  key.Subcategory,
		Budgeted:     entry.Budgeted.Float64(),
		Spent:        entry.Spent.Float64(),
		Remaining:    entry.Remaining().Float64(),
		PercentSpent: entry.PercentSpent(),
	}
}
