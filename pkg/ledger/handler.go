package ledger

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/walletd/walletd/internal/money"
)

type TransactionDTO struct {
	ID                string    `json:"id,omitempty"`
	Kind              string    `json:"kind"`
	Amount            float64   `json:"amount"`
	CategoryName      string    `json:"categoryName"`
	CategoryKey       string    `json:"categoryKey"`
	Note              string    `json:"note,omitempty"`
	Date              time.Time `json:"date"`
	ExcludeFromBudget bool      `json:"excludeFromBudget"`
}

type DateGroupDTO struct {
	Label        string           `json:"label"`
	Transactions []TransactionDTO `json:"transactions"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new transaction")
	w.Header().Set("Content-Type", "application/json")

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == "" {
		dto.ID = uuid.NewString()
	}

	transaction := DTOToTransaction(dto)
	if err := h.service.Add(r.Context(), transaction); err != nil {
		if errors.Is(err, ErrZeroAmount) || errors.Is(err, ErrInvalidKind) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(TransactionToDTO(transaction)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	oldID := mux.Vars(r)["id"]

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == "" {
		dto.ID = oldID
	}

	replacement := DTOToTransaction(dto)
	err := h.service.Replace(r.Context(), oldID, replacement)
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrZeroAmount), errors.Is(err, ErrInvalidKind):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(TransactionToDTO(replacement)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	removed, err := h.service.Remove(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !removed {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List returns one month of the ledger, newest first, optionally grouped by
// date label when the "grouped" query parameter is present.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	year, month, err := parseYearMonth(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if r.URL.Query().Has("grouped") {
		groups, err := h.service.GroupedByDate(r.Context(), year, month)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		dtos := make([]DateGroupDTO, 0, len(groups))
		for _, group := range groups {
			groupDTO := DateGroupDTO{Label: group.Label, Transactions: make([]TransactionDTO, 0, len(group.Transactions))}
			for _, t := range group.Transactions {
				groupDTO.Transactions = append(groupDTO.Transactions, TransactionToDTO(t))
			}
			dtos = append(dtos, groupDTO)
		}
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(dtos); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	transactions, err := h.service.FilterByMonth(r.Context(), year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]TransactionDTO, 0, len(transactions))
	for _, t := range transactions {
		dtos = append(dtos, TransactionToDTO(t))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func parseYearMonth(r *http.Request) (int, time.Month, error) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, errors.New("invalid year query parameter")
	}
	monthNum, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		return 0, 0, errors.New("invalid month query parameter, expected 1-12")
	}
	return year, time.Month(monthNum), nil
}

func TransactionToDTO(t Transaction) TransactionDTO {
	return TransactionDTO{
		ID:                t.ID,
		Kind:              string(t.Kind),
		Amount:            t.Amount.Float64(),
		CategoryName:      t.CategoryName,
		CategoryKey:       t.CategoryKey,
		Note:              t.Note,
		Date:              t.Date,
		ExcludeFromBudget: t.ExcludeFromBudget,
	}
}

func DTOToTransaction(dto TransactionDTO) Transaction {
	return Transaction{
		ID:                dto.ID,
		Kind:              Kind(dto.Kind),
		Amount:            money.FromFloat(dto.Amount),
		CategoryName:      dto.CategoryName,
		CategoryKey:       dto.CategoryKey,
		Note:              dto.Note,
		Date:              dto.Date,
		ExcludeFromBudget: dto.ExcludeFromBudget,
	}
}
