package card_link

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/walletd/walletd/pkg/ledger"
)

type PendingTransactionDTO struct {
	ledger.TransactionDTO
	Merchant    string `json:"merchant,omitempty"`
	Description string `json:"description,omitempty"`
}

type StatusDTO struct {
	Connected  bool `json:"connected"`
	Connecting bool `json:"connecting"`
	Remaining  int  `json:"remaining"`
	Done       bool `json:"done"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	imported, err := h.service.Connect(r.Context())
	switch {
	case errors.Is(err, ErrConnectionInProgress), errors.Is(err, ErrAlreadyConnected):
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(struct {
		Imported int `json:"imported"`
	}{imported}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	status := h.service.Status(r.Context())
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(StatusDTO(status)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetPending returns the head of the review queue. An empty queue is not an
// error for the frontend; it renders the "all done" state.
func (h *Handler) GetPending(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	head, remaining, err := h.service.Peek(r.Context())
	if errors.Is(err, ErrQueueEmpty) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(struct {
			Remaining int  `json:"remaining"`
			Done      bool `json:"done"`
		}{0, h.service.Status(r.Context()).Done})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(struct {
		Transaction PendingTransactionDTO `json:"transaction"`
		Remaining   int                   `json:"remaining"`
	}{PendingToDTO(head), remaining}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	remaining, err := h.service.Accept(r.Context(), id)
	if h.writeDispositionError(w, err) {
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(struct {
		Remaining int `json:"remaining"`
	}{remaining}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) RequestEdit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	item, remaining, err := h.service.RequestEdit(r.Context(), id)
	if h.writeDispositionError(w, err) {
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(struct {
		Transaction PendingTransactionDTO `json:"transaction"`
		Remaining   int                   `json:"remaining"`
	}{PendingToDTO(item), remaining}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) writeDispositionError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, ErrQueueEmpty):
		http.Error(w, "No pending transactions", http.StatusConflict)
		return true
	case errors.Is(err, ErrNotHead):
		http.Error(w, "Only the head of the queue can be dispositioned", http.StatusConflict)
		return true
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return true
	}
	return false
}

func PendingToDTO(p PendingTransaction) PendingTransactionDTO {
	return PendingTransactionDTO{
		TransactionDTO: ledger.TransactionToDTO(p.Transaction),
		Merchant:       p.Merchant,
		Description:    p.Description,
	}
}
