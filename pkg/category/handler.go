package category

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type CategoryDTO struct {
	Key           string   `json:"key"`
	Name          string   `json:"name"`
	Color         string   `json:"color,omitempty"`
	SolidColor    string   `json:"solidColor,omitempty"`
	GlowColor     string   `json:"glowColor,omitempty"`
	Icon          string   `json:"icon,omitempty"`
	Subcategories []string `json:"subcategories"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	categories, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, CategoryToDTO(category))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) AddSubcategory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	categoryKey := mux.Vars(r)["key"]

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Name == "" {
		http.Error(w, "Subcategory name must not be empty", http.StatusBadRequest)
		return
	}

	log.Debugf("Adding subcategory %q to category %q", body.Name, categoryKey)
	err := h.service.AddSubcategory(r.Context(), categoryKey, body.Name)
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrSubcategoryExists):
		http.Error(w, "Subcategory already exists", http.StatusConflict)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) RemoveSubcategory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	categoryKey := vars["key"]
	name := vars["name"]

	err := h.service.RemoveSubcategory(r.Context(), categoryKey, name)
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	case errors.Is(err, ErrSubcategoryMissing):
		http.Error(w, "Subcategory not found", http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	categoryKey := mux.Vars(r)["key"]

	selection, err := h.service.Select(r.Context(), categoryKey)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(struct {
		Name string `json:"name"`
		Key  string `json:"key"`
	}{selection.Name, selection.Key}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func CategoryToDTO(category Category) CategoryDTO {
	subcategories := category.Subcategories
	if subcategories == nil {
		subcategories = []string{}
	}
	return CategoryDTO{
		Key:           category.Key,
		Name:          category.Name,
		Color:         category.Color,
		SolidColor:    category.SolidColor,
		GlowColor:     category.GlowColor,
		Icon:          category.Icon,
		Subcategories: subcategories,
	}
}
