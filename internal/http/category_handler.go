package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/easyshop/storefront/internal/domain"
	"github.com/easyshop/storefront/internal/repository"
)

// CategoryHandler serves the /categories surface: public reads, admin-only
// writes, and the products-of-category join read.
type CategoryHandler struct {
	categories repository.CategoryRepository
	logger     *slog.Logger
}

func NewCategoryHandler(categories repository.CategoryRepository, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		logger:     logger,
	}
}

// Routes mounts the category surface on a chi router. Authorization gates run
// before any handler touches the store.
func (h *CategoryHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Get("/{id}/products", h.ListProducts)

	r.Group(func(r chi.Router) {
		r.Use(RequireAdmin)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}

type CategoryRequestDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.ListAll(r.Context())
	if err != nil {
		respondStoreError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	category, err := h.categories.GetByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, category)
}

// ListProducts returns the products of an existing category. The store
// distinguishes an unknown category (404) from a known but empty one (200
// with an empty array).
func (h *CategoryHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	products, err := h.categories.ListProducts(r.Context(), categoryID)
	if err != nil {
		respondStoreError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	dto, ok := decodeCategory(w, r)
	if !ok {
		return
	}

	created, err := h.categories.Create(r.Context(), domain.Category{
		Name:        dto.Name,
		Description: dto.Description,
	})
	if err != nil {
		respondStoreError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, created)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	dto, ok := decodeCategory(w, r)
	if !ok {
		return
	}

	// The path id is authoritative; an id in the body is ignored.
	err := h.categories.Update(r.Context(), id, domain.Category{
		Name:        dto.Name,
		Description: dto.Description,
	})
	if err != nil {
		respondStoreError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.categories.Delete(r.Context(), id); err != nil {
		respondStoreError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func decodeCategory(w http.ResponseWriter, r *http.Request) (CategoryRequestDTO, bool) {
	var dto CategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return dto, false
	}
	if strings.TrimSpace(dto.Name) == "" {
		respondError(w, http.StatusBadRequest, "name must not be empty")
		return dto, false
	}
	return dto, true
}

func pathID(w http.ResponseWriter, r *http.Request, param string) (int, bool) {
	raw := chi.URLParam(r, param)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, param+" must be a positive integer")
		return 0, false
	}
	return id, true
}
