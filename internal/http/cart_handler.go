package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/easyshop/storefront/internal/auth"
	"github.com/easyshop/storefront/internal/repository"
)

// CartHandler serves the authenticated /cart surface. The user id always
// comes from the session identity, never from the payload.
type CartHandler struct {
	carts  repository.CartRepository
	logger *slog.Logger
}

func NewCartHandler(carts repository.CartRepository, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		carts:  carts,
		logger: logger,
	}
}

func (h *CartHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(RequireUser)

	r.Get("/", h.GetCart)
	r.Post("/products/{productId}", h.AddProduct)
	r.Put("/products/{productId}", h.UpdateProduct)
	r.Delete("/", h.ClearCart)

	return r
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	cart, err := h.carts.GetByUser(r.Context(), identity.UserID)
	if err != nil {
		respondStoreError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

// AddProduct inserts the product with quantity 1 or increments the existing
// line, then returns the refreshed cart.
func (h *CartHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	productID, ok := pathID(w, r, "productId")
	if !ok {
		return
	}

	if err := h.carts.AddItem(r.Context(), identity.UserID, productID); err != nil {
		respondStoreError(w, h.logger, err)
		return
	}

	cart, err := h.carts.GetByUser(r.Context(), identity.UserID)
	if err != nil {
		respondStoreError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

// UpdateProduct sets the quantity of an existing line. A line that does not
// exist is left alone; quantity 0 removes the line. Negative quantities are
// rejected before the store is touched.
func (h *CartHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	productID, ok := pathID(w, r, "productId")
	if !ok {
		return
	}

	var dto UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if dto.Quantity < 0 {
		respondError(w, http.StatusBadRequest, "quantity must not be negative")
		return
	}

	if err := h.carts.UpdateItem(r.Context(), identity.UserID, productID, dto.Quantity); err != nil {
		respondStoreError(w, h.logger, err)
		return
	}

	cart, err := h.carts.GetByUser(r.Context(), identity.UserID)
	if err != nil {
		respondStoreError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.carts.ClearCart(r.Context(), identity.UserID); err != nil {
		respondStoreError(w, h.logger, err)
		return
	}

	cart, err := h.carts.GetByUser(r.Context(), identity.UserID)
	if err != nil {
		respondStoreError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, cart)
}
