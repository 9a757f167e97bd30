package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/teammerch/merch-store/internal/core/domain"
	"github.com/teammerch/merch-store/internal/core/service"
	"github.com/teammerch/merch-store/internal/metrics"
)

// StoreHandler serves the storefront surface: catalog, cart and
// checkout.
type StoreHandler struct {
	catalog  *domain.Catalog
	cart     *service.CartService
	checkout *service.CheckoutService
}

func NewStoreHandler(catalog *domain.Catalog, cart *service.CartService, checkout *service.CheckoutService) *StoreHandler {
	return &StoreHandler{catalog: catalog, cart: cart, checkout: checkout}
}

type addItemRequest struct {
	ItemID string `json:"item_id"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	CustomerName string `json:"customer_name"`
	Size         string `json:"size"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *StoreHandler) Products(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Products())
}

func (h *StoreHandler) Cart(w http.ResponseWriter, r *http.Request) {
	view, err := h.cart.View(r.Context(), cartSession(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *StoreHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "item_id is required")
		return
	}

	if err := h.cart.AddOne(r.Context(), cartSession(r), req.ItemID); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	metrics.CartMutations.WithLabelValues("add").Inc()

	h.Cart(w, r)
}

func (h *StoreHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.cart.SetQuantity(r.Context(), cartSession(r), itemID, req.Quantity); err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	metrics.CartMutations.WithLabelValues("set").Inc()

	h.Cart(w, r)
}

func (h *StoreHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.checkout.Checkout(r.Context(), cartSession(r), req.CustomerName, req.Size)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			writeError(w, http.StatusBadRequest, "customer name is required")
		case errors.Is(err, service.ErrSizeRequired):
			writeError(w, http.StatusBadRequest, "a valid size is required")
		case errors.Is(err, service.ErrEmptyCart):
			writeError(w, http.StatusUnprocessableEntity, "cart is empty")
		default:
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	metrics.OrdersPlaced.Inc()

	writeJSON(w, http.StatusCreated, order)
}

func (h *StoreHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
