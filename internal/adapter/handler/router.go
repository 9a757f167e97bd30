package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the full HTTP surface: public storefront routes,
// gate-protected admin routes and the operational endpoints.
func NewRouter(store *StoreHandler, admin *AdminHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", store.HealthCheck).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(logRequests)

	storefront := api.NewRoute().Subrouter()
	storefront.Use(withCartSession)
	storefront.HandleFunc("/products", store.Products).Methods(http.MethodGet)
	storefront.HandleFunc("/cart", store.Cart).Methods(http.MethodGet)
	storefront.HandleFunc("/cart/items", store.AddItem).Methods(http.MethodPost)
	storefront.HandleFunc("/cart/items/{id}", store.SetQuantity).Methods(http.MethodPut)
	storefront.HandleFunc("/checkout", store.Checkout).Methods(http.MethodPost)

	api.HandleFunc("/admin/login", admin.Login).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", admin.Logout).Methods(http.MethodPost)
	api.HandleFunc("/admin/orders", admin.requireAdmin(admin.Orders)).Methods(http.MethodGet)
	api.HandleFunc("/admin/orders/export", admin.requireAdmin(admin.ExportCSV)).Methods(http.MethodGet)
	api.HandleFunc("/admin/orders/{orderNumber}/status", admin.requireAdmin(admin.UpdateStatus)).Methods(http.MethodPatch)
	api.HandleFunc("/admin/orders/{orderNumber}", admin.requireAdmin(admin.Delete)).Methods(http.MethodDelete)
	api.HandleFunc("/admin/summary", admin.requireAdmin(admin.Summary)).Methods(http.MethodGet)

	// Catch-all JSON 404 instead of the default plain-text page.
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	return r
}
