package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/teammerch/merch-store/internal/core/domain"
	"github.com/teammerch/merch-store/internal/core/service"
	"github.com/teammerch/merch-store/internal/metrics"
	"github.com/teammerch/merch-store/internal/port"
)

// AdminHandler serves the gate-protected review surface.
type AdminHandler struct {
	admin *service.AdminService
}

func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.admin.Login(r.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			metrics.AdminLogins.WithLabelValues("rejected").Inc()
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	metrics.AdminLogins.WithLabelValues("accepted").Inc()

	http.SetCookie(w, &http.Cookie{
		Name:     adminSessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := adminToken(r)
	if token != "" {
		if err := h.admin.Logout(r.Context(), token); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:   adminSessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *AdminHandler) Orders(w http.ResponseWriter, r *http.Request) {
	var filter domain.OrderStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := domain.ParseOrderStatus(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown status filter")
			return
		}
		filter = status
	}

	orders, err := h.admin.Orders(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderNumber := mux.Vars(r)["orderNumber"]

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	status, ok := domain.ParseOrderStatus(req.Status)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown status")
		return
	}

	if err := h.admin.UpdateStatus(r.Context(), orderNumber, status); err != nil {
		if errors.Is(err, port.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": string(status)})
}

func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	orderNumber := mux.Vars(r)["orderNumber"]

	if err := h.admin.Delete(r.Context(), orderNumber); err != nil {
		if errors.Is(err, port.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.admin.Summarize(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *AdminHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.csv"`)

	if err := h.admin.ExportCSV(r.Context(), w); err != nil {
		// Headers are already out; all we can do is drop the connection.
		http.Error(w, "export failed", http.StatusInternalServerError)
	}
}
