package rest

import (
	"errors"
	"net/http"

	"github.com/dwikikusuma/simple-pos/internal/receipts/app"
	"github.com/dwikikusuma/simple-pos/internal/receipts/domain"
	"github.com/dwikikusuma/simple-pos/pkg/httpx"
	"github.com/gorilla/mux"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/v1/receipts", h.list).Methods(http.MethodGet)
	r.HandleFunc("/v1/receipts/latest", h.latest).Methods(http.MethodGet)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string][]domain.Recorded{"receipts": h.svc.List(r.Context())})
}

func (h *Handler) latest(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Latest(r.Context())
	if err != nil {
		if errors.Is(err, app.ErrNoReceipts) {
			httpx.WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rec)
}
