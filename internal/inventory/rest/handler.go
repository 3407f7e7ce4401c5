package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dwikikusuma/simple-pos/internal/inventory/app"
	"github.com/dwikikusuma/simple-pos/internal/inventory/domain"
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
	r.HandleFunc("/v1/inventory", h.list).Methods(http.MethodGet)
	r.HandleFunc("/v1/inventory", h.add).Methods(http.MethodPost)
	r.HandleFunc("/v1/inventory/{index}", h.edit).Methods(http.MethodPut)
	r.HandleFunc("/v1/inventory/{index}", h.delete).Methods(http.MethodDelete)
}

// Price and stock stay strings on the wire: parsing free-text input is part
// of the add/edit operations themselves.
type productRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Stock string `json:"stock"`
}

type productView struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	products := h.svc.Products(r.Context())

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, toView(p))
	}
	httpx.WriteJSON(w, http.StatusOK, map[string][]productView{"products": views})
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed request body")
		return
	}

	product, err := h.svc.Add(r.Context(), req.Name, req.Price, req.Stock)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toView(product))
}

func (h *Handler) edit(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed request body")
		return
	}

	product, err := h.svc.Edit(r.Context(), index, req.Name, req.Price, req.Stock)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toView(product))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), index); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toView(p domain.Product) productView {
	return productView{ID: p.ID.String(), Name: p.Name, Price: p.Price, Stock: p.Stock}
}

func pathIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "index must be an integer")
		return 0, false
	}
	return index, true
}

func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
	case errors.Is(err, app.ErrNoSelection):
		httpx.WriteError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, app.ErrStore):
		httpx.WriteError(w, http.StatusInternalServerError, "STORAGE", err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
	}
}
