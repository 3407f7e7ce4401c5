package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dwikikusuma/simple-pos/internal/cart/app"
	"github.com/dwikikusuma/simple-pos/internal/cart/domain"
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
	r.HandleFunc("/v1/cart", h.list).Methods(http.MethodGet)
	r.HandleFunc("/v1/cart/items", h.add).Methods(http.MethodPost)
	r.HandleFunc("/v1/cart/items/{index}", h.setQuantity).Methods(http.MethodPut)
	r.HandleFunc("/v1/cart/items/{index}", h.remove).Methods(http.MethodDelete)
}

// addItemRequest carries the row the client picked: name and unit price as
// displayed, the stock visible at that moment, and the quantity the user
// typed.
type addItemRequest struct {
	Name           string  `json:"name"`
	UnitPrice      float64 `json:"unit_price"`
	AvailableStock int     `json:"available_stock"`
	Quantity       string  `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity string `json:"quantity"`
}

type itemView struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items := h.svc.Items(r.Context())

	views := make([]itemView, 0, len(items))
	for _, it := range items {
		views = append(views, toView(it))
	}
	httpx.WriteJSON(w, http.StatusOK, map[string][]itemView{"items": views})
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed request body")
		return
	}

	item, err := h.svc.AddItem(r.Context(), req.Name, req.UnitPrice, req.AvailableStock, req.Quantity)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toView(item))
}

func (h *Handler) setQuantity(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "INVALID_ARGUMENT", "malformed request body")
		return
	}

	item, err := h.svc.SetQuantity(r.Context(), index, req.Quantity)
	if err != nil {
		writeErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toView(item))
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	index, ok := pathIndex(w, r)
	if !ok {
		return
	}

	if err := h.svc.RemoveItem(r.Context(), index); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toView(it domain.Item) itemView {
	return itemView{ID: it.ID.String(), Name: it.Name, UnitPrice: it.UnitPrice, Quantity: it.Quantity}
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
	case errors.Is(err, app.ErrInsufficientStock):
		httpx.WriteError(w, http.StatusConflict, "INSUFFICIENT_STOCK", err.Error())
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
	}
}
