package rest

import (
	"errors"
	"net/http"

	"github.com/dwikikusuma/simple-pos/internal/checkout/app"
	checkoutdomain "github.com/dwikikusuma/simple-pos/internal/checkout/domain"
	inventoryapp "github.com/dwikikusuma/simple-pos/internal/inventory/app"
	receiptsapp "github.com/dwikikusuma/simple-pos/internal/receipts/app"
	"github.com/dwikikusuma/simple-pos/pkg/httpx"
	"github.com/gorilla/mux"
)

type Handler struct {
	svc      *app.Service
	receipts *receiptsapp.Service
}

func NewHandler(svc *app.Service, receipts *receiptsapp.Service) *Handler {
	return &Handler{svc: svc, receipts: receipts}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/v1/checkout", h.checkout).Methods(http.MethodPost)
}

type checkoutResponse struct {
	Receipt string                `json:"receipt"`
	Total   float64               `json:"total"`
	Lines   []checkoutdomain.Line `json:"lines"`
	Warning string                `json:"warning,omitempty"`
}

// checkout answers 200 even when the inventory rewrite fails afterwards:
// stock is decremented and the cart emptied before persistence runs, so the
// sale is done either way. The client gets the receipt plus a warning.
func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.svc.Checkout(r.Context())
	if err != nil && !errors.Is(err, inventoryapp.ErrStore) {
		httpx.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error())
		return
	}

	recorded := h.receipts.Record(r.Context(), receipt)

	resp := checkoutResponse{
		Receipt: recorded.Text,
		Total:   receipt.Total,
		Lines:   receipt.Lines,
	}
	if err != nil {
		resp.Warning = err.Error()
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}
