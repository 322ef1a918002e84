package catalog

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/mobility/internal/catalog"
)

type Handler struct {
	cat *catalog.Catalog
}

func NewHandler(cat *catalog.Catalog) *Handler {
	return &Handler{cat: cat}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

type catalogResponse struct {
	Positions     []string             `json:"positions"`
	HRBPs         []string             `json:"hrbps"`
	MobilityTypes []catalog.TypeOption `json:"mobilityTypes"`
}

func (h *Handler) get(w http.ResponseWriter, _ *http.Request) {
	resp := catalogResponse{
		Positions:     h.cat.Positions,
		HRBPs:         h.cat.HRBPs,
		MobilityTypes: h.cat.MobilityTypes,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
