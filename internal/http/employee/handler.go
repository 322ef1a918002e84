package employee

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/mobility/internal/employee"
	"github.com/MrJamesThe3rd/mobility/internal/logging"
	"github.com/MrJamesThe3rd/mobility/internal/mobility"
)

type Handler struct {
	svc *employee.Service
}

func NewHandler(svc *employee.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
}

type validationResponse struct {
	Errors map[mobility.Field]string `json:"errors"`
}

// create takes the form values keyed by field name. Unknown keys are ignored.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	form := mobility.NewForm()

	for key, value := range req {
		if field := mobility.Field(key); field.Valid() {
			form.Set(field, value)
		}
	}

	body, err := h.svc.Submit(r.Context(), form)
	if err != nil {
		var verr *employee.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, validationResponse{Errors: verr.Errors})
			return
		}

		logging.FromContext(r.Context()).Error("failed to create employee", "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)

		return
	}

	logging.FromContext(r.Context()).Info("employee created", "gpid", form.Get(mobility.FieldGPID))
	writeJSON(w, http.StatusCreated, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
