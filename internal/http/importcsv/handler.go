package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mobility/internal/importer"
	"github.com/MrJamesThe3rd/mobility/internal/logging"
	"github.com/MrJamesThe3rd/mobility/internal/mobility"
)

type Handler struct {
	importSvc     *importer.Service
	maxUploadSize int64
}

func NewHandler(importSvc *importer.Service, maxUploadSize int64) *Handler {
	return &Handler{
		importSvc:     importSvc,
		maxUploadSize: maxUploadSize,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importResponse struct {
	importer.Result
	Fields   map[mobility.Field]string `json:"fields"`
	ImportID uuid.UUID                 `json:"importId"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	form := mobility.NewForm()
	result := h.importSvc.Import(file, form)

	resp := importResponse{
		Result:   result,
		Fields:   form.Values(),
		ImportID: uuid.New(),
	}

	logging.FromContext(r.Context()).Info("csv imported",
		"import_id", resp.ImportID,
		"filename", header.Filename,
		"success", result.Success,
		"fields_imported", result.FieldsImported,
		"warnings", len(result.Warnings),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
