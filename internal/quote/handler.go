package quote

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/luna-panel/luna/internal/money"
	"github.com/luna-panel/luna/internal/platform/httpx"
)

type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
	}
}

// Preview computes the quote outputs without writing a record.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	var req ComputeQuoteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	in := req.Input()
	httpx.JSON(w, http.StatusOK, newComputationResponse(in, h.service.Preview(in)))
}

// Create completes a quote: computes the outputs and stores a new record at
// the head of the log.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CompleteQuoteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	rec, err := h.service.Complete(r.Context(), req.Input())
	if err != nil {
		h.logger.Error("complete quote failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, newRecordResponse(*rec))
}

// List returns the stored records, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list quote records failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	resp := ListRecordsResponse{Records: make([]RecordResponse, 0, len(records)), Total: len(records)}
	for _, rec := range records {
		resp.Records = append(resp.Records, newRecordResponse(rec))
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// Show returns one record by id.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, newRecordResponse(*rec))
}

// Delete removes one record by id.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export downloads one record, as text by default or as PDF with ?format=pdf.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	rec, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "pdf" {
		body, err := RenderPDF(*rec)
		if err != nil {
			h.logger.Error("render quote pdf failed", slog.Any("error", err))
			httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
			return
		}
		httpx.Attachment(w, "application/pdf", ExportFilename(*rec, "pdf"), body)
		return
	}

	httpx.Attachment(w, "text/plain; charset=utf-8", ExportFilename(*rec, "txt"), []byte(FormatRecord(*rec)))
}

// ExportAll downloads the whole record log as one text document.
func (h *Handler) ExportAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("export quote records failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	filename := "quote_records_" + money.Timestamp(true) + ".txt"
	httpx.Attachment(w, "text/plain; charset=utf-8", filename, []byte(ExportRecords(records)))
}
