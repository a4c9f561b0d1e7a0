package credit

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/luna-panel/luna/internal/money"
	"github.com/luna-panel/luna/internal/platform/httpx"
)

type Handler struct {
	logger    *slog.Logger
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger:    logger,
		validator: validator.New(),
	}
}

// Calculate runs the single-line credit computation.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	httpx.JSON(w, http.StatusOK, newCalculateResponse(Calculate(req.Input())))
}

// CalculateMulti runs the multi-line credit computation.
func (h *Handler) CalculateMulti(w http.ResponseWriter, r *http.Request) {
	var req CalculateMultiRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	ref := referenceDate(req.CalculationType, req.CalculationDate)
	cost, _ := money.ParseCurrency(req.NewLicenseCost)
	httpx.JSON(w, http.StatusOK, newCalculateMultiResponse(CalculateLines(req.items(), ref, cost)))
}
