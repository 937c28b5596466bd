package get_finance_summary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mamicio/SG-StudioService/internal/api/handlers"
	"github.com/mamicio/SG-StudioService/internal/service/finance"
)

const msgInvalidPeriod = "Año o mes inválido"

type Handler struct {
	financeService FinanceService
	logger         Logger
}

func NewHandler(financeService FinanceService, logger Logger) *Handler {
	return &Handler{
		financeService: financeService,
		logger:         logger,
	}
}

// Handle GET /api/finanzas
// Query params: year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Extraemos year y month de los query params
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /api/finanzas - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /api/finanzas - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	// Llamamos al servicio
	summary, err := h.financeService.Summary(r.Context(), year, month)
	if err != nil {
		switch {
		case errors.Is(err, finance.ErrInvalidInput):
			h.logger.Warn("GET /api/finanzas - Invalid period: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, finance.ErrSheetsUnavailable):
			h.logger.Error("GET /api/finanzas - Sheets unavailable: %v", err)
			handlers.RespondInternalError(w, err)

		default:
			h.logger.Error("GET /api/finanzas - Failed to build summary: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("GET /api/finanzas - Summary built: year=%d, month=%d", year, month)
	handlers.RespondJSON(w, http.StatusOK, FromSummary(year, month, summary))
}
