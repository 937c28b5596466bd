package get_sheet

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mamicio/SG-StudioService/internal/api/handlers"
	"github.com/mamicio/SG-StudioService/internal/domain"
	"github.com/mamicio/SG-StudioService/internal/service/finance"
)

const (
	msgInvalidSheetType = "Tipo de hoja inválido"
	msgInvalidPeriod    = "Año o mes inválido"
	msgMissingColumn    = "La hoja no tiene las columnas esperadas"
)

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

// Handle GET /api/finanzas/sheet
// Query params: type (required, ingresos|egresos), year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sheetType := domain.SheetType(r.URL.Query().Get("type"))
	if !sheetType.IsValid() {
		h.logger.Warn("GET /api/finanzas/sheet - Invalid sheet type: type=%s", sheetType)
		handlers.RespondBadRequest(w, msgInvalidSheetType)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /api/finanzas/sheet - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /api/finanzas/sheet - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	// Llamamos al servicio
	data, err := h.financeService.GetSheet(r.Context(), sheetType, year, month)
	if err != nil {
		switch {
		case errors.Is(err, finance.ErrInvalidSheetType):
			h.logger.Warn("GET /api/finanzas/sheet - Invalid sheet type: type=%s", sheetType)
			handlers.RespondBadRequest(w, msgInvalidSheetType)

		case errors.Is(err, finance.ErrInvalidInput):
			h.logger.Warn("GET /api/finanzas/sheet - Invalid period: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, finance.ErrMissingColumn):
			h.logger.Error("GET /api/finanzas/sheet - Sheet schema broken: type=%s, error=%v", sheetType, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgMissingColumn)

		case errors.Is(err, finance.ErrSheetsUnavailable):
			h.logger.Error("GET /api/finanzas/sheet - Sheets unavailable: %v", err)
			handlers.RespondInternalError(w, err)

		default:
			h.logger.Error("GET /api/finanzas/sheet - Failed to read sheet: type=%s, year=%d, month=%d, error=%v",
				sheetType, year, month, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("GET /api/finanzas/sheet - Sheet read: type=%s, year=%d, month=%d, rows=%d",
		sheetType, year, month, len(data.Rows))
	handlers.RespondJSON(w, http.StatusOK, FromSheetData(sheetType, year, month, data))
}
