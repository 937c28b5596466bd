package append_row

import (
	"errors"
	"net/http"

	"github.com/mamicio/SG-StudioService/internal/api/handlers"
	"github.com/mamicio/SG-StudioService/internal/domain"
	"github.com/mamicio/SG-StudioService/internal/service/finance"
)

const (
	msgInvalidBody      = "Cuerpo de la solicitud inválido"
	msgInvalidSheetType = "Tipo de hoja inválido"
	msgEmptyRow         = "La fila no puede estar vacía"
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

// Handle POST /api/finanzas/rows
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Decodificamos el body
	var req AppendRowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/finanzas/rows - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	sheetType := domain.SheetType(req.Type)
	if !sheetType.IsValid() {
		h.logger.Warn("POST /api/finanzas/rows - Invalid sheet type: type=%s", req.Type)
		handlers.RespondBadRequest(w, msgInvalidSheetType)
		return
	}

	if len(req.Cells) == 0 {
		h.logger.Warn("POST /api/finanzas/rows - Empty row")
		handlers.RespondBadRequest(w, msgEmptyRow)
		return
	}

	// Llamamos al servicio
	rowIndex, err := h.financeService.AppendRow(r.Context(), sheetType, req.Cells)
	if err != nil {
		switch {
		case errors.Is(err, finance.ErrInvalidInput):
			h.logger.Warn("POST /api/finanzas/rows - Invalid row: %v", err)
			handlers.RespondBadRequest(w, msgEmptyRow)

		case errors.Is(err, finance.ErrSheetsUnavailable):
			h.logger.Error("POST /api/finanzas/rows - Sheets unavailable: %v", err)
			handlers.RespondInternalError(w, err)

		default:
			h.logger.Error("POST /api/finanzas/rows - Failed to append row: type=%s, error=%v", req.Type, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("POST /api/finanzas/rows - Row appended: type=%s, row_index=%d", req.Type, rowIndex)
	handlers.RespondJSON(w, http.StatusCreated, &AppendRowResponse{RowIndex: rowIndex})
}
