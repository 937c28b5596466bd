package update_cell

import (
	"context"
	"net/http"

	"github.com/mamicio/SG-StudioService/internal/api/handlers"
	"github.com/mamicio/SG-StudioService/internal/domain"
	"github.com/mamicio/SG-StudioService/pkg/autosave"
)

const (
	msgInvalidBody      = "Cuerpo de la solicitud inválido"
	msgInvalidSheetType = "Tipo de hoja inválido"
	msgInvalidCell      = "Referencia de celda inválida"
)

type Handler struct {
	saver  CellSaver
	logger Logger
}

func NewHandler(saver CellSaver, logger Logger) *Handler {
	return &Handler{
		saver:  saver,
		logger: logger,
	}
}

// Handle PUT /api/finanzas/cell
// La edición entra al saver con debounce: ediciones rápidas sobre la misma
// celda se colapsan en una escritura y gana el último valor
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Decodificamos el body
	var req UpdateCellRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /api/finanzas/cell - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if !domain.SheetType(req.Type).IsValid() {
		h.logger.Warn("PUT /api/finanzas/cell - Invalid sheet type: type=%s", req.Type)
		handlers.RespondBadRequest(w, msgInvalidSheetType)
		return
	}

	// La fila 1 son los encabezados; se puede editar a partir de la 2
	if req.RowIndex < 2 || req.ColIndex < 0 {
		h.logger.Warn("PUT /api/finanzas/cell - Invalid cell reference: row=%d, col=%d",
			req.RowIndex, req.ColIndex)
		handlers.RespondBadRequest(w, msgInvalidCell)
		return
	}

	cell := autosave.CellRef{
		SheetType: req.Type,
		RowIndex:  req.RowIndex,
		ColIndex:  req.ColIndex,
	}

	// La escritura real ocurre cuando vence el debounce, después de responder;
	// desacoplamos el contexto para que no muera con la petición
	h.saver.Edit(context.WithoutCancel(r.Context()), cell, req.Value)

	h.logger.Info("PUT /api/finanzas/cell - Edit accepted: type=%s, row=%d, col=%d",
		req.Type, req.RowIndex, req.ColIndex)
	handlers.RespondJSON(w, http.StatusAccepted, &UpdateCellResponse{
		State: autosave.StatePending.String(),
	})
}
