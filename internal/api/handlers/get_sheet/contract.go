package get_sheet

import (
	"context"

	"github.com/mamicio/SG-StudioService/internal/domain"
)

type FinanceService interface {
	GetSheet(ctx context.Context, sheetType domain.SheetType, year, month int) (*domain.SheetData, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
