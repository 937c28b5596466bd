package append_row

import (
	"context"

	"github.com/mamicio/SG-StudioService/internal/domain"
)

type FinanceService interface {
	AppendRow(ctx context.Context, sheetType domain.SheetType, cells []string) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
