package get_finance_summary

import (
	"context"

	"github.com/mamicio/SG-StudioService/internal/domain"
)

type FinanceService interface {
	Summary(ctx context.Context, year, month int) (*domain.FinanceSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
