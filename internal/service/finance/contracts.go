package finance

import "context"

// SheetsClient interfaz del cliente de Google Sheets
type SheetsClient interface {
	GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
	UpdateCell(ctx context.Context, spreadsheetID, cellRange, value string) error
	AppendRow(ctx context.Context, spreadsheetID, appendRange string, cells []string) (int64, error)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
