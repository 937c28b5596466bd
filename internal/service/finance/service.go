package finance

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/mamicio/SG-StudioService/internal/domain"
	"github.com/mamicio/SG-StudioService/internal/integrations/googlesheets"
	"github.com/mamicio/SG-StudioService/pkg/currency"
)

// sheetConfig describe una de las dos hojas del ledger. Los esquemas de las
// hojas evolucionan por separado; solo los nombres de encabezado están
// acordados con el equipo del estudio.
type sheetConfig struct {
	spreadsheetID   string
	sheetName       string
	readRange       string
	summaryHeader   string   // columna que suma el resumen mensual
	currencyHeaders []string // columnas que el dashboard formatea como moneda
}

// Service servicio del ledger financiero respaldado por dos hojas de cálculo
type Service struct {
	sheets  SheetsClient
	configs map[domain.SheetType]sheetConfig
	logger  Logger
}

// NewService crea el servicio de finanzas con los IDs de las dos hojas
func NewService(sheets SheetsClient, ingresosSheetID, egresosSheetID string, logger Logger) *Service {
	return &Service{
		sheets: sheets,
		configs: map[domain.SheetType]sheetConfig{
			domain.SheetIngresos: {
				spreadsheetID:   ingresosSheetID,
				sheetName:       "Facturacion",
				readRange:       "Facturacion!A1:Z",
				summaryHeader:   "Valor neto",
				currencyHeaders: []string{"Valor bruto", "Valor sin Iva", "Vlr ant de IVA", "Valor neto"},
			},
			domain.SheetEgresos: {
				spreadsheetID:   egresosSheetID,
				sheetName:       "Transacciones",
				readRange:       "Transacciones!A1:Z",
				summaryHeader:   "Valor Unitario",
				currencyHeaders: []string{"Valor", "Valor Unitario"},
			},
		},
		logger: logger,
	}
}

// config valida el tipo de hoja y retorna su configuración
func (s *Service) config(sheetType domain.SheetType) (sheetConfig, error) {
	cfg, ok := s.configs[sheetType]
	if !ok || !sheetType.IsValid() {
		return sheetConfig{}, fmt.Errorf("%w: %q", ErrInvalidSheetType, sheetType)
	}
	return cfg, nil
}

// GetSheet lee la hoja completa y retorna las filas del año/mes pedido.
// Cada fila conserva su índice 1-based original en la hoja de respaldo para
// poder escribir celdas después; las filas cortas se rellenan al ancho del
// encabezado porque la API omite celdas vacías al final.
func (s *Service) GetSheet(ctx context.Context, sheetType domain.SheetType, year, month int) (*domain.SheetData, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	cfg, err := s.config(sheetType)
	if err != nil {
		return nil, err
	}

	allRows, err := s.sheets.GetValues(ctx, cfg.spreadsheetID, cfg.readRange)
	if err != nil {
		s.logger.Error("GetSheet: failed to read %s: %v", cfg.readRange, err)
		return nil, fmt.Errorf("%w: %v", ErrSheetsUnavailable, err)
	}

	if len(allRows) == 0 {
		return &domain.SheetData{Headers: []string{}, Rows: []domain.SheetRow{}, CurrencyColumns: []int{}}, nil
	}

	headers := allRows[0]
	schema, err := resolveSchema(headers, cfg)
	if err != nil {
		s.logger.Error("GetSheet: schema resolution failed for %s: %v", sheetType, err)
		return nil, err
	}

	rows := make([]domain.SheetRow, 0)
	for i := 1; i < len(allRows); i++ {
		row := allRows[i]
		if !rowMatchesPeriod(row, schema, year, month) {
			continue
		}

		cells := make([]string, len(headers))
		copy(cells, row)

		// i+1 porque las hojas son 1-indexed y el encabezado es la fila 1
		rows = append(rows, domain.SheetRow{RowIndex: int64(i + 1), Cells: cells})
	}

	s.logger.Info("GetSheet: %s %d-%02d returned %d rows", sheetType, year, month, len(rows))

	return &domain.SheetData{
		Headers:         headers,
		Rows:            rows,
		CurrencyColumns: schema.currencyCols,
	}, nil
}

// UpdateCell escribe una celda puntual: fila 1-based, columna 0-based
// convertida a notación de letra. Sin chequeo optimista contra ediciones
// externas concurrentes: gana la última escritura.
func (s *Service) UpdateCell(ctx context.Context, sheetType domain.SheetType, rowIndex, colIndex int64, value string) (string, error) {
	cfg, err := s.config(sheetType)
	if err != nil {
		return "", err
	}

	if rowIndex < 1 || colIndex < 0 {
		return "", fmt.Errorf("%w: rowIndex must be >= 1 and colIndex >= 0", ErrInvalidInput)
	}

	cellRange := fmt.Sprintf("%s!%s%d", cfg.sheetName, googlesheets.ColumnLetter(colIndex), rowIndex)

	if err := s.sheets.UpdateCell(ctx, cfg.spreadsheetID, cellRange, value); err != nil {
		s.logger.Error("UpdateCell: failed to write %s: %v", cellRange, err)
		return "", fmt.Errorf("%w: %v", ErrSheetsUnavailable, err)
	}

	s.logger.Info("UpdateCell: wrote %s on %s", cellRange, sheetType)
	return cellRange, nil
}

// AppendRow agrega una fila al final del rango de la hoja y retorna el
// índice que el servicio le asignó
func (s *Service) AppendRow(ctx context.Context, sheetType domain.SheetType, cells []string) (int64, error) {
	cfg, err := s.config(sheetType)
	if err != nil {
		return 0, err
	}

	if len(cells) == 0 {
		return 0, fmt.Errorf("%w: row must have at least one cell", ErrInvalidInput)
	}

	rowIndex, err := s.sheets.AppendRow(ctx, cfg.spreadsheetID, cfg.readRange, cells)
	if err != nil {
		s.logger.Error("AppendRow: failed to append to %s: %v", sheetType, err)
		return 0, fmt.Errorf("%w: %v", ErrSheetsUnavailable, err)
	}

	s.logger.Info("AppendRow: appended row %d to %s", rowIndex, sheetType)
	return rowIndex, nil
}

// WriteCell implementa autosave.CellWriter sobre el ledger
func (s *Service) WriteCell(ctx context.Context, sheetType string, rowIndex, colIndex int64, value string) error {
	_, err := s.UpdateCell(ctx, domain.SheetType(sheetType), rowIndex, colIndex, value)
	return err
}

// Summary calcula los totales del mes sobre ambas hojas; las dos lecturas
// van en paralelo porque son upstreams independientes
func (s *Service) Summary(ctx context.Context, year, month int) (*domain.FinanceSummary, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	var totalIngresos, totalEgresos float64
	var ingresosErr, egresosErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		totalIngresos, ingresosErr = s.sumSheet(ctx, domain.SheetIngresos, year, month)
	}()
	go func() {
		defer wg.Done()
		totalEgresos, egresosErr = s.sumSheet(ctx, domain.SheetEgresos, year, month)
	}()
	wg.Wait()

	if ingresosErr != nil {
		return nil, ingresosErr
	}
	if egresosErr != nil {
		return nil, egresosErr
	}

	summary := &domain.FinanceSummary{
		TotalIngresos: totalIngresos,
		TotalEgresos:  totalEgresos,
		FlujoCaja:     totalIngresos - totalEgresos,
	}

	s.logger.Info("Summary: %d-%02d ingresos=%.2f egresos=%.2f flujo=%.2f",
		year, month, summary.TotalIngresos, summary.TotalEgresos, summary.FlujoCaja)

	return summary, nil
}

// sumSheet suma la columna de resumen de una hoja sobre las filas del período
func (s *Service) sumSheet(ctx context.Context, sheetType domain.SheetType, year, month int) (float64, error) {
	cfg, err := s.config(sheetType)
	if err != nil {
		return 0, err
	}

	allRows, err := s.sheets.GetValues(ctx, cfg.spreadsheetID, cfg.readRange)
	if err != nil {
		s.logger.Error("sumSheet: failed to read %s: %v", cfg.readRange, err)
		return 0, fmt.Errorf("%w: %v", ErrSheetsUnavailable, err)
	}

	if len(allRows) <= 1 {
		return 0, nil
	}

	schema, err := resolveSchema(allRows[0], cfg)
	if err != nil {
		s.logger.Error("sumSheet: schema resolution failed for %s: %v", sheetType, err)
		return 0, err
	}
	if schema.summaryCol == -1 {
		s.logger.Error("sumSheet: %s is missing the %q column", sheetType, cfg.summaryHeader)
		return 0, fmt.Errorf("%w: %q", ErrMissingColumn, cfg.summaryHeader)
	}

	total := 0.0
	for _, row := range allRows[1:] {
		if !rowMatchesPeriod(row, schema, year, month) {
			continue
		}
		if schema.summaryCol < len(row) {
			total += currency.Parse(row[schema.summaryCol])
		}
	}

	return total, nil
}

// validatePeriod valida año y mes de la consulta
func validatePeriod(year, month int) error {
	if year <= 0 || month < 1 || month > 12 {
		return fmt.Errorf("%w: year and month are required", ErrInvalidInput)
	}
	return nil
}

// rowMatchesPeriod compara las celdas de año y mes con el período pedido
func rowMatchesPeriod(row []string, schema *sheetSchema, year, month int) bool {
	return cellInt(row, schema.yearCol) == year && cellInt(row, schema.monthCol) == month
}

// cellInt parsea la celda como entero; celda ausente o no numérica da 0
func cellInt(row []string, col int) int {
	if col < 0 || col >= len(row) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(row[col]))
	if err != nil {
		return 0
	}
	return n
}
