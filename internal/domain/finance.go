package domain

// SheetType identifica una de las dos hojas del ledger
type SheetType string

const (
	SheetIngresos SheetType = "ingresos"
	SheetEgresos  SheetType = "egresos"
)

// IsValid returns true for a known sheet type
func (s SheetType) IsValid() bool {
	return s == SheetIngresos || s == SheetEgresos
}

// SheetRow es una fila filtrada de la hoja, con su índice original 1-based
// en la hoja de respaldo para poder escribir celdas después
type SheetRow struct {
	RowIndex int64
	Cells    []string
}

// SheetData es el resultado de leer una hoja filtrada por año/mes
type SheetData struct {
	Headers []string
	Rows    []SheetRow
	// Índices 0-based de las columnas de moneda, para que el dashboard
	// las formatee de forma especial
	CurrencyColumns []int
}

// FinanceSummary son los totales mensuales de ambas hojas
type FinanceSummary struct {
	TotalIngresos float64
	TotalEgresos  float64
	FlujoCaja     float64
}
