package get_sheet

import "github.com/mamicio/SG-StudioService/internal/domain"

// SheetResponse HTTP response model
type SheetResponse struct {
	Type            string     `json:"type"`
	Year            int        `json:"year"`
	Month           int        `json:"month"`
	Headers         []string   `json:"headers"`
	Rows            []SheetRow `json:"rows"`
	CurrencyColumns []int      `json:"currencyColumns"`
}

// SheetRow fila filtrada con su índice original en la hoja (1-based);
// el dashboard lo usa para escribir de vuelta en la celda correcta
type SheetRow struct {
	RowIndex int64    `json:"rowIndex"`
	Cells    []string `json:"cells"`
}

// FromSheetData convierte los datos del servicio en el HTTP response
func FromSheetData(sheetType domain.SheetType, year, month int, data *domain.SheetData) *SheetResponse {
	rows := make([]SheetRow, len(data.Rows))
	for i, row := range data.Rows {
		rows[i] = SheetRow{
			RowIndex: row.RowIndex,
			Cells:    row.Cells,
		}
	}

	return &SheetResponse{
		Type:            string(sheetType),
		Year:            year,
		Month:           month,
		Headers:         data.Headers,
		Rows:            rows,
		CurrencyColumns: data.CurrencyColumns,
	}
}
