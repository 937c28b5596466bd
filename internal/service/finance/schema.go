package finance

import (
	"fmt"
	"strings"
)

// Nombres de columnas requeridas; la semántica de columnas es por nombre de
// encabezado, nunca posicional
const (
	headerYear  = "Año"
	headerMonth = "Mes"
)

// sheetSchema es el mapeo nombre→índice resuelto una vez por lectura
type sheetSchema struct {
	yearCol      int
	monthCol     int
	summaryCol   int
	currencyCols []int
}

// findColumn busca una columna por nombre de encabezado, ignorando
// mayúsculas y espacios; retorna -1 si no existe
func findColumn(headers []string, name string) int {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, h := range headers {
		if strings.ToLower(strings.TrimSpace(h)) == normalized {
			return i
		}
	}
	return -1
}

// resolveSchema resuelve el esquema de la hoja a partir del encabezado.
// Las columnas de año y mes son requeridas; que falten es un error de
// configuración de la hoja, no un crash. La columna de resumen puede faltar
// (queda en -1); solo el cálculo del resumen mensual la exige.
func resolveSchema(headers []string, cfg sheetConfig) (*sheetSchema, error) {
	yearCol := findColumn(headers, headerYear)
	if yearCol == -1 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, headerYear)
	}

	monthCol := findColumn(headers, headerMonth)
	if monthCol == -1 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, headerMonth)
	}

	summaryCol := findColumn(headers, cfg.summaryHeader)

	// Las columnas de moneda que no estén en la hoja simplemente se omiten
	currencyCols := make([]int, 0, len(cfg.currencyHeaders))
	for _, name := range cfg.currencyHeaders {
		if idx := findColumn(headers, name); idx != -1 {
			currencyCols = append(currencyCols, idx)
		}
	}

	return &sheetSchema{
		yearCol:      yearCol,
		monthCol:     monthCol,
		summaryCol:   summaryCol,
		currencyCols: currencyCols,
	}, nil
}
