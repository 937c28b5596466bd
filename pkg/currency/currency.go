// Package currency implementa el formato de moneda usado en las hojas de
// cálculo del estudio: punto como separador de miles, coma como separador
// decimal y prefijo "$" opcional (ej. "$1.234.567" o "45.000,50").
//
// La política de parseo tiene que coincidir exactamente con la del dashboard
// en el navegador: entrada vacía o no parseable siempre produce 0.
package currency

import (
	"strconv"
	"strings"
)

// Parse convierte un valor de moneda al número que representa.
// Nunca retorna error: entrada vacía o basura produce 0.
func Parse(value string) float64 {
	if value == "" {
		return 0
	}

	cleaned := strings.NewReplacer("$", "", " ", "", " ", "").Replace(value)
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.Replace(cleaned, ",", ".", 1)

	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return parsed
}
