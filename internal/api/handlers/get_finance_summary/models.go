package get_finance_summary

import "github.com/mamicio/SG-StudioService/internal/domain"

// FinanceSummaryResponse HTTP response model
type FinanceSummaryResponse struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Resumen Resumen `json:"resumen"`
}

// Resumen totales del mes; flujoCaja = ingresos - egresos
type Resumen struct {
	TotalIngresos float64 `json:"totalIngresos"`
	TotalEgresos  float64 `json:"totalEgresos"`
	FlujoCaja     float64 `json:"flujoCaja"`
}

// FromSummary convierte el resumen del servicio en el HTTP response
func FromSummary(year, month int, summary *domain.FinanceSummary) *FinanceSummaryResponse {
	return &FinanceSummaryResponse{
		Year:  year,
		Month: month,
		Resumen: Resumen{
			TotalIngresos: summary.TotalIngresos,
			TotalEgresos:  summary.TotalEgresos,
			FlujoCaja:     summary.FlujoCaja,
		},
	}
}
