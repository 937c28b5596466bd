package get_available_slots

import (
	"fmt"

	"github.com/mamicio/SG-StudioService/internal/domain"
)

// validateRequest valida los datos de entrada de la consulta
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Plan.IsValid() {
		return fmt.Errorf("%w: plan must be %q or %q", ErrInvalidPlan, domain.PlanFlash, domain.PlanPlus)
	}

	return nil
}
