package domain

import "time"

// AvailableSlots calcula los slots libres de una fecha dado el conjunto de
// rangos ocupados del calendario ese día.
//
// Plan flash: de los cinco bloques canónicos quedan solo los que no se
// solapan con ningún rango ocupado (regla de intervalos semiabiertos).
// Plan plus: necesita el día completo; hay un único slot disponible solo
// si el día no tiene ningún rango ocupado.
func AvailableSlots(plan PlanType, date time.Time, busy []BusyPeriod) []Slot {
	if plan == PlanPlus {
		if len(busy) == 0 {
			return []Slot{FullDaySlot}
		}
		return []Slot{}
	}

	available := make([]Slot, 0, len(FlashSlots))
	for _, slot := range FlashSlots {
		slotStart, err := slot.Start.At(date, Location)
		if err != nil {
			continue
		}
		slotEnd, err := slot.End.At(date, Location)
		if err != nil {
			continue
		}

		overlapping := false
		for _, b := range busy {
			if b.Overlaps(slotStart, slotEnd) {
				overlapping = true
				break
			}
		}

		if !overlapping {
			available = append(available, slot)
		}
	}

	return available
}

// ContainsSlot indica si el slot exacto está en la lista
func ContainsSlot(slots []Slot, slot Slot) bool {
	for _, s := range slots {
		if s.Start == slot.Start && s.End == slot.End {
			return true
		}
	}
	return false
}

// IsDateInPast indica si la fecha es anterior a hoy en la zona del estudio
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, Location)
	nowLocal := now.In(Location)
	nowOnly := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, Location)
	return dateOnly.Before(nowOnly)
}
