package domain

import (
	"time"

	"github.com/mamicio/SG-StudioService/pkg/types"
)

// PlanType represents the studio plan a booking is made for
type PlanType string

const (
	PlanFlash PlanType = "flash" // bloque fijo de 2 horas
	PlanPlus  PlanType = "plus"  // día de trabajo completo
)

// IsValid returns true for a known plan type
func (p PlanType) IsValid() bool {
	return p == PlanFlash || p == PlanPlus
}

// BookingType distinguishes who books the slot
type BookingType string

const (
	BookingArtist BookingType = "artist"
	BookingClient BookingType = "client"
)

// IsValid returns true for a known booking type
func (b BookingType) IsValid() bool {
	return b == BookingArtist || b == BookingClient
}

// Label retorna la etiqueta visible del tipo de reserva
func (b BookingType) Label() string {
	if b == BookingArtist {
		return "Artista"
	}
	return "Cliente"
}

// Slot is a bookable time-of-day window within a business day
type Slot struct {
	Start types.TimeString
	End   types.TimeString
}

// FlashSlots son los cinco bloques canónicos de 2 horas del plan flash
var FlashSlots = []Slot{
	{Start: "09:00", End: "11:00"},
	{Start: "11:00", End: "13:00"},
	{Start: "13:00", End: "15:00"},
	{Start: "15:00", End: "17:00"},
	{Start: "17:00", End: "19:00"},
}

// FullDaySlot es el único slot del plan plus: todo el día de trabajo
var FullDaySlot = Slot{Start: "09:00", End: "19:00"}

// BusyPeriod is an existing calendar event's time range on a given day
type BusyPeriod struct {
	Start time.Time
	End   time.Time
}

// Overlaps aplica la regla de intervalos semiabiertos: hay solapamiento solo
// si slotStart < busyEnd && slotEnd > busyStart. Intervalos que apenas se
// tocan en el borde no se solapan.
func (b BusyPeriod) Overlaps(slotStart, slotEnd time.Time) bool {
	return slotStart.Before(b.End) && slotEnd.After(b.Start)
}
