package types

import (
	"errors"
	"fmt"
	"time"
)

// Formato de tiempo HH:MM (24 horas)
const timeLayout = "15:04"

// ErrInvalidTimeString se retorna cuando el valor no tiene formato HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// TimeString representa una hora del día como string "HH:MM"
// Se usa para los horarios de los slots, sin fecha asociada
type TimeString string

// NewTimeString crea un TimeString a partir de un time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString crea un TimeString validando el formato HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return NewTimeString(parsed), nil
}

// String retorna la representación "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero indica si el valor está vacío
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate verifica que el valor tenga formato HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes retorna los minutos transcurridos desde medianoche
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes retorna un nuevo TimeString desplazado la cantidad de minutos indicada
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return NewTimeString(parsed.Add(time.Duration(minutes) * time.Minute)), nil
}

// IsBefore compara estrictamente dos horas del día
// Si alguno de los valores es inválido retorna false
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter compara estrictamente dos horas del día
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a > b
}

// At ancla la hora del día a una fecha concreta en la zona horaria indicada
func (t TimeString) At(date time.Time, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, loc), nil
}
