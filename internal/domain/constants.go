package domain

import "time"

// Horario de atención del estudio: 9 AM a 7 PM
const (
	OpenHour  = 9
	CloseHour = 19
)

// Zona horaria fija del estudio (Colombia, UTC-5 sin DST)
const TimezoneName = "America/Bogota"

// Location es la zona horaria del estudio, fija en UTC-5
var Location = time.FixedZone(TimezoneName, -5*60*60)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Colores de evento en Google Calendar por plan
// 1=lavanda, 5=banano, 9=arándano, 10=albahaca, 11=tomate
const (
	ColorIDFlash = "9"
	ColorIDPlus  = "5"
)

// Business validation constants
const (
	MinNameLength  = 2
	MinPhoneDigits = 7
	MaxNotesLength = 500
)
