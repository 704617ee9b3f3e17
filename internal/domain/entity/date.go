package entity

import "time"

// DateLayout formato de fecha calendario usado en todos los libros.
const DateLayout = "2006-01-02"

// Day trunca un instante a su fecha calendario (sin hora, UTC).
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
