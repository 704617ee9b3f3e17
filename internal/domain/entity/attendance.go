package entity

import "time"

// Estados de asistencia admitidos.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// ValidStatus indica si s es un estado de asistencia reconocido.
func ValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent
}

// AttendanceRecord registro de asistencia de un empleado en una fecha.
// Invariante del libro: a lo sumo un registro por (EmployeeID, Date).
type AttendanceRecord struct {
	EmployeeID int
	Date       time.Time
	Status     string
}
