package repository

import (
	"time"

	"github.com/jhoicas/Negocio-api/internal/domain/entity"
)

// AttendanceRepository puerto del libro de asistencia (append-only).
type AttendanceRepository interface {
	Append(record *entity.AttendanceRecord) error
	List() ([]*entity.AttendanceRecord, error)
	Exists(employeeID int, date time.Time) (bool, error)
}
