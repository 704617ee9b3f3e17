package xlsx

import (
	"strconv"
	"time"

	"github.com/jhoicas/Negocio-api/internal/domain/entity"
	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo implementación de AttendanceRepository sobre el libro de
// asistencia.
type AttendanceRepo struct {
	table rowTable
}

// NewAttendanceRepository construye el adaptador de persistencia de asistencia.
func NewAttendanceRepository(store *Store) *AttendanceRepo {
	return &AttendanceRepo{table: store}
}

// Append agrega un registro al final del libro.
func (r *AttendanceRepo) Append(record *entity.AttendanceRecord) error {
	return r.table.Update(func(rows [][]string) ([][]string, error) {
		return append(rows, encodeAttendance(record)), nil
	})
}

// List devuelve todos los registros en orden de inserción.
func (r *AttendanceRepo) List() ([]*entity.AttendanceRecord, error) {
	rows, err := r.table.Load()
	if err != nil {
		return nil, err
	}
	list := make([]*entity.AttendanceRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := decodeAttendance(row)
		if err != nil {
			return nil, err
		}
		list = append(list, rec)
	}
	return list, nil
}

// Exists indica si ya hay un registro para (empleado, fecha).
func (r *AttendanceRepo) Exists(employeeID int, date time.Time) (bool, error) {
	list, err := r.List()
	if err != nil {
		return false, err
	}
	day := entity.Day(date)
	for _, rec := range list {
		if rec.EmployeeID == employeeID && rec.Date.Equal(day) {
			return true, nil
		}
	}
	return false, nil
}

func decodeAttendance(row []string) (*entity.AttendanceRecord, error) {
	id, err := parseInt(cell(row, 0), "Emp_ID")
	if err != nil {
		return nil, err
	}
	date, err := parseDate(cell(row, 1), "Date")
	if err != nil {
		return nil, err
	}
	return &entity.AttendanceRecord{
		EmployeeID: id,
		Date:       date,
		Status:     cell(row, 2),
	}, nil
}

func encodeAttendance(rec *entity.AttendanceRecord) []string {
	return []string{
		strconv.Itoa(rec.EmployeeID),
		rec.Date.Format(entity.DateLayout),
		rec.Status,
	}
}
