package hr

import (
	"context"
	"time"

	"github.com/jhoicas/Negocio-api/internal/application/dto"
	"github.com/jhoicas/Negocio-api/internal/domain"
	"github.com/jhoicas/Negocio-api/internal/domain/entity"
	"github.com/jhoicas/Negocio-api/internal/domain/payroll"
	"github.com/jhoicas/Negocio-api/internal/domain/repository"
	"github.com/jhoicas/Negocio-api/pkg/logger"
)

// UseCase asistencia y nómina: registro deduplicado por (empleado, fecha) y
// liquidación derivada del libro de asistencia más la planilla de empleados.
type UseCase struct {
	employees  repository.EmployeeRepository
	attendance repository.AttendanceRepository
	divisor    int // divisor fijo de la tarifa diaria (30 por defecto)
	log        *logger.Logger
}

// NewUseCase construye el caso de uso. divisor <= 0 cae al valor por defecto 30.
func NewUseCase(employees repository.EmployeeRepository, attendance repository.AttendanceRepository, divisor int, log *logger.Logger) *UseCase {
	if divisor <= 0 {
		divisor = 30
	}
	return &UseCase{employees: employees, attendance: attendance, divisor: divisor, log: log}
}

// MarkAttendance registra la asistencia de un empleado en una fecha. Si ya
// existe un registro para (empleado, fecha) no muta nada y devuelve
// ErrDuplicate: condición suave que la capa adaptadora presenta como
// advertencia, no como fallo.
func (uc *UseCase) MarkAttendance(ctx context.Context, employeeID int, date time.Time, status string) error {
	if !entity.ValidStatus(status) {
		return domain.ErrInvalidInput
	}
	employee, err := uc.employees.GetByID(employeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	day := entity.Day(date)
	exists, err := uc.attendance.Exists(employeeID, day)
	if err != nil {
		return err
	}
	if exists {
		uc.log.Warn().
			Int("employee_id", employeeID).
			Str("date", day.Format(entity.DateLayout)).
			Msg("asistencia ya registrada para la fecha")
		return domain.ErrDuplicate
	}
	return uc.attendance.Append(&entity.AttendanceRecord{
		EmployeeID: employeeID,
		Date:       day,
		Status:     status,
	})
}

// ListAttendance devuelve el libro de asistencia completo.
func (uc *UseCase) ListAttendance() ([]dto.AttendanceResponse, error) {
	records, err := uc.attendance.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.AttendanceResponse, 0, len(records))
	for _, r := range records {
		items = append(items, dto.AttendanceResponse{
			EmployeeID: r.EmployeeID,
			Date:       r.Date.Format(entity.DateLayout),
			Status:     r.Status,
		})
	}
	return items, nil
}

// Payroll liquida la nómina: por cada empleado cuenta sus días con estado
// Present en todas las fechas registradas y aplica la tarifa diaria
// (básico / divisor). Función pura del libro de asistencia + planilla:
// entradas idénticas producen salarios idénticos.
func (uc *UseCase) Payroll() ([]dto.PayrollEntry, error) {
	employees, err := uc.employees.List()
	if err != nil {
		return nil, err
	}
	records, err := uc.attendance.List()
	if err != nil {
		return nil, err
	}
	present := make(map[int]int, len(employees))
	for _, r := range records {
		if r.Status == entity.StatusPresent {
			present[r.EmployeeID]++
		}
	}
	entries := make([]dto.PayrollEntry, 0, len(employees))
	for _, e := range employees {
		entries = append(entries, dto.PayrollEntry{
			EmpID:      e.ID,
			Name:       e.Name,
			Department: e.Department,
			NetSalary:  payroll.NetSalary(e.BasicSalary, present[e.ID], uc.divisor),
		})
	}
	return entries, nil
}
