package hr_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Negocio-api/internal/application/hr"
	"github.com/jhoicas/Negocio-api/internal/domain"
	"github.com/jhoicas/Negocio-api/internal/domain/entity"
	"github.com/jhoicas/Negocio-api/pkg/logger"
)

// ── Fakes ─────────────────────────────────────────────────────────────────────

type fakeEmployeeRepo struct {
	employees []*entity.Employee
}

func (r *fakeEmployeeRepo) List() ([]*entity.Employee, error) { return r.employees, nil }

func (r *fakeEmployeeRepo) GetByID(id int) (*entity.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

type fakeAttendanceRepo struct {
	records []*entity.AttendanceRecord
}

func (r *fakeAttendanceRepo) Append(rec *entity.AttendanceRecord) error {
	r.records = append(r.records, rec)
	return nil
}

func (r *fakeAttendanceRepo) List() ([]*entity.AttendanceRecord, error) { return r.records, nil }

func (r *fakeAttendanceRepo) Exists(employeeID int, date time.Time) (bool, error) {
	day := entity.Day(date)
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(day) {
			return true, nil
		}
	}
	return false, nil
}

func salary(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func buildUseCase(employees ...*entity.Employee) (*hr.UseCase, *fakeAttendanceRepo) {
	attendance := &fakeAttendanceRepo{}
	uc := hr.NewUseCase(&fakeEmployeeRepo{employees: employees}, attendance, 30, logger.Nop())
	return uc, attendance
}

// ──────────────────────────────────────────────────────────────────────────────
// MarkAttendance
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkAttendance_RegistraUnaVez(t *testing.T) {
	uc, attendance := buildUseCase(&entity.Employee{ID: 1, Name: "Laura", BasicSalary: salary(30000)})
	today := time.Now()

	require.NoError(t, uc.MarkAttendance(context.Background(), 1, today, entity.StatusPresent))
	require.Len(t, attendance.records, 1)
	assert.Equal(t, entity.StatusPresent, attendance.records[0].Status)
	assert.True(t, attendance.records[0].Date.Equal(entity.Day(today)))
}

// Idempotencia frente a duplicados: la segunda marca del mismo día no muta
// nada y reporta ErrDuplicate (advertencia, no fallo).
func TestMarkAttendance_DuplicadoEsNoOp(t *testing.T) {
	uc, attendance := buildUseCase(&entity.Employee{ID: 1, Name: "Laura", BasicSalary: salary(30000)})
	today := time.Now()

	require.NoError(t, uc.MarkAttendance(context.Background(), 1, today, entity.StatusPresent))
	err := uc.MarkAttendance(context.Background(), 1, today, entity.StatusAbsent)

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	require.Len(t, attendance.records, 1, "queda exactamente un registro por (empleado, fecha)")
	assert.Equal(t, entity.StatusPresent, attendance.records[0].Status,
		"el registro original no se sobrescribe")
}

// Fechas distintas del mismo empleado sí se registran.
func TestMarkAttendance_OtraFechaNoEsDuplicado(t *testing.T) {
	uc, attendance := buildUseCase(&entity.Employee{ID: 1, Name: "Laura", BasicSalary: salary(30000)})

	require.NoError(t, uc.MarkAttendance(context.Background(), 1, time.Now(), entity.StatusPresent))
	require.NoError(t, uc.MarkAttendance(context.Background(), 1, time.Now().AddDate(0, 0, 1), entity.StatusPresent))
	assert.Len(t, attendance.records, 2)
}

func TestMarkAttendance_EmpleadoInexistente(t *testing.T) {
	uc, attendance := buildUseCase()

	err := uc.MarkAttendance(context.Background(), 99, time.Now(), entity.StatusPresent)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, attendance.records)
}

func TestMarkAttendance_EstadoInvalido(t *testing.T) {
	uc, attendance := buildUseCase(&entity.Employee{ID: 1, Name: "Laura", BasicSalary: salary(30000)})

	err := uc.MarkAttendance(context.Background(), 1, time.Now(), "EnCamino")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, attendance.records)
}

// ──────────────────────────────────────────────────────────────────────────────
// Payroll
// ──────────────────────────────────────────────────────────────────────────────

func TestPayroll_LiquidaPorDiasPresentes(t *testing.T) {
	uc, _ := buildUseCase(
		&entity.Employee{ID: 1, Name: "Laura", Department: "Ventas", BasicSalary: salary(30000)},
		&entity.Employee{ID: 2, Name: "Carlos", Department: "Bodega", BasicSalary: salary(15000)},
	)
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	// Laura: 3 presentes y 1 ausente; Carlos: 1 presente.
	require.NoError(t, uc.MarkAttendance(ctx, 1, base, entity.StatusPresent))
	require.NoError(t, uc.MarkAttendance(ctx, 1, base.AddDate(0, 0, 1), entity.StatusPresent))
	require.NoError(t, uc.MarkAttendance(ctx, 1, base.AddDate(0, 0, 2), entity.StatusAbsent))
	require.NoError(t, uc.MarkAttendance(ctx, 1, base.AddDate(0, 0, 3), entity.StatusPresent))
	require.NoError(t, uc.MarkAttendance(ctx, 2, base, entity.StatusPresent))

	entries, err := uc.Payroll()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Laura", entries[0].Name)
	assert.Equal(t, "Ventas", entries[0].Department)
	assert.Equal(t, "3000", entries[0].NetSalary.String(), "30000/30 * 3 días presentes")
	assert.Equal(t, "500", entries[1].NetSalary.String(), "15000/30 * 1 día presente")
}

// La liquidación es una función pura: mismo libro, mismos resultados.
func TestPayroll_Determinista(t *testing.T) {
	uc, _ := buildUseCase(&entity.Employee{ID: 1, Name: "Laura", BasicSalary: decimal.NewFromFloat(1834567.89)})
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 17; i++ {
		require.NoError(t, uc.MarkAttendance(ctx, 1, base.AddDate(0, 0, i), entity.StatusPresent))
	}

	a, err := uc.Payroll()
	require.NoError(t, err)
	b, err := uc.Payroll()
	require.NoError(t, err)
	assert.True(t, a[0].NetSalary.Equal(b[0].NetSalary))
}

// Un empleado sin registros liquida cero (aparece igual en la nómina).
func TestPayroll_EmpleadoSinAsistencia(t *testing.T) {
	uc, _ := buildUseCase(&entity.Employee{ID: 1, Name: "Laura", BasicSalary: salary(30000)})

	entries, err := uc.Payroll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].NetSalary.IsZero())
}
