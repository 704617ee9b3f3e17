package xlsx

import (
	"github.com/jhoicas/Negocio-api/internal/domain/entity"
	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo lectura de la planilla de empleados. Este núcleo no la muta:
// la gestión de empleados ocurre fuera del sistema.
type EmployeeRepo struct {
	table rowTable
}

// NewEmployeeRepository construye el adaptador de lectura de la planilla.
func NewEmployeeRepository(store *Store) *EmployeeRepo {
	return &EmployeeRepo{table: store}
}

// List devuelve todos los empleados.
func (r *EmployeeRepo) List() ([]*entity.Employee, error) {
	rows, err := r.table.Load()
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Employee, 0, len(rows))
	for _, row := range rows {
		e, err := decodeEmployee(row)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, nil
}

// GetByID busca un empleado por ID. Devuelve (nil, nil) si no existe.
func (r *EmployeeRepo) GetByID(id int) (*entity.Employee, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, e := range list {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

func decodeEmployee(row []string) (*entity.Employee, error) {
	id, err := parseInt(cell(row, 0), "Emp_ID")
	if err != nil {
		return nil, err
	}
	salary, err := parseDecimal(cell(row, 3), "Basic_Salary")
	if err != nil {
		return nil, err
	}
	return &entity.Employee{
		ID:          id,
		Name:        cell(row, 1),
		Department:  cell(row, 2),
		BasicSalary: salary,
	}, nil
}
