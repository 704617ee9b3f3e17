package repository

import "github.com/jhoicas/Negocio-api/internal/domain/entity"

// EmployeeRepository puerto de lectura de la planilla de empleados.
// GetByID devuelve (nil, nil) cuando el empleado no existe.
type EmployeeRepository interface {
	List() ([]*entity.Employee, error)
	GetByID(id int) (*entity.Employee, error)
}
