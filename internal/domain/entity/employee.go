package entity

import "github.com/shopspring/decimal"

// Employee empleado de la planilla. Datos de referencia de solo lectura para
// este núcleo (la gestión de empleados ocurre fuera del sistema).
type Employee struct {
	ID          int
	Name        string
	Department  string
	BasicSalary decimal.Decimal
}
