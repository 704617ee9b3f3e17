package dto

import "github.com/shopspring/decimal"

// AttendanceResponse registro de asistencia expuesto a la capa adaptadora.
type AttendanceResponse struct {
	EmployeeID int    `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// PayrollEntry liquidación de nómina de un empleado.
type PayrollEntry struct {
	EmpID      int             `json:"emp_id"`
	Name       string          `json:"name"`
	Department string          `json:"department"`
	NetSalary  decimal.Decimal `json:"net_salary"`
}
