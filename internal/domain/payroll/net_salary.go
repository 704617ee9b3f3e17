package payroll

import "github.com/shopspring/decimal"

// NetSalary calcula el salario neto de un empleado (servicio de dominio puro):
//
//	TarifaDiaria = BásicoMensual / divisor
//	SalarioNeto  = TarifaDiaria * díasPresente, redondeado a 2 decimales
//
// El divisor es una constante fija (30 por defecto), no los días hábiles
// reales del período. Redondeo half-up (Round de shopspring/decimal).
func NetSalary(basic decimal.Decimal, daysPresent, divisor int) decimal.Decimal {
	if divisor <= 0 || daysPresent <= 0 {
		return decimal.Zero
	}
	daily := basic.Div(decimal.NewFromInt(int64(divisor)))
	return daily.Mul(decimal.NewFromInt(int64(daysPresent))).Round(2)
}
