package classification

import "github.com/shopspring/decimal"

// Etiquetas de demanda.
const (
	LabelFast = "Fast-Moving"
	LabelSlow = "Slow-Moving"
)

// Classify etiqueta la demanda de un producto a partir del total vendido en
// una ventana de días (servicio de dominio puro):
//
//	PromedioDiario = TotalVendido / VentanaDías
//	PromedioDiario >= umbral → Fast-Moving; si no → Slow-Moving
//
// El umbral y la ventana son constantes de configuración, no se derivan de
// los datos.
func Classify(totalSold, windowDays int, threshold decimal.Decimal) string {
	if windowDays <= 0 {
		return LabelSlow
	}
	avgDaily := decimal.NewFromInt(int64(totalSold)).Div(decimal.NewFromInt(int64(windowDays)))
	if avgDaily.GreaterThanOrEqual(threshold) {
		return LabelFast
	}
	return LabelSlow
}
