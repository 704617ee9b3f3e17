package entity

import "time"

// SaleEvent evento de venta del libro de ventas (append-only, inmutable una
// vez escrito). Quantity siempre es positiva; Date es fecha calendario.
type SaleEvent struct {
	ProductID int
	Quantity  int
	Date      time.Time
}
