package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Review reseña de cliente con su calificación (libro append-only).
type Review struct {
	CustomerName string
	Feedback     string
	Rating       decimal.Decimal
	Date         time.Time
}
