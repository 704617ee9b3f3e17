package dto

import "github.com/shopspring/decimal"

// SubmitReviewRequest entrada para registrar una reseña de cliente.
type SubmitReviewRequest struct {
	CustomerName string          `json:"customer_name" validate:"required,min=1,max=200"`
	Feedback     string          `json:"feedback"`
	Rating       decimal.Decimal `json:"rating"`
}

// ReviewResponse reseña expuesta a la capa adaptadora.
type ReviewResponse struct {
	CustomerName string          `json:"customer_name"`
	Feedback     string          `json:"feedback"`
	Rating       decimal.Decimal `json:"rating"`
	Date         string          `json:"date"`
}
