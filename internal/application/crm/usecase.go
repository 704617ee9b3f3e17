package crm

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Negocio-api/internal/application/dto"
	"github.com/jhoicas/Negocio-api/internal/domain"
	"github.com/jhoicas/Negocio-api/internal/domain/entity"
	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

// Bounds rango válido de calificación, extremos inclusive. El negocio usa la
// escala 1 a 5.
type Bounds struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// DefaultBounds escala de calificación por defecto (1 a 5).
func DefaultBounds() Bounds {
	return Bounds{Min: decimal.NewFromInt(1), Max: decimal.NewFromInt(5)}
}

// UseCase libro de reseñas de clientes con promedio de calificación derivado.
type UseCase struct {
	reviews repository.ReviewRepository
	bounds  Bounds
}

// NewUseCase construye el caso de uso.
func NewUseCase(reviews repository.ReviewRepository, bounds Bounds) *UseCase {
	return &UseCase{reviews: reviews, bounds: bounds}
}

// Submit valida y agrega una reseña con la fecha calendario actual. El nombre
// del cliente no puede ser vacío y la calificación debe estar dentro del
// rango configurado.
func (uc *UseCase) Submit(in dto.SubmitReviewRequest) error {
	if strings.TrimSpace(in.CustomerName) == "" {
		return domain.ErrInvalidInput
	}
	if in.Rating.LessThan(uc.bounds.Min) || in.Rating.GreaterThan(uc.bounds.Max) {
		return domain.ErrInvalidInput
	}
	return uc.reviews.Append(&entity.Review{
		CustomerName: in.CustomerName,
		Feedback:     in.Feedback,
		Rating:       in.Rating,
		Date:         entity.Day(time.Now()),
	})
}

// ListReviews devuelve todas las reseñas del libro.
func (uc *UseCase) ListReviews() ([]dto.ReviewResponse, error) {
	list, err := uc.reviews.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReviewResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.ReviewResponse{
			CustomerName: r.CustomerName,
			Feedback:     r.Feedback,
			Rating:       r.Rating,
			Date:         r.Date.Format(entity.DateLayout),
		})
	}
	return items, nil
}

// AverageRating promedio aritmético de todas las calificaciones, redondeado a
// 2 decimales. Devuelve cero cuando el libro está vacío.
func (uc *UseCase) AverageRating() (decimal.Decimal, error) {
	list, err := uc.reviews.List()
	if err != nil {
		return decimal.Zero, err
	}
	if len(list) == 0 {
		return decimal.Zero, nil
	}
	sum := decimal.Zero
	for _, r := range list {
		sum = sum.Add(r.Rating)
	}
	return sum.Div(decimal.NewFromInt(int64(len(list)))).Round(2), nil
}
