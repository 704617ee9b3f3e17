package xlsx

import (
	"github.com/jhoicas/Negocio-api/internal/domain/entity"
	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

var _ repository.ReviewRepository = (*ReviewRepo)(nil)

// ReviewRepo implementación de ReviewRepository sobre el libro de reseñas.
type ReviewRepo struct {
	table rowTable
}

// NewReviewRepository construye el adaptador de persistencia de reseñas.
func NewReviewRepository(store *Store) *ReviewRepo {
	return &ReviewRepo{table: store}
}

// Append agrega una reseña al final del libro.
func (r *ReviewRepo) Append(review *entity.Review) error {
	return r.table.Update(func(rows [][]string) ([][]string, error) {
		return append(rows, encodeReview(review)), nil
	})
}

// List devuelve todas las reseñas en orden de inserción.
func (r *ReviewRepo) List() ([]*entity.Review, error) {
	rows, err := r.table.Load()
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Review, 0, len(rows))
	for _, row := range rows {
		rev, err := decodeReview(row)
		if err != nil {
			return nil, err
		}
		list = append(list, rev)
	}
	return list, nil
}

func decodeReview(row []string) (*entity.Review, error) {
	rating, err := parseDecimal(cell(row, 2), "Rating")
	if err != nil {
		return nil, err
	}
	date, err := parseDate(cell(row, 3), "Date")
	if err != nil {
		return nil, err
	}
	return &entity.Review{
		CustomerName: cell(row, 0),
		Feedback:     cell(row, 1),
		Rating:       rating,
		Date:         date,
	}, nil
}

func encodeReview(rev *entity.Review) []string {
	return []string{
		rev.CustomerName,
		rev.Feedback,
		rev.Rating.String(),
		rev.Date.Format(entity.DateLayout),
	}
}
