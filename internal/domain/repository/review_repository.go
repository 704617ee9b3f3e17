package repository

import "github.com/jhoicas/Negocio-api/internal/domain/entity"

// ReviewRepository puerto del libro de reseñas de clientes (append-only).
type ReviewRepository interface {
	Append(review *entity.Review) error
	List() ([]*entity.Review, error)
}
