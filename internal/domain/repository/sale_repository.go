package repository

import (
	"time"

	"github.com/jhoicas/Negocio-api/internal/domain/entity"
)

// SaleRepository puerto del libro de ventas (append-only: los eventos no se
// modifican ni se borran una vez escritos).
type SaleRepository interface {
	Append(sale *entity.SaleEvent) error
	List() ([]*entity.SaleEvent, error)
	ListByDate(date time.Time) ([]*entity.SaleEvent, error)
}
