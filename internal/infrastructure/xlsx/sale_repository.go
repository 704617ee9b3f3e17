package xlsx

import (
	"strconv"
	"time"

	"github.com/jhoicas/Negocio-api/internal/domain/entity"
	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre el libro de ventas.
type SaleRepo struct {
	table rowTable
}

// NewSaleRepository construye el adaptador de persistencia de ventas.
func NewSaleRepository(store *Store) *SaleRepo {
	return newSaleRepo(store)
}

func newSaleRepo(table rowTable) *SaleRepo {
	return &SaleRepo{table: table}
}

// Append agrega un evento de venta al final del libro.
func (r *SaleRepo) Append(sale *entity.SaleEvent) error {
	return r.table.Update(func(rows [][]string) ([][]string, error) {
		return append(rows, encodeSale(sale)), nil
	})
}

// List devuelve todos los eventos en orden de inserción.
func (r *SaleRepo) List() ([]*entity.SaleEvent, error) {
	rows, err := r.table.Load()
	if err != nil {
		return nil, err
	}
	list := make([]*entity.SaleEvent, 0, len(rows))
	for _, row := range rows {
		s, err := decodeSale(row)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, nil
}

// ListByDate devuelve los eventos de una fecha calendario.
func (r *SaleRepo) ListByDate(date time.Time) ([]*entity.SaleEvent, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}
	day := entity.Day(date)
	var filtered []*entity.SaleEvent
	for _, s := range list {
		if s.Date.Equal(day) {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

func decodeSale(row []string) (*entity.SaleEvent, error) {
	productID, err := parseInt(cell(row, 0), "Product_ID")
	if err != nil {
		return nil, err
	}
	quantity, err := parseInt(cell(row, 1), "Quantity_Sold")
	if err != nil {
		return nil, err
	}
	date, err := parseDate(cell(row, 2), "Date")
	if err != nil {
		return nil, err
	}
	return &entity.SaleEvent{ProductID: productID, Quantity: quantity, Date: date}, nil
}

func encodeSale(s *entity.SaleEvent) []string {
	return []string{
		strconv.Itoa(s.ProductID),
		strconv.Itoa(s.Quantity),
		s.Date.Format(entity.DateLayout),
	}
}
