package xlsx

import (
	"strconv"

	"github.com/jhoicas/Negocio-api/internal/domain"
	"github.com/jhoicas/Negocio-api/internal/domain/entity"
	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre el libro de inventario.
type ProductRepo struct {
	table rowTable
}

// NewProductRepository construye el adaptador de persistencia de productos.
func NewProductRepository(store *Store) *ProductRepo {
	return newProductRepo(store)
}

func newProductRepo(table rowTable) *ProductRepo {
	return &ProductRepo{table: table}
}

// List devuelve todos los productos del libro.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	rows, err := r.table.Load()
	if err != nil {
		return nil, err
	}
	list := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		p, err := decodeProduct(row)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

// GetByID busca un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int) (*entity.Product, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// Create agrega un producto nuevo al libro. ID repetido devuelve ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	return r.table.Update(func(rows [][]string) ([][]string, error) {
		for _, row := range rows {
			existing, err := decodeProduct(row)
			if err != nil {
				return nil, err
			}
			if existing.ID == product.ID {
				return nil, domain.ErrDuplicate
			}
		}
		return append(rows, encodeProduct(product)), nil
	})
}

// UpdateStock fija el stock del producto indicado. ErrNotFound si no existe.
func (r *ProductRepo) UpdateStock(id, stock int) error {
	return r.table.Update(func(rows [][]string) ([][]string, error) {
		for i, row := range rows {
			p, err := decodeProduct(row)
			if err != nil {
				return nil, err
			}
			if p.ID == id {
				p.CurrentStock = stock
				rows[i] = encodeProduct(p)
				return rows, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

func decodeProduct(row []string) (*entity.Product, error) {
	id, err := parseInt(cell(row, 0), "Product_ID")
	if err != nil {
		return nil, err
	}
	stock, err := parseInt(cell(row, 3), "Current_Stock")
	if err != nil {
		return nil, err
	}
	threshold, err := parseInt(cell(row, 4), "Threshold")
	if err != nil {
		return nil, err
	}
	return &entity.Product{
		ID:           id,
		Name:         cell(row, 1),
		Category:     cell(row, 2),
		CurrentStock: stock,
		Threshold:    threshold,
	}, nil
}

func encodeProduct(p *entity.Product) []string {
	return []string{
		strconv.Itoa(p.ID),
		p.Name,
		p.Category,
		strconv.Itoa(p.CurrentStock),
		strconv.Itoa(p.Threshold),
	}
}
