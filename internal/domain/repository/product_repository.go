package repository

import "github.com/jhoicas/Negocio-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	List() ([]*entity.Product, error)
	GetByID(id int) (*entity.Product, error)
	Create(product *entity.Product) error
	UpdateStock(id, stock int) error
}
