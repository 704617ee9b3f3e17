package inventory

import (
	"context"

	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

// TxRunner ejecuta una función con los repositorios de ventas e inventario
// atados a una misma transacción de almacenamiento. Garantiza que el registro
// de la venta y el descuento de stock se confirmen juntos o no se confirmen.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error) error
}
