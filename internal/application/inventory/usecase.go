package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Negocio-api/internal/application/dto"
	"github.com/jhoicas/Negocio-api/internal/domain"
	"github.com/jhoicas/Negocio-api/internal/domain/entity"
	"github.com/jhoicas/Negocio-api/internal/domain/repository"
	"github.com/jhoicas/Negocio-api/pkg/logger"
)

// UseCase operaciones del libro de inventario: venta, reposición, alta de
// productos y alertas de stock bajo.
type UseCase struct {
	products repository.ProductRepository
	txRunner TxRunner
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(products repository.ProductRepository, txRunner TxRunner, log *logger.Logger) *UseCase {
	return &UseCase{products: products, txRunner: txRunner, log: log}
}

// Sell registra la venta en el libro de ventas y descuenta el stock del
// producto en una sola transacción. Si la cantidad supera el stock disponible,
// el stock queda en cero (política de piso): el faltante se absorbe sin error
// y la venta se registra completa.
func (uc *UseCase) Sell(ctx context.Context, productID, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}

	txID := uuid.New().String()
	today := entity.Day(time.Now())

	// Venta y descuento de stock se confirman juntos (TxRunner) o no se confirman.
	return uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		sale := &entity.SaleEvent{ProductID: productID, Quantity: quantity, Date: today}
		if err := saleRepo.Append(sale); err != nil {
			return err
		}
		current, err := productRepo.GetByID(productID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		newStock := current.CurrentStock - quantity
		if newStock < 0 {
			// Política de piso: el stock nunca baja de cero.
			uc.log.Warn().
				Str("tx_id", txID).
				Int("product_id", productID).
				Int("requested", quantity).
				Int("available", current.CurrentStock).
				Msg("venta supera el stock disponible; stock fijado en cero")
			newStock = 0
		}
		return productRepo.UpdateStock(productID, newStock)
	})
}

// Restock incrementa el stock del producto sin tope superior.
func (uc *UseCase) Restock(ctx context.Context, productID, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	uc.log.Info().
		Int("product_id", productID).
		Int("quantity", quantity).
		Msg("reposición de stock")
	return uc.products.UpdateStock(productID, product.CurrentStock+quantity)
}

// AddProduct da de alta un producto con ID consecutivo (máximo existente + 1,
// o 1 si el inventario está vacío). El nombre no puede ser vacío.
func (uc *UseCase) AddProduct(in dto.AddProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.Threshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	newID := 1
	for _, p := range list {
		if p.ID >= newID {
			newID = p.ID + 1
		}
	}
	product := &entity.Product{
		ID:           newID,
		Name:         in.Name,
		Category:     in.Category,
		CurrentStock: in.Stock,
		Threshold:    in.Threshold,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el inventario completo.
func (uc *UseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Alerts devuelve los productos con stock por debajo de su umbral (lista de
// trabajo de reposición).
func (uc *UseCase) Alerts() ([]dto.ProductResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	var items []dto.ProductResponse
	for _, p := range list {
		if p.NeedsRestock() {
			items = append(items, *toProductResponse(p))
		}
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		CurrentStock: p.CurrentStock,
		Threshold:    p.Threshold,
	}
}
