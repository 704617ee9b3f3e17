package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Negocio-api/internal/application/sales"
	"github.com/jhoicas/Negocio-api/internal/domain/classification"
	"github.com/jhoicas/Negocio-api/internal/domain/repository"
)

// Config parámetros del motor de clasificación de demanda.
type Config struct {
	WindowDays    int             // ventana de observación en días (30 por defecto)
	FastThreshold decimal.Decimal // promedio diario mínimo para Fast-Moving (2 por defecto)
}

// ClassificationUseCase motor de clasificación de demanda sobre los agregados
// del libro de ventas.
type ClassificationUseCase struct {
	reports  *sales.ReportUseCase
	products repository.ProductRepository
	cfg      Config
}

// NewClassificationUseCase construye el caso de uso.
func NewClassificationUseCase(reports *sales.ReportUseCase, products repository.ProductRepository, cfg Config) *ClassificationUseCase {
	return &ClassificationUseCase{reports: reports, products: products, cfg: cfg}
}

// Classify etiqueta cada producto con al menos una venta como Fast-Moving o
// Slow-Moving según su promedio diario en la ventana. windowDays <= 0 usa la
// ventana configurada. Los productos sin ventas se omiten del resultado:
// política deliberada, sin datos no hay etiqueta.
func (uc *ClassificationUseCase) Classify(windowDays int) (map[string]string, error) {
	if windowDays <= 0 {
		windowDays = uc.cfg.WindowDays
	}
	totals, order, err := uc.reports.TotalByProduct()
	if err != nil {
		return nil, err
	}
	result := make(map[string]string, len(order))
	for _, id := range order {
		product, err := uc.products.GetByID(id)
		if err != nil {
			return nil, err
		}
		if product == nil {
			// Venta huérfana (producto ya no está en el libro de inventario): se omite.
			continue
		}
		result[product.Name] = classification.Classify(totals[id], windowDays, uc.cfg.FastThreshold)
	}
	return result, nil
}
