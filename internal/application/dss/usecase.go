package dss

import (
	"context"
	"fmt"

	"github.com/jhoicas/Negocio-api/internal/application/analytics"
	"github.com/jhoicas/Negocio-api/internal/application/dto"
	"github.com/jhoicas/Negocio-api/internal/domain/repository"
	"github.com/jhoicas/Negocio-api/pkg/logger"
)

// ExportUseCase arma el reporte DSS (una fila de decisión por producto) y lo
// persiste con los escritores configurados.
type ExportUseCase struct {
	products   repository.ProductRepository
	classifier *analytics.ClassificationUseCase
	writers    []ReportWriter
	log        *logger.Logger
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(products repository.ProductRepository, classifier *analytics.ClassificationUseCase, writers []ReportWriter, log *logger.Logger) *ExportUseCase {
	return &ExportUseCase{products: products, classifier: classifier, writers: writers, log: log}
}

// BuildReport une inventario y clasificación: stock, umbral, bandera de
// reposición y etiqueta de demanda por producto. Los productos sin ventas
// llevan categoría "N/A" (la clasificación los omite).
func (uc *ExportUseCase) BuildReport() ([]dto.DSSRow, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	labels, err := uc.classifier.Classify(0)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.DSSRow, 0, len(products))
	for _, p := range products {
		restock := "No"
		if p.NeedsRestock() {
			restock = "Yes"
		}
		label, ok := labels[p.Name]
		if !ok {
			label = "N/A"
		}
		rows = append(rows, dto.DSSRow{
			ProductID:    p.ID,
			ProductName:  p.Name,
			CurrentStock: p.CurrentStock,
			Threshold:    p.Threshold,
			Restock:      restock,
			Category:     label,
		})
	}
	return rows, nil
}

// Export genera el reporte y lo escribe con cada escritor configurado.
func (uc *ExportUseCase) Export(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rows, err := uc.BuildReport()
	if err != nil {
		return err
	}
	for _, w := range uc.writers {
		if err := w.Write(rows); err != nil {
			return fmt.Errorf("escribir reporte DSS en %s: %w", w.Destination(), err)
		}
		uc.log.Info().
			Str("destination", w.Destination()).
			Int("rows", len(rows)).
			Msg("reporte DSS exportado")
	}
	return nil
}
