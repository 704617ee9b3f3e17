// Export genera el reporte DSS (snapshot de reposición y demanda por
// producto) a partir de los libros del sistema y lo escribe en .xlsx y,
// opcionalmente, en PDF.
package main

import (
	"context"

	"github.com/jhoicas/Negocio-api/internal/application/analytics"
	"github.com/jhoicas/Negocio-api/internal/application/dss"
	"github.com/jhoicas/Negocio-api/internal/application/sales"
	"github.com/jhoicas/Negocio-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Negocio-api/internal/infrastructure/xlsx"
	"github.com/jhoicas/Negocio-api/pkg/config"
	"github.com/jhoicas/Negocio-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log.Info().Str("app", cfg.App.Name).Msg("exportando reporte DSS")

	productStore := xlsx.NewStore(xlsx.ProductsTable(cfg.Store.InventoryPath))
	saleStore := xlsx.NewStore(xlsx.SalesTable(cfg.Store.SalesPath))

	productRepo := xlsx.NewProductRepository(productStore)
	saleRepo := xlsx.NewSaleRepository(saleStore)

	reportUC := sales.NewReportUseCase(saleRepo, productRepo)
	classifyUC := analytics.NewClassificationUseCase(reportUC, productRepo, analytics.Config{
		WindowDays:    cfg.Analytics.WindowDays,
		FastThreshold: cfg.Analytics.FastThreshold,
	})

	writers := []dss.ReportWriter{xlsx.NewReportWriter(cfg.Export.XLSXPath)}
	if cfg.Export.PDFPath != "" {
		writers = append(writers, pdf.NewDSSReportWriter(cfg.Export.PDFPath))
	}

	exportUC := dss.NewExportUseCase(productRepo, classifyUC, writers, log)
	if err := exportUC.Export(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("exportar reporte DSS")
	}
}
