package dss_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Negocio-api/internal/application/analytics"
	"github.com/jhoicas/Negocio-api/internal/application/dss"
	"github.com/jhoicas/Negocio-api/internal/application/dto"
	"github.com/jhoicas/Negocio-api/internal/application/sales"
	"github.com/jhoicas/Negocio-api/internal/domain/classification"
	"github.com/jhoicas/Negocio-api/internal/domain/entity"
	"github.com/jhoicas/Negocio-api/pkg/logger"
)

// ── Fakes ─────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	events []*entity.SaleEvent
}

func (r *fakeSaleRepo) Append(s *entity.SaleEvent) error {
	r.events = append(r.events, s)
	return nil
}

func (r *fakeSaleRepo) List() ([]*entity.SaleEvent, error) { return r.events, nil }

func (r *fakeSaleRepo) ListByDate(date time.Time) ([]*entity.SaleEvent, error) {
	return nil, nil
}

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) { return r.products, nil }

func (r *fakeProductRepo) GetByID(id int) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Create(p *entity.Product) error  { return nil }
func (r *fakeProductRepo) UpdateStock(id, stock int) error { return nil }

// fakeWriter captura las filas escritas.
type fakeWriter struct {
	written [][]dto.DSSRow
}

func (w *fakeWriter) Write(rows []dto.DSSRow) error {
	w.written = append(w.written, rows)
	return nil
}

func (w *fakeWriter) Destination() string { return "fake://dss" }

func buildExport(products []*entity.Product, events []*entity.SaleEvent, writers ...dss.ReportWriter) *dss.ExportUseCase {
	productRepo := &fakeProductRepo{products: products}
	reports := sales.NewReportUseCase(&fakeSaleRepo{events: events}, productRepo)
	classifier := analytics.NewClassificationUseCase(reports, productRepo, analytics.Config{
		WindowDays:    30,
		FastThreshold: decimal.NewFromInt(2),
	})
	return dss.NewExportUseCase(productRepo, classifier, writers, logger.Nop())
}

// ── BuildReport ───────────────────────────────────────────────────────────────

func TestBuildReport_UneInventarioYDemanda(t *testing.T) {
	date := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	uc := buildExport(
		[]*entity.Product{
			{ID: 1, Name: "Arroz", CurrentStock: 3, Threshold: 5},
			{ID: 2, Name: "Aceite", CurrentStock: 50, Threshold: 10},
		},
		[]*entity.SaleEvent{
			{ProductID: 1, Quantity: 70, Date: date},
		},
	)

	rows, err := uc.BuildReport()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, dto.DSSRow{
		ProductID:    1,
		ProductName:  "Arroz",
		CurrentStock: 3,
		Threshold:    5,
		Restock:      "Yes",
		Category:     classification.LabelFast,
	}, rows[0])

	assert.Equal(t, "No", rows[1].Restock, "stock sobre el umbral no pide reposición")
	assert.Equal(t, "N/A", rows[1].Category, "producto sin ventas queda sin etiqueta")
}

// ── Export ────────────────────────────────────────────────────────────────────

func TestExport_EscribeConTodosLosEscritores(t *testing.T) {
	w1 := &fakeWriter{}
	w2 := &fakeWriter{}
	uc := buildExport(
		[]*entity.Product{{ID: 1, Name: "Arroz", CurrentStock: 3, Threshold: 5}},
		nil,
		w1, w2,
	)

	require.NoError(t, uc.Export(context.Background()))
	require.Len(t, w1.written, 1)
	require.Len(t, w2.written, 1)
	assert.Len(t, w1.written[0], 1)
}

func TestExport_ContextoCancelado(t *testing.T) {
	w := &fakeWriter{}
	uc := buildExport(nil, nil, w)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, uc.Export(ctx))
	assert.Empty(t, w.written)
}
