// Package pdf genera la rendición imprimible del reporte DSS: una tabla con
// una fila de decisión por producto (stock, umbral, bandera de reposición y
// etiqueta de demanda).
package pdf

import (
	"fmt"
	"os"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Negocio-api/internal/application/dss"
	"github.com/jhoicas/Negocio-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ dss.ReportWriter = (*DSSReportWriter)(nil)

// DSSReportWriter implementa dss.ReportWriter usando Maroto v2.
type DSSReportWriter struct {
	path string
}

// NewDSSReportWriter construye el escritor con la ruta de salida.
func NewDSSReportWriter(path string) *DSSReportWriter {
	return &DSSReportWriter{path: path}
}

// Destination devuelve la ruta de salida.
func (w *DSSReportWriter) Destination() string { return w.path }

// Write genera el PDF y lo guarda en la ruta configurada.
func (w *DSSReportWriter) Write(rows []dto.DSSRow) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte DSS de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(len(rows)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(rows) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("pdf: generar documento: %w", err)
	}
	return os.WriteFile(w.path, doc.GetBytes(), 0o644)
}

// headerRow: título del reporte (izq) y fecha de generación + total de filas (der).
func headerRow(total int) core.Row {
	fecha := time.Now().Format("02/01/2006")
	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DSS DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Snapshot de reposición y demanda por producto", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Productos: %d", total), props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Center),
		h("Producto", 4, align.Left),
		h("Stock", 2, align.Right),
		h("Umbral", 2, align.Right),
		h("Reponer", 1, align.Center),
		h("Demanda", 2, align.Center),
	)
}

// tableRows: una fila por producto del reporte.
func tableRows(rows []dto.DSSRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.Itoa(r.ProductID),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				r.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				strconv.Itoa(r.CurrentStock),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				strconv.Itoa(r.Threshold),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				r.Restock,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				r.Category,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
		))
	}
	return result
}
