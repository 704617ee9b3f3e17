package xlsx

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Negocio-api/internal/application/dss"
	"github.com/jhoicas/Negocio-api/internal/application/dto"
)

var _ dss.ReportWriter = (*ReportWriter)(nil)

// ReportWriter escribe el snapshot DSS como libro .xlsx (una fila por
// producto), con la misma disciplina temporal + rename del Store.
type ReportWriter struct {
	path string
}

// NewReportWriter construye el escritor con la ruta de salida.
func NewReportWriter(path string) *ReportWriter {
	return &ReportWriter{path: path}
}

// Destination devuelve la ruta de salida.
func (w *ReportWriter) Destination() string { return w.path }

// Write persiste el reporte completo.
func (w *ReportWriter) Write(rows []dto.DSSRow) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []interface{}{"Product_ID", "Product_Name", "Current_Stock", "Threshold", "Restock", "Category"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("escribir encabezados: %w", err)
	}
	for i, r := range rows {
		row := []interface{}{r.ProductID, r.ProductName, r.CurrentStock, r.Threshold, r.Restock, r.Category}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return fmt.Errorf("escribir fila %d: %w", i+2, err)
		}
	}

	tmp := w.path + ".tmp"
	if err := f.SaveAs(tmp); err != nil {
		return fmt.Errorf("guardar libro %s: %w", w.path, err)
	}
	if err := os.Rename(tmp, w.path); err != nil {
		return fmt.Errorf("publicar libro %s: %w", w.path, err)
	}
	return nil
}
