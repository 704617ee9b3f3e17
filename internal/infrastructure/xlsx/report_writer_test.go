package xlsx_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Negocio-api/internal/application/dto"
	"github.com/jhoicas/Negocio-api/internal/infrastructure/xlsx"
)

func TestReportWriter_EscribeReporte(t *testing.T) {
	path := filepath.Join(t.TempDir(), "DSS_Report.xlsx")
	w := xlsx.NewReportWriter(path)
	assert.Equal(t, path, w.Destination())

	rows := []dto.DSSRow{
		{ProductID: 1, ProductName: "Arroz", CurrentStock: 3, Threshold: 5, Restock: "Yes", Category: "Fast-Moving"},
		{ProductID: 2, ProductName: "Lenteja", CurrentStock: 40, Threshold: 10, Restock: "No", Category: "N/A"},
	}
	require.NoError(t, w.Write(rows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, got, 3, "encabezado + dos productos")
	assert.Equal(t, []string{"Product_ID", "Product_Name", "Current_Stock", "Threshold", "Restock", "Category"}, got[0])
	assert.Equal(t, []string{"1", "Arroz", "3", "5", "Yes", "Fast-Moving"}, got[1])
	assert.Equal(t, []string{"2", "Lenteja", "40", "10", "No", "N/A"}, got[2])

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "el temporal se renombró al publicar")
}

func TestReportWriter_SinFilasSoloEncabezado(t *testing.T) {
	path := filepath.Join(t.TempDir(), "DSS_Report.xlsx")
	require.NoError(t, xlsx.NewReportWriter(path).Write(nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, got, 1)
}
