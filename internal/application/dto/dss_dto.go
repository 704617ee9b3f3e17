package dto

// DSSRow fila del reporte DSS: snapshot de decisión por producto que une
// inventario, bandera de reposición y etiqueta de demanda.
type DSSRow struct {
	ProductID    int    `json:"product_id"`
	ProductName  string `json:"product_name"`
	CurrentStock int    `json:"current_stock"`
	Threshold    int    `json:"threshold"`
	Restock      string `json:"restock"`  // "Yes" / "No"
	Category     string `json:"category"` // etiqueta de demanda o "N/A"
}
