package dto

// MostDemandedResponse producto con mayor total acumulado de ventas.
type MostDemandedResponse struct {
	ProductName string `json:"product_name"`
	TotalQty    int    `json:"total_qty"`
}
