package dto

// DashboardResponse agregado que consume la capa de presentación: inventario
// completo, alertas de reposición, producto más demandado y clasificación de
// demanda por nombre de producto.
type DashboardResponse struct {
	Inventory      []ProductResponse     `json:"inventory"`
	Alerts         []ProductResponse     `json:"alerts"`
	Classification map[string]string     `json:"classification"`
	MostDemanded   *MostDemandedResponse `json:"most_demanded,omitempty"`
}
