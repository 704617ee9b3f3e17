package entity

// Product representa un producto del inventario con su stock vigente.
// CurrentStock nunca es negativo: la venta aplica piso en cero (clamp).
// Threshold es el nivel mínimo; por debajo el producto entra a la lista de reposición.
type Product struct {
	ID           int
	Name         string
	Category     string
	CurrentStock int
	Threshold    int
}

// NeedsRestock indica si el stock está por debajo del umbral de reposición.
func (p *Product) NeedsRestock() bool {
	return p.CurrentStock < p.Threshold
}
