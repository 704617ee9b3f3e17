package dto

// AddProductRequest entrada para dar de alta un producto.
type AddProductRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Category  string `json:"category"`
	Stock     int    `json:"stock" validate:"gte=0"`
	Threshold int    `json:"threshold" validate:"gte=0"`
}

// ProductResponse producto expuesto a la capa adaptadora.
type ProductResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	CurrentStock int    `json:"current_stock"`
	Threshold    int    `json:"threshold"`
}
