package dss

import "github.com/jhoicas/Negocio-api/internal/application/dto"

// ReportWriter puerto de salida para persistir el snapshot DSS. Cada
// implementación conoce su destino (libro .xlsx, PDF) desde la construcción.
type ReportWriter interface {
	Write(rows []dto.DSSRow) error
	Destination() string
}
